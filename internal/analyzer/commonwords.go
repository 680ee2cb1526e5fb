package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultCommonWords is the built-in exclusion set for entity detection.
// Capitalization alone is a weak proper-noun signal (sentence-initial words,
// titles), so known high-frequency words are rejected outright.
var defaultCommonWords = []string{
	"the", "a", "an", "and", "or", "but", "if", "then", "than", "so", "as",
	"at", "by", "for", "from", "in", "into", "of", "on", "to", "with",
	"about", "above", "across", "after", "against", "along", "among",
	"around", "before", "behind", "below", "beneath", "beside", "between",
	"beyond", "during", "except", "inside", "near", "off", "out", "outside",
	"over", "through", "toward", "towards", "under", "until", "up", "upon",
	"within", "without",
	"i", "me", "my", "mine", "myself", "we", "us", "our", "ours",
	"ourselves", "you", "your", "yours", "yourself", "he", "him", "his",
	"himself", "she", "her", "hers", "herself", "it", "its", "itself",
	"they", "them", "their", "theirs", "themselves", "who", "whom", "whose",
	"which", "what", "this", "that", "these", "those", "anybody", "anyone",
	"anything", "everybody", "everyone", "everything", "nobody", "nothing",
	"somebody", "someone", "something",
	"is", "are", "was", "were", "be", "been", "being", "am", "do", "does",
	"did", "done", "doing", "have", "has", "had", "having", "will", "would",
	"shall", "should", "can", "could", "may", "might", "must", "ought",
	"say", "said", "says", "saying", "go", "went", "gone", "going", "come",
	"came", "coming", "see", "saw", "seen", "seeing", "know", "knew",
	"known", "knowing", "think", "thought", "thinking", "take", "took",
	"taken", "taking", "make", "made", "making", "get", "got", "getting",
	"give", "gave", "given", "giving", "find", "found", "tell", "told",
	"ask", "asked", "seem", "seemed", "feel", "felt", "look", "looked",
	"want", "wanted", "leave", "left", "put", "let", "keep", "kept",
	"begin", "began", "begun", "turn", "turned", "bring", "brought",
	"not", "no", "nor", "yes", "all", "any", "both", "each", "few", "more",
	"most", "much", "many", "none", "only", "other", "others", "own",
	"same", "some", "such", "every", "either", "neither", "several",
	"very", "too", "just", "now", "here", "there", "where", "when", "why",
	"how", "again", "once", "ever", "never", "always", "often", "soon",
	"still", "yet", "already", "quite", "rather", "almost", "perhaps",
	"indeed", "even", "well", "also", "away", "back", "down",
	"while", "because", "though", "although", "however", "therefore",
	"thus", "since", "unless", "whether",
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "first", "second", "third", "last", "next",
	"man", "men", "woman", "women", "people", "person", "thing", "things",
	"way", "ways", "day", "days", "night", "time", "times", "year", "years",
	"hour", "hours", "moment", "life", "world", "house", "home", "room",
	"door", "hand", "hands", "head", "eyes", "face", "word", "words",
	"little", "long", "great", "good", "bad", "new", "old", "young",
	"small", "large", "big", "high", "low", "right", "wrong", "true",
	"whole", "part", "place", "end", "side", "dear", "poor",
	"sir", "madam", "mr", "mrs", "miss", "oh", "ah", "chapter",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
	"sunday",
}

// DefaultCommonWords returns a copy of the built-in common word list.
func DefaultCommonWords() []string {
	out := make([]string, len(defaultCommonWords))
	copy(out, defaultCommonWords)
	return out
}

// CommonWordFilter rejects ordinary words that happen to be capitalized.
// The zero value is not usable; construct with NewCommonWordFilter.
type CommonWordFilter struct {
	words map[string]struct{}
}

// NewCommonWordFilter builds a filter from the given word list. A nil list
// selects the built-in default set; an empty non-nil list disables the
// dictionary lookup (single-rune tokens and numerals are still common).
func NewCommonWordFilter(words []string) *CommonWordFilter {
	if words == nil {
		words = defaultCommonWords
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &CommonWordFilter{words: set}
}

// IsCommon reports whether a normalized word should be excluded from entity
// detection. Single-rune tokens and pure numerals are always common.
func (f *CommonWordFilter) IsCommon(norm string) bool {
	if utf8.RuneCountInString(norm) <= 1 {
		return true
	}
	if isNumeral(norm) {
		return true
	}
	_, ok := f.words[norm]
	return ok
}

// Len returns the number of dictionary words in the filter.
func (f *CommonWordFilter) Len() int {
	return len(f.words)
}

func isNumeral(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
