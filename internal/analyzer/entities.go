package analyzer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxPhraseWords caps multi-word entity phrases. The cap and the stop
// conditions (non-candidate token, passage change, sentence boundary) are a
// fixed policy, not tunable.
const maxPhraseWords = 3

// phraseConnectors are lowercase words allowed between capitalized words
// inside a phrase, so titles like "Pride and Prejudice" survive merging.
var phraseConnectors = map[string]struct{}{
	"and": {},
	"of":  {},
	"the": {},
}

// Entity is a normalized capitalized phrase tracked for ranking. Name keeps
// the surface form of the first occurrence.
type Entity struct {
	Name     string
	Count    int
	Passages map[int]struct{}
	First    int
}

// ExtractEntities scans tokens for capitalized phrases, aggregates them by
// normalized form and returns at most max entities ranked by frequency,
// then distinct passage spread, then first occurrence.
func ExtractEntities(tokens []Token, filter *CommonWordFilter, max int) []Entity {
	byKey := make(map[string]*Entity)
	var order []*Entity

	for i := 0; i < len(tokens); {
		if !isCandidate(tokens[i], filter) {
			i++
			continue
		}

		words := []int{i}
		j := i + 1
		for len(words) < maxPhraseWords && j < len(tokens) && sameSentenceRun(tokens[i], tokens[j]) {
			if isCandidate(tokens[j], filter) {
				words = append(words, j)
				j++
				continue
			}
			if _, conn := phraseConnectors[tokens[j].Norm]; conn &&
				len(words)+2 <= maxPhraseWords &&
				j+1 < len(tokens) && sameSentenceRun(tokens[i], tokens[j+1]) &&
				isCandidate(tokens[j+1], filter) {
				words = append(words, j, j+1)
				j += 2
				continue
			}
			break
		}

		// A lone common word is never an entity, regardless of position.
		if len(words) == 1 && filter.IsCommon(tokens[i].Norm) {
			i = j
			continue
		}

		name, key := phraseForms(tokens, words)
		e, ok := byKey[key]
		if !ok {
			e = &Entity{Name: name, Passages: make(map[int]struct{}), First: i}
			byKey[key] = e
			order = append(order, e)
		}
		e.Count++
		e.Passages[tokens[i].Passage] = struct{}{}
		i = j
	}

	sort.SliceStable(order, func(a, b int) bool {
		x, y := order[a], order[b]
		if x.Count != y.Count {
			return x.Count > y.Count
		}
		if len(x.Passages) != len(y.Passages) {
			return len(x.Passages) > len(y.Passages)
		}
		return x.First < y.First
	})

	if len(order) > max {
		order = order[:max]
	}

	out := make([]Entity, len(order))
	for i, e := range order {
		out[i] = *e
	}
	return out
}

// isCandidate reports whether a token can start or extend an entity phrase.
// Sentence-initial capitals only qualify when they are not common words.
func isCandidate(t Token, filter *CommonWordFilter) bool {
	r, _ := utf8.DecodeRuneInString(t.Raw)
	if !unicode.IsUpper(r) {
		return false
	}
	if !t.SentenceStart {
		return true
	}
	return !filter.IsCommon(t.Norm)
}

// sameSentenceRun reports whether next continues the phrase started at
// first: same passage and not a new sentence.
func sameSentenceRun(first, next Token) bool {
	return next.Passage == first.Passage && !next.SentenceStart
}

// phraseForms joins the selected tokens into the display name and the
// case-insensitive aggregation key.
func phraseForms(tokens []Token, words []int) (name, key string) {
	raws := make([]string, len(words))
	norms := make([]string, len(words))
	for i, idx := range words {
		raws[i] = tokens[idx].Raw
		norms[i] = tokens[idx].Norm
	}
	return strings.Join(raws, " "), strings.Join(norms, " ")
}
