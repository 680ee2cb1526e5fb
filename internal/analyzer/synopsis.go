package analyzer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultImpactLexicon is the built-in set of dramatic keywords used to
// score passages for the synopsis. Membership is policy, not algorithm;
// callers can supply their own lexicon via Options.
var defaultImpactLexicon = []string{
	"bet", "wager", "gamble", "pray", "suicide", "kill", "catch", "oust",
	"coup", "death", "crash", "died", "die", "murder", "jail", "assault",
	"lost", "battle", "strike", "shoot", "fight", "bleed", "stab", "burn",
	"kiss", "celebrate", "overcome", "surrender", "yell", "shout", "escape",
	"negotiation", "deal", "court", "marry", "married", "divorce",
	"divorced", "desperate", "victory", "defeat", "succeed", "fail",
	"betray", "love", "hate", "discover", "reveal", "secret", "mystery",
	"solve",
}

// DefaultImpactLexicon returns a copy of the built-in impact lexicon.
func DefaultImpactLexicon() []string {
	out := make([]string, len(defaultImpactLexicon))
	copy(out, defaultImpactLexicon)
	return out
}

// ScorePassages scores each passage by impact-lexicon occurrences and
// returns at most max passages with a positive score, ranked by score
// descending then passage index ascending. Zero-score passages are never
// included, so the result may be shorter than max.
func ScorePassages(passages []Passage, lexicon []string, mode MatchMode, max int) []Passage {
	scored := make([]Passage, 0, len(passages))

	for _, p := range passages {
		hits := scorePassage(p.Text, lexicon, mode)
		if hits == 0 {
			continue
		}
		p.Score = float64(hits)
		scored = append(scored, p)
	}

	sort.SliceStable(scored, func(a, b int) bool {
		if scored[a].Score != scored[b].Score {
			return scored[a].Score > scored[b].Score
		}
		return scored[a].Index < scored[b].Index
	})

	if len(scored) > max {
		scored = scored[:max]
	}
	return scored
}

func scorePassage(text string, lexicon []string, mode MatchMode) int {
	lower := strings.ToLower(text)
	total := 0
	for _, keyword := range lexicon {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		if mode == MatchSubstring {
			total += strings.Count(lower, keyword)
		} else {
			total += countWordMatches(lower, keyword)
		}
	}
	return total
}

// countWordMatches counts case-sensitive occurrences of word in lower that
// sit on word boundaries. Callers lowercase both sides.
func countWordMatches(lower, word string) int {
	count := 0
	for start := 0; start <= len(lower)-len(word); {
		idx := strings.Index(lower[start:], word)
		if idx < 0 {
			break
		}
		idx += start
		if boundaryBefore(lower, idx) && boundaryAfter(lower, idx+len(word)) {
			count++
		}
		start = idx + len(word)
	}
	return count
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}
