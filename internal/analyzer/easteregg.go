package analyzer

import (
	"math/rand"
	"strings"
)

// easterEggWord is the literal token a qualifying passage must contain.
const easterEggWord = "first"

// Rand is the source of randomness for easter egg selection; tests inject a
// fixed implementation.
type Rand interface {
	IntN(n int) int
}

// systemRand draws from the shared math/rand source.
type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.Intn(n) }

// SelectEasterEgg picks a uniformly random passage that contains the word
// "first" and mentions at least one of the ranked entities. The boolean is
// false when no passage qualifies, which is a normal result for short or
// entity-sparse documents.
func SelectEasterEgg(passages []Passage, entities []Entity, mode MatchMode, rng Rand) (Passage, bool) {
	if rng == nil {
		rng = systemRand{}
	}

	var qualifying []Passage
	for _, p := range passages {
		lower := strings.ToLower(p.Text)
		if countWordMatches(lower, easterEggWord) == 0 {
			continue
		}
		if !mentionsAny(lower, entities, mode) {
			continue
		}
		qualifying = append(qualifying, p)
	}

	if len(qualifying) == 0 {
		return Passage{}, false
	}
	return qualifying[rng.IntN(len(qualifying))], true
}

func mentionsAny(lower string, entities []Entity, mode MatchMode) bool {
	for _, e := range entities {
		name := strings.ToLower(e.Name)
		if name == "" {
			continue
		}
		if mode == MatchWholeWord {
			if countWordMatches(lower, name) > 0 {
				return true
			}
		} else if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}
