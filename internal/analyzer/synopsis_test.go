package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorePassages(t *testing.T) {
	passagesFrom := func(texts ...string) []Passage {
		out := make([]Passage, len(texts))
		for i, text := range texts {
			out[i] = Passage{Index: i, Text: text}
		}
		return out
	}

	t.Run("counts keyword occurrences", func(t *testing.T) {
		passages := passagesFrom("A death followed another death that night.")
		result := ScorePassages(passages, []string{"death"}, MatchWholeWord, 5)

		require.Len(t, result, 1)
		assert.Equal(t, 2.0, result[0].Score)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		passages := passagesFrom("DEATH came swiftly.")
		result := ScorePassages(passages, []string{"death"}, MatchWholeWord, 5)

		require.Len(t, result, 1)
	})

	t.Run("zero score passages are excluded", func(t *testing.T) {
		passages := passagesFrom(
			"A quiet morning in the village.",
			"The battle began at dawn.",
		)
		result := ScorePassages(passages, []string{"battle"}, MatchWholeWord, 5)

		require.Len(t, result, 1)
		assert.Equal(t, 1, result[0].Index)
	})

	t.Run("no lexicon word present yields empty result", func(t *testing.T) {
		passages := passagesFrom("Nothing dramatic happens here.")
		result := ScorePassages(passages, []string{"war", "betrayal"}, MatchWholeWord, 5)

		assert.Empty(t, result)
	})

	t.Run("higher scores rank first", func(t *testing.T) {
		passages := passagesFrom(
			"One murder occurred.",
			"A murder, another murder, and a third murder.",
		)
		result := ScorePassages(passages, []string{"murder"}, MatchWholeWord, 5)

		require.Len(t, result, 2)
		assert.Equal(t, 1, result[0].Index)
		assert.Equal(t, 3.0, result[0].Score)
	})

	t.Run("score ties break on passage order", func(t *testing.T) {
		passages := passagesFrom(
			"The secret was out.",
			"Another secret emerged.",
		)
		result := ScorePassages(passages, []string{"secret"}, MatchWholeWord, 5)

		require.Len(t, result, 2)
		assert.Equal(t, 0, result[0].Index)
		assert.Equal(t, 1, result[1].Index)
	})

	t.Run("truncates to max", func(t *testing.T) {
		passages := passagesFrom(
			"A fight broke out.",
			"Another fight broke out.",
			"A third fight broke out.",
		)
		result := ScorePassages(passages, []string{"fight"}, MatchWholeWord, 2)

		assert.Len(t, result, 2)
	})

	t.Run("whole-word mode ignores embedded matches", func(t *testing.T) {
		passages := passagesFrom("The killdeer is a shorebird.")

		assert.Empty(t, ScorePassages(passages, []string{"kill"}, MatchWholeWord, 5))
		assert.Len(t, ScorePassages(passages, []string{"kill"}, MatchSubstring, 5), 1)
	})

	t.Run("input passages keep zero scores", func(t *testing.T) {
		passages := passagesFrom("A death occurred.")
		ScorePassages(passages, []string{"death"}, MatchWholeWord, 5)

		assert.Equal(t, 0.0, passages[0].Score)
	})
}

func TestCountWordMatches(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		word  string
		count int
	}{
		{"simple match", "the first day", "first", 1},
		{"start of text", "first light", "first", 1},
		{"end of text", "she came first", "first", 1},
		{"embedded is not a match", "firstly and headfirst", "first", 0},
		{"punctuation bounds", "at first, then later", "first", 1},
		{"multiple occurrences", "first things first", "first", 2},
		{"no occurrence", "second things second", "first", 0},
		{"multiword phrase", "she met jane austen today", "jane austen", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.count, countWordMatches(tt.text, tt.word))
		})
	}
}
