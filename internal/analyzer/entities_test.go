package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractFromText(t *testing.T, text string, commonWords []string, max int) []Entity {
	t.Helper()
	_, tokens := Segment(text, DefaultMaxPassageLength)
	return ExtractEntities(tokens, NewCommonWordFilter(commonWords), max)
}

func entityNames(entities []Entity) []string {
	names := make([]string, len(entities))
	for i, e := range entities {
		names[i] = e.Name
	}
	return names
}

func TestExtractEntities(t *testing.T) {
	t.Run("mid-sentence capitals qualify", func(t *testing.T) {
		entities := extractFromText(t, "They met Raskolnikov at the market.", nil, 10)

		assert.Equal(t, []string{"Raskolnikov"}, entityNames(entities))
	})

	t.Run("sentence-initial common words are rejected", func(t *testing.T) {
		entities := extractFromText(t, "The market was empty. It stayed empty.", nil, 10)

		assert.Empty(t, entities)
	})

	t.Run("sentence-initial proper nouns qualify", func(t *testing.T) {
		entities := extractFromText(t, "Sonya wept quietly.", nil, 10)

		assert.Equal(t, []string{"Sonya"}, entityNames(entities))
	})

	t.Run("consecutive capitals merge into phrases", func(t *testing.T) {
		entities := extractFromText(t, "He spoke with Jane Austen about novels.", nil, 10)

		assert.Equal(t, []string{"Jane Austen"}, entityNames(entities))
	})

	t.Run("phrases cap at three words", func(t *testing.T) {
		entities := extractFromText(t, "She cited Anna Andreyevna Gorbatov Petrova yesterday.", nil, 10)

		names := entityNames(entities)
		require.Len(t, names, 2)
		assert.Equal(t, "Anna Andreyevna Gorbatov", names[0])
		assert.Equal(t, "Petrova", names[1])
	})

	t.Run("connector words join capitalized runs", func(t *testing.T) {
		entities := extractFromText(t, "She read Pride and Prejudice twice.", nil, 10)

		assert.Contains(t, entityNames(entities), "Pride and Prejudice")
	})

	t.Run("trailing connector is not absorbed", func(t *testing.T) {
		entities := extractFromText(t, "He saw Boris and the carriage left.", nil, 10)

		assert.Equal(t, []string{"Boris"}, entityNames(entities))
	})

	t.Run("merge stops at sentence boundary", func(t *testing.T) {
		entities := extractFromText(t, "They feared Smerdyakov. Ivan did not.", nil, 10)

		names := entityNames(entities)
		assert.Contains(t, names, "Smerdyakov")
		assert.Contains(t, names, "Ivan")
		assert.NotContains(t, names, "Smerdyakov Ivan")
	})

	t.Run("aggregation is case-insensitive on the phrase", func(t *testing.T) {
		entities := extractFromText(t, "DARCY arrived late. Darcy left early.", nil, 10)

		require.Len(t, entities, 1)
		assert.Equal(t, 2, entities[0].Count)
		// Display name keeps the first surface form.
		assert.Equal(t, "DARCY", entities[0].Name)
	})

	t.Run("single capital letters are never entities", func(t *testing.T) {
		entities := extractFromText(t, "and I told him everything I knew.", []string{}, 10)

		assert.Empty(t, entities)
	})

	t.Run("ranked by frequency first", func(t *testing.T) {
		text := strings.Repeat("Darcy spoke plainly. ", 5) + strings.Repeat("Bingley nodded along. ", 2)
		entities := extractFromText(t, text, nil, 10)

		require.Len(t, entities, 2)
		assert.Equal(t, "Darcy", entities[0].Name)
		assert.Equal(t, 5, entities[0].Count)
		assert.Equal(t, "Bingley", entities[1].Name)
	})

	t.Run("frequency ties break on distinct passages", func(t *testing.T) {
		// Zosima: 2 occurrences in 1 passage. Alyosha: 2 occurrences in 2.
		text := "Zosima blessed Zosima again.\n\nAlyosha listened.\n\nAlyosha prayed."
		entities := extractFromText(t, text, nil, 10)

		require.Len(t, entities, 2)
		assert.Equal(t, "Alyosha", entities[0].Name)
		assert.Equal(t, "Zosima", entities[1].Name)
	})

	t.Run("remaining ties break on first occurrence", func(t *testing.T) {
		entities := extractFromText(t, "They saw Grushenka near Mokroe village.", nil, 10)

		assert.Equal(t, []string{"Grushenka", "Mokroe"}, entityNames(entities))
	})

	t.Run("truncates to max", func(t *testing.T) {
		text := strings.Repeat("Darcy spoke. ", 100) + strings.Repeat("Bingley waved. ", 3)
		entities := extractFromText(t, text, nil, 1)

		assert.Equal(t, []string{"Darcy"}, entityNames(entities))
	})

	t.Run("no qualifying tokens yields empty list", func(t *testing.T) {
		entities := extractFromText(t, "nothing here is capitalized at all", nil, 10)

		assert.Empty(t, entities)
	})

	t.Run("every entity has positive frequency and passage spread", func(t *testing.T) {
		text := "Raskolnikov met Sonya.\n\nSonya met Porfiry Petrovich."
		entities := extractFromText(t, text, nil, 10)

		require.NotEmpty(t, entities)
		for _, e := range entities {
			assert.GreaterOrEqual(t, e.Count, 1)
			assert.GreaterOrEqual(t, len(e.Passages), 1)
		}
	})

	t.Run("concatenating a document doubles counts but keeps order", func(t *testing.T) {
		text := "Jane Austen wrote Pride and Prejudice. Jane Austen was born in Hampshire."
		single := extractFromText(t, text, []string{"was", "in", "and"}, 10)
		double := extractFromText(t, text+"\n\n"+text, []string{"was", "in", "and"}, 10)

		require.Equal(t, len(single), len(double))
		for i := range single {
			assert.Equal(t, single[i].Name, double[i].Name)
			assert.Equal(t, single[i].Count*2, double[i].Count)
		}
	})
}
