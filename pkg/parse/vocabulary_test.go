package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabula/pkg/parse"
	"fabula/pkg/schema"
)

func TestVocabularyRecords(t *testing.T) {
	in := `Word: orbit
Definition: The curved path of an object around a star or planet
Example: The comet traced a long orbit around the sun.
Part of Speech: noun

Word: gleam
Definition: To shine softly
Example: Ice crystals gleamed in the dark.
Part of Speech: verb`

	got := parse.Vocabulary(in)
	require.Len(t, got, 2)
	assert.Equal(t, schema.VocabularyEntry{
		Word:         "orbit",
		Definition:   "The curved path of an object around a star or planet",
		Example:      "The comet traced a long orbit around the sun.",
		PartOfSpeech: "noun",
	}, got[0])
	assert.Equal(t, "gleam", got[1].Word, "trailing record without a blank line must be flushed")
	assert.Equal(t, "verb", got[1].PartOfSpeech)
}

func TestVocabularyWordMarkerClosesOpenRecord(t *testing.T) {
	in := "Word: first\nDefinition: one\nWord: second\nDefinition: two"

	got := parse.Vocabulary(in)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Word)
	assert.Equal(t, "one", got[0].Definition)
	assert.Equal(t, "second", got[1].Word)
	assert.Equal(t, "two", got[1].Definition)
}

func TestVocabularyBlankLineClosesRecord(t *testing.T) {
	in := "Word: first\n\nDefinition: orphaned"

	got := parse.Vocabulary(in)
	require.Len(t, got, 1)
	assert.Equal(t, "first", got[0].Word)
	assert.Empty(t, got[0].Definition, "fields after a blank line do not attach to the closed record")
}

func TestVocabularyIgnoresFieldsBeforeFirstWord(t *testing.T) {
	in := "Definition: stray\nExample: noise\nWord: apple"

	got := parse.Vocabulary(in)
	require.Len(t, got, 1)
	assert.Equal(t, schema.VocabularyEntry{Word: "apple"}, got[0])
}

func TestVocabularyEmptyInput(t *testing.T) {
	assert.Empty(t, parse.Vocabulary(""))
	assert.Empty(t, parse.Vocabulary("\n\n\n"))
}
