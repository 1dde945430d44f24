package tweetnlp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLexicon(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicon.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadWordLexicon(t *testing.T) {
	path := writeLexicon(t, `{
  "languages": {
    "english": {"nouns": ["cat", "Puppy", "day"], "verbs": ["bake"], "adjectives": ["sunny"]},
    "spanish": {"nouns": ["gato"]}
  }
}`)

	lex, err := LoadWordLexicon(path, "en")
	require.NoError(t, err)

	assert.True(t, lex.Contains("cat", Noun))
	assert.True(t, lex.Contains("puppy", Noun))
	assert.True(t, lex.Contains("bake", Verb))
	assert.True(t, lex.Contains("sunny", Adjective))
	assert.False(t, lex.Contains("gato", Noun))
	assert.False(t, lex.Contains("cat", Verb))

	// Built-in bases are always present.
	assert.True(t, lex.Contains("love", Verb))
	assert.True(t, lex.Contains("happy", Adjective))
	assert.Greater(t, lex.Len(), 5)
}

func TestWordLexiconDrivesLemmatizer(t *testing.T) {
	path := writeLexicon(t, `{"languages": {"english": {"nouns": ["puppy", "day"]}}}`)
	lex, err := LoadWordLexicon(path, "english")
	require.NoError(t, err)

	lem := NewMorphyLemmatizer(UsingLexicon(lex))
	tests := []struct {
		word     string
		class    WordClass
		expected string
	}{
		{"puppies", Noun, "puppy"},
		{"days", Noun, "day"},
		{"loved", Verb, "love"},
		{"happier", Adjective, "happy"},
		{"zorbs", Noun, "zorbs"},
	}
	for _, tt := range tests {
		got, err := lem.Lemmatize(tt.word, tt.class)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, tt.word)
	}
}

func TestWordLexiconAdd(t *testing.T) {
	lex := NewWordLexicon()
	assert.Zero(t, lex.Len())
	lex.Add(Noun, " Tree ", "")
	assert.True(t, lex.Contains("TREE", Noun))
	assert.Equal(t, 1, lex.Len())
}

func TestLoadWordLexiconErrors(t *testing.T) {
	_, err := LoadWordLexicon(filepath.Join(t.TempDir(), "missing.json"), "english")
	assert.Error(t, err)

	_, err = LoadWordLexicon(writeLexicon(t, `{not json`), "english")
	assert.Error(t, err)
}
