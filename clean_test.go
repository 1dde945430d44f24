package tweetnlp

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(texts ...string) []*Token {
	tokens := make([]*Token, len(texts))
	for i, text := range texts {
		tokens[i] = &Token{Text: text}
	}
	return tokens
}

func TestCleanDefaultsToAdjective(t *testing.T) {
	stop := NewStopWords("this")
	got, err := Clean(words("love", "this", "great", "day"), stop, NewMorphyLemmatizer())
	require.NoError(t, err)
	assert.Equal(t, []string{"love", "great", "day"}, got)
}

func TestCleanStripsURLsAndMentions(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expected []string
	}{
		{"bare url", []string{"http://example.com/x"}, []string{}},
		{"secure url", []string{"https://t.co/AbC123"}, []string{}},
		{"mention", []string{"@someuser"}, []string{}},
		{"mention glued to word", []string{"thanks@someuser"}, []string{"thanks"}},
		{"mixed", []string{"@bob", "sunny", "http://example.com/x", "beach"}, []string{"sunny", "beach"}},
		{"invalid utf-8", []string{string([]byte{0xff, 0xfe}), "sunny"}, []string{"sunny"}},
		{"replacement characters", []string{"\uFFFD\uFFFD", "beach"}, []string{"beach"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clean(words(tt.tokens...), NewStopWords(), NewMorphyLemmatizer())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCleanUsesTagForWordClass(t *testing.T) {
	tokens := []*Token{
		{Text: "Puppies", Tag: "NNS"},
		{Text: "running", Tag: "VBG"},
		{Text: "happier", Tag: "JJR"},
		{Text: "walked", Tag: "RB"},
	}
	got, err := Clean(tokens, NewStopWords(), NewMorphyLemmatizer())
	require.NoError(t, err)
	// "walked" is not a verb by tag, so the adjective rules leave it alone.
	assert.Equal(t, []string{"puppy", "run", "happy", "walked"}, got)
}

func TestCleanInvariants(t *testing.T) {
	stop := NewStopWords("the", "a", "is", "be")
	texts := []string{
		"The", "quick", "!!!", "...", "", "A", "is", ":)", "—", "@x",
		"http://example.com", "Dogs", "(", "be", "ok?", "#tag",
	}
	got, err := Clean(words(texts...), stop, NewMorphyLemmatizer())
	require.NoError(t, err)

	for _, w := range got {
		assert.NotEmpty(t, w)
		assert.False(t, isPunctuation(w), "punctuation-only entry %q", w)
		assert.False(t, stop.Contains(w), "stopword %q", w)
		assert.Equal(t, strings.ToLower(w), w)
	}
}

type failingLemmatizer struct{ err error }

func (f failingLemmatizer) Lemmatize(string, WordClass) (string, error) {
	return "", f.err
}

func TestIsUndecodable(t *testing.T) {
	assert.True(t, isUndecodable(string([]byte{0xff})))
	assert.True(t, isUndecodable("\uFFFD"))
	assert.False(t, isUndecodable(""))
	assert.False(t, isUndecodable("caf\uFFFD"))
	assert.False(t, isUndecodable("beach"))
}

func TestCleanPropagatesLemmatizerError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Clean(words("hello"), NewStopWords(), failingLemmatizer{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestWordClassOf(t *testing.T) {
	tests := []struct {
		tag      string
		expected WordClass
	}{
		{"NN", Noun},
		{"NNS", Noun},
		{"NNP", Noun},
		{"VB", Verb},
		{"VBD", Verb},
		{"VBG", Verb},
		{"JJ", Adjective},
		{"RB", Adjective},
		{"DT", Adjective},
		{"", Adjective},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, WordClassOf(tt.tag), "tag %q", tt.tag)
	}
}

func TestIsPunctuation(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"!", true},
		{"!!!", true},
		{"...", true},
		{":)", true},
		{"—", true},
		{"«»", true},
		{"a!", false},
		{"it's", false},
		{"", false},
		{"42", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, isPunctuation(tt.text), "text %q", tt.text)
	}
}
