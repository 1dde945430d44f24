package tweetnlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMorphyLemmatizer(t *testing.T) {
	tests := []struct {
		word     string
		class    WordClass
		expected string
	}{
		{"days", Noun, "day"},
		{"puppies", Noun, "puppy"},
		{"boxes", Noun, "box"},
		{"churches", Noun, "church"},
		{"children", Noun, "child"},
		{"glasses", Noun, "glass"},
		{"bus", Noun, "bus"},
		{"news", Noun, "news"},
		{"is", Verb, "be"},
		{"was", Verb, "be"},
		{"loving", Verb, "love"},
		{"running", Verb, "run"},
		{"walked", Verb, "walk"},
		{"hoped", Verb, "hope"},
		{"needs", Verb, "need"},
		{"need", Verb, "need"},
		{"agreed", Verb, "agree"},
		{"went", Verb, "go"},
		{"christmas", Noun, "christmas"},
		{"Xmas", Noun, "xmas"},
		{"ideas", Noun, "idea"},
		{"writing", Verb, "write"},
		{"smiled", Verb, "smile"},
		{"sharing", Verb, "share"},
		{"stopping", Verb, "stop"},
		{"working", Verb, "work"},
		{"fearing", Verb, "fear"},
		{"snowing", Verb, "snow"},
		{"happier", Adjective, "happy"},
		{"bigger", Adjective, "big"},
		{"nicer", Adjective, "nice"},
		{"best", Adjective, "good"},
		{"worse", Adjective, "bad"},
		{"love", Adjective, "love"},
		{"", Noun, ""},
	}

	lem := NewMorphyLemmatizer()
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := lem.Lemmatize(tt.word, tt.class)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMorphyLemmatizerWithLexicon(t *testing.T) {
	lex := LexiconFunc(func(word string, class WordClass) bool {
		switch class {
		case Noun:
			return word == "cat" || word == "ax" || word == "axe"
		case Verb:
			return word == "bake"
		}
		return false
	})
	lem := NewMorphyLemmatizer(UsingLexicon(lex))

	tests := []struct {
		word     string
		class    WordClass
		expected string
	}{
		{"cats", Noun, "cat"},
		{"axes", Noun, "ax"},
		{"baked", Verb, "bake"},
		{"baking", Verb, "bake"},
		{"blorps", Noun, "blorps"},
		{"children", Noun, "child"},
	}
	for _, tt := range tests {
		got, err := lem.Lemmatize(tt.word, tt.class)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, tt.word)
	}
}

func TestSnowballLemmatizer(t *testing.T) {
	lem, err := NewSnowballLemmatizer("en")
	require.NoError(t, err)

	for word, expected := range map[string]string{
		"running": "run",
		"puppies": "puppi",
		"":        "",
	} {
		got, err := lem.Lemmatize(word, Noun)
		require.NoError(t, err)
		assert.Equal(t, expected, got, word)
	}

	_, err = NewSnowballLemmatizer("klingon")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}
