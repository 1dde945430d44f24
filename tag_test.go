package tweetnlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tags(tokens []*Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Tag
	}
	return out
}

func TestRuleTagger(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		expected []string
	}{
		{"pronoun verb", []string{"I", "love", "this", "great", "day"}, []string{"PRP", "VBP", "DT", "JJ", "NN"}},
		{"third person", []string{"He", "loves", "it"}, []string{"PRP", "VBZ", "PRP"}},
		{"perfect", []string{"She", "has", "visited"}, []string{"PRP", "VBZ", "VBN"}},
		{"infinitive", []string{"want", "to", "cry"}, []string{"VB", "TO", "VB"}},
		{"nominal after determiner", []string{"a", "great", "hate"}, []string{"DT", "JJ", "NN"}},
		{"progressive", []string{"we", "are", "playing"}, []string{"PRP", "VBP", "VBG"}},
		{"adverb", []string{"really", "slowly"}, []string{"RB", "RB"}},
		{"twitter", []string{"@bob", "#fun", ":)", "http://t.co/x"}, []string{"NN", "NNP", "UH", "NN"}},
		{"punctuation and numbers", []string{"42", ",", "!", "(", ")"}, []string{"CD", ",", ".", "(", ")"}},
		{"proper nouns", []string{"visited", "Rome", "and", "the", "Alps"}, []string{"VBD", "NNP", "CC", "DT", "NNPS"}},
		{"plural noun", []string{"the", "dogs"}, []string{"DT", "NNS"}},
	}

	tagger := NewRuleTagger()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tags(tagger.Tag(words(tt.words...))))
		})
	}
}

func TestRuleTaggerSentenceStart(t *testing.T) {
	tagger := NewRuleTagger()
	got := tags(tagger.Tag(words("Sunny", "day", ".", "Rainy", "night")))
	assert.Equal(t, []string{"JJ", "NN", ".", "JJ", "NN"}, got)
}

func TestRuleTaggerEmpty(t *testing.T) {
	assert.Empty(t, NewRuleTagger().Tag(nil))
}
