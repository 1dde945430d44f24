package tweetnlp

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTweets(t *testing.T) {
	input := `{"text": "Great day :)"}

{"text": "", "id": 7}
{"text": "@bob thanks!"}
`
	got, err := ReadTweets(strings.NewReader(input), NewIterTokenizer())
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Great", "day", ":)"},
		{},
		{"@bob", "thanks", "!"},
	}, got)
}

func TestReadTweetsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing text", `{"id": 1}`},
		{"not json", `hello`},
		{"wrong type", `{"text": 5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTweets(strings.NewReader(tt.input), NewIterTokenizer())
			assert.ErrorIs(t, err, ErrMalformedExample)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestReadLabeledExamples(t *testing.T) {
	input := `{"label": "Positive", "tokens": ["so", "happy"]}
{"label": "Negative", "text": "so sad"}
{"label": "Negative", "tokens": []}
`
	got, err := ReadLabeledExamples(strings.NewReader(input), NewIterTokenizer())
	require.NoError(t, err)
	assert.Equal(t, []LabeledTokens{
		{Tokens: []string{"so", "happy"}, Label: Positive},
		{Tokens: []string{"so", "sad"}, Label: Negative},
		{Tokens: []string{}, Label: Negative},
	}, got)
}

func TestReadLabeledExamplesMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing label", `{"tokens": ["a"]}`},
		{"unknown label", `{"label": "Neutral", "tokens": ["a"]}`},
		{"no body", `{"label": "Positive"}`},
		{"second line", "{\"label\": \"Positive\", \"tokens\": [\"a\"]}\n{\"label\": \"positive\", \"tokens\": [\"b\"]}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadLabeledExamples(strings.NewReader(tt.input), NewIterTokenizer())
			assert.ErrorIs(t, err, ErrMalformedExample)
		})
	}
}

func TestDefaultCorpus(t *testing.T) {
	corpus, err := DefaultCorpus(NewIterTokenizer())
	require.NoError(t, err)
	assert.Len(t, corpus.Positive, 40)
	assert.Len(t, corpus.Negative, 40)

	rows := corpus.Rows()
	require.Len(t, rows, 80)
	assert.Equal(t, Positive, rows[0].Label)
	assert.Equal(t, Negative, rows[79].Label)
}

func TestLoadCorpusFS(t *testing.T) {
	fsys := fstest.MapFS{
		"pos.json":   {Data: []byte(`{"text": "yay"}` + "\n")},
		"neg.json":   {Data: []byte(`{"text": "boo"}` + "\n")},
		"empty.json": {Data: []byte("\n\n")},
	}

	corpus, err := LoadCorpusFS(fsys, "pos.json", "neg.json", NewIterTokenizer())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"yay"}}, corpus.Positive)
	assert.Equal(t, [][]string{{"boo"}}, corpus.Negative)

	_, err = LoadCorpusFS(fsys, "pos.json", "empty.json", NewIterTokenizer())
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = LoadCorpusFS(fsys, "missing.json", "neg.json", NewIterTokenizer())
	assert.Error(t, err)
}
