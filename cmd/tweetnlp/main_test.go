package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/tweetnlp"
	"github.com/tsawler/tweetnlp/internal/config"
)

func TestEachPost(t *testing.T) {
	input := "first post\n\n{\"text\": \"from json\"}\n{not json}\n  spaced  \n"

	var lines []int
	var posts []string
	err := eachPost(strings.NewReader(input), func(line int, text string) error {
		lines = append(lines, line)
		posts = append(posts, text)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 5}, lines)
	assert.Equal(t, []string{"first post", "from json", "{not json}", "spaced"}, posts)
}

func TestEachPostStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := eachPost(strings.NewReader("a\nb\n"), func(int, string) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestWriteResult(t *testing.T) {
	out := output{
		Label:         tweetnlp.Positive,
		Text:          "so\thappy",
		Probabilities: map[tweetnlp.Label]float64{tweetnlp.Positive: 0.75, tweetnlp.Negative: 0.25},
	}

	var tsv bytes.Buffer
	require.NoError(t, writeResult(&tsv, "tsv", out))
	assert.Equal(t, "Positive\tso happy\n", tsv.String())

	var js bytes.Buffer
	require.NoError(t, writeResult(&js, "json", out))
	assert.JSONEq(t, `{"label":"Positive","text":"so\thappy","probabilities":{"Positive":0.75,"Negative":0.25}}`, js.String())
}

func TestWriteResultPolarity(t *testing.T) {
	polarity := -1
	out := output{Text: "so sad", Polarity: &polarity}

	var tsv bytes.Buffer
	require.NoError(t, writeResult(&tsv, "tsv", out))
	assert.Equal(t, "-1\tso sad\n", tsv.String())

	var js bytes.Buffer
	require.NoError(t, writeResult(&js, "json", out))
	assert.JSONEq(t, `{"text":"so sad","polarity":-1}`, js.String())

	neutral := 0
	js.Reset()
	require.NoError(t, writeResult(&js, "json", output{Text: "table", Polarity: &neutral}))
	assert.JSONEq(t, `{"text":"table","polarity":0}`, js.String())
}

func TestNewAnalyzerPolarity(t *testing.T) {
	analyze, err := newAnalyzer("polarity", &config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	tests := []struct {
		text     string
		expected int
	}{
		{"@bob I love this! http://t.co/x", 1},
		{"what an awful day", -1},
		{"the bus leaves at noon", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			out, err := analyze(tt.text)
			require.NoError(t, err)
			require.NotNil(t, out.Polarity)
			assert.Equal(t, tt.expected, *out.Polarity)
			assert.Equal(t, tt.text, out.Text)
			assert.Empty(t, out.Label)
		})
	}
}

func TestNewAnalyzerUnknown(t *testing.T) {
	analyze, err := newAnalyzer("textblob", &config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Nil(t, analyze)
	assert.ErrorContains(t, err, "unknown analyzer")
}
