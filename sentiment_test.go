package tweetnlp

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var syntheticStopWords = NewStopWords("this", "is", "be", "a", "the", "i", "at", "what", "such")

func TestAnalyzeSentimentSynthetic(t *testing.T) {
	proc, err := NewProcessor(WithCorpus(syntheticCorpus()), WithStopWords(syntheticStopWords))
	require.NoError(t, err)

	tests := []struct {
		text     string
		expected Label
	}{
		{"this is great", Positive},
		{"this is terrible", Negative},
		{"What a GREAT crowd!", Positive},
		{"Terrible, terrible day.", Negative},
		{"", Positive},
		{"!!! ... ?", Positive},
		{"@someone http://example.com/x", Positive},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			label, err := proc.AnalyzeSentiment(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, label)
		})
	}
}

func TestAnalyzeSentimentEmptyIsMajority(t *testing.T) {
	corpus := Corpus{
		Positive: [][]string{{"sun"}, {"beach"}},
		Negative: [][]string{{"rain"}},
	}
	proc, err := NewProcessor(WithCorpus(corpus), WithStopWords(NewStopWords()))
	require.NoError(t, err)

	for _, text := range []string{"", "   ", "?!", "unseen words only"} {
		label, err := proc.AnalyzeSentiment(text)
		require.NoError(t, err)
		assert.Equal(t, Positive, label, text)
	}
}

func TestAnalyzeReturnsProbabilities(t *testing.T) {
	proc, err := NewProcessor(WithCorpus(syntheticCorpus()), WithStopWords(syntheticStopWords))
	require.NoError(t, err)

	res, err := proc.Analyze("great movie")
	require.NoError(t, err)
	assert.Equal(t, Positive, res.Label)
	require.Len(t, res.Probabilities, 2)
	assert.InDelta(t, 1.0, res.Probabilities[Positive]+res.Probabilities[Negative], 1e-9)
	assert.Greater(t, res.Probabilities[Positive], 0.5)
}

func TestAnalyzeAll(t *testing.T) {
	proc, err := NewProcessor(WithCorpus(syntheticCorpus()), WithStopWords(syntheticStopWords))
	require.NoError(t, err)

	labels, err := proc.AnalyzeAll([]string{"great song", "terrible movie"})
	require.NoError(t, err)
	assert.Equal(t, []Label{Positive, Negative}, labels)
}

func TestProcessorClean(t *testing.T) {
	proc, err := NewProcessor(WithCorpus(syntheticCorpus()), WithStopWords(syntheticStopWords))
	require.NoError(t, err)

	got, err := proc.Clean("@bob I loved the puppies at http://t.co/x !")
	require.NoError(t, err)
	assert.Equal(t, []string{"love", "puppy"}, got)
}

func TestProcessorCleanDefaultEnglishStopWords(t *testing.T) {
	proc, err := NewProcessor(WithCorpus(syntheticCorpus()))
	require.NoError(t, err)

	tests := []struct {
		text     string
		expected []string
	}{
		{"I love this", []string{"love"}},
		{"She was so happy with me", []string{"happy"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := proc.Clean(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestProcessorCleanInvalidUTF8(t *testing.T) {
	proc, err := NewProcessor(WithCorpus(syntheticCorpus()), WithStopWords(syntheticStopWords))
	require.NoError(t, err)

	got, err := proc.Clean("great " + string([]byte{0xff, 0xfe}) + " song")
	require.NoError(t, err)
	assert.Equal(t, []string{"great", "song"}, got)
}

func TestProcessorSameSeedSameLabels(t *testing.T) {
	queries := []string{"lovely morning", "awful traffic", "", "new phone", "sick and tired"}

	run := func() []Label {
		proc, err := NewProcessor(WithSeed(99), WithStopWords(NewStopWords("the", "and")))
		require.NoError(t, err)
		labels, err := proc.AnalyzeAll(queries)
		require.NoError(t, err)
		return labels
	}
	assert.Equal(t, run(), run())
}

func TestProcessorDefaultCorpus(t *testing.T) {
	proc, err := NewProcessor()
	require.NoError(t, err)

	metrics := proc.Metrics()
	assert.Equal(t, 80, metrics.Examples)
	assert.Equal(t, 40, metrics.PositiveExamples)
	assert.Equal(t, 40, metrics.NegativeExamples)
	assert.NotNil(t, proc.Model())

	label, err := proc.AnalyzeSentiment("Thank you, what a wonderful and happy day!")
	require.NoError(t, err)
	assert.Equal(t, Positive, label)

	label, err = proc.AnalyzeSentiment("Terrible service, so disappointed and sad")
	require.NoError(t, err)
	assert.Equal(t, Negative, label)
}

func TestProcessorFailsLoudly(t *testing.T) {
	boom := errors.New("lemmatizer exploded")

	tests := []struct {
		name string
		opts []ProcessorOption
		is   error
	}{
		{"unknown language", []ProcessorOption{WithLanguage("klingon")}, ErrUnsupportedLanguage},
		{"empty positive", []ProcessorOption{WithCorpus(Corpus{Negative: [][]string{{"x"}}})}, ErrEmptyCorpus},
		{"malformed row", []ProcessorOption{WithCorpus(Corpus{Positive: [][]string{nil}, Negative: [][]string{{"x"}}})}, ErrMalformedExample},
		{"lemmatizer error", []ProcessorOption{WithLemmatizer(failingLemmatizer{err: boom})}, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc, err := NewProcessor(tt.opts...)
			assert.Nil(t, proc)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestProcessorLogsLabel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	proc, err := NewProcessor(
		WithCorpus(syntheticCorpus()),
		WithStopWords(syntheticStopWords),
		WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "sentiment model trained")

	_, err = proc.AnalyzeSentiment("great")
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "label=Positive"))
}
