package tweetnlp

import (
	"regexp"
	"strings"
	"sync"

	"github.com/jonreiter/govader"
)

// tweetNoiseRE matches mentions, URLs and any character that is not an
// ASCII letter, digit, space or tab.
var tweetNoiseRE = regexp.MustCompile(`(@[A-Za-z0-9]+)|([^0-9A-Za-z \t])|(\w+://\S+)`)

// PolarityScores holds the lexicon scores of one post.
type PolarityScores struct {
	Compound float64 // normalized sum of valences in [-1, 1]
	Positive float64
	Negative float64
	Neutral  float64
}

// PolarityAnalyzer rates posts with the VADER sentiment lexicon. Unlike
// Processor it needs no training corpus. It is safe for concurrent use.
type PolarityAnalyzer struct {
	sia *govader.SentimentIntensityAnalyzer
	mu  sync.Mutex
}

// NewPolarityAnalyzer returns an analyzer backed by the built-in VADER
// lexicon.
func NewPolarityAnalyzer() *PolarityAnalyzer {
	return &PolarityAnalyzer{
		sia: govader.NewSentimentIntensityAnalyzer(),
	}
}

// CleanTweet strips mentions, URLs and non-alphanumeric characters from
// text and collapses the remaining whitespace.
func (a *PolarityAnalyzer) CleanTweet(text string) string {
	return strings.Join(strings.Fields(tweetNoiseRE.ReplaceAllString(text, " ")), " ")
}

// Scores returns the lexicon scores of the cleaned text.
func (a *PolarityAnalyzer) Scores(text string) PolarityScores {
	cleaned := a.CleanTweet(text)
	if cleaned == "" {
		return PolarityScores{}
	}

	a.mu.Lock()
	s := a.sia.PolarityScores(cleaned)
	a.mu.Unlock()

	return PolarityScores{
		Compound: s.Compound,
		Positive: s.Positive,
		Negative: s.Negative,
		Neutral:  s.Neutral,
	}
}

// Polarity returns 1 when the cleaned text reads positive, -1 when it reads
// negative and 0 otherwise.
func (a *PolarityAnalyzer) Polarity(text string) int {
	compound := a.Scores(text).Compound
	switch {
	case compound > 0:
		return 1
	case compound < 0:
		return -1
	default:
		return 0
	}
}

// PolarityAll returns the polarity of every text in order.
func (a *PolarityAnalyzer) PolarityAll(texts []string) []int {
	out := make([]int, len(texts))
	for i, text := range texts {
		out[i] = a.Polarity(text)
	}
	return out
}
