package tweetnlp

import "errors"

var (
	// ErrEmptyCorpus is returned when a class has no training examples.
	ErrEmptyCorpus = errors.New("empty training corpus")

	// ErrMalformedExample is returned for corpus rows that cannot be turned
	// into a labeled example.
	ErrMalformedExample = errors.New("malformed training example")

	// ErrUnsupportedLanguage is returned when no stopword list or stemmer
	// exists for the requested language.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
