package tweetnlp

import (
	"sort"
	"sync"
)

// A Token represents an individual token of text such as a word or punctuation
// symbol.
type Token struct {
	Tag   string // The token's part-of-speech tag.
	Text  string // The token's actual content.
	Start int    // Start position in original text
	End   int    // End position in original text
}

// TokenPool manages a pool of Token objects to reduce GC pressure
type TokenPool struct {
	pool sync.Pool
}

// NewTokenPool creates a new token pool
func NewTokenPool() *TokenPool {
	return &TokenPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Token{}
			},
		},
	}
}

// Get retrieves a token from the pool
func (tp *TokenPool) Get() *Token {
	return tp.pool.Get().(*Token)
}

// Put returns a token to the pool
func (tp *TokenPool) Put(token *Token) {
	token.Tag = ""
	token.Text = ""
	token.Start = 0
	token.End = 0
	tp.pool.Put(token)
}

// A TokenReleaser takes back tokens produced by its Tokenize once the
// caller no longer uses them.
type TokenReleaser interface {
	Release(tokens []*Token)
}

// releaseTokens hands tokens back to tok when it pools them.
func releaseTokens(tok Tokenizer, tokens []*Token) {
	if r, ok := tok.(TokenReleaser); ok {
		r.Release(tokens)
	}
}

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text  string // The sentence's text.
	Start int    // Start position in original text
	End   int    // End position in original text
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// Label is a sentiment class assigned by the classifier.
type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
)

// Valid reports whether l is one of the labels the trainer accepts.
func (l Label) Valid() bool {
	return l == Positive || l == Negative
}

// FeatureMap is a presence-only bag of words: every key maps to true.
type FeatureMap map[string]bool

// Keys returns the feature names in sorted order.
func (fm FeatureMap) Keys() []string {
	keys := make([]string, 0, len(fm))
	for k := range fm {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// A LabeledExample pairs a feature map with its known label.
type LabeledExample struct {
	Features FeatureMap
	Label    Label
}

// WordClass is the coarse part of speech used to pick lemmatization rules.
type WordClass string

const (
	Noun      WordClass = "n"
	Verb      WordClass = "v"
	Adjective WordClass = "a"
)
