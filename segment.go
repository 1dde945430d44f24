package tweetnlp

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// punktSentenceTokenizer is an extension of the Go implementation of the Punkt
// sentence tokenizer with a few minor improvements for informal text.
type punktSentenceTokenizer struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

var (
	punktOnce    sync.Once
	punktShared  *punktSentenceTokenizer
	punktLoadErr error
)

// newPunktSentenceTokenizer returns the shared English Punkt segmenter. The
// pre-trained parameters are parsed once per process.
func newPunktSentenceTokenizer() (*punktSentenceTokenizer, error) {
	punktOnce.Do(func() {
		tok, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			punktLoadErr = fmt.Errorf("load punkt sentence tokenizer: %w", err)
			return
		}
		punktShared = &punktSentenceTokenizer{tokenizer: tok}
	})
	return punktShared, punktLoadErr
}

// segment splits text into sentences, recording each sentence's byte offset
// in text.
func (p *punktSentenceTokenizer) segment(text string) []Sentence {
	var sents []Sentence
	cursor := 0
	for _, s := range p.tokenizer.Tokenize(text) {
		body := strings.TrimSpace(s.Text)
		if body == "" {
			continue
		}
		start := cursor
		if idx := strings.Index(text[cursor:], body); idx >= 0 {
			start = cursor + idx
		}
		end := start + len(body)
		if end > len(text) {
			end = len(text)
		}
		sents = append(sents, Sentence{Text: body, Start: start, End: end})
		cursor = end
	}
	return sents
}

// wordTokenizer splits text into sentences first and then into words, the
// way a treebank word tokenizer is normally driven.
type wordTokenizer struct {
	segmenter *punktSentenceTokenizer
	words     *iterTokenizer
}

// NewWordTokenizer returns the default Tokenizer: Punkt sentence
// segmentation followed by the rule based word splitter.
func NewWordTokenizer(opts ...TokenizerOptFunc) (Tokenizer, error) {
	segmenter, err := newPunktSentenceTokenizer()
	if err != nil {
		return nil, err
	}
	return &wordTokenizer{segmenter: segmenter, words: NewIterTokenizer(opts...)}, nil
}

// Tokenize returns the word tokens of every sentence in text, with offsets
// relative to text.
func (w *wordTokenizer) Tokenize(text string) []*Token {
	var tokens []*Token
	for _, sent := range w.segmenter.segment(text) {
		for _, tok := range w.words.Tokenize(sent.Text) {
			tok.Start += sent.Start
			tok.End += sent.Start
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Release returns tokens to the word splitter's pool.
func (w *wordTokenizer) Release(tokens []*Token) {
	w.words.Release(tokens)
}
