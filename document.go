package tweetnlp

import (
	"context"
	"time"
)

// A DocOpt represents a setting that changes the document creation process.
//
// For example, it might disable sentence segmentation:
//
//	doc, err := tweetnlp.NewDocument("...", tweetnlp.WithSegmentation(false))
type DocOpt func(doc *Document, opts *DocOpts)

// DocOpts controls the Document creation process:
type DocOpts struct {
	Segment   bool            // If true, include segmentation
	Tag       bool            // If true, include POS tagging
	Tokenizer Tokenizer       // Tokenizer to use
	Tagger    Tagger          // Tagger to use
	Context   context.Context // Context for cancellation and timeouts
	Timeout   time.Duration   // Processing timeout
}

// UsingTokenizer specifies the Tokenizer to use.
func UsingTokenizer(include Tokenizer) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Tokenizer = include
	}
}

// UsingTagger specifies the Tagger to use.
func UsingTagger(include Tagger) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Tagger = include
	}
}

// WithTagging can enable (the default) or disable POS tagging.
func WithTagging(include bool) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Tag = include
	}
}

// WithSegmentation can enable (the default) or disable sentence segmentation.
func WithSegmentation(include bool) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Segment = include
	}
}

// WithContext sets the context for document processing
func WithContext(ctx context.Context) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Context = ctx
	}
}

// WithTimeout sets a timeout for document processing
func WithTimeout(timeout time.Duration) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Timeout = timeout
	}
}

// A Document represents a parsed post.
type Document struct {
	Text string

	sentences []Sentence
	tokens    []*Token
}

// Tokens returns `doc`'s tokens.
func (doc *Document) Tokens() []Token {
	tokens := make([]Token, 0, len(doc.tokens))
	for _, tok := range doc.tokens {
		tokens = append(tokens, *tok)
	}
	return tokens
}

// Sentences returns `doc`'s sentences.
func (doc *Document) Sentences() []Sentence {
	return doc.sentences
}

// NewDocument creates a Document according to the user-specified options.
// Without UsingTokenizer it uses NewWordTokenizer; without UsingTagger it
// uses NewRuleTagger.
//
// For example,
//
//	doc, err := tweetnlp.NewDocument("...")
func NewDocument(text string, opts ...DocOpt) (*Document, error) {
	doc := Document{Text: text}

	base := DocOpts{
		Segment: true,
		Tag:     true,
		Context: context.Background(),
		Timeout: 30 * time.Second,
	}
	for _, applyOpt := range opts {
		applyOpt(&doc, &base)
	}

	ctx := base.Context
	if base.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, base.Timeout)
		defer cancel()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if base.Segment {
		segmenter, err := newPunktSentenceTokenizer()
		if err != nil {
			return nil, err
		}
		doc.sentences = segmenter.segment(text)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	tokenizer := base.Tokenizer
	if tokenizer == nil {
		var err error
		if tokenizer, err = NewWordTokenizer(); err != nil {
			return nil, err
		}
	}
	doc.tokens = tokenizer.Tokenize(text)

	if base.Tag {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		tagger := base.Tagger
		if tagger == nil {
			tagger = NewRuleTagger()
		}
		doc.tokens = tagger.Tag(doc.tokens)
	}

	return &doc, nil
}
