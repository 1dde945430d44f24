package tweetnlp

import (
	"bufio"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

//go:embed data/*.json
var sampleData embed.FS

const (
	samplePositive = "data/positive_tweets.json"
	sampleNegative = "data/negative_tweets.json"
)

// Corpus holds pre-tokenized example posts partitioned by label.
type Corpus struct {
	Positive [][]string
	Negative [][]string
}

// Rows flattens the corpus into labeled rows, positives first.
func (c Corpus) Rows() []LabeledTokens {
	rows := make([]LabeledTokens, 0, len(c.Positive)+len(c.Negative))
	for _, tokens := range c.Positive {
		rows = append(rows, LabeledTokens{Tokens: tokens, Label: Positive})
	}
	for _, tokens := range c.Negative {
		rows = append(rows, LabeledTokens{Tokens: tokens, Label: Negative})
	}
	return rows
}

// DefaultCorpus returns the small sample corpus bundled with the package,
// tokenized with tok.
func DefaultCorpus(tok Tokenizer) (Corpus, error) {
	return LoadCorpusFS(sampleData, samplePositive, sampleNegative, tok)
}

// LoadCorpusFS reads a positive and a negative tweet file from fsys.
func LoadCorpusFS(fsys fs.FS, positive, negative string, tok Tokenizer) (Corpus, error) {
	return loadCorpus(func(name string) (io.ReadCloser, error) {
		return fsys.Open(name)
	}, positive, negative, tok)
}

// LoadCorpus reads a positive and a negative tweet file from disk.
func LoadCorpus(positive, negative string, tok Tokenizer) (Corpus, error) {
	return loadCorpus(func(name string) (io.ReadCloser, error) {
		return os.Open(name)
	}, positive, negative, tok)
}

func loadCorpus(open func(string) (io.ReadCloser, error), positive, negative string, tok Tokenizer) (Corpus, error) {
	pos, err := readTweetFile(open, positive, tok)
	if err != nil {
		return Corpus{}, err
	}
	neg, err := readTweetFile(open, negative, tok)
	if err != nil {
		return Corpus{}, err
	}
	return Corpus{Positive: pos, Negative: neg}, nil
}

func readTweetFile(open func(string) (io.ReadCloser, error), name string, tok Tokenizer) ([][]string, error) {
	f, err := open(name)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", name, err)
	}
	defer f.Close()

	tweets, err := ReadTweets(f, tok)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", name, err)
	}
	if len(tweets) == 0 {
		return nil, fmt.Errorf("read corpus %s: %w", name, ErrEmptyCorpus)
	}
	return tweets, nil
}

type tweetRow struct {
	Text *string `json:"text"`
}

// ReadTweets reads JSON lines shaped like {"text": "..."} and returns the
// tokens of each post. Blank lines are skipped; a line without text is an
// error.
func ReadTweets(r io.Reader, tok Tokenizer) ([][]string, error) {
	var tweets [][]string
	err := scanJSONLines(r, func(line int, raw []byte) error {
		var row tweetRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrMalformedExample, line, err)
		}
		if row.Text == nil {
			return fmt.Errorf("%w: line %d has no text", ErrMalformedExample, line)
		}
		toks := tok.Tokenize(*row.Text)
		tweets = append(tweets, tokenTexts(toks))
		releaseTokens(tok, toks)
		return nil
	})
	return tweets, err
}

type labeledRow struct {
	Label  *string  `json:"label"`
	Tokens []string `json:"tokens"`
	Text   *string  `json:"text"`
}

// ReadLabeledExamples reads JSON lines shaped like
// {"label": "Positive", "tokens": [...]} or {"label": "Negative", "text": "..."}.
// Rows with a missing or unknown label, or with neither tokens nor text,
// are rejected.
func ReadLabeledExamples(r io.Reader, tok Tokenizer) ([]LabeledTokens, error) {
	var rows []LabeledTokens
	err := scanJSONLines(r, func(line int, raw []byte) error {
		var row labeledRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrMalformedExample, line, err)
		}
		if row.Label == nil {
			return fmt.Errorf("%w: line %d has no label", ErrMalformedExample, line)
		}
		label := Label(*row.Label)
		if !label.Valid() {
			return fmt.Errorf("%w: line %d has label %q", ErrMalformedExample, line, label)
		}

		switch {
		case row.Tokens != nil:
			rows = append(rows, LabeledTokens{Tokens: row.Tokens, Label: label})
		case row.Text != nil:
			toks := tok.Tokenize(*row.Text)
			rows = append(rows, LabeledTokens{Tokens: tokenTexts(toks), Label: label})
			releaseTokens(tok, toks)
		default:
			return fmt.Errorf("%w: line %d has neither tokens nor text", ErrMalformedExample, line)
		}
		return nil
	})
	return rows, err
}

func scanJSONLines(r io.Reader, fn func(line int, raw []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if strings.TrimSpace(string(raw)) == "" {
			continue
		}
		if err := fn(line, raw); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// tokenTexts returns the Text of every token; never nil.
func tokenTexts(tokens []*Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Text)
	}
	return out
}
