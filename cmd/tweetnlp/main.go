// Command tweetnlp labels the sentiment of posts read one per line from
// files or standard input.
//
//	tweetnlp [-config path] [-format tsv|json] [-analyzer bayes|polarity] [file...]
//
// The bayes analyzer trains a Naive Bayes model and prints Positive or
// Negative. The polarity analyzer needs no training and prints 1, 0 or -1
// from the VADER lexicon.
//
// Lines holding a JSON object are read through its "text" field; any other
// line is taken as the post itself.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tsawler/tweetnlp"
	"github.com/tsawler/tweetnlp/internal/config"
)

type output struct {
	Label         tweetnlp.Label             `json:"label,omitempty"`
	Text          string                     `json:"text"`
	Probabilities map[tweetnlp.Label]float64 `json:"probabilities,omitempty"`
	Polarity      *int                       `json:"polarity,omitempty"`
}

// analyzeFunc labels one post.
type analyzeFunc func(text string) (output, error)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", config.GetConfigPath(), "path to a YAML config file")
	format := flag.String("format", "tsv", "output format: tsv or json")
	analyzerName := flag.String("analyzer", "bayes", "sentiment analyzer: bayes or polarity")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tweetnlp: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if *format != "tsv" && *format != "json" {
		slog.Error("unknown output format", "format", *format)
		os.Exit(2)
	}

	analyze, err := newAnalyzer(*analyzerName, cfg, logger)
	if err != nil {
		slog.Error("failed to build sentiment analyzer", "analyzer", *analyzerName, "error", err)
		os.Exit(1)
	}

	counts := map[string]int{}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	process := func(name string, r io.Reader) error {
		return eachPost(r, func(line int, text string) error {
			out, err := analyze(text)
			if err != nil {
				return fmt.Errorf("%s:%d: %w", name, line, err)
			}
			counts[out.key()]++
			return writeResult(w, *format, out)
		})
	}

	if flag.NArg() == 0 {
		err = process("stdin", os.Stdin)
	} else {
		for _, path := range flag.Args() {
			if err = processFile(path, process); err != nil {
				break
			}
		}
	}
	if err != nil {
		w.Flush()
		slog.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	slog.Info("analysis complete", "counts", counts)
}

// newAnalyzer returns the analyzer selected by name.
func newAnalyzer(name string, cfg *config.Config, logger *slog.Logger) (analyzeFunc, error) {
	switch name {
	case "bayes":
		proc, err := newProcessor(cfg, logger)
		if err != nil {
			return nil, err
		}
		metrics := proc.Metrics()
		logger.Info("sentiment processor ready",
			"examples", metrics.Examples,
			"vocabulary", metrics.VocabularySize,
			"duration", metrics.TrainingTime)
		return func(text string) (output, error) {
			res, err := proc.Analyze(text)
			if err != nil {
				return output{}, err
			}
			return output{Label: res.Label, Text: text, Probabilities: res.Probabilities}, nil
		}, nil
	case "polarity":
		pa := tweetnlp.NewPolarityAnalyzer()
		return func(text string) (output, error) {
			polarity := pa.Polarity(text)
			return output{Text: text, Polarity: &polarity}, nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown analyzer %q", name)
	}
}

func (o output) key() string {
	if o.Polarity != nil {
		return strconv.Itoa(*o.Polarity)
	}
	return string(o.Label)
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func newProcessor(cfg *config.Config, logger *slog.Logger) (*tweetnlp.Processor, error) {
	tok, err := tweetnlp.NewWordTokenizer()
	if err != nil {
		return nil, err
	}

	training := tweetnlp.DefaultTrainingConfig()
	if cfg.Seed != nil {
		training.Seed = *cfg.Seed
	}
	training.ValidationSplit = cfg.ValidationSplit
	training.Logger = logger

	opts := []tweetnlp.ProcessorOption{
		tweetnlp.WithLanguage(cfg.Language),
		tweetnlp.WithTokenizer(tok),
		tweetnlp.WithLogger(logger),
		tweetnlp.WithTrainingConfig(training),
	}

	switch cfg.Lemmatizer {
	case "snowball":
		lem, err := tweetnlp.NewSnowballLemmatizer(cfg.Language)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tweetnlp.WithLemmatizer(lem))
	default:
		if cfg.LexiconPath != "" {
			lex, err := tweetnlp.LoadWordLexicon(cfg.LexiconPath, cfg.Language)
			if err != nil {
				return nil, err
			}
			slog.Debug("lexicon loaded", "path", cfg.LexiconPath, "entries", lex.Len())
			opts = append(opts, tweetnlp.WithLemmatizer(tweetnlp.NewMorphyLemmatizer(tweetnlp.UsingLexicon(lex))))
		}
	}

	if cfg.HasCorpus() {
		corpus, err := tweetnlp.LoadCorpus(cfg.PositiveCorpus, cfg.NegativeCorpus, tok)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tweetnlp.WithCorpus(corpus))
	}

	return tweetnlp.NewProcessor(opts...)
}

func processFile(path string, process func(string, io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return process(path, f)
}

// eachPost calls fn for every non-blank line of r.
func eachPost(r io.Reader, fn func(line int, text string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "{") {
			var row struct {
				Text string `json:"text"`
			}
			if err := json.Unmarshal([]byte(text), &row); err == nil {
				text = row.Text
			}
		}
		if err := fn(line, text); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func writeResult(w io.Writer, format string, out output) error {
	if format == "json" {
		return json.NewEncoder(w).Encode(out)
	}
	_, err := fmt.Fprintf(w, "%s\t%s\n", out.key(), strings.ReplaceAll(out.Text, "\t", " "))
	return err
}
