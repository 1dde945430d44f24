package tweetnlp

import (
	"fmt"
	"io"
	"log/slog"
)

// Processor labels the sentiment of short posts with a Naive Bayes model
// trained once at construction. It is safe for concurrent use.
type Processor struct {
	prep    *Preprocessor
	model   *Model
	metrics TrainingMetrics
	logger  *slog.Logger
}

// Result is the outcome of analyzing one post.
type Result struct {
	Label         Label
	Probabilities map[Label]float64
}

// A ProcessorOption changes how NewProcessor builds a Processor. Later
// options override earlier ones.
type ProcessorOption func(*processorOptions)

type processorOptions struct {
	language   string
	corpus     *Corpus
	tokenizer  Tokenizer
	tagger     Tagger
	lemmatizer Lemmatizer
	stopWords  *StopWords
	logger     *slog.Logger
	training   TrainingConfig
}

// WithLanguage selects the stopword language ("english" by default).
func WithLanguage(language string) ProcessorOption {
	return func(o *processorOptions) {
		o.language = language
	}
}

// WithSeed sets the seed of the training shuffle.
func WithSeed(seed int64) ProcessorOption {
	return func(o *processorOptions) {
		o.training.Seed = seed
	}
}

// WithCorpus trains on corpus instead of the bundled sample corpus.
func WithCorpus(corpus Corpus) ProcessorOption {
	return func(o *processorOptions) {
		o.corpus = &corpus
	}
}

// WithTokenizer sets the Tokenizer used for queries and the bundled corpus.
func WithTokenizer(tok Tokenizer) ProcessorOption {
	return func(o *processorOptions) {
		o.tokenizer = tok
	}
}

// WithTagger sets the part-of-speech Tagger.
func WithTagger(tagger Tagger) ProcessorOption {
	return func(o *processorOptions) {
		o.tagger = tagger
	}
}

// WithLemmatizer sets the Lemmatizer.
func WithLemmatizer(lem Lemmatizer) ProcessorOption {
	return func(o *processorOptions) {
		o.lemmatizer = lem
	}
}

// WithStopWords uses stop instead of loading the list for the language.
func WithStopWords(stop StopWords) ProcessorOption {
	return func(o *processorOptions) {
		o.stopWords = &stop
	}
}

// WithLogger sets the logger for training and classification records.
func WithLogger(logger *slog.Logger) ProcessorOption {
	return func(o *processorOptions) {
		o.logger = logger
	}
}

// WithTrainingConfig replaces the whole training configuration, including
// its seed.
func WithTrainingConfig(config TrainingConfig) ProcessorOption {
	return func(o *processorOptions) {
		o.training = config
	}
}

// NewProcessor loads the stopwords and corpus, then trains the model. It is
// expensive and meant to run once at startup. Any load or training failure
// is returned and no Processor is built.
func NewProcessor(opts ...ProcessorOption) (*Processor, error) {
	o := processorOptions{
		language: DefaultLanguage,
		training: DefaultTrainingConfig(),
	}
	o.training.Logger = nil
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.training.Logger == nil {
		o.training.Logger = o.logger
	}

	var stop StopWords
	if o.stopWords != nil {
		stop = *o.stopWords
	} else {
		var err error
		if stop, err = LoadStopWords(o.language); err != nil {
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
	}

	prep, err := NewPreprocessor(stop)
	if err != nil {
		return nil, err
	}
	if o.tokenizer != nil {
		prep.Tokenizer = o.tokenizer
	}
	if o.tagger != nil {
		prep.Tagger = o.tagger
	}
	if o.lemmatizer != nil {
		prep.Lemmatizer = o.lemmatizer
	}

	var corpus Corpus
	if o.corpus != nil {
		corpus = *o.corpus
	} else if corpus, err = DefaultCorpus(prep.Tokenizer); err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	model, metrics, err := NewTrainer(o.training, prep).Train(corpus.Positive, corpus.Negative)
	if err != nil {
		return nil, fmt.Errorf("train sentiment model: %w", err)
	}

	return &Processor{
		prep:    prep,
		model:   model,
		metrics: metrics,
		logger:  o.logger,
	}, nil
}

// AnalyzeSentiment returns Positive or Negative for text. Text that cleans
// to nothing gets the majority label of the training corpus. Only
// lemmatizer errors are returned.
func (p *Processor) AnalyzeSentiment(text string) (Label, error) {
	features, err := p.prep.TextFeatures(text)
	if err != nil {
		return "", err
	}
	label := p.model.Classify(features)
	p.logger.Debug("sentiment analyzed", "label", label, "features", len(features))
	return label, nil
}

// Analyze returns the label of text together with the posterior
// probability of every label.
func (p *Processor) Analyze(text string) (Result, error) {
	features, err := p.prep.TextFeatures(text)
	if err != nil {
		return Result{}, err
	}
	label := p.model.Classify(features)
	p.logger.Debug("sentiment analyzed", "label", label, "features", len(features))
	return Result{Label: label, Probabilities: p.model.ProbClassify(features)}, nil
}

// AnalyzeAll labels every text in order.
func (p *Processor) AnalyzeAll(texts []string) ([]Label, error) {
	labels := make([]Label, len(texts))
	for i, text := range texts {
		label, err := p.AnalyzeSentiment(text)
		if err != nil {
			return nil, fmt.Errorf("text %d: %w", i, err)
		}
		labels[i] = label
	}
	return labels, nil
}

// Clean returns the cleaned tokens of text as seen by the classifier.
func (p *Processor) Clean(text string) ([]string, error) {
	return p.prep.CleanText(text)
}

// Model returns the trained model.
func (p *Processor) Model() *Model {
	return p.model
}

// Metrics returns the metrics recorded while training.
func (p *Processor) Metrics() TrainingMetrics {
	return p.metrics
}
