package tweetnlp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"
)

// TrainingConfig contains configuration for model training
type TrainingConfig struct {
	// Seed drives the shuffle applied to the combined example set.
	Seed int64
	// ValidationSplit holds out this fraction of the shuffled examples to
	// measure accuracy. Zero trains on everything.
	ValidationSplit  float64
	Context          context.Context
	Logger           *slog.Logger
	ProgressCallback func(done, total int)
}

// DefaultTrainingConfig returns a default training configuration
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Seed:    1,
		Context: context.Background(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// TrainingMetrics contains metrics from training
type TrainingMetrics struct {
	Examples           int
	PositiveExamples   int
	NegativeExamples   int
	ValidationExamples int
	VocabularySize     int
	ValidationAccuracy float64
	TrainingTime       time.Duration
}

// CrossValidationResult contains results from cross-validation
type CrossValidationResult struct {
	MeanAccuracy float64
	StdAccuracy  float64
	FoldAccuracy []float64
}

// LabeledTokens is one pre-tokenized corpus row.
type LabeledTokens struct {
	Tokens []string
	Label  Label
}

// Trainer cleans labeled corpora and fits sentiment models.
type Trainer struct {
	config TrainingConfig
	prep   *Preprocessor
}

// NewTrainer creates a new trainer with the given configuration
func NewTrainer(config TrainingConfig, prep *Preprocessor) *Trainer {
	if config.Context == nil {
		config.Context = context.Background()
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Trainer{config: config, prep: prep}
}

// Train fits a model on positive and negative example posts, each given
// as its word sequence.
func (t *Trainer) Train(positive, negative [][]string) (*Model, TrainingMetrics, error) {
	if len(positive) == 0 {
		return nil, TrainingMetrics{}, fmt.Errorf("positive corpus: %w", ErrEmptyCorpus)
	}
	if len(negative) == 0 {
		return nil, TrainingMetrics{}, fmt.Errorf("negative corpus: %w", ErrEmptyCorpus)
	}

	rows := make([]LabeledTokens, 0, len(positive)+len(negative))
	for _, tokens := range positive {
		rows = append(rows, LabeledTokens{Tokens: tokens, Label: Positive})
	}
	for _, tokens := range negative {
		rows = append(rows, LabeledTokens{Tokens: tokens, Label: Negative})
	}
	return t.TrainExamples(rows)
}

// TrainExamples fits a model on labeled rows. Rows without tokens or with
// a label other than Positive or Negative are rejected.
func (t *Trainer) TrainExamples(rows []LabeledTokens) (*Model, TrainingMetrics, error) {
	startTime := time.Now()
	log := t.config.Logger

	examples, err := t.featurize(rows)
	if err != nil {
		return nil, TrainingMetrics{}, err
	}

	shuffle(examples, t.config.Seed)

	var trainSet, validSet []LabeledExample
	if t.config.ValidationSplit > 0 && t.config.ValidationSplit < 1 {
		splitIdx := int(float64(len(examples)) * (1.0 - t.config.ValidationSplit))
		trainSet, validSet = examples[:splitIdx], examples[splitIdx:]
	} else {
		trainSet = examples
	}

	model, err := ModelFromExamples("naive-bayes", trainSet)
	if err != nil {
		return nil, TrainingMetrics{}, err
	}

	counts := model.LabelCounts()
	metrics := TrainingMetrics{
		Examples:           len(trainSet),
		PositiveExamples:   counts[Positive],
		NegativeExamples:   counts[Negative],
		ValidationExamples: len(validSet),
		VocabularySize:     model.VocabularySize(),
	}
	if len(validSet) > 0 {
		metrics.ValidationAccuracy = accuracy(model, validSet)
	}
	metrics.TrainingTime = time.Since(startTime)

	log.Info("sentiment model trained",
		"examples", metrics.Examples,
		"positive", metrics.PositiveExamples,
		"negative", metrics.NegativeExamples,
		"vocabulary", metrics.VocabularySize,
		"validation_accuracy", metrics.ValidationAccuracy,
		"duration", metrics.TrainingTime)

	return model, metrics, nil
}

// Evaluate returns the fraction of rows the model labels correctly.
func (t *Trainer) Evaluate(model *Model, rows []LabeledTokens) (float64, error) {
	examples, err := t.featurize(rows)
	if err != nil {
		return 0, err
	}
	return accuracy(model, examples), nil
}

// CrossValidate performs k-fold cross-validation over the shuffled rows.
func (t *Trainer) CrossValidate(rows []LabeledTokens, k int) (CrossValidationResult, error) {
	if k <= 1 {
		return CrossValidationResult{}, fmt.Errorf("k must be greater than 1")
	}

	examples, err := t.featurize(rows)
	if err != nil {
		return CrossValidationResult{}, err
	}
	if len(examples) < k {
		return CrossValidationResult{}, fmt.Errorf("%d examples cannot be split into %d folds", len(examples), k)
	}
	shuffle(examples, t.config.Seed)

	foldSize := len(examples) / k
	results := make([]float64, k)

	for fold := 0; fold < k; fold++ {
		start := fold * foldSize
		end := start + foldSize
		if fold == k-1 {
			end = len(examples)
		}

		testSet := examples[start:end]
		trainSet := make([]LabeledExample, 0, len(examples)-len(testSet))
		trainSet = append(trainSet, examples[:start]...)
		trainSet = append(trainSet, examples[end:]...)

		model, err := ModelFromExamples(fmt.Sprintf("fold-%d", fold), trainSet)
		if err != nil {
			return CrossValidationResult{}, err
		}
		results[fold] = accuracy(model, testSet)
		t.config.Logger.Debug("fold evaluated", "fold", fold, "accuracy", results[fold])
	}

	mean, std := stat.MeanStdDev(results, nil)
	return CrossValidationResult{
		MeanAccuracy: mean,
		StdAccuracy:  std,
		FoldAccuracy: results,
	}, nil
}

// featurize validates, cleans and labels every row.
func (t *Trainer) featurize(rows []LabeledTokens) ([]LabeledExample, error) {
	ctx := t.config.Context
	examples := make([]LabeledExample, 0, len(rows))

	for i, row := range rows {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if row.Tokens == nil {
			return nil, fmt.Errorf("%w: row %d has no tokens", ErrMalformedExample, i)
		}
		if !row.Label.Valid() {
			return nil, fmt.Errorf("%w: row %d has label %q", ErrMalformedExample, i, row.Label)
		}

		features, err := t.prep.WordFeatures(row.Tokens)
		if err != nil {
			return nil, fmt.Errorf("clean row %d: %w", i, err)
		}
		examples = append(examples, LabeledExample{Features: features, Label: row.Label})

		if t.config.ProgressCallback != nil {
			t.config.ProgressCallback(i+1, len(rows))
		}
	}

	return examples, nil
}

// shuffle applies a seeded uniform permutation to examples.
func shuffle(examples []LabeledExample, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(examples), func(i, j int) {
		examples[i], examples[j] = examples[j], examples[i]
	})
}

func accuracy(model *Model, examples []LabeledExample) float64 {
	if len(examples) == 0 {
		return 0
	}
	correct := 0
	for _, ex := range examples {
		if model.Classify(ex.Features) == ex.Label {
			correct++
		}
	}
	return float64(correct) / float64(len(examples))
}
