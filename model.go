package tweetnlp

import (
	"time"
)

// A Model holds a trained sentiment classifier. It is immutable once built
// and safe for concurrent use.
type Model struct {
	Name      string
	TrainedAt time.Time

	classifier *naiveBayesClassifier
}

// ModelFromExamples fits a Model directly from labeled feature maps.
func ModelFromExamples(name string, examples []LabeledExample) (*Model, error) {
	nb, err := trainNaiveBayes(examples)
	if err != nil {
		return nil, err
	}
	return &Model{Name: name, TrainedAt: time.Now(), classifier: nb}, nil
}

// Classify returns the most probable label for features. Ties go to the
// label that sorts first, so Negative wins over Positive.
func (m *Model) Classify(features FeatureMap) Label {
	return m.classifier.classify(features)
}

// ProbClassify returns the posterior probability of every label.
func (m *Model) ProbClassify(features FeatureMap) map[Label]float64 {
	return m.classifier.probClassify(features)
}

// Labels returns the labels seen during training in tie-break order.
func (m *Model) Labels() []Label {
	return append([]Label(nil), m.classifier.labels...)
}

// LabelCounts returns the number of training examples per label.
func (m *Model) LabelCounts() map[Label]int {
	counts := make(map[Label]int, len(m.classifier.labelCounts))
	for l, n := range m.classifier.labelCounts {
		counts[l] = n
	}
	return counts
}

// VocabularySize is the number of distinct features seen in training.
func (m *Model) VocabularySize() int {
	return len(m.classifier.logLikelihood)
}

// MostInformativeFeatures lists the n features whose presence best
// separates the labels. A negative n returns all of them.
func (m *Model) MostInformativeFeatures(n int) []InformativeFeature {
	return m.classifier.mostInformative(n)
}
