package tweetnlp

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// naiveBayesClassifier is a Bernoulli-presence Naive Bayes model with
// expected likelihood estimation (add one half) for priors and feature
// likelihoods.
type naiveBayesClassifier struct {
	labels        []Label
	labelCounts   map[Label]int
	total         int
	logPrior      map[Label]float64
	logLikelihood map[string]map[Label]float64
}

// trainNaiveBayes fits the classifier. Input order does not affect the
// result.
func trainNaiveBayes(examples []LabeledExample) (*naiveBayesClassifier, error) {
	if len(examples) == 0 {
		return nil, ErrEmptyCorpus
	}

	labelCounts := make(map[Label]int)
	featureCounts := make(map[string]map[Label]int)
	for i, ex := range examples {
		if ex.Label == "" {
			return nil, fmt.Errorf("%w: example %d has no label", ErrMalformedExample, i)
		}
		labelCounts[ex.Label]++
		for fname, present := range ex.Features {
			if !present {
				continue
			}
			counts, ok := featureCounts[fname]
			if !ok {
				counts = make(map[Label]int)
				featureCounts[fname] = counts
			}
			counts[ex.Label]++
		}
	}

	labels := make([]Label, 0, len(labelCounts))
	for l := range labelCounts {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	nb := &naiveBayesClassifier{
		labels:        labels,
		labelCounts:   labelCounts,
		total:         len(examples),
		logPrior:      make(map[Label]float64, len(labels)),
		logLikelihood: make(map[string]map[Label]float64, len(featureCounts)),
	}

	nLabels := float64(len(labels))
	for _, l := range labels {
		nb.logPrior[l] = math.Log((float64(labelCounts[l]) + 0.5) / (float64(nb.total) + 0.5*nLabels))
	}

	for fname, counts := range featureCounts {
		// A feature takes the value "absent" somewhere unless it occurs in
		// every example of every label.
		bins := 1.0
		for _, l := range labels {
			if counts[l] < labelCounts[l] {
				bins = 2
				break
			}
		}
		ll := make(map[Label]float64, len(labels))
		for _, l := range labels {
			ll[l] = math.Log((float64(counts[l]) + 0.5) / (float64(labelCounts[l]) + 0.5*bins))
		}
		nb.logLikelihood[fname] = ll
	}

	return nb, nil
}

// scores returns the unnormalized log posterior of every label, in label
// order. Only present features seen during training contribute; they are
// summed in sorted order so results are reproducible bit for bit.
func (nb *naiveBayesClassifier) scores(features FeatureMap) []float64 {
	known := make([]string, 0, len(features))
	for fname, present := range features {
		if _, ok := nb.logLikelihood[fname]; ok && present {
			known = append(known, fname)
		}
	}
	sort.Strings(known)

	out := make([]float64, len(nb.labels))
	for i, l := range nb.labels {
		score := nb.logPrior[l]
		for _, fname := range known {
			score += nb.logLikelihood[fname][l]
		}
		out[i] = score
	}
	return out
}

// classify returns the most probable label. Ties go to the label that
// sorts first.
func (nb *naiveBayesClassifier) classify(features FeatureMap) Label {
	scores := nb.scores(features)
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return nb.labels[best]
}

// probClassify returns the normalized posterior distribution over labels.
func (nb *naiveBayesClassifier) probClassify(features FeatureMap) map[Label]float64 {
	scores := nb.scores(features)
	norm := floats.LogSumExp(scores)
	dist := make(map[Label]float64, len(scores))
	for i, l := range nb.labels {
		dist[l] = math.Exp(scores[i] - norm)
	}
	return dist
}

// InformativeFeature describes how strongly one feature's presence favors
// a label over the least likely label.
type InformativeFeature struct {
	Feature string
	Label   Label   // label with the highest likelihood for the feature
	Ratio   float64 // P(feature|Label) / min over labels of P(feature|label)
}

// mostInformative returns the n features with the largest likelihood
// ratios, ties broken by feature name.
func (nb *naiveBayesClassifier) mostInformative(n int) []InformativeFeature {
	out := make([]InformativeFeature, 0, len(nb.logLikelihood))
	for fname, ll := range nb.logLikelihood {
		maxL, minLL, maxLL := nb.labels[0], math.Inf(1), math.Inf(-1)
		for _, l := range nb.labels {
			if ll[l] > maxLL {
				maxLL, maxL = ll[l], l
			}
			if ll[l] < minLL {
				minLL = ll[l]
			}
		}
		out = append(out, InformativeFeature{Feature: fname, Label: maxL, Ratio: math.Exp(maxLL - minLL)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ratio != out[j].Ratio {
			return out[i].Ratio > out[j].Ratio
		}
		return out[i].Feature < out[j].Feature
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
