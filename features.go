package tweetnlp

// ToFeatures turns a cleaned token sequence into a presence-only feature
// map. Repeated tokens collapse into one key.
func ToFeatures(tokens []string) FeatureMap {
	features := make(FeatureMap, len(tokens))
	for _, tok := range tokens {
		features[tok] = true
	}
	return features
}
