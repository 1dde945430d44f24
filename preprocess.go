package tweetnlp

// A Preprocessor bundles the linguistic capabilities shared by training
// and classification: it turns raw text or pre-tokenized words into
// cleaned tokens and feature maps.
type Preprocessor struct {
	Tokenizer  Tokenizer
	Tagger     Tagger
	Lemmatizer Lemmatizer
	StopWords  StopWords
}

// NewPreprocessor returns a Preprocessor with the default tokenizer, tagger
// and lemmatizer.
func NewPreprocessor(stop StopWords) (*Preprocessor, error) {
	tok, err := NewWordTokenizer()
	if err != nil {
		return nil, err
	}
	return &Preprocessor{
		Tokenizer:  tok,
		Tagger:     NewRuleTagger(),
		Lemmatizer: NewMorphyLemmatizer(),
		StopWords:  stop,
	}, nil
}

// CleanWords tags pre-tokenized words and cleans them.
func (p *Preprocessor) CleanWords(words []string) ([]string, error) {
	tokens := make([]*Token, len(words))
	offset := 0
	for i, w := range words {
		tokens[i] = &Token{Text: w, Start: offset, End: offset + len(w)}
		offset += len(w) + 1
	}
	return Clean(p.Tagger.Tag(tokens), p.StopWords, p.Lemmatizer)
}

// CleanText tokenizes, tags and cleans raw text.
func (p *Preprocessor) CleanText(text string) ([]string, error) {
	doc, err := NewDocument(text,
		UsingTokenizer(p.Tokenizer),
		UsingTagger(p.Tagger),
		WithSegmentation(false),
		WithTimeout(0))
	if err != nil {
		return nil, err
	}
	cleaned, err := Clean(doc.tokens, p.StopWords, p.Lemmatizer)
	releaseTokens(p.Tokenizer, doc.tokens)
	return cleaned, err
}

// WordFeatures returns the feature map of pre-tokenized words.
func (p *Preprocessor) WordFeatures(words []string) (FeatureMap, error) {
	cleaned, err := p.CleanWords(words)
	if err != nil {
		return nil, err
	}
	return ToFeatures(cleaned), nil
}

// TextFeatures returns the feature map of raw text.
func (p *Preprocessor) TextFeatures(text string) (FeatureMap, error) {
	cleaned, err := p.CleanText(text)
	if err != nil {
		return nil, err
	}
	return ToFeatures(cleaned), nil
}
