package tweetnlp

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	urlRE     = regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+#]|[!*\(\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)
	mentionRE = regexp.MustCompile(`(@[A-Za-z0-9_]+)`)
)

// asciiPunctuation is the ASCII punctuation set; a token made only of these
// (or of Unicode punctuation) is dropped.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// WordClassOf maps a Penn Treebank tag to the class used for lemmatization.
// Nouns and verbs are recognized by prefix; every other tag, adverbs
// included, falls back to Adjective.
func WordClassOf(tag string) WordClass {
	switch {
	case strings.HasPrefix(tag, "NN"):
		return Noun
	case strings.HasPrefix(tag, "VB"):
		return Verb
	}
	return Adjective
}

// Clean normalizes tagged tokens into a sequence of lowercase lemmas. URLs
// and @mentions are removed, every token is lemmatized by its word class,
// and empty, punctuation-only, undecodable and stopword results are dropped. Output
// order follows the input. Lemmatizer errors are returned unchanged.
func Clean(tokens []*Token, stop StopWords, lem Lemmatizer) ([]string, error) {
	cleaned := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		text := urlRE.ReplaceAllString(tok.Text, "")
		text = mentionRE.ReplaceAllString(text, "")

		lemma, err := lem.Lemmatize(text, WordClassOf(tok.Tag))
		if err != nil {
			return nil, err
		}
		lemma = strings.ToLower(lemma)

		if lemma == "" || isPunctuation(lemma) || isUndecodable(lemma) || stop.Contains(lemma) {
			continue
		}
		cleaned = append(cleaned, lemma)
	}
	return cleaned, nil
}

// isPunctuation reports whether text consists solely of punctuation
// characters.
func isPunctuation(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsPunct(r) && !strings.ContainsRune(asciiPunctuation, r) {
			return false
		}
	}
	return true
}

// isUndecodable reports whether every rune of text is utf8.RuneError, which
// is what invalid UTF-8 bytes and U+FFFD decode to.
func isUndecodable(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r != utf8.RuneError {
			return false
		}
	}
	return true
}
