package tweetnlp

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// WordLexicon is a dictionary of base forms per word class. It implements
// Lexicon so the morphological lemmatizer can validate its candidates
// against it.
type WordLexicon struct {
	words map[WordClass]map[string]bool
	mutex sync.RWMutex
}

// ExternalLexicon represents the JSON structure for external lexicon files
type ExternalLexicon struct {
	Languages map[string]LanguageLexicon `json:"languages"`
}

// LanguageLexicon lists the base forms of one language by word class.
type LanguageLexicon struct {
	Nouns      []string `json:"nouns,omitempty"`
	Verbs      []string `json:"verbs,omitempty"`
	Adjectives []string `json:"adjectives,omitempty"`
}

// NewWordLexicon returns an empty lexicon.
func NewWordLexicon() *WordLexicon {
	return &WordLexicon{
		words: map[WordClass]map[string]bool{
			Noun:      {},
			Verb:      {},
			Adjective: {},
		},
	}
}

// LoadWordLexicon returns a lexicon seeded with the built-in English verb
// and adjective bases, merged with the entries for language from the JSON
// file at path.
func LoadWordLexicon(path, language string) (*WordLexicon, error) {
	lexicon := NewWordLexicon()
	lexicon.loadBaseLexicon()

	if err := lexicon.LoadExternalLexicon(path, language); err != nil {
		return nil, fmt.Errorf("failed to load external lexicon: %w", err)
	}
	return lexicon, nil
}

// LoadExternalLexicon loads and merges external lexicon data for the given
// languages (names or ISO codes).
func (wl *WordLexicon) LoadExternalLexicon(path string, languages ...string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading lexicon file: %w", err)
	}

	var external ExternalLexicon
	if err := json.Unmarshal(data, &external); err != nil {
		return fmt.Errorf("error parsing lexicon JSON: %w", err)
	}

	wl.mutex.Lock()
	defer wl.mutex.Unlock()
	for _, lang := range languages {
		if langData, exists := external.Languages[languageName(lang)]; exists {
			wl.mergeLanguageData(langData)
		}
	}
	return nil
}

// Add records base forms for class.
func (wl *WordLexicon) Add(class WordClass, words ...string) {
	wl.mutex.Lock()
	defer wl.mutex.Unlock()
	wl.add(class, words)
}

// Contains reports whether word is a known base form of class.
func (wl *WordLexicon) Contains(word string, class WordClass) bool {
	wl.mutex.RLock()
	defer wl.mutex.RUnlock()
	return wl.words[class][strings.ToLower(word)]
}

// Len returns the number of entries across all classes.
func (wl *WordLexicon) Len() int {
	wl.mutex.RLock()
	defer wl.mutex.RUnlock()
	n := 0
	for _, set := range wl.words {
		n += len(set)
	}
	return n
}

func (wl *WordLexicon) mergeLanguageData(data LanguageLexicon) {
	wl.add(Noun, data.Nouns)
	wl.add(Verb, data.Verbs)
	wl.add(Adjective, data.Adjectives)
}

func (wl *WordLexicon) add(class WordClass, words []string) {
	set, ok := wl.words[class]
	if !ok {
		set = map[string]bool{}
		wl.words[class] = set
	}
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			set[w] = true
		}
	}
}

func (wl *WordLexicon) loadBaseLexicon() {
	wl.mutex.Lock()
	defer wl.mutex.Unlock()
	for w := range verbBases {
		wl.words[Verb][w] = true
	}
	for w := range adjectiveBases {
		wl.words[Adjective][w] = true
	}
}
