package tweetnlp

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball"
)

// A Lemmatizer reduces an inflected word to its base form for the given
// word class.
type Lemmatizer interface {
	Lemmatize(word string, class WordClass) (string, error)
}

// A Lexicon reports whether a base form exists for a word class. It lets
// callers plug a full dictionary into the morphological lemmatizer.
//
// Without a Lexicon the lemmatizer falls back to suffix rules and a small
// exception table. Those rules strip a final s from any noun not ending in
// ss, us, is or ous and restore a silent e only on short stems, so
// uncommon words such as "christmases" or "composing" can come out wrong.
type Lexicon interface {
	Contains(word string, class WordClass) bool
}

// LexiconFunc adapts a plain function to the Lexicon interface.
type LexiconFunc func(word string, class WordClass) bool

// Contains calls f(word, class).
func (f LexiconFunc) Contains(word string, class WordClass) bool {
	return f(word, class)
}

// detachment is a suffix rewrite rule: strip suffix, append ending.
type detachment struct {
	suffix string
	ending string
}

// morphyLemmatizer applies exception tables and WordNet-style detachment
// rules. Without a Lexicon, candidates are accepted by shape heuristics.
type morphyLemmatizer struct {
	lexicon Lexicon
}

// MorphyOption configures the morphological lemmatizer.
type MorphyOption func(*morphyLemmatizer)

// UsingLexicon validates rule output against lex instead of heuristics.
func UsingLexicon(lex Lexicon) MorphyOption {
	return func(m *morphyLemmatizer) {
		m.lexicon = lex
	}
}

// NewMorphyLemmatizer returns the default rule based Lemmatizer.
func NewMorphyLemmatizer(opts ...MorphyOption) Lemmatizer {
	m := &morphyLemmatizer{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var detachments = map[WordClass][]detachment{
	Noun: {
		{"ses", "s"}, {"xes", "x"}, {"zes", "z"}, {"ches", "ch"}, {"shes", "sh"},
		{"men", "man"}, {"ies", "y"}, {"s", ""},
	},
	Verb: {
		{"ies", "y"}, {"es", "e"}, {"es", ""}, {"ed", "e"}, {"ed", ""},
		{"ing", "e"}, {"ing", ""}, {"s", ""},
	},
	Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"}, {"ier", "y"}, {"iest", "y"},
	},
}

// Lemmatize never fails; the error is part of the Lemmatizer contract.
func (m *morphyLemmatizer) Lemmatize(word string, class WordClass) (string, error) {
	if word == "" {
		return word, nil
	}
	lower := strings.ToLower(word)
	if base, ok := exceptions[class][lower]; ok {
		return base, nil
	}
	if m.lexicon != nil {
		return m.fromLexicon(word, lower, class), nil
	}

	switch class {
	case Noun:
		return lemmatizeNoun(word, lower), nil
	case Verb:
		return lemmatizeVerb(word, lower), nil
	default:
		return lemmatizeAdjective(word, lower), nil
	}
}

// fromLexicon mirrors morphy: the word itself or the shortest rule
// candidate found in the lexicon wins; otherwise the word is unchanged.
func (m *morphyLemmatizer) fromLexicon(word, lower string, class WordClass) string {
	best := ""
	if m.lexicon.Contains(lower, class) {
		best = lower
	}
	for _, d := range detachments[class] {
		if !strings.HasSuffix(lower, d.suffix) {
			continue
		}
		cand := lower[:len(lower)-len(d.suffix)] + d.ending
		if cand == "" || !m.lexicon.Contains(cand, class) {
			continue
		}
		if best == "" || len(cand) < len(best) {
			best = cand
		}
	}
	if best == "" {
		return word
	}
	return best
}

func lemmatizeNoun(word, lower string) string {
	n := utf8.RuneCountInString(lower)
	if n <= 3 || hasAnySuffix(lower, []string{"ss", "us", "is", "ous"}) {
		return word
	}
	switch {
	case strings.HasSuffix(lower, "ies") && n > 4:
		return lower[:len(lower)-3] + "y"
	case hasAnySuffix(lower, []string{"sses", "ches", "shes", "xes", "zzes"}):
		return lower[:len(lower)-2]
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "'s"):
		return lower[:len(lower)-1]
	}
	return word
}

func lemmatizeVerb(word, lower string) string {
	n := utf8.RuneCountInString(lower)
	if n <= 3 {
		return word
	}
	switch {
	case strings.HasSuffix(lower, "ies") && n > 4:
		return lower[:len(lower)-3] + "y"
	case hasAnySuffix(lower, []string{"sses", "ches", "shes", "xes", "zzes", "oes"}):
		return lower[:len(lower)-2]
	case strings.HasSuffix(lower, "s") && !hasAnySuffix(lower, []string{"ss", "us", "is"}):
		return lower[:len(lower)-1]
	case strings.HasSuffix(lower, "ing") && n > 4 && hasVowel(lower[:len(lower)-3]):
		return restoreStem(lower[:len(lower)-3])
	case strings.HasSuffix(lower, "ied") && n > 4:
		return lower[:len(lower)-3] + "y"
	case strings.HasSuffix(lower, "ed") && !strings.HasSuffix(lower, "eed") && hasVowel(lower[:len(lower)-2]):
		return restoreStem(lower[:len(lower)-2])
	}
	return word
}

func lemmatizeAdjective(word, lower string) string {
	for _, d := range detachments[Adjective] {
		cand := strings.TrimSuffix(lower, d.suffix)
		if cand == lower {
			continue
		}
		cand += d.ending
		if adjectiveBases[cand] {
			return cand
		}
		if undoubled := undouble(cand); adjectiveBases[undoubled] {
			return undoubled
		}
	}
	return word
}

// restoreStem repairs a stem left by stripping -ing/-ed: doubled final
// consonants are undoubled and a silent e is restored after short or
// v/z/c-final stems.
func restoreStem(stem string) string {
	if len(stem) < 2 {
		return stem
	}
	if undoubled := undouble(stem); undoubled != stem {
		return undoubled
	}
	last := stem[len(stem)-1]
	switch {
	case last == 'v' || last == 'z' || (last == 'c' && !isVowel(stem[len(stem)-2])):
		return stem + "e"
	case last == 'u':
		return stem + "e"
	case isShortCVC(stem):
		return stem + "e"
	}
	return stem
}

func undouble(stem string) string {
	n := len(stem)
	if n < 3 {
		return stem
	}
	a, b := stem[n-2], stem[n-1]
	if a == b && !isVowel(b) && b != 'l' && b != 's' && b != 'z' && b != 'f' {
		return stem[:n-1]
	}
	return stem
}

// isShortCVC matches stems like "mak", "hat", "us" or "writ" that lost a
// final e.
func isShortCVC(stem string) bool {
	n := len(stem)
	last := stem[n-1]
	if isVowel(last) || last == 'w' || last == 'x' || last == 'y' {
		return false
	}
	switch n {
	case 2:
		return isVowel(stem[0])
	case 3:
		return isVowel(stem[1]) && !isVowel(stem[0])
	case 4:
		return isVowel(stem[2]) && !isVowel(stem[1]) && !isVowel(stem[0]) && stem[1] != 'y'
	}
	return false
}

func hasVowel(s string) bool {
	for i := 0; i < len(s); i++ {
		if isVowel(s[i]) || s[i] == 'y' {
			return true
		}
	}
	return false
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

var exceptions = map[WordClass]map[string]string{
	Noun: {
		"men": "man", "women": "woman", "children": "child", "feet": "foot",
		"teeth": "tooth", "mice": "mouse", "geese": "goose", "wives": "wife",
		"knives": "knife", "lives": "life", "leaves": "leaf", "wolves": "wolf",
		"halves": "half", "selves": "self", "shelves": "shelf", "thieves": "thief",
		"loaves": "loaf", "calves": "calf", "oxen": "ox", "people": "people",
		"news": "news", "series": "series", "species": "species", "glasses": "glass",
		"buses": "bus", "analyses": "analysis", "crises": "crisis", "movies": "movie",
		"cookies": "cookie", "pies": "pie", "ties": "tie", "lies": "lie", "shoes": "shoe",
		"christmas": "christmas", "xmas": "xmas", "texas": "texas", "atlas": "atlas",
		"canvas": "canvas", "gas": "gas", "alias": "alias", "bias": "bias",
		"pajamas": "pajamas", "lens": "lens", "physics": "physics", "mathematics": "mathematics",
		"clothes": "clothes", "jeans": "jeans", "vegas": "vegas",
	},
	Verb: {
		"is": "be", "are": "be", "am": "be", "was": "be", "were": "be", "been": "be",
		"being": "be", "'s": "be", "'re": "be", "'m": "be",
		"has": "have", "had": "have", "having": "have", "'ve": "have",
		"does": "do", "did": "do", "done": "do", "doing": "do",
		"goes": "go", "went": "go", "gone": "go", "going": "go",
		"got": "get", "gotten": "get", "made": "make", "said": "say", "says": "say",
		"took": "take", "taken": "take", "came": "come", "saw": "see", "seen": "see",
		"knew": "know", "known": "know", "thought": "think", "felt": "feel",
		"left": "leave", "gave": "give", "given": "give", "found": "find",
		"told": "tell", "became": "become", "brought": "bring", "bought": "buy",
		"ran": "run", "ate": "eat", "eaten": "eat", "wrote": "write", "written": "write",
		"met": "meet", "kept": "keep", "slept": "sleep", "lost": "lose", "won": "win",
		"paid": "pay", "sent": "send", "spent": "spend", "built": "build",
		"began": "begin", "begun": "begin", "broke": "break", "broken": "break",
		"chose": "choose", "chosen": "choose", "forgot": "forget", "forgotten": "forget",
		"heard": "hear", "held": "hold", "meant": "mean", "sang": "sing", "sung": "sing",
		"stood": "stand", "understood": "understand", "woke": "wake", "wore": "wear",
		"lying": "lie", "dying": "die", "tying": "tie", "seeing": "see",
		"feeling": "feel", "sleeping": "sleep", "meeting": "meet", "needed": "need",
		"wanted": "want", "waited": "wait", "visited": "visit", "opened": "open",
		"happened": "happen", "listening": "listen", "visiting": "visit",
		"opening": "open", "happening": "happen", "following": "follow",
		"watching": "watch", "missing": "miss", "missed": "miss", "loving": "love",
		"loved": "love", "hating": "hate", "hated": "hate", "making": "make",
		"taking": "take", "coming": "come", "giving": "give",
		"enjoyed": "enjoy", "enjoying": "enjoy", "played": "play", "playing": "play",
		"stayed": "stay", "staying": "stay", "saying": "say", "trying": "try",
		"crying": "cry", "tried": "try", "cried": "cry", "worried": "worry",
		"appreciated": "appreciate", "annoyed": "annoy", "annoying": "annoy",
		"agreed": "agree", "freed": "free", "fled": "flee", "led": "lead", "fed": "feed",
	},
	Adjective: {
		"better": "good", "best": "good", "worse": "bad", "worst": "bad",
		"further": "far", "farther": "far", "furthest": "far", "farthest": "far",
		"elder": "old", "eldest": "old", "more": "much", "most": "much",
		"less": "little", "least": "little",
	},
}

// snowballLemmatizer approximates lemmas with a Snowball stemmer. It ignores
// the word class and returns the stemmer's errors unchanged.
type snowballLemmatizer struct {
	language string
}

// NewSnowballLemmatizer returns a Lemmatizer backed by the Snowball stemmer
// for language ("english", "spanish", "french", "russian" or "swedish").
func NewSnowballLemmatizer(language string) (Lemmatizer, error) {
	lang, err := snowballLanguage(language)
	if err != nil {
		return nil, err
	}
	return &snowballLemmatizer{language: lang}, nil
}

func (s *snowballLemmatizer) Lemmatize(word string, _ WordClass) (string, error) {
	if word == "" {
		return word, nil
	}
	return snowball.Stem(word, s.language, true)
}

func snowballLanguage(language string) (string, error) {
	name := languageName(language)
	switch name {
	case "english", "spanish", "french", "russian", "swedish":
		return name, nil
	}
	return "", fmt.Errorf("%w: no snowball stemmer for %q", ErrUnsupportedLanguage, language)
}
