package tweetnlp

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
)

// DefaultLanguage is the stopword language used when none is given.
const DefaultLanguage = "english"

// languageCodes maps language names to the ISO 639-1 codes understood by
// the stopwords library.
var languageCodes = map[string]string{
	"arabic": "ar", "bulgarian": "bg", "czech": "cs", "danish": "da",
	"german": "de", "greek": "el", "english": "en", "spanish": "es",
	"persian": "fa", "french": "fr", "finnish": "fi", "hungarian": "hu",
	"indonesian": "id", "italian": "it", "japanese": "ja", "khmer": "km",
	"latvian": "lv", "dutch": "nl", "norwegian": "no", "polish": "pl",
	"portuguese": "pt", "romanian": "ro", "russian": "ru", "slovak": "sk",
	"swedish": "sv", "thai": "th", "turkish": "tr",
}

// languageCode resolves a language name or code to an ISO 639-1 code.
func languageCode(language string) (string, error) {
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" {
		lang = DefaultLanguage
	}
	if code, ok := languageCodes[lang]; ok {
		return code, nil
	}
	for _, code := range languageCodes {
		if code == lang {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
}

// languageName resolves a language code or name to its lowercase name.
func languageName(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" {
		return DefaultLanguage
	}
	for name, code := range languageCodes {
		if code == lang {
			return name
		}
	}
	return lang
}

// StopWords is a read-only stopword set. Membership combines an explicit
// word list with the stopwords library's list for the configured language.
// The zero value contains nothing.
type StopWords struct {
	code  string
	words map[string]struct{}
}

// NewStopWords builds a set from an explicit word list.
func NewStopWords(words ...string) StopWords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return StopWords{words: set}
}

// LoadStopWords returns the stopword set for a language name ("english") or
// ISO 639-1 code ("en"). An empty language selects English.
func LoadStopWords(language string, extra ...string) (StopWords, error) {
	code, err := languageCode(language)
	if err != nil {
		return StopWords{}, err
	}

	sw := NewStopWords(extra...)
	sw.code = code
	if code == "en" {
		for _, word := range englishStopWords {
			sw.words[word] = struct{}{}
		}
	}
	// The library does not export its lists, so the probed candidates are
	// recorded to make Words useful.
	for _, word := range candidateStopWords(code) {
		if sw.inLibrary(word) {
			sw.words[word] = struct{}{}
		}
	}
	if len(sw.words) == 0 {
		return StopWords{}, fmt.Errorf("%w: no stopwords found for %q", ErrUnsupportedLanguage, language)
	}
	return sw, nil
}

// Contains reports whether the lowercase form of word is a stopword.
func (s StopWords) Contains(word string) bool {
	lower := strings.ToLower(word)
	if _, ok := s.words[lower]; ok {
		return true
	}
	return s.inLibrary(lower)
}

// Len returns the number of explicitly known stopwords.
func (s StopWords) Len() int {
	return len(s.words)
}

// Words returns the explicitly known stopwords in sorted order.
func (s StopWords) Words() []string {
	words := make([]string, 0, len(s.words))
	for w := range s.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// inLibrary asks the stopwords library whether word is dropped by its
// cleaner. Only letter words are probed since the cleaner also discards
// digits and symbols.
func (s StopWords) inLibrary(word string) bool {
	if s.code == "" || !isLetterWord(word) {
		return false
	}
	return strings.TrimSpace(stopwords.CleanString(word, s.code, false)) == ""
}

func isLetterWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r) && r != '\'' {
			return false
		}
	}
	return true
}

// englishStopWords is the classic English list used for tweet cleaning. The
// library's English list lacks pronouns such as "i" and the contraction
// fragments left by tokenization ("s", "t", "don").
var englishStopWords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're",
	"you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves", "he",
	"him", "his", "himself", "she", "she's", "her", "hers", "herself", "it", "it's",
	"its", "itself", "they", "them", "their", "theirs", "themselves", "what", "which",
	"who", "whom", "this", "that", "that'll", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had", "having", "do",
	"does", "did", "doing", "a", "an", "the", "and", "but", "if", "or", "because",
	"as", "until", "while", "of", "at", "by", "for", "with", "about", "against",
	"between", "into", "through", "during", "before", "after", "above", "below",
	"to", "from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "then", "once", "here", "there", "when", "where", "why", "how", "all",
	"any", "both", "each", "few", "more", "most", "other", "some", "such", "no",
	"nor", "not", "only", "own", "same", "so", "than", "too", "very", "s", "t", "can",
	"will", "just", "don", "don't", "should", "should've", "now", "d", "ll", "m",
	"o", "re", "ve", "y", "ain", "aren", "aren't", "couldn", "couldn't", "didn",
	"didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven",
	"haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn", "mustn't",
	"needn", "needn't", "shan", "shan't", "shouldn", "shouldn't", "wasn", "wasn't",
	"weren", "weren't", "won", "won't", "wouldn", "wouldn't",
}

// candidateStopWords returns words worth probing against the library for
// the given language code.
func candidateStopWords(code string) []string {
	words := []string{
		"a", "an", "and", "are", "as", "at", "be", "been", "by", "for", "from",
		"has", "had", "have", "he", "her", "his", "how", "i", "in", "is", "it",
		"its", "of", "on", "or", "she", "that", "the", "their", "them", "they",
		"this", "to", "was", "we", "were", "what", "when", "where", "which", "who",
		"will", "with", "would", "you", "your",
		"about", "after", "all", "also", "am", "any", "back", "because", "before",
		"being", "between", "both", "but", "can", "could", "did", "do", "does",
		"doing", "down", "during", "each", "few", "further", "here", "him",
		"himself", "herself", "if", "into", "itself", "just", "me", "more", "most",
		"my", "myself", "no", "nor", "not", "now", "off", "once", "only", "other",
		"our", "ours", "ourselves", "out", "over", "own", "same", "should", "so",
		"some", "such", "than", "then", "there", "these", "those", "through", "too",
		"under", "until", "up", "very", "while", "why", "whom", "yours", "yourself",
		"themselves", "theirs", "hers", "s", "t", "don", "again", "against", "above",
		"below",
	}

	switch code {
	case "es":
		words = append(words, []string{
			"el", "la", "los", "las", "un", "una", "unos", "unas", "y", "o", "pero",
			"que", "de", "en", "a", "por", "para", "con", "sin", "sobre", "entre",
			"hacia", "hasta", "desde", "durante", "ante", "bajo", "contra",
			"es", "está", "son", "están", "ser", "estar", "hay", "fue", "era",
			"yo", "tú", "él", "ella", "nosotros", "ellos", "ellas", "mi", "tu", "su",
			"este", "esta", "estos", "estas", "ese", "esa", "lo", "le", "les", "se",
			"me", "te", "nos", "como", "cuando", "donde", "porque", "si", "no", "más",
			"muy", "mucho", "todo", "nada", "algo", "otro", "mismo", "tan", "cual", "quien",
		}...)
	case "fr":
		words = append(words, []string{
			"le", "la", "les", "un", "une", "des", "de", "du", "et", "à", "au", "aux",
			"en", "pour", "par", "avec", "sans", "sous", "sur", "dans", "contre",
			"vers", "chez", "entre", "depuis", "pendant", "avant", "après",
			"est", "sont", "être", "avoir", "fait", "je", "tu", "il", "elle", "on",
			"nous", "vous", "ils", "elles", "mon", "ton", "son", "ma", "ta", "sa",
			"mes", "tes", "ses", "notre", "votre", "leur", "ce", "cette", "ces",
			"que", "qui", "quoi", "dont", "où", "si", "ne", "pas", "plus", "très",
			"tout", "tous", "même", "autre",
		}...)
	case "de":
		words = append(words, []string{
			"der", "die", "das", "den", "dem", "des", "ein", "eine", "einen", "einem",
			"einer", "eines", "und", "oder", "aber", "doch", "sondern", "denn", "weil",
			"wenn", "als", "dass", "ob", "zu", "in", "an", "auf", "aus", "bei", "mit",
			"nach", "von", "vor", "für", "über", "unter", "zwischen", "durch", "gegen",
			"ohne", "um", "bis", "ist", "sind", "war", "waren", "sein", "haben",
			"werden", "ich", "du", "er", "sie", "es", "wir", "ihr", "mein", "dein",
			"dieser", "diese", "dieses", "man", "sich", "nicht", "kein", "keine",
			"sehr", "schon", "noch", "nur", "auch", "wieder", "alle", "alles", "was", "wer",
		}...)
	case "ja":
		words = append(words, []string{
			"の", "は", "を", "に", "が", "と", "で", "て", "も", "から", "まで",
			"へ", "や", "か", "など", "これ", "それ", "あれ", "この", "その", "あの",
			"いる", "ある", "する", "なる", "ない", "ます", "です", "だ",
		}...)
	}

	return words
}
