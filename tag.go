package tweetnlp

import (
	"strings"
	"unicode"
)

// A Tagger assigns a Penn Treebank part-of-speech tag to each token.
type Tagger interface {
	Tag(tokens []*Token) []*Token
}

// ruleTagger tags tokens in two passes: a lexicon lookup backed by suffix
// heuristics, then a handful of contextual corrections.
type ruleTagger struct {
	lexicon map[string]string
}

// NewRuleTagger returns a Tagger built from a closed-class lexicon and
// suffix rules. It needs no trained weights.
func NewRuleTagger() Tagger {
	return &ruleTagger{lexicon: tagLexicon}
}

// Tag sets Token.Tag in place and returns tokens.
func (rt *ruleTagger) Tag(tokens []*Token) []*Token {
	for i, tok := range tokens {
		tok.Tag = rt.baseline(tok.Text, i == 0 || isSentenceEnd(tokens[i-1].Text))
	}

	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1], tokens[i]
		word := strings.ToLower(cur.Text)

		switch {
		// "to [love]", "will [hate]"
		case (prev.Tag == "TO" || prev.Tag == "MD") && isNominalOrAdj(cur.Tag) && !isClosedClass(word):
			cur.Tag = "VB"
		// "the [run]", "a great [shower]"
		case (prev.Tag == "DT" || prev.Tag == "PRP$" || strings.HasPrefix(prev.Tag, "JJ")) &&
			(cur.Tag == "VB" || cur.Tag == "VBP"):
			cur.Tag = "NN"
		// "I [love]", "they [hate]"
		case prev.Tag == "PRP" && (cur.Tag == "NN" || cur.Tag == "VB" || cur.Tag == "IN") && verbBases[word]:
			cur.Tag = "VBP"
		// "he [loves]"
		case prev.Tag == "PRP" && cur.Tag == "NNS" && verbBases[strings.TrimSuffix(word, "s")]:
			cur.Tag = "VBZ"
		// "has [loved]"
		case isHaveForm(strings.ToLower(prev.Text)) && cur.Tag == "VBD":
			cur.Tag = "VBN"
		}
	}

	return tokens
}

func (rt *ruleTagger) baseline(text string, sentenceStart bool) string {
	lower := strings.ToLower(text)
	if tag, ok := rt.lexicon[lower]; ok {
		return tag
	}
	if _, ok := emoticons[text]; ok {
		return "UH"
	}
	if isPunctuation(text) {
		return punctuationTag(text)
	}

	switch {
	case strings.HasPrefix(text, "@"), strings.HasPrefix(text, "http://"), strings.HasPrefix(text, "https://"):
		return "NN"
	case strings.HasPrefix(text, "#"):
		return "NNP"
	case isNumeric(text):
		return "CD"
	}

	if !sentenceStart && startsUpper(text) {
		if strings.HasSuffix(text, "s") && len(text) > 3 {
			return "NNPS"
		}
		return "NNP"
	}

	return suffixTag(lower)
}

// suffixTag guesses a tag for an open-class word from its ending.
func suffixTag(word string) string {
	switch {
	case verbBases[word]:
		return "VB"
	case adjectiveBases[word]:
		return "JJ"
	case len(word) > 4 && strings.HasSuffix(word, "ing"):
		return "VBG"
	case len(word) > 3 && strings.HasSuffix(word, "ed"):
		return "VBD"
	case len(word) > 3 && strings.HasSuffix(word, "ly"):
		return "RB"
	case len(word) > 4 && strings.HasSuffix(word, "est"):
		return "JJS"
	case hasAnySuffixOf(word, adjectiveSuffixes):
		return "JJ"
	case len(word) > 3 && strings.HasSuffix(word, "s") && !hasAnySuffixOf(word, []string{"ss", "us", "is"}):
		return "NNS"
	}
	return "NN"
}

var adjectiveSuffixes = []string{"ous", "ful", "ive", "able", "ible", "less", "ish", "ical", "ic", "al", "y"}

func hasAnySuffixOf(word string, sfx []string) bool {
	for _, s := range sfx {
		if len(word) > len(s)+2 && strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}

func punctuationTag(text string) string {
	switch text {
	case ".", "!", "?":
		return "."
	case ",":
		return ","
	case ":", ";", "...", "-", "--":
		return ":"
	case "(", "[", "{":
		return "("
	case ")", "]", "}":
		return ")"
	case `"`, "''", "'":
		return "''"
	case "``":
		return "``"
	case "$":
		return "$"
	case "#":
		return "#"
	}
	return "SYM"
}

func isSentenceEnd(text string) bool {
	return text == "." || text == "!" || text == "?"
}

func isNominalOrAdj(tag string) bool {
	return strings.HasPrefix(tag, "NN") || strings.HasPrefix(tag, "JJ")
}

func isClosedClass(word string) bool {
	_, ok := tagLexicon[word]
	return ok
}

func isHaveForm(word string) bool {
	return word == "have" || word == "has" || word == "had" || word == "'ve"
}

func isNumeric(text string) bool {
	digits := 0
	for _, r := range text {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '.' || r == ',' || r == '%':
		default:
			return false
		}
	}
	return digits > 0
}

func startsUpper(text string) bool {
	for _, r := range text {
		return unicode.IsUpper(r)
	}
	return false
}

// tagLexicon holds closed-class words and frequent irregular forms.
var tagLexicon = map[string]string{
	// determiners
	"a": "DT", "an": "DT", "the": "DT", "this": "DT", "that": "DT", "these": "DT",
	"those": "DT", "every": "DT", "each": "DT", "some": "DT", "any": "DT", "no": "DT",
	"all": "DT", "both": "DT", "another": "DT", "either": "DT", "neither": "DT",
	// pronouns
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP", "we": "PRP",
	"they": "PRP", "me": "PRP", "him": "PRP", "us": "PRP", "them": "PRP",
	"myself": "PRP", "yourself": "PRP", "himself": "PRP", "herself": "PRP",
	"itself": "PRP", "ourselves": "PRP", "themselves": "PRP", "u": "PRP",
	"my": "PRP$", "your": "PRP$", "his": "PRP$", "her": "PRP$", "its": "PRP$",
	"our": "PRP$", "their": "PRP$", "ur": "PRP$",
	"who": "WP", "whom": "WP", "what": "WP", "whose": "WP$", "which": "WDT",
	"when": "WRB", "where": "WRB", "why": "WRB", "how": "WRB",
	// prepositions and conjunctions
	"in": "IN", "on": "IN", "at": "IN", "by": "IN", "for": "IN", "with": "IN",
	"about": "IN", "against": "IN", "between": "IN", "into": "IN", "through": "IN",
	"during": "IN", "before": "IN", "after": "IN", "above": "IN", "below": "IN",
	"from": "IN", "of": "IN", "off": "IN", "over": "IN", "under": "IN", "since": "IN",
	"until": "IN", "while": "IN", "because": "IN", "if": "IN", "than": "IN",
	"though": "IN", "although": "IN", "without": "IN", "within": "IN", "like": "IN",
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "yet": "CC", "so": "RB",
	"to": "TO",
	// modals
	"can": "MD", "could": "MD", "may": "MD", "might": "MD", "must": "MD",
	"shall": "MD", "should": "MD", "will": "MD", "would": "MD", "'ll": "MD",
	"ca": "MD", "wo": "MD", "'d": "MD",
	// be, have, do
	"be": "VB", "am": "VBP", "are": "VBP", "'re": "VBP", "'m": "VBP", "is": "VBZ",
	"was": "VBD", "were": "VBD", "been": "VBN", "being": "VBG",
	"have": "VBP", "'ve": "VBP", "has": "VBZ", "had": "VBD", "having": "VBG",
	"do": "VBP", "does": "VBZ", "did": "VBD", "done": "VBN", "doing": "VBG",
	// frequent irregular verbs
	"went": "VBD", "gone": "VBN", "got": "VBD", "gotten": "VBN", "made": "VBD",
	"said": "VBD", "took": "VBD", "taken": "VBN", "came": "VBD", "saw": "VBD",
	"seen": "VBN", "knew": "VBD", "known": "VBN", "thought": "VBD", "felt": "VBD",
	"left": "VBD", "gave": "VBD", "given": "VBN", "found": "VBD", "told": "VBD",
	"became": "VBD", "brought": "VBD", "bought": "VBD", "ran": "VBD", "ate": "VBD",
	"eaten": "VBN", "wrote": "VBD", "written": "VBN", "met": "VBD", "kept": "VBD",
	"slept": "VBD", "lost": "VBD", "won": "VBD", "paid": "VBD", "sent": "VBD",
	"spent": "VBD", "built": "VBD", "began": "VBD", "begun": "VBN", "broke": "VBD",
	"broken": "VBN", "chose": "VBD", "chosen": "VBN", "forgot": "VBD",
	"forgotten": "VBN", "heard": "VBD", "held": "VBD", "meant": "VBD", "sang": "VBD",
	"sung": "VBN", "stood": "VBD", "understood": "VBD", "woke": "VBD", "wore": "VBD",
	// adverbs and particles
	"not": "RB", "n't": "RB", "never": "RB", "very": "RB", "too": "RB", "also": "RB",
	"just": "RB", "really": "RB", "now": "RB", "then": "RB", "here": "RB",
	"there": "EX", "again": "RB", "always": "RB", "still": "RB", "already": "RB",
	"even": "RB", "soon": "RB", "today": "NN", "tomorrow": "NN", "tonight": "NN",
	"yesterday": "NN", "only": "RB", "ever": "RB", "much": "RB", "more": "JJR",
	"most": "JJS", "less": "JJR", "least": "JJS", "better": "JJR", "best": "JJS",
	"worse": "JJR", "worst": "JJS", "up": "RP", "out": "RP", "down": "RP",
	// interjections
	"oh": "UH", "yes": "UH", "yeah": "UH", "lol": "UH", "haha": "UH", "hahaha": "UH",
	"wow": "UH", "ugh": "UH", "omg": "UH", "hey": "UH", "hi": "UH", "hello": "UH",
	"please": "UH", "thanks": "NNS", "thank": "VBP",
	"'s": "POS",
}

// verbBases are frequent base-form verbs that suffix rules would misread.
var verbBases = map[string]bool{
	"love": true, "hate": true, "like": true, "want": true, "need": true, "feel": true,
	"miss": true, "enjoy": true, "hope": true, "wish": true, "think": true, "know": true,
	"see": true, "get": true, "make": true, "go": true, "come": true, "take": true,
	"give": true, "say": true, "tell": true, "ask": true, "work": true, "try": true,
	"help": true, "thank": true, "follow": true, "watch": true, "wait": true,
	"look": true, "play": true, "win": true, "lose": true, "buy": true, "sleep": true,
	"eat": true, "cry": true, "laugh": true, "smile": true, "care": true, "adore": true,
	"appreciate": true, "suck": true, "ruin": true, "annoy": true, "hurt": true,
	"fail": true, "break": true, "recommend": true, "regret": true, "worry": true,
}

// adjectiveBases are frequent gradable adjectives; they double as the lemma
// lexicon for comparative and superlative detachment.
var adjectiveBases = map[string]bool{
	"good": true, "bad": true, "great": true, "nice": true, "happy": true, "sad": true,
	"big": true, "small": true, "new": true, "old": true, "long": true, "short": true,
	"high": true, "low": true, "fast": true, "slow": true, "hot": true, "cold": true,
	"cool": true, "warm": true, "easy": true, "hard": true, "early": true, "late": true,
	"young": true, "strong": true, "weak": true, "sweet": true, "cute": true,
	"pretty": true, "ugly": true, "funny": true, "lucky": true, "busy": true,
	"crazy": true, "lovely": true, "tired": true, "sick": true, "glad": true,
	"proud": true, "kind": true, "rude": true, "poor": true, "rich": true,
	"cheap": true, "fine": true, "safe": true, "close": true, "far": true,
	"dark": true, "bright": true, "clean": true, "dirty": true, "loud": true,
	"quiet": true, "smart": true, "dumb": true, "wise": true, "fun": true,
	"awesome": true, "amazing": true, "terrible": true, "horrible": true,
	"awful": true, "boring": true, "excited": true, "exciting": true, "perfect": true,
	"beautiful": true, "wonderful": true, "fantastic": true, "excellent": true,
	"brilliant": true, "lonely": true, "angry": true, "upset": true,
	"scary": true, "silly": true, "friendly": true, "healthy": true, "ready": true,
	"sorry": true, "real": true, "true": true, "wrong": true, "right": true,
	"full": true, "free": true, "huge": true, "tiny": true, "wet": true, "dry": true,
	"thin": true, "fat": true, "deep": true, "soft": true, "calm": true, "brave": true,
	"gentle": true, "simple": true, "polite": true, "mad": true, "grim": true,
}
