package tweetnlp

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenTester func(string) bool

// A Tokenizer splits raw text into word tokens.
type Tokenizer interface {
	Tokenize(string) []*Token
}

// iterTokenizer splits a sentence into words.
type iterTokenizer struct {
	specialRE      *regexp.Regexp
	sanitizer      *strings.Replacer
	contractions   []string
	splitCases     []string
	suffixes       []string
	prefixes       []string
	emoticons      map[string]int
	isUnsplittable TokenTester
	tokenPool      *TokenPool
}

type TokenizerOptFunc func(*iterTokenizer)

// UsingIsUnsplittable gives a function that tests whether a token is splittable or not.
func UsingIsUnsplittable(x TokenTester) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.isUnsplittable = x
	}
}

// Use the provided special regex for unsplittable tokens.
func UsingSpecialRE(x *regexp.Regexp) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.specialRE = x
	}
}

// Use the provided sanitizer.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.sanitizer = x
	}
}

// Use the provided suffixes.
func UsingSuffixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.suffixes = x
	}
}

// Use the provided prefixes.
func UsingPrefixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.prefixes = x
	}
}

// Use the provided map of emoticons.
func UsingEmoticons(x map[string]int) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.emoticons = x
	}
}

// Use the provided contractions.
func UsingContractions(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.contractions = x
	}
}

// UsingTokenPool sets the token pool for memory optimization.
func UsingTokenPool(pool *TokenPool) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.tokenPool = pool
	}
}

// NewIterTokenizer builds the rule based word splitter. URLs, mentions,
// hashtags and emoticons survive as single tokens.
func NewIterTokenizer(opts ...TokenizerOptFunc) *iterTokenizer {
	tok := new(iterTokenizer)

	tok.contractions = contractions
	tok.emoticons = emoticons
	tok.isUnsplittable = func(_ string) bool { return false }
	tok.prefixes = prefixes
	tok.sanitizer = sanitizer
	tok.specialRE = internalRE
	tok.suffixes = suffixes
	tok.tokenPool = NewTokenPool()

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	tok.splitCases = append(tok.splitCases, tok.contractions...)

	return tok
}

func (t *iterTokenizer) addToken(s string, start int, toks []*Token) []*Token {
	if strings.TrimSpace(s) != "" {
		token := t.tokenPool.Get()
		token.Text = s
		token.Start = start
		token.End = start + len(s)
		toks = append(toks, token)
	}
	return toks
}

// Release returns tokens to the tokenizer's pool. The tokens must not be
// used afterwards.
func (t *iterTokenizer) Release(tokens []*Token) {
	for _, tok := range tokens {
		t.tokenPool.Put(tok)
	}
}

func (t *iterTokenizer) isSpecial(token string) bool {
	_, found := t.emoticons[token]
	return found || t.specialRE.MatchString(token) || t.isUnsplittable(token)
}

func (t *iterTokenizer) doSplit(token string, baseOffset int) []*Token {
	tokens := []*Token{}
	suffs := []*Token{}
	currentOffset := baseOffset

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		if t.isSpecial(token) {
			// We've found a special case (e.g., an emoticon or a URL) -- so, we add
			// it as a token without any further processing.
			tokens = t.addToken(token, currentOffset, tokens)
			break
		}
		last = utf8.RuneCountInString(token)
		lower := strings.ToLower(token)
		if hasAnyPrefix(token, t.prefixes) {
			// Remove prefixes -- e.g., $100 -> [$, 100].
			tokens = t.addToken(string(token[0]), currentOffset, tokens)
			token = token[1:]
			currentOffset++
		} else if idx := hasAnyIndex(lower, t.splitCases); idx > -1 {
			// Handle "they'll", "I'll", "Don't", "won't".
			//
			// they'll -> [they, 'll].
			// don't -> [do, n't].
			tokens = t.addToken(token[:idx], currentOffset, tokens)
			currentOffset += idx
			token = token[idx:]
		} else if hasAnySuffix(token, t.suffixes) {
			// Remove suffixes -- e.g., Well) -> [Well, )].
			suffixStart := currentOffset + len(token) - 1
			suffixToken := t.tokenPool.Get()
			suffixToken.Text = string(token[len(token)-1])
			suffixToken.Start = suffixStart
			suffixToken.End = suffixStart + 1
			suffs = append([]*Token{suffixToken}, suffs...)
			token = token[:len(token)-1]
		} else {
			tokens = t.addToken(token, currentOffset, tokens)
			break
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits a sentence into a slice of words with position tracking.
func (t *iterTokenizer) Tokenize(text string) []*Token {
	var tokens []*Token

	clean, white := t.sanitizer.Replace(text), false
	length := len(clean)

	start, index := 0, 0
	type split struct {
		origin int
		toks   []*Token
	}
	cache := map[string]split{}

	for index <= length {
		uc, size := utf8.DecodeRuneInString(clean[index:])
		if size == 0 {
			break
		} else if index == 0 {
			white = unicode.IsSpace(uc)
		}
		if unicode.IsSpace(uc) != white {
			if start < index {
				span := clean[start:index]
				if cached, found := cache[span]; found {
					// Clone tokens and move them to this span's offset.
					shift := start - cached.origin
					for _, tok := range cached.toks {
						newTok := t.tokenPool.Get()
						newTok.Text = tok.Text
						newTok.Start = tok.Start + shift
						newTok.End = tok.End + shift
						tokens = append(tokens, newTok)
					}
				} else {
					toks := t.doSplit(span, start)
					cache[span] = split{origin: start, toks: toks}
					tokens = append(tokens, toks...)
				}
			}
			start = index
			white = !white
		}
		index += size
	}

	if start < index && !white {
		tokens = append(tokens, t.doSplit(clean[start:index], start)...)
	}

	return tokens
}

func hasAnyPrefix(s string, prefixes []string) bool {
	n := len(s)
	for _, prefix := range prefixes {
		if n > len(prefix) && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	n := len(s)
	for _, suffix := range suffixes {
		if n > len(suffix) && strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func hasAnyIndex(s string, cases []string) int {
	n := len(s)
	for _, c := range cases {
		if idx := strings.Index(s, c); idx >= 0 && n > len(c) {
			return idx
		}
	}
	return -1
}

var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^[A-Z][a-z]{1,2}\.$|^https?://\S+$|^@\w+$|^#\w+$`)
var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">")
var contractions = []string{"'ll", "'s", "'re", "'m", "'ve", "'d", "n't"}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'"}
var prefixes = []string{"$", "(", `"`, "["}
var emoticons = map[string]int{
	"(-8":         1,
	"(-;":         1,
	"(-_-)":       1,
	"(._.)":       1,
	"(:":          1,
	"(=":          1,
	"(o:":         1,
	"(¬_¬)":       1,
	"(ಠ_ಠ)":       1,
	"(╯°□°）╯︵┻━┻": 1,
	"-__-":        1,
	"8-)":         1,
	"8-D":         1,
	"8D":          1,
	":(":          1,
	":((":         1,
	":(((":        1,
	":()":         1,
	":)":          1,
	":))":         1,
	":)))":        1,
	":-(":         1,
	":-)":         1,
	":-))":        1,
	":-)))":       1,
	":-*":         1,
	":-/":         1,
	":-D":         1,
	":-X":         1,
	":-]":         1,
	":-o":         1,
	":-p":         1,
	":-x":         1,
	":-|":         1,
	":-}":         1,
	":0":          1,
	":3":          1,
	":D":          1,
	":P":          1,
	":]":          1,
	":`(":         1,
	":`)":         1,
	":`-(":        1,
	":o":          1,
	":o)":         1,
	";)":          1,
	";-)":         1,
	"<3":          1,
	"=(":          1,
	"=)":          1,
	"=D":          1,
	"=|":          1,
	"@_@":         1,
	"O.o":         1,
	"O_o":         1,
	"V_V":         1,
	"XD":          1,
	"XDD":         1,
	"[-:":         1,
	"^___^":       1,
	"^_^":         1,
	"o_0":         1,
	"o_O":         1,
	"o_o":         1,
	"v_v":         1,
	"xD":          1,
	"xDD":         1,
	"¯\\(ツ)/¯":    1,
}
