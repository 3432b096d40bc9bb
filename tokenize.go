package distant

import (
	"strings"
	"unicode"
)

// A Tokenizer splits text into word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// wordTokenizer emits lowercased alphabetic runs. Digits and punctuation are
// discarded, and an apostrophe terminates the current run, so contractions
// split at it ("don't" -> ["don", "t"]).
type wordTokenizer struct {
	sanitizer *strings.Replacer
}

// tokenSanitizer maps typographic quote variants onto ASCII before the rune
// scan so curly apostrophes split contractions the same way plain ones do.
var tokenSanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")

// NewWordTokenizer returns the default word tokenizer.
func NewWordTokenizer() Tokenizer {
	return &wordTokenizer{sanitizer: tokenSanitizer}
}

func (t *wordTokenizer) Tokenize(text string) []string {
	clean := t.sanitizer.Replace(text)

	var tokens []string
	var run strings.Builder
	for _, r := range clean {
		if unicode.IsLetter(r) {
			run.WriteRune(unicode.ToLower(r))
			continue
		}
		if run.Len() > 0 {
			tokens = append(tokens, run.String())
			run.Reset()
		}
	}
	if run.Len() > 0 {
		tokens = append(tokens, run.String())
	}
	return tokens
}

// BuildFrequencyTable counts the tokens that survive the stopword set and the
// minimum-length filter. Identical input always yields an identical table.
func BuildFrequencyTable(tokens []string, stops *StopwordSet, minLen int) FrequencyTable {
	table := make(FrequencyTable)
	for _, tok := range tokens {
		if len(tok) < minLen || stops.Contains(tok) {
			continue
		}
		table[tok]++
	}
	return table
}

// SurvivingTokens returns, in document order, the tokens that the frequency
// table was built from. Style metrics need the ordered sequence, not just the
// counts.
func SurvivingTokens(tokens []string, stops *StopwordSet, minLen int) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) < minLen || stops.Contains(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
