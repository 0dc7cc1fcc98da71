package matcher

import "strings"

// stopwords are connective tokens dropped during normalization. Dropping
// "and" lets "Reserves & Surplus" and "Reserves and Surplus" normalize to the
// same string. "total" is deliberately not a stopword: the default alias
// lists rely on it to separate "total assets" from "current assets".
var stopwords = map[string]bool{
	"the": true,
	"and": true,
	"of":  true,
}

// abbreviations expands domain shorthand commonly seen in statement labels.
// Keys are matched after punctuation stripping, so "Op. Profit" reaches here
// as the token "op".
var abbreviations = map[string]string{
	"op":    "operating",
	"rev":   "revenue",
	"exp":   "expenses",
	"dep":   "depreciation",
	"depn":  "depreciation",
	"amort": "amortization",
	"liab":  "liabilities",
	"equiv": "equivalents",
	"yr":    "year",
}

// Normalize canonicalizes a raw label for comparison: lowercase, punctuation
// stripped, whitespace collapsed, abbreviations expanded, stop-words removed.
// Matching the same label twice is idempotent because everything here is a
// pure function of the input string.
func Normalize(label string) string {
	return strings.Join(Tokenize(label), " ")
}

// Tokenize returns the normalized word tokens of a label.
func Tokenize(label string) []string {
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			// Punctuation and symbols become token boundaries.
			b.WriteByte(' ')
		}
	}

	raw := strings.Fields(b.String())
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if expanded, ok := abbreviations[tok]; ok {
			tok = expanded
		}
		if stopwords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
