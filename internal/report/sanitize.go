package report

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Placeholder replaces characters the report fonts cannot encode.
const Placeholder = '?'

// Substitutions maps punctuation outside Latin-1 to ASCII look-alikes.
// Order is significant: earlier entries win when keys overlap.
var Substitutions = []struct {
	From, To string
}{
	{"–", "-"},  // en dash
	{"—", "-"},  // em dash
	{"‒", "-"},  // figure dash
	{"―", "-"},  // horizontal bar
	{"‗", "="},  // double low line
	{"‘", "'"},  // left single quotation mark
	{"’", "'"},  // right single quotation mark
	{"‚", ","},  // single low-9 quotation mark
	{"‛", "'"},  // single high-reversed-9 quotation mark
	{"“", `"`},  // left double quotation mark
	{"”", `"`},  // right double quotation mark
	{"•", "->"}, // bullet
	{"′", "'"},  // prime
	{"″", `"`},  // double prime
	{"‹", "<"},  // single left-pointing angle quotation mark
	{"›", ">"},  // single right-pointing angle quotation mark
}

var substituter = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(Substitutions))
	for _, s := range Substitutions {
		pairs = append(pairs, s.From, s.To)
	}
	return strings.NewReplacer(pairs...)
}()

// Sanitize applies the substitution table, then replaces every remaining
// character outside printable Latin-1 with Placeholder. It returns the
// cleaned text and the number of placeholders written.
func Sanitize(text string) (string, int) {
	text = substituter.Replace(text)

	var sb strings.Builder
	sb.Grow(len(text))
	replaced := 0
	for _, r := range text {
		if encodable(r) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteRune(Placeholder)
		replaced++
	}
	return sb.String(), replaced
}

func encodable(r rune) bool {
	if r >= 0x80 && r < 0xa0 {
		// C1 controls are valid Latin-1 but have no glyph in the core fonts.
		return false
	}
	_, ok := charmap.ISO8859_1.EncodeRune(r)
	return ok
}
