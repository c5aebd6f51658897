package text

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Replacement is printed for runes the fonts cannot show.
const Replacement = '?'

func printable(r rune) rune {
	if r == '\n' || (r >= 0x20 && r < 0x7F) {
		return r
	}
	return Replacement
}

// Fold reduces s to printable ASCII and newlines. Combining marks are
// removed after canonical decomposition ("é" becomes "e"); other runes
// outside ASCII become Replacement.
func Fold(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		runes.Map(printable),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
