package interpret

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases the message and strips diacritics so that vocabulary
// matching is accent-insensitive ("Pagué" → "pague"). The text is canonically
// decomposed (NFD), combining marks are removed and the result is recomposed.
// Total over every input, including the empty string, and idempotent.
func Normalize(raw string) string {
	// transform chains carry internal buffers, so build one per call rather
	// than sharing a package-level instance across goroutines.
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(chain, raw)
	if err != nil {
		// The remover never fails on valid UTF-8; on malformed input keep
		// the original bytes so classification still sees something.
		stripped = raw
	}
	return strings.ToLower(stripped)
}
