// Package normalize canonicalizes free-text catalog fields for comparison
// and search indexing.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ForSearch folds a string into its canonical comparison form: NFKC
// compatibility normalization (full-width alphanumerics and symbols become
// half-width, half-width katakana becomes standard width), lowercase, and
// trimmed of surrounding whitespace. Kana stays kana; only width and case
// are folded. The result is idempotent and empty input yields "".
func ForSearch(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(strings.ToLower(norm.NFKC.String(s)))
}

// Equal reports whether two strings are equal after search normalization.
func Equal(a, b string) bool {
	return ForSearch(a) == ForSearch(b)
}
