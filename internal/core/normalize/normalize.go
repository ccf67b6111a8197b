// Package normalize folds query and keyword text into a comparable form for matching
// Pipeline order
// 1 Sanitize controls and repair UTF-8
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Remove zero-width format chars and combining marks
// 5 Width fold fullwidth to ASCII
//
// Whitespace and punctuation are left in place, substring containment works on the folded text as is
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// transformer chains hold state between calls, so each caller takes its own
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Fold returns the matching form of s. Fold is idempotent
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(Sanitize(s), "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// transform only fails on malformed input, which Sanitize already dropped
		return strings.ToLower(s)
	}
	return out
}

// Slug turns a keyword into an identifier: folded, runs of non alphanumerics become one underscore
// "Driving License" -> "driving_license"
func Slug(s string) string {
	s = Fold(s)
	var b strings.Builder
	b.Grow(len(s))
	gap := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if gap && b.Len() > 0 {
				b.WriteByte('_')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}
	return b.String()
}
