package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops bytes that never belong in a query or a catalog cell:
// NUL and ASCII controls other than tab and line breaks, DEL, C1 controls and invalid UTF-8
// Clean input is returned unchanged without allocating
func Sanitize(s string) string {
	if clean(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !dropped(r, size) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func clean(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if dropped(r, size) {
			return false
		}
		i += size
	}
	return true
}

func dropped(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size <= 1:
		return true
	case r == '\n' || r == '\r' || r == '\t':
		return false
	case r < 0x20, r == 0x7F:
		return true
	case r >= 0x80 && r <= 0x9F:
		return true
	}
	return false
}
