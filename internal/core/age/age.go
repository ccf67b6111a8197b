// Package age pulls a plausible age out of free text
package age

import (
	"golang.org/x/text/width"
)

// Extract returns the first run of exactly 2 or 3 ASCII digits bounded by non digits or the string edges
// Fullwidth digits are folded first. No semantic check is made: "order #123" yields 123,
// and longer runs such as "1234" are skipped entirely
func Extract(text string) (int, bool) {
	s := width.Fold.String(text)
	for i := 0; i < len(s); {
		if !isDigit(s[i]) {
			i++
			continue
		}
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if n := j - i; n == 2 || n == 3 {
			v := 0
			for _, c := range []byte(s[i:j]) {
				v = v*10 + int(c-'0')
			}
			return v, true
		}
		i = j
	}
	return 0, false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
