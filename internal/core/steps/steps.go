// Package steps turns a raw procedure paragraph into numbered steps
package steps

import (
	"strconv"
	"strings"
)

// Delimiter is the sentence boundary: a period followed by exactly one space
// "e.g.x" is not a boundary, and ".  " leaves a leading space on the next step
const Delimiter = ". "

// quotes trimmed from both ends along with whitespace
const quotes = "\"“”"

// Sequence is an ordered list of numbered steps, "1. ..." onward
type Sequence []string

// Format trims surrounding quotes and whitespace, splits on Delimiter and numbers the fragments from 1
// Fragments are kept verbatim, the final one keeps its trailing period
func Format(text string) Sequence {
	text = strings.Trim(strings.TrimSpace(text), quotes)
	text = strings.TrimSpace(text)
	if text == "" {
		return Sequence{}
	}
	frags := strings.Split(text, Delimiter)
	out := make(Sequence, len(frags))
	for i, f := range frags {
		out[i] = strconv.Itoa(i+1) + ". " + f
	}
	return out
}

// String joins the steps with newlines
func (s Sequence) String() string { return strings.Join(s, "\n") }
