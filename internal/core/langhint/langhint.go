// Package langhint guesses a language from the dominant Unicode script of a text.
// It works offline and backs the detector when no remote service is configured
package langhint

import (
	"context"
	"unicode"

	"legallens/internal/core/language"
)

// script -> language when the mapping is low ambiguity. Han, Cyrillic and Arabic-script Urdu/Persian are not
var scripts = []struct {
	name  string
	table *unicode.RangeTable
	lang  language.Code
}{
	{"Hiragana", unicode.Hiragana, "ja"},
	{"Katakana", unicode.Katakana, "ja"},
	{"Hangul", unicode.Hangul, "ko"},
	{"Han", unicode.Han, ""},
	{"Devanagari", unicode.Devanagari, "hi"},
	{"Tamil", unicode.Tamil, "ta"},
	{"Bengali", unicode.Bengali, "bn"},
	{"Telugu", unicode.Telugu, "te"},
	{"Kannada", unicode.Kannada, "kn"},
	{"Malayalam", unicode.Malayalam, "ml"},
	{"Gujarati", unicode.Gujarati, "gu"},
	{"Gurmukhi", unicode.Gurmukhi, "pa"},
	{"Arabic", unicode.Arabic, "ar"},
	{"Hebrew", unicode.Hebrew, "he"},
	{"Thai", unicode.Thai, "th"},
	{"Greek", unicode.Greek, "el"},
	{"Cyrillic", unicode.Cyrillic, ""},
	{"Latin", unicode.Latin, "en"},
}

// DetectScriptAndLang returns the predominant script name and its language, if the mapping is strong.
// Lang is empty when fewer than minLetters letters were seen or the script is ambiguous.
// Japanese wins whenever kana is present, since Japanese text mixes kana with Han
func DetectScriptAndLang(s string, minLetters int) (script string, lang language.Code) {
	counts := make([]int, len(scripts))
	total := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		for i, sc := range scripts {
			if unicode.Is(sc.table, r) {
				counts[i]++
				break
			}
		}
	}
	if total == 0 {
		return "", ""
	}

	best := -1
	for i, n := range counts {
		// ties keep the earlier, more specific script over Latin
		if n > 0 && (best < 0 || n > counts[best]) {
			best = i
		}
	}
	if best < 0 {
		return "", ""
	}
	script = scripts[best].name
	if total < minLetters {
		return script, ""
	}
	if counts[0] > 0 || counts[1] > 0 {
		return script, "ja"
	}
	return script, scripts[best].lang
}

// DefaultMinLetters is low enough for one line spoken queries
const DefaultMinLetters = 3

// Detector implements language.Detector from script alone
type Detector struct {
	MinLetters int
}

// Detect implements language.Detector. It never fails; undecidable text is language.Unknown
func (d Detector) Detect(_ context.Context, text string) (language.Code, error) {
	n := d.MinLetters
	if n <= 0 {
		n = DefaultMinLetters
	}
	_, lang := DetectScriptAndLang(text, n)
	if lang == "" {
		return language.Unknown, nil
	}
	return lang, nil
}
