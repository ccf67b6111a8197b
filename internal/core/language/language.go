// Package language is the contract with the detection and translation backends
// English is the pivot: matching and catalog lookup always happen in English
package language

import (
	"context"
	stderrs "errors"
	"strings"

	perr "legallens/internal/platform/errors"

	xlang "golang.org/x/text/language"
)

// Code is a lowercase ISO 639-1 style language code such as "en", "hi", "ta"
type Code string

const (
	// English is the pivot language
	English Code = "en"
	// Unknown marks a failed or skipped detection; no translation is attempted for it
	Unknown Code = "unknown"
)

var (
	// ErrDetection marks a detection backend failure; callers recover it as Unknown
	ErrDetection = stderrs.New("language detection failed")
	// ErrTranslation marks a translation backend failure; terminal for the request
	ErrTranslation = stderrs.New("translation failed")
)

// Detector guesses the language of a text
type Detector interface {
	Detect(ctx context.Context, text string) (Code, error)
}

// Translator translates text between two languages
type Translator interface {
	Translate(ctx context.Context, text string, from, to Code) (string, error)
}

// Service is both halves of the backend
type Service interface {
	Detector
	Translator
}

// DetectorFunc adapts a function to Detector
type DetectorFunc func(ctx context.Context, text string) (Code, error)

// Detect implements Detector
func (f DetectorFunc) Detect(ctx context.Context, text string) (Code, error) { return f(ctx, text) }

// TranslatorFunc adapts a function to Translator
type TranslatorFunc func(ctx context.Context, text string, from, to Code) (string, error)

// Translate implements Translator
func (f TranslatorFunc) Translate(ctx context.Context, text string, from, to Code) (string, error) {
	return f(ctx, text, from, to)
}

// Parse canonicalizes a user supplied code or tag ("HI", "hi-IN", "ta_IN") to its base language
// Empty input returns "", the caller should detect. Unparseable input returns Unknown
func Parse(s string) Code {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.EqualFold(s, string(Unknown)) {
		return Unknown
	}
	tag, err := xlang.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return Unknown
	}
	base, conf := tag.Base()
	if conf == xlang.No {
		return Unknown
	}
	return Code(base.String())
}

// NeedsTranslation reports whether text in c must go through the pivot
// English, Unknown and the empty code never do
func (c Code) NeedsTranslation() bool { return c != "" && c != English && c != Unknown }

// String implements fmt.Stringer
func (c Code) String() string { return string(c) }

// Detection wraps a backend error as ErrDetection with an unavailable code
func Detection(cause error, msg string) error {
	return perr.Wrap(join(ErrDetection, cause), perr.ErrorCodeUnavailable, msg)
}

// Translation wraps a backend error as ErrTranslation with an unavailable code
func Translation(cause error, msg string) error {
	return perr.Wrap(join(ErrTranslation, cause), perr.ErrorCodeUnavailable, msg)
}

func join(sentinel, cause error) error {
	switch {
	case cause == nil:
		return sentinel
	case stderrs.Is(cause, sentinel):
		return cause
	}
	return &chained{sentinel: sentinel, cause: cause}
}

// chained reports the cause's message but matches both errors
type chained struct{ sentinel, cause error }

func (c *chained) Error() string   { return c.cause.Error() }
func (c *chained) Unwrap() []error { return []error{c.sentinel, c.cause} }
