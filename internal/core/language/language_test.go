package language

import (
	"context"
	stderrs "errors"
	"testing"

	perr "legallens/internal/platform/errors"
)

func TestParse(t *testing.T) {
	tests := map[string]Code{
		"":          "",
		"  ":        "",
		"en":        English,
		"EN":        English,
		"hi":        "hi",
		"hi-IN":     "hi",
		"ta_IN":     "ta",
		"unknown":   Unknown,
		"UNKNOWN":   Unknown,
		"!!":        Unknown,
		"not a tag": Unknown,
	}
	for in, want := range tests {
		if got := Parse(in); got != want {
			t.Fatalf("Parse(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNeedsTranslation(t *testing.T) {
	for c, want := range map[Code]bool{English: false, Unknown: false, "": false, "hi": true, "ta": true} {
		if got := c.NeedsTranslation(); got != want {
			t.Fatalf("%q.NeedsTranslation() = %v", c, got)
		}
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := stderrs.New("dial tcp: connection refused")

	err := Translation(cause, "translate hi->en")
	if !stderrs.Is(err, ErrTranslation) || !stderrs.Is(err, cause) {
		t.Fatalf("Translation does not match sentinel and cause: %v", err)
	}
	if stderrs.Is(err, ErrDetection) {
		t.Fatalf("translation error must not match ErrDetection")
	}
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}

	derr := Detection(nil, "detect")
	if !stderrs.Is(derr, ErrDetection) {
		t.Fatalf("Detection(nil) lost sentinel")
	}

	// rewrapping does not stack sentinels
	again := Translation(err, "outer")
	if !stderrs.Is(again, ErrTranslation) || !stderrs.Is(again, cause) {
		t.Fatalf("rewrap lost chain: %v", again)
	}
}

func TestFuncAdapters(t *testing.T) {
	var d Detector = DetectorFunc(func(context.Context, string) (Code, error) { return "ta", nil })
	var tr Translator = TranslatorFunc(func(_ context.Context, s string, from, to Code) (string, error) {
		return string(from) + ">" + string(to) + ":" + s, nil
	})
	if c, _ := d.Detect(context.Background(), "x"); c != "ta" {
		t.Fatalf("detect = %q", c)
	}
	if s, _ := tr.Translate(context.Background(), "x", "hi", English); s != "hi>en:x" {
		t.Fatalf("translate = %q", s)
	}
}
