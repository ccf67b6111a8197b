package normalize

import (
	"testing"
)

func TestFold_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "identity ascii", in: "how do i get a license", out: "how do i get a license"},
		{name: "case fold", in: "Driving LICENSE", out: "driving license"},
		{name: "utf8 repair drops invalid bytes", in: string([]byte{0xff, 'p', 'a', 'n', 0x80}), out: "pan"},
		{name: "remove zero-widths", in: "pass\u200Bport\uFEFF", out: "passport"},
		{name: "remove combining marks", in: "x\u0301y", out: "xy"},
		{name: "width fold fullwidth", in: "ＰＡＮ card", out: "pan card"},
		{name: "nfkc ligature", in: "oﬃce", out: "office"},
		{name: "digits untouched", in: "I am 25 years old", out: "i am 25 years old"},
		{name: "fullwidth digits fold", in: "age ２５", out: "age 25"},
		{name: "whitespace kept", in: "a\t\tb  c", out: "a\t\tb  c"},
		{name: "empty", in: "", out: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Fold(tc.in)
			if got != tc.out {
				t.Fatalf("Fold(%q) = %q, want %q", tc.in, got, tc.out)
			}
			if again := Fold(got); again != got {
				t.Fatalf("Fold not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"driving license":    "driving_license",
		"  Driving  License": "driving_license",
		"pan-card":           "pan_card",
		"rti / info":         "rti_info",
		"!!!":                "",
		"passport2":          "passport2",
	}
	for in, want := range tests {
		if got := Slug(in); got != want {
			t.Fatalf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitize(t *testing.T) {
	in := "a\x00b\x7fc\u0085d\te\n"
	want := "abcd\te\n"
	if got := Sanitize(in); got != want {
		t.Fatalf("Sanitize(%q) = %q, want %q", in, got, want)
	}
	clean := "already clean"
	if got := Sanitize(clean); got != clean {
		t.Fatalf("Sanitize changed clean input: %q", got)
	}
}
