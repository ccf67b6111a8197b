package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "legallens/internal/platform/errors"
)

type askBody struct {
	Query string `json:"query" validate:"required,notblank,max=20"`
	Lang  string `json:"lang,omitempty" validate:"omitempty,langtag"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_OK(t *testing.T) {
	got, err := ParseJSON[askBody](post(`{"query":"passport","lang":"hi"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Query != "passport" || got.Lang != "hi" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		code  perr.ErrorCode
		field string
		msg   string
	}{
		{"empty", ``, perr.ErrorCodeJSON, "", "empty body"},
		{"whitespace", "  \n", perr.ErrorCodeJSON, "", "empty body"},
		{"broken", `{`, perr.ErrorCodeJSON, "", "invalid JSON"},
		{"unknown field", `{"query":"x","extra":1}`, perr.ErrorCodeJSON, "", "unknown field"},
		{"trailing", `{"query":"x"}{"query":"y"}`, perr.ErrorCodeJSON, "", "trailing"},
		{"missing query", `{"lang":"en"}`, perr.ErrorCodeValidation, "query", "query is a required field"},
		{"blank query", `{"query":"   "}`, perr.ErrorCodeValidation, "query", "query must not be blank"},
		{"long query", `{"query":"` + strings.Repeat("a", 21) + `"}`, perr.ErrorCodeValidation, "query", "at most 20 characters"},
		{"bad lang", `{"query":"x","lang":"not a language"}`, perr.ErrorCodeValidation, "lang", "language code"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseJSON[askBody](post(c.body))
			if perr.CodeOf(err) != c.code {
				t.Fatalf("code = %v (%v), want %v", perr.CodeOf(err), err, c.code)
			}
			e, _ := perr.As(err)
			if e.Field() != c.field {
				t.Fatalf("field = %q, want %q", e.Field(), c.field)
			}
			if !strings.Contains(err.Error(), c.msg) {
				t.Fatalf("err = %q, want substring %q", err.Error(), c.msg)
			}
		})
	}
}

func TestParseJSON_Options(t *testing.T) {
	type note struct {
		Note string `json:"note"`
	}
	got, err := ParseJSON[note](post(``), JSONOptions{AllowEmptyBody: true})
	if err != nil || got.Note != "" {
		t.Fatalf("empty allowed = %+v %v", got, err)
	}

	if _, err := ParseJSON[note](post(`{"note":"abcdefgh"}`), JSONOptions{MaxBytes: 8}); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("oversize err = %v", err)
	}
	if _, err := ParseJSON[note](post(`{"note":"a","x":1}`), JSONOptions{AllowUnknown: true}); err != nil {
		t.Fatalf("unknown allowed err = %v", err)
	}
}

func TestParseJSON_InvalidUTF8(t *testing.T) {
	_, err := ParseJSON[askBody](post("{\"query\":\"\xff\"}"))
	if perr.CodeOf(err) != perr.ErrorCodeJSON || !strings.Contains(err.Error(), "utf-8") {
		t.Fatalf("err = %v", err)
	}
}

func TestLangTag(t *testing.T) {
	for _, ok := range []string{"en", "hi", "pt-BR", "zh_Hant", "unknown", ""} {
		if err := Validate(askBody{Query: "x", Lang: ok}); err != nil {
			t.Fatalf("lang %q rejected: %v", ok, err)
		}
	}
	if err := Validate(askBody{Query: "x", Lang: "english please"}); err == nil {
		t.Fatalf("free text lang accepted")
	}
}

func TestValidationFieldAndMessage_Foreign(t *testing.T) {
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil = %q %q", f, m)
	}
	if _, m := ValidationFieldAndMessage(perr.New(perr.ErrorCodeJSON, "boom")); m != "boom" {
		t.Fatalf("foreign msg = %q", m)
	}
}
