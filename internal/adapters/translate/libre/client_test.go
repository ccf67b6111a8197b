package libre

import (
	"context"
	"encoding/json"
	stderrs "errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"legallens/internal/core/language"
	perr "legallens/internal/platform/errors"
)

func newServer(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL + "/", APIKey: "k"}), srv
}

func TestTranslate_OK(t *testing.T) {
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/translate" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var in translateReq
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode: %v", err)
		}
		if in.Source != "hi" || in.Target != "en" || in.Format != "text" || in.APIKey != "k" {
			t.Errorf("request = %+v", in)
		}
		_ = json.NewEncoder(w).Encode(translateResp{TranslatedText: "how to get a passport"})
	})
	got, err := c.Translate(context.Background(), "पासपोर्ट कैसे", "hi", language.English)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "how to get a passport" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslate_SameLanguageShortCircuits(t *testing.T) {
	var calls atomic.Int32
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) { calls.Add(1) })
	got, err := c.Translate(context.Background(), "hello", "en", "en")
	if err != nil || got != "hello" || calls.Load() != 0 {
		t.Fatalf("got %q err %v calls %d", got, err, calls.Load())
	}
}

func TestTranslate_ServerErrorIsTranslationErrorWithoutRetry(t *testing.T) {
	var calls atomic.Int32
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"overloaded"}`))
	})
	_, err := c.Translate(context.Background(), "x", "ta", "en")
	if !stderrs.Is(err, language.ErrTranslation) {
		t.Fatalf("err = %v", err)
	}
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
	if calls.Load() != 1 {
		t.Fatalf("translate retried: %d calls", calls.Load())
	}
}

func TestTranslate_EmptyResultIsTranslationError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing field", `{}`},
		{"empty text", `{"translatedText":""}`},
		{"blank text", `{"translatedText":"  "}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})
			got, err := c.Translate(context.Background(), "1. Register on the portal", "en", "hi")
			if !stderrs.Is(err, language.ErrTranslation) {
				t.Fatalf("got %q err = %v", got, err)
			}
			if got != "" {
				t.Fatalf("partial result %q", got)
			}
		})
	}
}

func TestTranslate_TimeoutIsTranslationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	c := NewClient(Options{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := c.Translate(context.Background(), "x", "hi", "en")
	if !stderrs.Is(err, language.ErrTranslation) {
		t.Fatalf("timeout err = %v", err)
	}
}

func TestTranslate_UnreachableIsTranslationError(t *testing.T) {
	c := NewClient(Options{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	if _, err := c.Translate(context.Background(), "x", "hi", "en"); !stderrs.Is(err, language.ErrTranslation) {
		t.Fatalf("err = %v", err)
	}
}

func TestDetect(t *testing.T) {
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/detect" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]detection{
			{Confidence: 40, Language: "mr"},
			{Confidence: 92.5, Language: "hi"},
		})
	})
	got, err := c.Detect(context.Background(), "मुझे पासपोर्ट चाहिए")
	if err != nil || got != "hi" {
		t.Fatalf("Detect = %q, %v", got, err)
	}
}

func TestDetect_EmptyAndFailure(t *testing.T) {
	empty, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`[]`)) })
	if got, err := empty.Detect(context.Background(), "??"); err != nil || got != language.Unknown {
		t.Fatalf("empty detect = %q, %v", got, err)
	}

	bad, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"invalid api key"}`))
	})
	got, err := bad.Detect(context.Background(), "x")
	if !stderrs.Is(err, language.ErrDetection) || got != language.Unknown {
		t.Fatalf("failed detect = %q, %v", got, err)
	}
	if stderrs.Is(err, language.ErrTranslation) {
		t.Fatalf("detection failure must not look like a translation failure")
	}
}

func TestLanguagesAndPing(t *testing.T) {
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/languages" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]Lang{{Code: "en", Name: "English"}, {Code: "hi", Name: "Hindi"}})
	})
	langs, err := c.Languages(context.Background())
	if err != nil || len(langs) != 2 || langs[1].Code != "hi" {
		t.Fatalf("Languages = %+v, %v", langs, err)
	}
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestDecodeErrorIsTranslationError(t *testing.T) {
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`not json`)) })
	if _, err := c.Translate(context.Background(), "x", "hi", "en"); !stderrs.Is(err, language.ErrTranslation) {
		t.Fatalf("err = %v", err)
	}
}
