package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestConstructorsAndWire(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}

	src := stderrs.New("connection refused")
	e := Wrapf(src, ErrorCodeUnavailable, "translate %s->%s", "hi", "en")
	if e.Error() != "translate hi->en: connection refused" {
		t.Fatalf("Error() = %q", e.Error())
	}
	if !stderrs.Is(e, src) || CodeOf(e) != ErrorCodeUnavailable {
		t.Fatalf("wrap lost cause or code")
	}
	if HTTPStatus(e) != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", HTTPStatus(e))
	}

	// wire carries only the outer message
	if w := WireFrom(e); w.Message != "translate hi->en" || w.Code != ErrorCodeUnavailable {
		t.Fatalf("WireFrom = %+v", w)
	}
	if w := WireFrom(src); w.Code != ErrorCodeUnknown || w.Message != "connection refused" {
		t.Fatalf("WireFrom foreign = %+v", w)
	}
	if WireFrom(nil) != (Wire{}) {
		t.Fatalf("WireFrom nil")
	}

	v := New(ErrorCodeValidation, "query required")
	f := WithField(v, "query")
	if fe, _ := As(f); fe.Field() != "query" {
		t.Fatalf("WithField")
	}
	if ve, _ := As(v); ve.Field() != "" {
		t.Fatalf("WithField mutated original")
	}
	if WithField(src, "x") != src {
		t.Fatalf("WithField on foreign should be identity")
	}

	if WrapIf(nil, ErrorCodeDB, "x") != nil || WrapIf(src, ErrorCodeDB, "x") == nil {
		t.Fatalf("WrapIf")
	}
	if !IsCode(JSONErrf("bad %d", 1), ErrorCodeJSON) || !IsCode(PanicErrf("p"), ErrorCodePanic) {
		t.Fatalf("sugar codes")
	}
	if st, w := HTTP(nil); st != http.StatusOK || w != (Wire{}) {
		t.Fatalf("HTTP(nil)")
	}
	if st, w := HTTP(ErrNotFound); st != http.StatusNotFound || w.Code != ErrorCodeNotFound {
		t.Fatalf("HTTP(ErrNotFound) = %d %+v", st, w)
	}
}

func TestRoot(t *testing.T) {
	src := stderrs.New("root")
	deep := fmt.Errorf("l2: %w", Wrap(fmt.Errorf("l1: %w", src), ErrorCodeDB, "db"))
	if Root(deep) != src {
		t.Fatalf("Root = %v", Root(deep))
	}
	joined := fmt.Errorf("%w: %w", src, stderrs.New("other"))
	if Root(joined) != src {
		t.Fatalf("Root joined = %v", Root(joined))
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil)")
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(New(ErrorCodeUnavailable, "down")) {
		t.Fatalf("unavailable should be retryable")
	}
	if Retryable(New(ErrorCodeValidation, "bad")) || Retryable(nil) {
		t.Fatalf("validation is not retryable")
	}
}
