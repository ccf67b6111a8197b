package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	perr "legallens/internal/platform/errors"
	phttp "legallens/internal/platform/net/http"
)

// AdminToken guards a route group with a static bearer token
// an empty token disables the group entirely (403 for every request)
func AdminToken(token string) func(http.Handler) http.Handler {
	want := []byte(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(want) == 0 {
				phttp.RespondError(w, r, perr.New(perr.ErrorCodeForbidden, "admin endpoints are disabled"))
				return
			}
			got, ok := bearer(r)
			if !ok || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				w.Header().Set("WWW-Authenticate", `Bearer realm="legallens"`)
				phttp.RespondError(w, r, perr.New(perr.ErrorCodeUnauthorized, "invalid admin token"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearer(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, tok, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}
