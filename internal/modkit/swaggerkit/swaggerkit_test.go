package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "legallens/internal/platform/net/http"
	kit "legallens/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func mounted(o Options) *chi.Mux {
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), o)
	return m
}

func get(m http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestMount_Disabled(t *testing.T) {
	if rec := get(mounted(Options{}), "/api/docs/doc.json"); rec.Code != http.StatusNotFound {
		t.Fatalf("disabled docs = %d", rec.Code)
	}
}

func TestDocJSON_FillsDefaults(t *testing.T) {
	var mutated bool
	Register(func(spec map[string]any) { mutated = true })
	Register(nil)

	rec := get(mounted(Options{Enabled: true, TitleSuffix: "(dev)"}), "/api/docs/doc.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json = %d", rec.Code)
	}

	var spec map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&spec); err != nil {
		t.Fatal(err)
	}
	if !mutated {
		t.Fatal("registered mutator not applied")
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
	if spec["info"].(map[string]any)["title"] != "LegalLens API (dev)" {
		t.Fatalf("title = %v", spec["info"])
	}

	ask := spec["paths"].(map[string]any)["/ask"].(map[string]any)["post"].(map[string]any)
	resps := ask["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500", "503"} {
		if _, ok := resps[code]; !ok {
			t.Fatalf("/ask missing %s response", code)
		}
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatal("ErrorResponse schema not added")
	}
}

func TestDocJSON_BadDocument(t *testing.T) {
	kit.Swap(t, &docReader, func() []byte { return []byte("{nope") })
	if rec := get(mounted(Options{Enabled: true}), "/api/docs/doc.json"); rec.Code != http.StatusInternalServerError {
		t.Fatalf("bad doc = %d", rec.Code)
	}
}

func TestEnsureServers_Downgrades(t *testing.T) {
	spec := map[string]any{"swagger": "2.0"}
	ensureServers(spec, "/x")
	if spec["openapi"] != "3.0.3" || spec["swagger"] != nil {
		t.Fatalf("spec = %v", spec)
	}
	spec = map[string]any{"openapi": "3.1.0", "servers": []any{}}
	ensureServers(spec, "/x")
	if spec["openapi"] != "3.0.3" || len(spec["servers"].([]any)) != 0 {
		t.Fatalf("spec = %v", spec)
	}
}

func TestRedirect(t *testing.T) {
	rec := get(mounted(Options{Enabled: true}), "/api/docs")
	if rec.Code != http.StatusPermanentRedirect || rec.Header().Get("Location") != "/api/docs/" {
		t.Fatalf("redirect = %d %q", rec.Code, rec.Header().Get("Location"))
	}
}
