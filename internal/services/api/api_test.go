package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"legallens/internal/core/langhint"
	"legallens/internal/modkit/module"
	"legallens/internal/platform/config"
	phttp "legallens/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func mount(t *testing.T, opt Options) *chi.Mux {
	t.Helper()
	t.Cleanup(module.Reset)
	mux := chi.NewRouter()
	if err := Mount(context.Background(), phttp.AdaptChi(mux), opt); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return mux
}

func TestMount_Routes(t *testing.T) {
	t.Setenv("CORE_API_ADMIN_TOKEN", "tok")
	mux := mount(t, Options{
		Config:        config.New(),
		ServiceName:   "legallens-api",
		Detector:      langhint.Detector{},
		EnableSwagger: true,
	})

	cases := []struct {
		method, path, body, auth string
		code                     int
	}{
		{"GET", "/api/v1/meta/health", "", "", 200},
		{"GET", "/api/v1/meta/ready", "", "", 200},
		{"GET", "/api/v1/catalog/intents", "", "", 200},
		{"POST", "/api/v1/catalog/reload", "", "", 401},
		{"POST", "/api/v1/catalog/reload", "", "Bearer tok", 200},
		{"POST", "/api/v1/ask", `{"query":"how do I apply for a pan card"}`, "", 200},
		{"POST", "/api/v1/ask", `{}`, "", 400},
		{"GET", "/api/docs/doc.json", "", "", 200},
	}
	for _, c := range cases {
		req := httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
		if c.auth != "" {
			req.Header.Set("Authorization", c.auth)
		}
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != c.code {
			t.Fatalf("%s %s = %d, want %d: %s", c.method, c.path, rec.Code, c.code, rec.Body)
		}
	}

	if _, ok := module.PortsAs[any]("catalog"); !ok {
		t.Fatal("catalog ports not registered")
	}
}

func TestMount_AskPerformsResolution(t *testing.T) {
	mux := mount(t, Options{Config: config.New()})
	req := httptest.NewRequest("POST", "/api/v1/ask", strings.NewReader(`{"query":"I am 16 and want a driving license","lang":"en"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var env struct {
		Data struct {
			Answer  string `json:"answer"`
			Outcome string `json:"outcome"`
			Age     int    `json:"age"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if env.Data.Outcome != "guidance" || env.Data.Age != 16 || !strings.Contains(env.Data.Answer, "18") {
		t.Fatalf("answer = %+v", env.Data)
	}
}

func TestMount_BadCatalogFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.csv")
	if err := os.WriteFile(path, []byte("intents,process\n,Nothing here.\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CORE_LENS_CATALOG_SOURCE", "csv")
	t.Setenv("CORE_LENS_CATALOG_PATH", path)

	err := Mount(context.Background(), phttp.AdaptChi(chi.NewRouter()), Options{Config: config.New()})
	if err == nil || !strings.Contains(err.Error(), "initial catalog load") {
		t.Fatalf("err = %v", err)
	}
}
