package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"legallens/internal/platform/config"
	phttp "legallens/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestRouter_RouteGroupUse(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Root", "1")
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api/v1", func(api phttp.Router) {
		api.Group(func(g phttp.Router) {
			g.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					w.Header().Set("X-Group", "1")
					next.ServeHTTP(w, req)
				})
			})
			g.Post("/ask", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })
		})
		api.Get("/intents", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "list") })
		api.Delete("/intents", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	})
	r.Handle("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "raw") }))

	do := func(method, path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
		return rec
	}

	if rec := do("POST", "/api/v1/ask"); rec.Code != 201 || rec.Header().Get("X-Group") != "1" || rec.Header().Get("X-Root") != "1" {
		t.Fatalf("ask = %d %v", rec.Code, rec.Header())
	}
	if rec := do("GET", "/api/v1/intents"); rec.Body.String() != "list" || rec.Header().Get("X-Group") != "" {
		t.Fatalf("intents = %q %v", rec.Body.String(), rec.Header())
	}
	if rec := do("DELETE", "/api/v1/intents"); rec.Code != 204 {
		t.Fatalf("delete = %d", rec.Code)
	}
	if rec := do("GET", "/raw"); rec.Body.String() != "raw" {
		t.Fatalf("raw = %q", rec.Body.String())
	}
	if rec := do("GET", "/api/v1/ask"); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("wrong method = %d", rec.Code)
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	// reserve a free port then release it for the server
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := l.Addr().String()
	_ = l.Close()

	t.Setenv("LLSRV_PORT", addr)
	optCalled := false
	srv := phttp.NewServer(config.New().Prefix("LLSRV_"), func(*chi.Mux) { optCalled = true })
	if !optCalled || srv.Addr() != addr {
		t.Fatalf("opt=%v addr=%q", optCalled, srv.Addr())
	}
	srv.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, time.Second) }()

	var body string
	for i := 0; i < 50; i++ {
		resp, err := http.Get("http://" + addr + "/ping")
		if err == nil {
			b, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			body = string(b)
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if body != "pong" {
		t.Fatalf("body = %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestNewServer_BarePort(t *testing.T) {
	t.Setenv("LLBARE_PORT", "8089")
	if got := phttp.NewServer(config.New().Prefix("LLBARE_")).Addr(); got != ":8089" {
		t.Fatalf("addr = %q", got)
	}
}

func TestMountProfiler(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	phttp.MountProfiler(r, "/debug", false)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler = %d", rec.Code)
	}

	m = chi.NewRouter()
	phttp.MountProfiler(phttp.AdaptChi(m), "/debug", true)
	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("enabled profiler = %d", rec.Code)
	}
}
