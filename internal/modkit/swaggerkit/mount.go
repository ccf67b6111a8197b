// Package swaggerkit serves the OpenAPI document and the Swagger UI
package swaggerkit

import (
	"net/http"

	phttp "legallens/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options configures the docs mount
type Options struct {
	Enabled     bool
	Base        string // server url in the spec, default /api/v1
	TitleSuffix string
}

// Mount the Swagger UI and JSON spec under /api/docs if enabled
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	if o.Base == "" {
		o.Base = "/api/v1"
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(o.Base, o.TitleSuffix))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
