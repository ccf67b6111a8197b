// Package http provides http transport for the intent catalog
package http

import (
	stdhttp "net/http"

	"legallens/internal/modkit/httpkit"
	"legallens/internal/services/api/catalog/domain"
)

// Register mounts the catalog routes; reload sits behind the admin token
func Register(r httpkit.Router, s domain.ServicePort, adminToken string) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/intents", h.intents)
	r.Group(func(adm httpkit.Router) {
		adm.Use(httpkit.Admin(adminToken))
		httpkit.Post(adm, "/reload", h.reload)
	})
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /catalog/intents Catalog catalogIntents
// @Summary List intents in match priority order
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.IntentView "ok"
// @Router /catalog/intents [get]
func (h *handlers) intents(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// swagger:route POST /catalog/reload Catalog catalogReload
// @Summary Reload the catalog from its source
// @Tags Catalog
// @Produce json
// @Security AdminToken
// @Success 200 {object} domain.ReloadResult "ok"
// @Failure 401 {object} httpkit.Envelope "missing or bad token"
// @Router /catalog/reload [post]
func (h *handlers) reload(r *stdhttp.Request) (any, error) {
	return h.svc.Reload(r.Context())
}
