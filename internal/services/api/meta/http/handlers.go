// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"legallens/internal/core/version"
	"legallens/internal/modkit/httpkit"
	"legallens/internal/modkit/repokit"
)

// readyTimeout bounds all readiness pings together
const readyTimeout = 2 * time.Second

// PingFunc adapts a function to repokit.Pinger
type PingFunc func(stdctx.Context) error

// Ping implements repokit.Pinger
func (f PingFunc) Ping(ctx stdctx.Context) error { return f(ctx) }

// Dependency is one optional backend probed by /ready; a nil Pinger is reported as skipped
type Dependency struct {
	Name   string
	Pinger repokit.Pinger
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Checks      []Dependency
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"legallens-api"`
	Started string `json:"started" example:"2026-10-14T09:00:00Z"`
	Now     string `json:"now"     example:"2026-10-14T09:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"pg ping failed: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-14T09:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"legallens-api"`
	Started string `json:"started" example:"2026-10-14T09:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} ReadyResponse "a configured dependency is down"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	out := ReadyResponse{Status: "ok", Checks: make([]ReadyCheck, 0, len(h.deps.Checks))}
	for _, d := range h.deps.Checks {
		c := ReadyCheck{Name: d.Name, Status: "ok"}
		if d.Pinger == nil {
			c.Status = "skipped"
		} else if err := repokit.Check(ctx, d.Name, d.Pinger); err != nil {
			c.Status, c.Error = "fail", err.Error()
			out.Status = "fail"
		}
		out.Checks = append(out.Checks, c)
	}
	out.Now = h.now().UTC().Format(time.RFC3339)

	if out.Status != "ok" {
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.For(h.deps.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(h.now().Sub(h.deps.StartedAt) / time.Second),
	}, nil
}
