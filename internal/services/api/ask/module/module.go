// Package module wires the ask endpoint into the API
package module

import (
	"context"

	"legallens/internal/core/resolver"
	modkit "legallens/internal/modkit"
	"legallens/internal/modkit/httpkit"

	askdom "legallens/internal/services/api/ask/domain"
	askhttp "legallens/internal/services/api/ask/http"
	askrepo "legallens/internal/services/api/ask/repo"
	asksvc "legallens/internal/services/api/ask/service"
)

// Ports declares what the ask module needs from the catalog module
type Ports struct {
	Catalogs resolver.Catalogs
}

// Module implements the ask API module
type Module struct {
	b     modkit.Built
	svc   *asksvc.Svc
	audit askdom.AuditPort
}

// New constructs the ask module; the Catalogs port must be injected with modkit.WithPorts
func New(deps modkit.Deps, opts Options, mopts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("ask"),
		modkit.WithPrefix("/ask"),
	}, mopts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Catalogs == nil {
		panic("ask module requires the Catalogs port (from the catalog module)")
	}

	log := deps.Logger("ask")
	r := resolver.New(p.Catalogs, opts.Lang, resolver.Options{
		Matcher:        opts.Matcher,
		Detector:       opts.Detector,
		UnknownMessage: opts.UnknownMessage,
		Log:            log,
	})
	audit := askrepo.NewCH(deps.CH)
	return &Module{b: b, svc: asksvc.New(r, audit, log), audit: audit}
}

// Open creates the audit table when clickhouse is configured
func (m *Module) Open(ctx context.Context) error {
	if a, ok := m.audit.(*askrepo.Audit); ok {
		return a.EnsureSchema(ctx)
	}
	return nil
}

// MountRoutes mounts POST /ask; the handler sits at the module root
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { askhttp.Register(rr, m.svc) })
}

// Ports exposes the ask service for the cli and other modules
func (m *Module) Ports() any { return askdom.ServicePort(m.svc) }

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }
