// Package module wires the intent catalog into the API
package module

import (
	"context"

	modkit "legallens/internal/modkit"
	"legallens/internal/modkit/httpkit"

	chttp "legallens/internal/services/api/catalog/http"
	"legallens/internal/services/api/catalog/repo"
	"legallens/internal/services/api/catalog/service"
)

// Module implements the catalog API module
type Module struct {
	b    modkit.Built
	opts Options
	svc  *service.Svc
}

// New constructs the catalog module; call Open before serving
func New(deps modkit.Deps, opts Options, mopts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("catalog"),
		modkit.WithPrefix("/catalog"),
	}, mopts...)...)

	svc, err := service.New(service.Config{Source: opts.Source, Path: opts.Path}, deps.PG, repo.NewPG(), deps.Logger("catalog"))
	if err != nil {
		return nil, err
	}
	return &Module{b: b, opts: opts, svc: svc}, nil
}

// Open performs the initial catalog load
func (m *Module) Open(ctx context.Context) error { return m.svc.Open(ctx) }

// MountRoutes mounts /intents and the admin /reload under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		chttp.Register(rr, m.svc, m.opts.AdminToken)
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }
