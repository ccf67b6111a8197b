// Package module wires meta endpoints into the API
package module

import (
	"context"
	"time"

	modkit "legallens/internal/modkit"
	"legallens/internal/modkit/httpkit"
	"legallens/internal/modkit/repokit"
	str "legallens/internal/platform/strings"

	metahttp "legallens/internal/services/api/meta/http"
)

// Options names the service and adds probes beyond the store backends
type Options struct {
	ServiceName string
	Extra       []metahttp.Dependency // eg the translate backend
}

// Module implements the meta API module
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs the meta module; pg, ch and redis are probed when configured
func New(deps modkit.Deps, opts Options, mopts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, mopts...)...)

	checks := []metahttp.Dependency{
		{Name: "pg", Pinger: pinger(deps.PG)},
		{Name: "ch", Pinger: pinger(deps.CH)},
		{Name: "redis"},
	}
	if deps.RDS != nil {
		rds := deps.RDS
		checks[2].Pinger = metahttp.PingFunc(func(ctx context.Context) error { return rds.Ping(ctx).Err() })
	}
	checks = append(checks, opts.Extra...)

	return &Module{
		b: b,
		deps: metahttp.Deps{
			ServiceName: str.Or(opts.ServiceName, "legallens-api"),
			StartedAt:   time.Now(),
			Checks:      checks,
		},
	}
}

// pinger returns v as a Pinger, nil when v is nil or cannot ping
func pinger(v any) repokit.Pinger {
	if p, ok := v.(repokit.Pinger); ok {
		return p
	}
	return nil
}

// MountRoutes implements the module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the module interface
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Ports implements the module interface
func (m *Module) Ports() any { return nil }
