// Package api assembles the HTTP API from its modules
package api

import (
	"context"
	"fmt"

	"legallens/internal/core/language"
	"legallens/internal/modkit"
	"legallens/internal/modkit/httpkit"
	"legallens/internal/modkit/module"
	"legallens/internal/modkit/repokit"
	"legallens/internal/modkit/swaggerkit"
	"legallens/internal/platform/config"
	phttp "legallens/internal/platform/net/http"
	"legallens/internal/platform/store"

	askmod "legallens/internal/services/api/ask/module"
	catalogmod "legallens/internal/services/api/catalog/module"
	metahttp "legallens/internal/services/api/meta/http"
	metamod "legallens/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config      config.Conf // root view, modules pick their own prefixes
	Store       *store.Store
	ServiceName string

	Translator language.Translator
	Detector   language.Detector
	// TranslatePing is probed by /meta/ready when set
	TranslatePing repokit.Pinger

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount builds every module, performs the initial catalog load and mounts the routes
// a catalog that fails to load is returned as an error and nothing is mounted
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	deps := modkit.FromStore(opt.Config, opt.Store)

	catalog, err := catalogmod.New(deps, catalogmod.FromConfig(opt.Config))
	if err != nil {
		return fmt.Errorf("catalog module: %w", err)
	}
	if err := catalog.Open(ctx); err != nil {
		return fmt.Errorf("initial catalog load: %w", err)
	}
	cp := module.MustPortsOf[catalogmod.Ports](catalog)

	ask := askmod.New(deps, askmod.FromConfig(opt.Config, opt.Translator, opt.Detector),
		modkit.WithPorts(askmod.Ports{Catalogs: cp.Catalogs}))
	if err := ask.Open(ctx); err != nil {
		// the audit is best effort, answering must not depend on it
		deps.Logger("api").Warn().Err(err).Msg("audit schema unavailable")
	}

	var extra []metahttp.Dependency
	if opt.TranslatePing != nil {
		extra = append(extra, metahttp.Dependency{Name: "translate", Pinger: opt.TranslatePing})
	}
	meta := metamod.New(deps, metamod.Options{ServiceName: opt.ServiceName, Extra: extra})

	mods := []module.Module{meta, catalog, ask}

	stack := httpkit.CommonStack(httpkit.StackFromConfig(opt.Config.Prefix("CORE_API_")))
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	swaggerkit.Mount(r, swaggerkit.Options{Enabled: opt.EnableSwagger, TitleSuffix: opt.ServiceName})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	return nil
}
