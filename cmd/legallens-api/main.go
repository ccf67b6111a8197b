// Command legallens-api serves questions about legal procedures over HTTP
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"legallens/internal/adapters/translate"
	"legallens/internal/modkit/repokit"
	"legallens/internal/platform/config"
	"legallens/internal/platform/logger"
	phttp "legallens/internal/platform/net/http"
	"legallens/internal/platform/net/middleware"
	"legallens/internal/platform/store"

	"legallens/internal/services/api"

	"github.com/go-chi/chi/v5"
)

const serviceName = "legallens-api"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	l := logger.Get()

	// every backend is optional, an unset url leaves it nil
	st, err := store.Open(ctx, store.ConfigFromEnv(serviceName), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	lang := translate.New(translate.FromConfig(root), st.RDS)
	var translatePing repokit.Pinger
	if lang.Client != nil {
		translatePing = lang.Client
	}

	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Heartbeat("/ping"))
	})

	err = api.Mount(ctx, srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		ServiceName:    serviceName,
		Translator:     lang.Translator,
		Detector:       lang.Detector,
		TranslatePing:  translatePing,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})
	if err != nil {
		l.Panic().Err(err).Msg("api mount failed")
	}

	if err := srv.Run(ctx, apiCfg.MayDuration("SHUTDOWN_GRACE", 15*time.Second)); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
