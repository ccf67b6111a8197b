// Package modkit provides module wiring and core deps
package modkit

import (
	"legallens/internal/modkit/repokit"
	"legallens/internal/platform/config"
	"legallens/internal/platform/logger"
	"legallens/internal/platform/store"

	"github.com/redis/go-redis/v9"
)

// Deps holds core dependencies passed to modules
// every backend is optional and stays nil when not configured
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
	RDS redis.UniversalClient
}

// FromStore copies the open backends of st into deps
func FromStore(cfg config.Conf, st *store.Store) Deps {
	d := Deps{Cfg: cfg}
	if st == nil {
		return d
	}
	d.Log = &st.Log
	d.PG = st.PG
	d.CH = st.CH
	d.RDS = st.RDS
	return d
}

// Logger returns a component logger, falling back to the process root
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log == nil {
		return logger.Named(component)
	}
	ll := d.Log.With().Str("component", component).Logger()
	return &ll
}
