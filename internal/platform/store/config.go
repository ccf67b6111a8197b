package store

import (
	"time"

	"legallens/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string // reported to clickhouse as the client role

	PG  PGConfig
	CH  CHConfig
	RDS RedisConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
}

// RedisConfig configures redis connectivity
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// ConfigFromEnv reads SERVICE_PGSQL_*, SERVICE_CLICKHOUSE_* and SERVICE_REDIS_*
// A backend is enabled when its url or address is set
func ConfigFromEnv(app string) Config {
	root := config.New()
	pgc := root.Prefix("SERVICE_PGSQL_")
	chc := root.Prefix("SERVICE_CLICKHOUSE_")
	rdc := root.Prefix("SERVICE_REDIS_")

	cfg := Config{
		AppName: app,
		PG: PGConfig{
			URL:         pgc.MayString("DBURL", ""),
			MaxConns:    int32(pgc.MayInt("MAX_CONNS", 8)),
			LogSQL:      pgc.MayBool("LOG_SQL", false),
			SlowQueryMs: pgc.MayInt("SLOW_MS", 200),
		},
		CH: CHConfig{URL: chc.MayString("DBURL", "")},
		RDS: RedisConfig{
			Addr:     rdc.MayString("ADDR", ""),
			Password: rdc.MayString("PASSWORD", ""),
			DB:       rdc.MayInt("DB", 0),
		},
	}
	cfg.PG.Enabled = cfg.PG.URL != ""
	cfg.CH.Enabled = cfg.CH.URL != ""
	cfg.RDS.Enabled = cfg.RDS.Addr != ""
	return cfg
}
