package store

import (
	"context"
	"fmt"
	"time"

	"legallens/internal/core/version"
	chx "legallens/internal/platform/store/ch"
	"legallens/internal/platform/store/pg"

	"github.com/redis/go-redis/v9"
)

// openPG opens pg and wraps it with our sql adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	// Connection guardrails: ping with retry/backoff using the *pool* directly
	const (
		backoffStart   = 150 * time.Millisecond
		backoffCeiling = 2 * time.Second
	)
	maxAttempts := cfg.PG.ConnectRetries
	if maxAttempts <= 0 {
		maxAttempts = 20
	}
	pingTimeout := cfg.PG.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}

	var lastErr error
	backoff := backoffStart
	for i := 0; i < maxAttempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(toCtx) // pool ping, no trace line
		cancel()

		if lastErr == nil {
			a := newPGAdapter(p)
			s.PG = a
			return a, nil
		}
		if ctx.Err() != nil {
			p.Close()
			return nil, ctx.Err()
		}
		time.Sleep(backoff)
		if backoff < backoffCeiling {
			backoff *= 2
			if backoff > backoffCeiling {
				backoff = backoffCeiling
			}
		}
	}

	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", maxAttempts, lastErr)
}

// openCH dials clickhouse with the app name as the client role
func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:  cfg.CH.URL,
		Role: cfg.AppName,
		Tag:  version.Info().Version,
	})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}

var newRedis = func(o *redis.Options) redis.UniversalClient { return redis.NewClient(o) }

// openRedis connects and pings once; redis is a cache so no retry loop
func openRedis(ctx context.Context, cfg Config) (redis.UniversalClient, error) {
	rdb := newRedis(&redis.Options{
		Addr:     cfg.RDS.Addr,
		Password: cfg.RDS.Password,
		DB:       cfg.RDS.DB,
	})
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RDS.Addr, err)
	}
	return rdb, nil
}
