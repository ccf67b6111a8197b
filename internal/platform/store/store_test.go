package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type fakeCH struct {
	pingErr error
	closed  bool
}

func (f *fakeCH) Exec(context.Context, string, ...any) error          { return nil }
func (f *fakeCH) Insert(context.Context, string, [][]any) error       { return nil }
func (f *fakeCH) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (f *fakeCH) Close() error                                        { f.closed = true; return nil }
func (f *fakeCH) Ping(context.Context) error                          { return f.pingErr }

func TestOpen_NothingEnabled(t *testing.T) {
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open err = %v", err)
	}
	if s.PG != nil || s.CH != nil || s.RDS != nil {
		t.Fatalf("disabled backends should stay nil: %+v", s)
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard on empty store = %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close = %v", err)
	}
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := Config{RDS: RedisConfig{Enabled: true, Addr: mr.Addr()}}
	s, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open err = %v", err)
	}
	if err := s.RDS.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("redis set = %v", err)
	}
	if got, _ := mr.Get("k"); got != "v" {
		t.Fatalf("miniredis k = %q", got)
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard = %v", err)
	}

	mr.Close()
	if err := s.Guard(context.Background()); err == nil || !strings.Contains(err.Error(), "redis") {
		t.Fatalf("Guard after redis stop = %v", err)
	}
	_ = s.Close(context.Background())
}

func TestOpen_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Open(context.Background(), Config{RDS: RedisConfig{Enabled: true, Addr: addr}})
	if err == nil || !strings.Contains(err.Error(), "redis ping") {
		t.Fatalf("err = %v", err)
	}
}

func TestWithRedis_SkipsDial(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	// the configured address is bogus, the injected client wins
	s, err := Open(context.Background(), Config{RDS: RedisConfig{Enabled: true, Addr: "127.0.0.1:1"}}, WithRedis(rdb))
	if err != nil {
		t.Fatalf("Open err = %v", err)
	}
	if s.RDS != rdb {
		t.Fatalf("injected client not kept")
	}
	_ = s.Close(context.Background())
}

func TestGuardAndClose_CH(t *testing.T) {
	ch := &fakeCH{pingErr: errors.New("down")}
	s := &Store{CH: ch}
	err := s.Guard(context.Background())
	if err == nil || !strings.HasPrefix(err.Error(), "ch:") {
		t.Fatalf("Guard = %v", err)
	}
	if err := s.Close(context.Background()); err != nil || !ch.closed {
		t.Fatalf("Close = %v closed=%v", err, ch.closed)
	}

	var nilStore *Store
	if nilStore.Guard(context.Background()) == nil {
		t.Fatalf("nil store Guard should fail")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://u:p@db:5432/lens")
	t.Setenv("SERVICE_PGSQL_MAX_CONNS", "4")
	t.Setenv("SERVICE_REDIS_ADDR", "cache:6379")
	t.Setenv("SERVICE_REDIS_DB", "2")

	cfg := ConfigFromEnv("legallens-api")
	if !cfg.PG.Enabled || cfg.PG.MaxConns != 4 || cfg.PG.SlowQueryMs != 200 {
		t.Fatalf("pg = %+v", cfg.PG)
	}
	if cfg.CH.Enabled {
		t.Fatalf("ch should be off without a url")
	}
	if !cfg.RDS.Enabled || cfg.RDS.DB != 2 || cfg.AppName != "legallens-api" {
		t.Fatalf("cfg = %+v", cfg)
	}
}
