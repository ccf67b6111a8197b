package store

import (
	"legallens/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by subclients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithRedis injects an already built client and skips dialing SERVICE_REDIS_*
func WithRedis(rdb redis.UniversalClient) Option {
	return func(s *Store) error {
		s.RDS = rdb
		return nil
	}
}
