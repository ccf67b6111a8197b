// Package cache memoizes translations and detections in redis in front of a language.Service
// Redis is best effort: read or write failures are logged and the call goes to the backend
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrs "errors"
	"time"

	"legallens/internal/core/language"
	"legallens/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL    = 24 * time.Hour
	defaultPrefix = "lens:"
)

// Options configures Service
type Options struct {
	TTL    time.Duration
	Prefix string
}

// Service is a caching language.Service
type Service struct {
	rdb    redis.Cmdable
	next   language.Service
	ttl    time.Duration
	prefix string
	log    logger.Logger
}

// New wraps next with a redis cache
func New(rdb redis.Cmdable, next language.Service, o Options) *Service {
	if o.TTL <= 0 {
		o.TTL = defaultTTL
	}
	if o.Prefix == "" {
		o.Prefix = defaultPrefix
	}
	return &Service{
		rdb:    rdb,
		next:   next,
		ttl:    o.TTL,
		prefix: o.Prefix,
		log:    *logger.Named("translate-cache"),
	}
}

// Translate implements language.Translator, caching successful results only
func (s *Service) Translate(ctx context.Context, text string, from, to language.Code) (string, error) {
	key := s.prefix + "tr:" + from.String() + ":" + to.String() + ":" + digest(text)
	if v, ok := s.get(ctx, key); ok {
		return v, nil
	}
	out, err := s.next.Translate(ctx, text, from, to)
	if err != nil {
		return "", err
	}
	s.set(ctx, key, out)
	return out, nil
}

// Detect implements language.Detector; Unknown results are not cached
func (s *Service) Detect(ctx context.Context, text string) (language.Code, error) {
	key := s.prefix + "det:" + digest(text)
	if v, ok := s.get(ctx, key); ok {
		return language.Code(v), nil
	}
	code, err := s.next.Detect(ctx, text)
	if err != nil {
		return code, err
	}
	if code != language.Unknown && code != "" {
		s.set(ctx, key, code.String())
	}
	return code, nil
}

func (s *Service) get(ctx context.Context, key string) (string, bool) {
	v, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if !stderrs.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Msg("translation cache read failed")
		}
		return "", false
	}
	return v, true
}

func (s *Service) set(ctx context.Context, key, val string) {
	if err := s.rdb.Set(ctx, key, val, s.ttl).Err(); err != nil {
		s.log.Warn().Err(err).Msg("translation cache write failed")
	}
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

var _ language.Service = (*Service)(nil)
