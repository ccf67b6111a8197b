// Package translate picks the language backend for a process from config
package translate

import (
	"time"

	"legallens/internal/adapters/translate/cache"
	"legallens/internal/adapters/translate/libre"
	"legallens/internal/core/langhint"
	"legallens/internal/core/language"
	"legallens/internal/platform/config"
	"legallens/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Detector kinds
const (
	DetectRemote = "remote"
	DetectScript = "script"
)

// Options is read from SERVICE_TRANSLATE_* and CORE_LENS_DETECTOR
type Options struct {
	URL      string
	APIKey   string
	Timeout  time.Duration
	CacheTTL time.Duration
	Detector string
}

// FromConfig reads the translate options from the root view
func FromConfig(root config.Conf) Options {
	tc := root.Prefix("SERVICE_TRANSLATE_")
	return Options{
		URL:      tc.MayString("URL", ""),
		APIKey:   tc.MayString("API_KEY", ""),
		Timeout:  tc.MayDuration("TIMEOUT", 10*time.Second),
		CacheTTL: tc.MayDuration("CACHE_TTL", 24*time.Hour),
		Detector: root.Prefix("CORE_LENS_").MayEnum("DETECTOR", DetectRemote, DetectRemote, DetectScript),
	}
}

// Backend is the wired language stack; Translator is nil without a URL
type Backend struct {
	Translator language.Translator
	Detector   language.Detector
	Client     *libre.Client // nil without a URL, probed by readiness
}

// New wires the libre client, the optional redis cache and the detector
// remote detection without a URL falls back to the script detector
func New(o Options, rdb redis.UniversalClient) Backend {
	log := logger.Named("translate")
	var b Backend
	if o.URL == "" {
		log.Warn().Msg("no translate url, non-English questions will fail")
		b.Detector = langhint.Detector{}
		return b
	}

	b.Client = libre.NewClient(libre.Options{BaseURL: o.URL, APIKey: o.APIKey, Timeout: o.Timeout})
	var svc language.Service = b.Client
	if rdb != nil {
		svc = cache.New(rdb, svc, cache.Options{TTL: o.CacheTTL})
	}
	b.Translator = svc
	if o.Detector == DetectScript {
		b.Detector = langhint.Detector{}
	} else {
		b.Detector = svc
	}
	log.Info().Str("url", o.URL).Str("detector", o.Detector).Bool("cache", rdb != nil).Msg("translate backend ready")
	return b
}
