package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"legallens/internal/platform/config"
	"legallens/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Origins     []string
	Timeout     time.Duration
	Slow        time.Duration
	MaxInflight int
}

// StackFromConfig reads the stack options from a CORE_API_ view
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		Origins:     cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		Timeout:     cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Slow:        cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		MaxInflight: cfg.MayInt("MAX_INFLIGHT", 0),
	}
}

// CommonStack returns the baseline middleware for the versioned api, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestLogger,

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		// safety
		middleware.Recover(),
		middleware.Throttle(o.MaxInflight),

		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(o.Timeout),
	}
}

// Admin guards a route group with the static admin bearer token
func Admin(token string) func(http.Handler) http.Handler {
	return middleware.AdminToken(token)
}
