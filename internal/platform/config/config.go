// Package config handles application configuration via environment variables
// Must* getters panic through the logger on missing or invalid values, May* getters fall back to a default
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"legallens/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g., "CORE_API_", "SERVICE_PGSQL_")
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the trimmed value and the full key name
func (c Conf) lookup(k string) (string, string) {
	full := c.key(k)
	return strings.TrimSpace(os.Getenv(full)), full
}

// must fetches a required value and converts it, panicking on either failure
func must[T any](c Conf, k, kind string, conv func(string) (T, error)) T {
	s, full := c.lookup(k)
	if s == "" {
		logger.Get().Panic().Str("key", full).Msg("missing required env")
	}
	v, err := conv(s)
	if err != nil {
		logger.Get().Panic().Str("key", full).Str("value", s).Msgf("invalid %s value", kind)
	}
	return v
}

// may converts an optional value, logging and falling back to def when it does not parse
func may[T any](c Conf, k, kind string, def T, conv func(string) (T, error)) T {
	s, full := c.lookup(k)
	if s == "" {
		return def
	}
	v, err := conv(s)
	if err != nil {
		logger.Get().Warn().Str("key", full).Str("value", s).Interface("default", def).Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

func asString(s string) (string, error) { return s, nil }

func asURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &url.Error{Op: "parse", URL: s, Err: strconv.ErrSyntax}
	}
	return u, nil
}

func asPort(s string) (string, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, ":"))
	if err != nil || n < 1 || n > 65535 {
		return "", strconv.ErrRange
	}
	return strconv.Itoa(n), nil
}

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string { return must(c, key, "string", asString) }

// MustInt panics if the given key is missing, empty, or not an int
func (c Conf) MustInt(key string) int { return must(c, key, "int", strconv.Atoi) }

// MustBool panics if the given key is missing or not a bool
func (c Conf) MustBool(key string) bool { return must(c, key, "bool", strconv.ParseBool) }

// MustDuration panics if the given key is missing or not a duration
func (c Conf) MustDuration(key string) time.Duration {
	return must(c, key, "duration", time.ParseDuration)
}

// MustURL panics if the given key is missing or not an absolute url
func (c Conf) MustURL(key string) *url.URL { return must(c, key, "url", asURL) }

// MustPort panics unless the key holds a tcp port, ":8080" or "8080"; returns the bare number
func (c Conf) MustPort(key string) string { return must(c, key, "port", asPort) }

// Require panics on the first missing key
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		if s, full := c.lookup(k); s == "" {
			logger.Get().Panic().Str("key", full).Msg("missing required env")
		}
	}
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string { return may(c, key, "string", def, asString) }

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int { return may(c, key, "int", def, strconv.Atoi) }

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, "bool", def, strconv.ParseBool) }

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, "duration", def, time.ParseDuration)
}

// MayURL returns the parsed url or nil when missing; logs and returns nil if invalid
func (c Conf) MayURL(key string) *url.URL { return may[*url.URL](c, key, "url", nil, asURL) }

// MayCSV returns a slice of strings from a comma-separated env var; def if missing/empty
func (c Conf) MayCSV(key string, def []string) []string {
	s, _ := c.lookup(key)
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the lowercased value when it is one of allowed, def if empty; panics if invalid
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
