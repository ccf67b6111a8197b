// Package raw is the bootstrap env reader used before the logger exists.
// It must not import the logger package
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a namespaced view over environment variables (e.g., "LOG_")
type Conf struct{ prefix string }

// New returns a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix returns a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) value(k string) string { return strings.TrimSpace(os.Getenv(c.prefix + k)) }

// Get returns the trimmed env var or def if empty
func (c Conf) Get(key, def string) string {
	if v := c.value(key); v != "" {
		return v
	}
	return def
}

// GetBool accepts 1|true|yes|on as true, anything else set is false; def when unset
func (c Conf) GetBool(key string, def bool) bool {
	switch strings.ToLower(c.value(key)) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// GetInt parses a non negative integer; def when unset or invalid
func (c Conf) GetInt(key string, def int) int {
	n, err := strconv.ParseUint(c.value(key), 10, 31)
	if err != nil {
		return def
	}
	return int(n)
}
