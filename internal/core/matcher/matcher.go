// Package matcher maps an English query to a catalog intent
package matcher

import (
	"strings"

	"legallens/internal/core/catalog"
	"legallens/internal/core/normalize"
)

// Resolved is the outcome of matching: a record, or unknown
type Resolved struct {
	Record catalog.Record
	Known  bool
}

// Unknown is the no-match result
var Unknown = Resolved{}

// ID returns the matched intent id or "unknown"
func (r Resolved) ID() string {
	if !r.Known {
		return "unknown"
	}
	return r.Record.ID
}

// Matcher resolves a query against a catalog snapshot
// Implementations must be deterministic and safe for concurrent use
type Matcher interface {
	Match(c *catalog.Catalog, query string) Resolved
}

// Keyword is first-match-wins substring matching
// Records are tried in catalog order; the first with any keyword contained in the folded query wins.
// Containment is not word bounded: "pan" matches inside "company"
type Keyword struct{}

// Match implements Matcher
func (Keyword) Match(c *catalog.Catalog, query string) Resolved {
	if c == nil {
		return Unknown
	}
	q := normalize.Fold(query)
	if q == "" {
		return Unknown
	}
	for i := 0; i < c.Len(); i++ {
		rec := c.At(i)
		for _, k := range rec.Keywords {
			if strings.Contains(q, k) {
				return Resolved{Record: rec, Known: true}
			}
		}
	}
	return Unknown
}
