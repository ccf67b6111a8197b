package matcher

import (
	"sync"
	"sync/atomic"

	"legallens/internal/core/catalog"
	"legallens/internal/core/normalize"
)

// Indexed gives the same answers as Keyword with one pass over the query
// The automaton is built once per catalog snapshot and rebuilt when a reload swaps it
type Indexed struct {
	mu  sync.Mutex
	cur atomic.Pointer[index]
}

type index struct {
	cat *catalog.Catalog
	ac  *automaton
}

// NewIndexed returns an empty Indexed matcher
func NewIndexed() *Indexed { return &Indexed{} }

// Match implements Matcher
func (m *Indexed) Match(c *catalog.Catalog, query string) Resolved {
	if c == nil {
		return Unknown
	}
	q := normalize.Fold(query)
	if q == "" {
		return Unknown
	}
	if i := m.indexFor(c).ac.first(q); i >= 0 {
		return Resolved{Record: c.At(i), Known: true}
	}
	return Unknown
}

func (m *Indexed) indexFor(c *catalog.Catalog) *index {
	if ix := m.cur.Load(); ix != nil && ix.cat == c {
		return ix
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if ix := m.cur.Load(); ix != nil && ix.cat == c {
		return ix
	}
	ac := newAutomaton()
	for i := 0; i < c.Len(); i++ {
		for _, k := range c.At(i).Keywords {
			ac.add(k, i)
		}
	}
	ac.build()
	ix := &index{cat: c, ac: ac}
	m.cur.Store(ix)
	return ix
}
