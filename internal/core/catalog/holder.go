package catalog

import (
	"context"
	"sync"
	"sync/atomic"
)

// Holder publishes the active catalog for concurrent readers
// Readers take one snapshot per request with Current and keep using it;
// Reload builds the replacement completely before swapping it in
type Holder struct {
	cur atomic.Pointer[Catalog]
	mu  sync.Mutex // serializes reloads
}

// NewHolder returns a holder publishing c
func NewHolder(c *Catalog) *Holder {
	h := &Holder{}
	h.cur.Store(c)
	return h
}

// Current returns the active catalog snapshot
func (h *Holder) Current() *Catalog { return h.cur.Load() }

// Reload loads src and swaps it in on success; on failure the active catalog is untouched
func (h *Holder) Reload(ctx context.Context, src Source) (*Catalog, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	next, err := Load(ctx, src)
	if err != nil {
		return nil, err
	}
	h.cur.Store(next)
	return next, nil
}
