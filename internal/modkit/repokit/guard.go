package repokit

import (
	"context"
	"fmt"
	"time"
)

// Pinger is any dependency that can report readiness
type Pinger interface {
	Ping(context.Context) error
}

type guarder interface {
	Guard(context.Context) error
}

// DefaultPingTimeout bounds Check when ctx has no deadline
const DefaultPingTimeout = 5 * time.Second

// Check pings p, bounding the call by DefaultPingTimeout when ctx has no deadline
func Check(ctx context.Context, name string, p Pinger) error {
	if p == nil {
		return fmt.Errorf("%s: nil dependency", name)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultPingTimeout)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("%s ping failed: %w", name, err)
	}
	return nil
}

// MustPing panics when Check fails
func MustPing(ctx context.Context, name string, p Pinger) {
	if err := Check(ctx, name, p); err != nil {
		panic(err.Error())
	}
}

// MustGuard runs store.Guard and panics on any error, for process startup
func MustGuard(ctx context.Context, st guarder) {
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
