// Package repo records resolutions to clickhouse
package repo

import (
	"context"

	"legallens/internal/modkit/repokit"
	perr "legallens/internal/platform/errors"
	"legallens/internal/services/api/ask/domain"
)

// Table is the clickhouse audit table
const Table = "lens_resolutions"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS lens_resolutions (
	id         UUID,
	at         DateTime64(3, 'UTC'),
	lang       LowCardinality(String),
	intent     LowCardinality(String),
	outcome    LowCardinality(String),
	latency_ms UInt32,
	failed     UInt8
) ENGINE = MergeTree
ORDER BY (at, intent)`

// Audit writes resolutions through the clickhouse seam
type Audit struct{ ch repokit.Clickhouse }

// NewCH returns an audit over ch; a nil ch yields a no-op audit
func NewCH(ch repokit.Clickhouse) domain.AuditPort {
	if ch == nil {
		return Nop{}
	}
	return &Audit{ch: ch}
}

// EnsureSchema creates the audit table when missing
func (a *Audit) EnsureSchema(ctx context.Context) error {
	return perr.WrapIf(a.ch.Exec(ctx, schemaSQL), perr.ErrorCodeDB, "create "+Table)
}

// Record implements domain.AuditPort
func (a *Audit) Record(ctx context.Context, r domain.Resolution) error {
	ms := r.Latency.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	var failed uint8
	if r.Failed {
		failed = 1
	}
	row := []any{r.ID, r.At.UTC(), r.Lang, r.IntentID, r.Outcome, uint32(ms), failed}
	return perr.WrapIf(a.ch.Insert(ctx, Table, [][]any{row}), perr.ErrorCodeDB, "insert resolution")
}

// Nop drops every record
type Nop struct{}

// Record implements domain.AuditPort
func (Nop) Record(context.Context, domain.Resolution) error { return nil }
