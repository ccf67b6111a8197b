// Package repo provides postgres access for the intent catalog
package repo

import (
	"context"
	"fmt"

	"legallens/internal/core/catalog"
	"legallens/internal/modkit/repokit"
	perr "legallens/internal/platform/errors"
	"legallens/internal/platform/store"
	pstrings "legallens/internal/platform/strings"
)

// Repo is the persistence surface for intents
// rows keep their priority through the position column
type Repo interface {
	EnsureSchema(ctx context.Context) error
	Rows(ctx context.Context) ([]catalog.Row, error)
	Replace(ctx context.Context, rows []catalog.Row) (int, error)
}

type (
	// PG binds the repo to a Queryer or a tx
	PG struct{}
	// queries implements Repo
	queries struct{ q repokit.Queryer }
)

// NewPG returns the postgres binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// Source reads the catalog through a repo bound to q
func Source(b repokit.Binder[Repo], q repokit.Queryer) catalog.Source {
	r := repokit.MustBind(b, q)
	return catalog.SourceFunc(r.Rows)
}

const schemaSQL = `
create table if not exists intents (
	position  integer primary key,
	id        text unique,
	keywords  text not null,
	procedure text not null,
	updated_at timestamptz not null default now()
)`

func (r *queries) EnsureSchema(ctx context.Context) error {
	_, err := r.q.Exec(ctx, schemaSQL)
	return perr.WrapIf(err, perr.ErrorCodeDB, "create intents table")
}

func (r *queries) Rows(ctx context.Context) ([]catalog.Row, error) {
	const sql = `
select coalesce(id, ''), keywords, procedure
from intents
order by position asc
`
	rows, err := store.Many(ctx, r.q, scanRow, sql)
	if err != nil {
		if perr.IsUndefinedTable(err) {
			return nil, perr.Wrap(err, perr.ErrorCodeNotFound, "intents table missing, seed the catalog first")
		}
		return nil, perr.FromPostgres(err, "read intents")
	}
	return rows, nil
}

func scanRow(row store.Row) (catalog.Row, error) {
	var out catalog.Row
	err := row.Scan(&out.ID, &out.Intents, &out.Process)
	return out, err
}

// Replace swaps the whole table for rows; run it inside a tx
func (r *queries) Replace(ctx context.Context, rows []catalog.Row) (int, error) {
	if _, err := r.q.Exec(ctx, `delete from intents`); err != nil {
		return 0, perr.FromPostgres(err, "clear intents")
	}
	const ins = `insert into intents (position, id, keywords, procedure) values ($1, $2, $3, $4)`
	for i, row := range rows {
		if err := store.ExecOne(ctx, r.q, ins, i+1, pstrings.SQLNull(row.ID), row.Intents, row.Process); err != nil {
			if perr.IsDuplicateKey(err) {
				return 0, perr.WithField(perr.FromPostgresf(err, "row %d: duplicate intent id %q", i+1, row.ID), "id")
			}
			return 0, perr.FromPostgresWithField(err, fmt.Sprintf("insert intent row %d", i+1))
		}
	}
	return len(rows), nil
}
