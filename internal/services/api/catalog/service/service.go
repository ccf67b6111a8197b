// Package service holds the catalog workflows: load, list, reload and seed
package service

import (
	"context"
	"fmt"

	"legallens/internal/core/catalog"
	"legallens/internal/core/steps"
	"legallens/internal/modkit/repokit"
	perr "legallens/internal/platform/errors"
	"legallens/internal/platform/logger"
	"legallens/internal/services/api/catalog/domain"
	"legallens/internal/services/api/catalog/repo"
)

// Source kinds
const (
	SourceEmbedded = "embedded"
	SourceCSV      = "csv"
	SourcePG       = "pg"
)

// Config selects where intents come from
type Config struct {
	Source string // embedded, csv or pg
	Path   string // csv file for SourceCSV
}

// Service defines the catalog service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the catalog service over a Holder
type Svc struct {
	holder *catalog.Holder
	src    catalog.Source
	kind   string
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	log    *logger.Logger
}

// New resolves the configured source; it does not load yet, call Open
// db may be nil unless the source is pg or the caller seeds
func New(cfg Config, db repokit.TxRunner, binder repokit.Binder[repo.Repo], log *logger.Logger) (*Svc, error) {
	if binder == nil {
		binder = repo.NewPG()
	}
	if log == nil {
		log = logger.Named("catalog")
	}
	s := &Svc{holder: catalog.NewHolder(nil), db: db, binder: binder, log: log}
	src, kind, err := s.sourceFor(cfg)
	if err != nil {
		return nil, err
	}
	s.src, s.kind = src, kind
	return s, nil
}

func (s *Svc) sourceFor(cfg Config) (catalog.Source, string, error) {
	switch cfg.Source {
	case "", SourceEmbedded:
		return catalog.Embedded(), SourceEmbedded, nil
	case SourceCSV:
		if cfg.Path == "" {
			return nil, "", perr.New(perr.ErrorCodeInvalidArgument, "catalog: csv source needs a path")
		}
		return catalog.File(cfg.Path), SourceCSV, nil
	case SourcePG:
		if s.db == nil {
			return nil, "", perr.New(perr.ErrorCodeUnavailable, "catalog: pg source needs postgres")
		}
		return repo.Source(s.binder, s.db), SourcePG, nil
	}
	return nil, "", perr.Newf(perr.ErrorCodeInvalidArgument, "catalog: unknown source %q", cfg.Source)
}

// Open performs the initial load; a failure here is fatal for the process
func (s *Svc) Open(ctx context.Context) error {
	c, err := s.holder.Reload(ctx, s.src)
	if err != nil {
		return err
	}
	s.log.Info().Str("source", s.kind).Int("intents", c.Len()).Msg("catalog loaded")
	return nil
}

// Current returns the active catalog snapshot
func (s *Svc) Current() *catalog.Catalog { return s.holder.Current() }

// Holder exposes the RCU holder for the resolver
func (s *Svc) Holder() *catalog.Holder { return s.holder }

// List returns the active intents in match priority order
func (s *Svc) List(_ context.Context) ([]domain.IntentView, error) {
	c := s.holder.Current()
	if c == nil {
		return nil, perr.Wrap(catalog.ErrLoad, perr.ErrorCodeUnavailable, "no catalog loaded")
	}
	out := make([]domain.IntentView, 0, c.Len())
	for _, r := range c.All() {
		out = append(out, domain.IntentView{
			ID:       r.ID,
			Keywords: r.Keywords,
			Steps:    steps.Format(r.Procedure),
		})
	}
	return out, nil
}

// Reload rebuilds the catalog from its source and swaps it in on success
// on failure the previous catalog stays active
func (s *Svc) Reload(ctx context.Context) (domain.ReloadResult, error) {
	c, err := s.holder.Reload(ctx, s.src)
	if err != nil {
		s.log.Warn().Err(err).Str("source", s.kind).Msg("catalog reload failed, keeping previous")
		return domain.ReloadResult{}, err
	}
	s.log.Info().Str("source", s.kind).Int("intents", c.Len()).Msg("catalog reloaded")
	return domain.ReloadResult{Intents: c.Len(), Source: s.kind}, nil
}

// Seed validates rows as a catalog and replaces the postgres table in one tx
func (s *Svc) Seed(ctx context.Context, rows []catalog.Row) (int, error) {
	if s.db == nil {
		return 0, perr.New(perr.ErrorCodeUnavailable, "catalog: seeding needs postgres")
	}
	if _, err := catalog.FromRows(rows); err != nil {
		return 0, err
	}
	var n int
	err := repokit.InTx(ctx, s.db, s.binder, func(r repo.Repo) error {
		if err := r.EnsureSchema(ctx); err != nil {
			return err
		}
		var err error
		n, err = r.Replace(ctx, rows)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("seed intents: %w", err)
	}
	s.log.Info().Int("intents", n).Msg("catalog seeded")
	return n, nil
}
