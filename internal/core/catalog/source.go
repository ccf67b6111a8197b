package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	stderrs "errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"legallens/internal/core/normalize"
	perr "legallens/internal/platform/errors"
)

//go:embed intents.csv
var embedded []byte

// Column names of the tabular catalog format
const (
	ColID      = "id" // optional
	ColIntents = "intents"
	ColProcess = "process"
)

// Row is one raw catalog row before validation
type Row struct {
	ID      string // may be empty, derived from the first keyword
	Intents string // comma separated keyword list
	Process string
}

// Source yields raw rows in priority order
type Source interface {
	Rows(ctx context.Context) ([]Row, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context) ([]Row, error)

// Rows implements Source
func (f SourceFunc) Rows(ctx context.Context) ([]Row, error) { return f(ctx) }

// Load reads src and builds a catalog
func Load(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		return nil, loadErr(perr.ErrorCodeNotFound, "no catalog source")
	}
	rows, err := src.Rows(ctx)
	if err != nil {
		if stderrs.Is(err, ErrLoad) {
			return nil, err
		}
		return nil, loadCause(err, perr.ErrorCodeUnavailable, "read catalog source")
	}
	return FromRows(rows)
}

// LoadCSV parses r as a CSV catalog and builds it
func LoadCSV(r io.Reader) (*Catalog, error) {
	rows, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}
	return FromRows(rows)
}

// FromRows turns raw rows into records, deriving ids and splitting keywords
func FromRows(rows []Row) (*Catalog, error) {
	recs := make([]Record, 0, len(rows))
	for i, row := range rows {
		kws := ParseKeywords(row.Intents)
		if len(kws) == 0 {
			return nil, loadErr(perr.ErrorCodeValidation, "row %d: missing %s", i+1, ColIntents)
		}
		if strings.TrimSpace(row.Process) == "" {
			return nil, loadErr(perr.ErrorCodeValidation, "row %d: missing %s", i+1, ColProcess)
		}
		id := normalize.Slug(row.ID)
		if id == "" {
			id = normalize.Slug(kws[0])
		}
		if id == "" {
			return nil, loadErr(perr.ErrorCodeValidation, "row %d: cannot derive id from %q", i+1, kws[0])
		}
		recs = append(recs, Record{ID: id, Keywords: kws, Procedure: row.Process})
	}
	return New(recs)
}

// ParseKeywords splits an intents cell on commas, trims and folds each keyword, drops empties
func ParseKeywords(cell string) []string {
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := normalize.Fold(strings.TrimSpace(p)); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// ParseCSV reads a header row plus data rows
// The intents and process columns are required, id is optional, unknown columns are ignored
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, loadErr(perr.ErrorCodeValidation, "empty catalog")
	}
	if err != nil {
		return nil, loadCause(err, perr.ErrorCodeValidation, "read catalog header")
	}

	cols := map[string]int{}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, seen := cols[h]; !seen {
			cols[h] = i
		}
	}
	iIntents, okI := cols[ColIntents]
	iProcess, okP := cols[ColProcess]
	if !okI || !okP {
		return nil, loadErr(perr.ErrorCodeValidation, "catalog header must contain %q and %q", ColIntents, ColProcess)
	}
	iID, hasID := cols[ColID]

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, loadCause(err, perr.ErrorCodeValidation, "catalog line %d", line)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) <= iIntents || len(rec) <= iProcess {
			return nil, loadErr(perr.ErrorCodeValidation, "catalog line %d: missing columns", line)
		}
		row := Row{Intents: rec[iIntents], Process: rec[iProcess]}
		if hasID && iID < len(rec) {
			row.ID = rec[iID]
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, loadErr(perr.ErrorCodeValidation, "catalog has no rows")
	}
	return rows, nil
}

// File is a CSV catalog on disk
type File string

// Rows implements Source
func (f File) Rows(context.Context) ([]Row, error) {
	fh, err := os.Open(string(f))
	if err != nil {
		if stderrs.Is(err, fs.ErrNotExist) {
			return nil, loadCause(err, perr.ErrorCodeNotFound, "catalog file %s", string(f))
		}
		return nil, loadCause(err, perr.ErrorCodeUnavailable, "open catalog file %s", string(f))
	}
	defer func() { _ = fh.Close() }()
	return ParseCSV(fh)
}

// Embedded is the catalog compiled into the binary
func Embedded() Source {
	return SourceFunc(func(context.Context) ([]Row, error) {
		return ParseCSV(bytes.NewReader(embedded))
	})
}
