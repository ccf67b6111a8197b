// Package catalog holds the table of known legal intents and their procedures
// Records keep file order, which is the match priority order
// A Catalog is immutable after construction and safe for concurrent readers
package catalog

import (
	stderrs "errors"
	"fmt"
	"strings"

	"legallens/internal/core/normalize"
	perr "legallens/internal/platform/errors"
)

// ErrLoad marks every failure to build a catalog from its source
var ErrLoad = stderrs.New("catalog load failed")

// Record is one known intent
type Record struct {
	ID        string   // stable identifier, eg "driving_license"
	Keywords  []string // folded trigger strings, never empty
	Procedure string   // raw procedure text as stored in the source
}

// Catalog is a loaded, read-only set of intents
type Catalog struct {
	records []Record
	byID    map[string]int
}

// New validates records and builds a catalog preserving their order
func New(records []Record) (*Catalog, error) {
	c := &Catalog{
		records: make([]Record, 0, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	for i, r := range records {
		if r.ID == "" {
			return nil, loadErr(perr.ErrorCodeValidation, "record %d: empty id", i+1)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, loadErr(perr.ErrorCodeValidation, "record %d: duplicate id %q", i+1, r.ID)
		}
		if len(r.Keywords) == 0 {
			return nil, loadErr(perr.ErrorCodeValidation, "record %d (%s): no keywords", i+1, r.ID)
		}
		kws := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			if k = normalize.Fold(strings.TrimSpace(k)); k != "" {
				kws = append(kws, k)
			}
		}
		if len(kws) == 0 {
			return nil, loadErr(perr.ErrorCodeValidation, "record %d (%s): no keywords", i+1, r.ID)
		}
		if strings.TrimSpace(r.Procedure) == "" {
			return nil, loadErr(perr.ErrorCodeValidation, "record %d (%s): empty procedure", i+1, r.ID)
		}
		c.byID[r.ID] = len(c.records)
		c.records = append(c.records, Record{ID: r.ID, Keywords: kws, Procedure: r.Procedure})
	}
	if len(c.records) == 0 {
		return nil, loadErr(perr.ErrorCodeValidation, "no records")
	}
	return c, nil
}

// All returns the records in match priority order
// The slice is a copy; keyword slices are shared and must not be modified
func (c *Catalog) All() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len reports the number of records
func (c *Catalog) Len() int { return len(c.records) }

// At returns the i-th record in priority order
func (c *Catalog) At(i int) Record { return c.records[i] }

// Lookup finds a record by id
func (c *Catalog) Lookup(id string) (Record, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

// loadErr wraps ErrLoad so errors.Is(err, ErrLoad) holds alongside the perr code
func loadErr(code perr.ErrorCode, format string, a ...any) error {
	return perr.Wrapf(ErrLoad, code, format, a...)
}

// loadCause wraps both ErrLoad and an underlying cause
func loadCause(cause error, code perr.ErrorCode, format string, a ...any) error {
	return perr.Wrapf(fmt.Errorf("%w: %w", ErrLoad, cause), code, format, a...)
}
