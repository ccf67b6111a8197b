package repo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"legallens/internal/modkit/repokit"
	perr "legallens/internal/platform/errors"
	"legallens/internal/services/api/ask/domain"

	"github.com/google/uuid"
)

type fakeCH struct {
	execs []string
	table string
	rows  [][]any
	err   error
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, sql)
	return f.err
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table = table
	f.rows = append(f.rows, rows...)
	return f.err
}

func (f *fakeCH) Query(context.Context, string, ...any) (repokit.Rows, error) { return nil, f.err }
func (f *fakeCH) Close() error                                                { return nil }

func TestNewCH_NilIsNop(t *testing.T) {
	if _, ok := NewCH(nil).(Nop); !ok {
		t.Fatal("nil clickhouse should give Nop")
	}
	if err := (Nop{}).Record(context.Background(), domain.Resolution{}); err != nil {
		t.Fatal(err)
	}
}

func TestRecord(t *testing.T) {
	ch := &fakeCH{}
	a := NewCH(ch).(*Audit)
	if err := a.EnsureSchema(context.Background()); err != nil || !strings.Contains(ch.execs[0], Table) {
		t.Fatalf("schema = %v %v", err, ch.execs)
	}

	id := uuid.New()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("IST", 19800))
	err := a.Record(context.Background(), domain.Resolution{
		ID: id, At: at, Lang: "hi", IntentID: "passport", Outcome: "procedure", Latency: 1500 * time.Microsecond,
	})
	if err != nil {
		t.Fatal(err)
	}
	if ch.table != Table || len(ch.rows) != 1 {
		t.Fatalf("insert = %s %v", ch.table, ch.rows)
	}
	row := ch.rows[0]
	if row[0] != id || !row[1].(time.Time).Equal(at) || row[1].(time.Time).Location() != time.UTC {
		t.Fatalf("row = %v", row)
	}
	if row[5] != uint32(1) || row[6] != uint8(0) {
		t.Fatalf("latency/failed = %v %v", row[5], row[6])
	}
}

func TestRecord_Error(t *testing.T) {
	a := NewCH(&fakeCH{err: errors.New("ch down")})
	err := a.Record(context.Background(), domain.Resolution{Failed: true, Latency: -time.Second})
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("err = %v", err)
	}
}
