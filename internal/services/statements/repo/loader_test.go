package repo

import (
	"context"
	"errors"
	"testing"

	"ledgerdesk/internal/modkit/repokit"
	perr "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/services/statements/schema"
)

// fakeCopier drains a copy source the way the driver does: rows stream until
// Values fails, and a mid-stream failure aborts the whole copy
type fakeCopier struct {
	table   []string
	columns []string
	rows    [][]any
	copyErr error
}

func (f *fakeCopier) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	return nil, errors.New("unexpected exec")
}

func (f *fakeCopier) Query(context.Context, string, ...any) (repokit.Rows, error) {
	return nil, errors.New("unexpected query")
}

func (f *fakeCopier) QueryRow(context.Context, string, ...any) repokit.Row { return nil }

func (f *fakeCopier) CopyFrom(_ context.Context, table, columns []string, src repokit.CopySource) (int64, error) {
	f.table = table
	f.columns = columns
	if f.copyErr != nil {
		return 0, f.copyErr
	}
	for src.Next() {
		row, err := src.Values()
		if err != nil {
			return int64(len(f.rows)), err
		}
		f.rows = append(f.rows, row)
	}
	return int64(len(f.rows)), src.Err()
}

// probeRec lowers a pre-built row
type probeRec []any

func (r probeRec) WireValues() []any { return r }

var probeSchema = schema.Schema{
	Type: "probe",
	Staging: schema.Table{Schema: "staging", Name: "probe", Columns: []schema.Column{
		{Name: "ref", Type: schema.WireText},
		{Name: "amount", Type: schema.WireFloat8, Nullable: true},
	}},
}

func TestLoadStreamsBatchInOrder(t *testing.T) {
	q := &fakeCopier{}
	recs := []schema.Record{
		probeRec{"a", 1.0},
		probeRec{"b", nil},
		probeRec{"c", 3.5},
	}

	n, err := Load(context.Background(), q, probeSchema, recs)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("Load reported %d rows, want 3", n)
	}

	if len(q.table) != 2 || q.table[0] != "staging" || q.table[1] != "probe" {
		t.Fatalf("copy targeted %v", q.table)
	}
	if len(q.columns) != 2 || q.columns[0] != "ref" || q.columns[1] != "amount" {
		t.Fatalf("copy declared columns %v", q.columns)
	}
	if len(q.rows) != 3 || q.rows[0][0] != "a" || q.rows[2][0] != "c" {
		t.Fatalf("rows out of order: %v", q.rows)
	}
	if q.rows[1][1] != nil {
		t.Fatalf("null marker lost: %v", q.rows[1])
	}
}

func TestLoadAbortsOnBadRecordMidStream(t *testing.T) {
	q := &fakeCopier{}
	recs := []schema.Record{
		probeRec{"a", 1.0},
		probeRec{nil, 2.0}, // null in required column
		probeRec{"c", 3.0},
	}

	_, err := Load(context.Background(), q, probeSchema, recs)
	if !perr.IsCode(err, perr.ErrorCodeSchemaViolation) {
		t.Fatalf("code = %v, want schema violation", perr.CodeOf(err))
	}
	e, _ := perr.As(err)
	if e.Field() != "ref" {
		t.Fatalf("violation does not name the column: %v", err)
	}
	if len(q.rows) != 1 {
		t.Fatalf("copy streamed %d rows past the failure", len(q.rows))
	}
}

func TestLoadClassifiesDriverFailure(t *testing.T) {
	q := &fakeCopier{copyErr: errors.New("write failed: connection reset by peer")}

	_, err := Load(context.Background(), q, probeSchema, []schema.Record{probeRec{"a", 1.0}})
	if !perr.IsCode(err, perr.ErrorCodeConnection) {
		t.Fatalf("code = %v, want connection", perr.CodeOf(err))
	}
}

func TestLoadEmptyBatch(t *testing.T) {
	q := &fakeCopier{}
	n, err := Load(context.Background(), q, probeSchema, nil)
	if err != nil {
		t.Fatalf("Load of empty batch failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("empty batch wrote %d rows", n)
	}
}
