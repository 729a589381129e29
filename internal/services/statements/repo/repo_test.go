package repo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ledgerdesk/internal/modkit/repokit"
	perr "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/services/statements/domain"
)

// fakeRows replays canned positional rows
type fakeRows struct {
	vals [][]any
	idx  int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.vals) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(...any) error      { return errors.New("positional only") }
func (r *fakeRows) Values() ([]any, error) { return r.vals[r.idx-1], nil }
func (r *fakeRows) Err() error             { return r.err }
func (r *fakeRows) Close()                 {}
func (r *fakeRows) Columns() []string      { return nil }

// fakeQueryer records the last query and serves canned rows
type fakeQueryer struct {
	sql      string
	args     []any
	rows     *fakeRows
	queryErr error
}

func (q *fakeQueryer) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	return nil, errors.New("unexpected exec")
}

func (q *fakeQueryer) Query(_ context.Context, sql string, args ...any) (repokit.Rows, error) {
	q.sql = sql
	q.args = args
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return q.rows, nil
}

func (q *fakeQueryer) QueryRow(context.Context, string, ...any) repokit.Row { return nil }

func TestFetchAllUnknownType(t *testing.T) {
	q := &fakeQueryer{}
	st := NewPG().Bind(q)

	_, err := st.FetchAll(context.Background(), domain.StatementType("equity"))
	if !perr.IsCode(err, perr.ErrorCodeUnknownSchema) {
		t.Fatalf("code = %v, want unknown schema", perr.CodeOf(err))
	}
	if q.sql != "" {
		t.Fatalf("unknown type still queried: %q", q.sql)
	}
}

func TestFetchAllMpesa(t *testing.T) {
	q := &fakeQueryer{rows: &fakeRows{vals: [][]any{mpesaVals(), mpesaVals()}}}
	st := NewPG().Bind(q)

	out, err := st.FetchAll(context.Background(), domain.TypeMpesa)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	rows, ok := out.([]domain.MpesaRow)
	if !ok {
		t.Fatalf("FetchAll returned %T", out)
	}
	if len(rows) != 2 || rows[0].ReceiptNo != "SFA1B2C3" {
		t.Fatalf("rows = %+v", rows)
	}

	if !strings.Contains(q.sql, "FROM production.mpesa_statement") {
		t.Fatalf("query targets wrong table: %q", q.sql)
	}
	if !strings.HasPrefix(q.sql, "SELECT receipt_no, completion_time") {
		t.Fatalf("select list does not follow the registry: %q", q.sql)
	}
}

func TestFetchAllDecodeFailureAbortsResult(t *testing.T) {
	bad := mpesaVals()
	bad[0] = nil
	q := &fakeQueryer{rows: &fakeRows{vals: [][]any{mpesaVals(), bad}}}
	st := NewPG().Bind(q)

	_, err := st.FetchAll(context.Background(), domain.TypeMpesa)
	if !perr.IsCode(err, perr.ErrorCodeMissingRequiredField) {
		t.Fatalf("code = %v, want missing required field", perr.CodeOf(err))
	}
}

func TestFetchAllClassifiesDriverFailure(t *testing.T) {
	q := &fakeQueryer{queryErr: errors.New("failed to connect to `host=db`")}
	st := NewPG().Bind(q)

	_, err := st.FetchAll(context.Background(), domain.TypeMpesa)
	if !perr.IsCode(err, perr.ErrorCodeConnection) {
		t.Fatalf("code = %v, want connection", perr.CodeOf(err))
	}
}

func TestRegisteredPatientsQuery(t *testing.T) {
	at := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	q := &fakeQueryer{rows: &fakeRows{vals: [][]any{
		{"UH-1", at, "Jane Doe", "30", "F", nil, "0700000000"},
	}}}
	st := NewPG().Bind(q)

	out, err := st.RegisteredPatients(context.Background())
	if err != nil {
		t.Fatalf("RegisteredPatients failed: %v", err)
	}
	if len(out) != 1 || out[0].UHID != "UH-1" || out[0].Address != nil {
		t.Fatalf("rows = %+v", out)
	}
	if !strings.Contains(q.sql, "FROM registered_patients") {
		t.Fatalf("query targets wrong table: %q", q.sql)
	}
}

func TestReconcileMpesaBindsDay(t *testing.T) {
	day := time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC)
	q := &fakeQueryer{rows: &fakeRows{}}
	st := NewPG().Bind(q)

	out, err := st.ReconcileMpesa(context.Background(), day)
	if err != nil {
		t.Fatalf("ReconcileMpesa failed: %v", err)
	}
	if out != nil {
		t.Fatalf("empty day returned rows: %+v", out)
	}
	if len(q.args) != 1 || !q.args[0].(time.Time).Equal(day) {
		t.Fatalf("day not bound: %v", q.args)
	}
	if !strings.Contains(q.sql, "production.collection_details") ||
		!strings.Contains(q.sql, "production.mpesa_statement") {
		t.Fatalf("join targets wrong tables: %q", q.sql)
	}
}
