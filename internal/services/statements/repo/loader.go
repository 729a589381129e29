package repo

import (
	"context"

	"ledgerdesk/internal/modkit/repokit"
	perr "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/services/statements/schema"
)

// copySource feeds one batch to the bulk write stream, encoding lazily so a
// bad record aborts the copy mid-stream and the transaction rolls back
type copySource struct {
	tbl  schema.Table
	recs []schema.Record
	idx  int
	err  error
}

func newCopySource(tbl schema.Table, recs []schema.Record) *copySource {
	return &copySource{tbl: tbl, recs: recs, idx: -1}
}

// Next advances to the next record, false once exhausted or failed
func (s *copySource) Next() bool {
	if s.err != nil {
		return false
	}
	s.idx++
	return s.idx < len(s.recs)
}

// Values encodes the current record against the staging declaration
func (s *copySource) Values() ([]any, error) {
	row, err := schema.Encode(s.tbl, s.recs[s.idx])
	if err != nil {
		s.err = err
		return nil, err
	}
	return row, nil
}

// Err reports the first encode failure
func (s *copySource) Err() error { return s.err }

// Load streams one batch into the staging table inside the caller's
// transaction. Encode failures surface as-is; driver failures are classified
// through the Postgres error mapping
func Load(ctx context.Context, q repokit.TxQuerier, sch schema.Schema, recs []schema.Record) (int64, error) {
	src := newCopySource(sch.Staging, recs)
	n, err := q.CopyFrom(ctx, sch.Staging.Identifier(), sch.Staging.ColumnNames(), src)
	if err != nil {
		if src.err != nil {
			return 0, src.err
		}
		return 0, perr.AttachFieldFromPg(perr.FromPostgres(err, "copy into "+sch.Staging.Name))
	}
	return n, nil
}
