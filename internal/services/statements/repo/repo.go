// Package repo implements the statements storage layer: typed fetches from
// production, the reconciliation join, and the staging bulk loader
package repo

import (
	"context"
	"time"

	"ledgerdesk/internal/modkit/repokit"
	perr "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/platform/store"
	"ledgerdesk/internal/services/statements/domain"
	"ledgerdesk/internal/services/statements/schema"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the statements repository read surface
type Storage interface {
	FetchAll(ctx context.Context, typ domain.StatementType) (any, error)
	RegisteredPatients(ctx context.Context) ([]domain.RegisteredPatient, error)
	ReconcileMpesa(ctx context.Context, day time.Time) ([]domain.ReconciledMpesa, error)
}

// FetchAll returns every production row of the given statement type, fully
// decoded or not at all
func (s *pg) FetchAll(ctx context.Context, typ domain.StatementType) (any, error) {
	sch, err := schema.Lookup(string(typ))
	if err != nil {
		return nil, err
	}
	sql := selectAll(sch.Production)

	switch typ {
	case domain.TypeMpesa:
		return collect(ctx, s.q, decodeMpesaRow, sql)
	case domain.TypeCollectionDetails:
		return collect(ctx, s.q, decodeCollectionRow, sql)
	case domain.TypeBillDetails:
		return collect(ctx, s.q, decodeBillRow, sql)
	case domain.TypeLabVisits:
		return collect(ctx, s.q, decodeLabVisitRow, sql)
	case domain.TypeMtiba:
		return collect(ctx, s.q, decodeMtibaRow, sql)
	case domain.TypeAbsa:
		return collect(ctx, s.q, decodeAbsaRow, sql)
	case domain.TypePdq:
		return collect(ctx, s.q, decodePdqRow, sql)
	case domain.TypeSidian:
		return collect(ctx, s.q, decodeSidianRow, sql)
	case domain.TypeCfc:
		return collect(ctx, s.q, decodeCfcRow, sql)
	default:
		// registry and dispatch disagree, treat as unregistered
		return nil, perr.UnknownSchemaf("no decoder for statement type %q", typ)
	}
}

// RegisteredPatients returns the read-only patient register
func (s *pg) RegisteredPatients(ctx context.Context) ([]domain.RegisteredPatient, error) {
	return collect(ctx, s.q, decodeRegisteredPatient, selectAll(schema.RegisteredPatients))
}

// ReconcileMpesa joins one day of collections against the mpesa ledger
func (s *pg) ReconcileMpesa(ctx context.Context, day time.Time) ([]domain.ReconciledMpesa, error) {
	return collect(ctx, s.q, decodeReconciledMpesa, reconcileMpesaSQL, day)
}

// collect wraps store.Collect and classifies driver errors on the way out
func collect[T any](
	ctx context.Context,
	q repokit.Queryer,
	decode func(vals []any) (T, error),
	sql string,
	args ...any,
) ([]T, error) {
	out, err := store.Collect(ctx, q, decode, sql, args...)
	if err != nil {
		if _, ok := perr.As(err); ok {
			return nil, err
		}
		return nil, perr.FromPostgres(err, "query statements")
	}
	return out, nil
}
