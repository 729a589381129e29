package domain

import (
	"context"
	"time"

	"ledgerdesk/internal/services/statements/schema"
)

// IngesterPort accepts statement batches for all-or-nothing loading
type IngesterPort interface {
	Ingest(ctx context.Context, typ StatementType, recs []schema.Record) (IngestResult, error)
}

// QueryPort serves the typed production data sets
type QueryPort interface {
	FetchAll(ctx context.Context, typ StatementType) (any, error)
	RegisteredPatients(ctx context.Context) ([]RegisteredPatient, error)
}

// ReconcilerPort matches collections against the M-Pesa ledger for one day
type ReconcilerPort interface {
	ReconcileMpesa(ctx context.Context, day time.Time) ([]ReconciledMpesa, error)
}
