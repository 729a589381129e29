// Package service provides the statements service implementation
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ledgerdesk/internal/modkit/repokit"
	perr "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/platform/logger"
	"ledgerdesk/internal/services/statements/domain"
	"ledgerdesk/internal/services/statements/repo"
	"ledgerdesk/internal/services/statements/schema"
)

// Config for the statements service
type Config struct {
	// MaxBatch caps the record count of one ingest, 0 means unlimited
	MaxBatch int
}

// Service implements the ingest, query, and reconcile ports
type Service struct {
	tx     repokit.TxRunner
	binder repokit.Binder[repo.Storage]
	cfg    Config
}

// New constructs the statements service
func New(tx repokit.TxRunner, binder repokit.Binder[repo.Storage], cfg Config) *Service {
	return &Service{tx: tx, binder: binder, cfg: cfg}
}

// Ingest loads one batch into the staging table of typ, all or nothing.
// Record order is preserved and the returned count always equals the batch
// size on success. Nothing is retried
func (s *Service) Ingest(
	ctx context.Context,
	typ domain.StatementType,
	recs []schema.Record,
) (domain.IngestResult, error) {
	sch, err := schema.Lookup(string(typ))
	if err != nil {
		return domain.IngestResult{}, err
	}
	if s.cfg.MaxBatch > 0 && len(recs) > s.cfg.MaxBatch {
		return domain.IngestResult{}, perr.InvalidArgf(
			"batch of %d records exceeds the limit of %d", len(recs), s.cfg.MaxBatch,
		)
	}

	ingestID := uuid.NewString()
	start := time.Now()

	var count int64
	err = repokit.WithTx(ctx, s.tx, func(q repokit.TxQuerier) error {
		n, err := repo.Load(ctx, q, sch, recs)
		if err != nil {
			return err
		}
		if n != int64(len(recs)) {
			return perr.Newf(perr.ErrorCodeCommitFailed,
				"stream wrote %d rows, batch has %d", n, len(recs))
		}
		count = n
		return nil
	})
	if err != nil {
		logger.C(ctx).Warn().
			Str("ingest_id", ingestID).
			Str("type", string(typ)).
			Int("records", len(recs)).
			Str("code", perr.CodeOf(err).String()).
			Msg("ingest rolled back")
		return domain.IngestResult{}, err
	}

	logger.C(ctx).Info().
		Str("ingest_id", ingestID).
		Str("type", string(typ)).
		Int64("count", count).
		Dur("elapsed", time.Since(start)).
		Msg("batch committed")

	return domain.IngestResult{IngestID: ingestID, Type: typ, Count: count}, nil
}

// FetchAll returns every production row of typ as the typed record slice
func (s *Service) FetchAll(ctx context.Context, typ domain.StatementType) (any, error) {
	return s.binder.Bind(s.tx).FetchAll(ctx, typ)
}

// RegisteredPatients returns the read-only patient register
func (s *Service) RegisteredPatients(ctx context.Context) ([]domain.RegisteredPatient, error) {
	return s.binder.Bind(s.tx).RegisteredPatients(ctx)
}

// ReconcileMpesa matches one day of collections against the mpesa ledger
func (s *Service) ReconcileMpesa(ctx context.Context, day time.Time) ([]domain.ReconciledMpesa, error) {
	return s.binder.Bind(s.tx).ReconcileMpesa(ctx, day)
}

var (
	_ domain.IngesterPort   = (*Service)(nil)
	_ domain.QueryPort      = (*Service)(nil)
	_ domain.ReconcilerPort = (*Service)(nil)
)
