package errors

// Postgres-specific helpers for mapping pgx errors onto the project ErrorCode taxonomy

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes we classify
const (
	pgErrUniqueViolation           = "23505"
	pgErrForeignKeyViolation       = "23503"
	pgErrNotNullViolation          = "23502"
	pgErrCheckViolation            = "23514"
	pgErrStringDataRightTruncation = "22001"
	pgErrInvalidTextRepresentation = "22P02"

	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrCannotConnectNow     = "57P03" // startup in progress
	pgErrAdminShutdown        = "57P01"
)

// sqlstate class prefixes
const (
	pgClassConnection = "08" // connection exceptions
	pgClassIntegrity  = "23" // integrity constraint violations
)

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether the error is a Postgres error with the given SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports whether the error is a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgErrUniqueViolation) }

// IsNotNullViolation reports whether the error is a not-null constraint violation
func IsNotNullViolation(err error) bool { return IsSQLState(err, pgErrNotNullViolation) }

// IsConstraintViolation reports whether the error is any integrity constraint violation
func IsConstraintViolation(err error) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && strings.HasPrefix(pgErr.Code, pgClassIntegrity)
}

// DBErrorCode maps a Postgres error to an ErrorCode with an ok flag
// !ok means err wasn't a PgError; caller may fall back to generic handling
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}

	switch {
	case strings.HasPrefix(pgErr.Code, pgClassIntegrity):
		return ErrorCodeConstraintViolation, true

	case strings.HasPrefix(pgErr.Code, pgClassConnection),
		pgErr.Code == pgErrCannotConnectNow,
		pgErr.Code == pgErrAdminShutdown:
		return ErrorCodeConnection, true

	case pgErr.Code == pgErrStringDataRightTruncation,
		pgErr.Code == pgErrInvalidTextRepresentation:
		return ErrorCodeInvalidArgument, true

	case pgErr.Code == pgErrSerializationFailure,
		pgErr.Code == pgErrDeadlockDetected:
		// retryable server-side contention, but retry policy belongs to the caller
		return ErrorCodeDB, true
	}

	return ErrorCodeDB, true
}

// FromPostgres wraps a store error with a mapped ErrorCode and message.
// Connection-level failures that never reached the server (dial errors,
// closed pool, cancellation) classify as ErrorCodeConnection.
// If err is nil, returns nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return AttachFieldFromPg(Wrap(err, code, msg))
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrorCodeConnection, msg)
	}
	if isTransportError(err) {
		return Wrap(err, ErrorCodeConnection, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// isTransportError sniffs pgx/pool text for failures below the SQL layer
func isTransportError(err error) bool {
	s := strings.ToLower(Root(err).Error())
	switch {
	case strings.Contains(s, "connection refused"),
		strings.Contains(s, "connection reset"),
		strings.Contains(s, "broken pipe"),
		strings.Contains(s, "closed pool"),
		strings.Contains(s, "conn closed"),
		strings.Contains(s, "failed to connect"):
		return true
	default:
		return false
	}
}

// AttachFieldFromPg tries to enrich an error with a column name derived from PgError.
// Priority: ColumnName -> last token of ConstraintName (statements_receipt_no_key -> receipt_no is
// not derivable that way, so only single-token suffixes are used).
// Returns the original error if no field can be inferred
func AttachFieldFromPg(err error) error {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return err
	}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return WithField(err, col)
	}
	if c := strings.TrimSpace(pgErr.ConstraintName); c != "" {
		tok := c
		if i := strings.LastIndex(c, "_"); i >= 0 && i+1 < len(c) {
			tok = c[i+1:]
		}
		if tok != "" && tok != "key" && tok != "fkey" {
			return WithField(err, tok)
		}
	}
	return err
}
