package errors

// Postgres helpers: SQLSTATE to ErrorCode mapping and retry classification

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the catalog store can hit
const (
	pgErrUniqueViolation           = "23505"
	pgErrNotNullViolation          = "23502"
	pgErrCheckViolation            = "23514"
	pgErrStringDataRightTruncation = "22001"
	pgErrUndefinedTable            = "42P01"

	pgErrSerializationFailure   = "40001"
	pgErrDeadlockDetected       = "40P01"
	pgErrLockNotAvailable       = "55P03"
	pgErrReadOnlySQLTransaction = "25006"
	pgErrCannotConnectNow       = "57P03"
)

var pgCodes = map[string]ErrorCode{
	pgErrUniqueViolation:           ErrorCodeDuplicateKey,
	pgErrNotNullViolation:          ErrorCodeValidation,
	pgErrCheckViolation:            ErrorCodeValidation,
	pgErrStringDataRightTruncation: ErrorCodeInvalidArgument,
	pgErrUndefinedTable:            ErrorCodeNotFound,
	pgErrReadOnlySQLTransaction:    ErrorCodeUnavailable,
	pgErrCannotConnectNow:          ErrorCodeUnavailable,
}

// ExtractPgError returns (*pgconn.PgError, true) if err carries one
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
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

// IsUndefinedTable reports a query against a table not yet created
func IsUndefinedTable(err error) bool { return IsSQLState(err, pgErrUndefinedTable) }

// DBErrorCode maps a Postgres error to an ErrorCode
// !ok means err wasn't a PgError
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if c, ok := pgCodes[pgErr.Code]; ok {
		return c, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps a pg error with a mapped ErrorCode and message; nil stays nil
// errors that never reached the server (dial, pool closed) count as unavailable
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// FromPostgresf is the formatted variant of FromPostgres
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// FromPostgresWithField wraps like FromPostgres and names the offending column when known
func FromPostgresWithField(err error, msg string) error {
	out := FromPostgres(err, msg)
	if pgErr, ok := ExtractPgError(err); ok {
		if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
			return WithField(out, col)
		}
	}
	return out
}

// IsRetryable reports whether err is transient server side contention
// local cancellation is never retryable
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := ExtractPgError(err); ok {
		switch pgErr.Code {
		case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrLockNotAvailable:
			return true
		}
		return false
	}
	s := strings.ToLower(Root(err).Error())
	return strings.Contains(s, "commit unexpectedly resulted in rollback") ||
		strings.Contains(s, "deadlock detected") ||
		strings.Contains(s, "could not serialize access")
}
