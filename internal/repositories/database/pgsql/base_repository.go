package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
)

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, wrapStorageError(err, "failed to begin transaction")
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return wrapStorageError(err, "failed to commit transaction")
	}
	return nil
}

// Rollback rolls back a transaction. A rollback after commit is a no-op.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return wrapStorageError(err, "failed to rollback transaction")
	}
	return nil
}

// wrapStorageError classifies a database error so callers can decide on
// retries with errors.Is: context deadlines become ErrTimeout, connection and
// resource failures become ErrStorageUnavailable, everything else is wrapped
// as-is.
func wrapStorageError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", msg, apperrors.ErrTimeout)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08: connection exceptions, 53: insufficient resources,
		// 57: operator intervention (shutdown etc.) are transient.
		if strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "53") || strings.HasPrefix(pgErr.Code, "57") {
			return fmt.Errorf("%s: %w", msg, apperrors.ErrStorageUnavailable)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
