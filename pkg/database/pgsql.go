package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolOptions control pool sizing and the startup connection retry loop.
// Zero values fall back to the driver defaults and a single attempt.
type PoolOptions struct {
	MaxConns        int32
	ConnectAttempts int
	ConnectBackoff  time.Duration
}

// NewPgxPool creates a PostgreSQL connection pool and verifies connectivity,
// retrying the initial ping up to ConnectAttempts times. This covers the
// window where the database container is still coming up.
func NewPgxPool(ctx context.Context, databaseURL string, opts PoolOptions) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	attempts := opts.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 1; ; attempt++ {
		err = pool.Ping(ctx)
		if err == nil {
			break
		}
		if attempt == attempts {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database after %d attempts: %w", attempts, err)
		}
		slog.Warn("Database not reachable yet, retrying",
			slog.Int("attempt", attempt), slog.String("error", err.Error()))
		select {
		case <-time.After(opts.ConnectBackoff):
		case <-ctx.Done():
			pool.Close()
			return nil, ctx.Err()
		}
	}

	slog.Info("Successfully connected to PostgreSQL database.")
	return pool, nil
}

// ClosePgxPool closes the PostgreSQL connection pool.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
		slog.Info("PostgreSQL connection pool closed.")
	}
}
