package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	"github.com/vmaryna/cashdine_backend/internal/middleware"
)

// BaseService provides common functionality for all services.
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting.
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// isNotFound reports whether err means the looked-up resource does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}

const (
	maxRetryAttempts  = 3
	retryInitialDelay = 50 * time.Millisecond
)

// withRetry runs fn and retries it on transient storage failures with
// doubling backoff. Only call it with operations that are safe to repeat:
// reads, and writes guarded by a request token.
func (s *BaseService) withRetry(ctx context.Context, fn func() error) error {
	var err error
	delay := retryInitialDelay
	for attempt := 1; attempt <= maxRetryAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !errors.Is(err, apperrors.ErrStorageUnavailable) && !errors.Is(err, apperrors.ErrTimeout) {
			return err
		}
		if attempt == maxRetryAttempts {
			break
		}
		s.LogDebug(ctx, "Retrying after transient storage failure",
			slog.Int("attempt", attempt), slog.Duration("delay", delay))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}
	return err
}
