package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	portsrepo "github.com/vmaryna/cashdine_backend/internal/core/ports/repositories"
	"github.com/vmaryna/cashdine_backend/internal/middleware"
	"github.com/vmaryna/cashdine_backend/internal/models"
)

type PgxTransferRepository struct {
	BaseRepository
	balanceRepo portsrepo.BalanceTransactionSupport
}

// NewTransferRepository creates a new repository for the transfer ledger. It
// shares the balance repository's in-transaction helpers so both sides of a
// transfer commit or roll back together.
func NewTransferRepository(pool *pgxpool.Pool, balanceRepo portsrepo.BalanceTransactionSupport) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{
		BaseRepository: BaseRepository{Pool: pool},
		balanceRepo:    balanceRepo,
	}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

func toDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:   m.TransferID,
		RequestToken: m.RequestToken,
		FromUserID:   m.FromUserID,
		ToID:         m.ToID,
		ToKind:       domain.TransferTargetKind(m.ToKind),
		RestaurantID: m.RestaurantID,
		Amount:       m.Amount,
		Status:       domain.TransferStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}

const transferColumns = `transfer_id, request_token, from_user_id, to_id, to_kind, restaurant_id, amount, status, created_at`

func scanTransfer(row pgx.Row) (*domain.Transfer, error) {
	var m models.Transfer
	err := row.Scan(&m.TransferID, &m.RequestToken, &m.FromUserID, &m.ToID, &m.ToKind, &m.RestaurantID, &m.Amount, &m.Status, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	transfer := toDomainTransfer(m)
	return &transfer, nil
}

// CreateTransfer runs the whole transfer as one database transaction:
//  1. look up the request token; an identical committed request is replayed,
//     a different payload under the same token is rejected
//  2. lock the two balance rows in deterministic key order
//  3. re-check the sender's balance under the lock
//  4. debit, credit, append the committed record
//
// The bool result is true when the stored record was replayed.
func (r *PgxTransferRepository) CreateTransfer(ctx context.Context, transfer domain.Transfer) (*domain.Transfer, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to rollback transfer transaction", slog.String("error", rbErr.Error()))
		}
	}()

	existing, err := r.findByTokenInTx(ctx, tx, transfer.RequestToken)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if !sameTransferPayload(*existing, transfer) {
			return nil, false, apperrors.ErrDuplicateRequest
		}
		logger.Info("Transfer replayed from stored record", slog.String("transfer_id", existing.TransferID))
		return existing, true, nil
	}

	sourceKey := transfer.SourceKey()
	destKey := transfer.DestinationKey()

	locked, err := r.balanceRepo.LockBalancesForUpdate(ctx, tx, []domain.BalanceKey{sourceKey, destKey})
	if err != nil {
		return nil, false, err
	}
	if locked[sourceKey].LessThan(transfer.Amount) {
		return nil, false, apperrors.ErrInsufficientBalance
	}

	now := transfer.CreatedAt
	if err := r.balanceRepo.DebitInTx(ctx, tx, sourceKey, transfer.Amount, now); err != nil {
		return nil, false, err
	}
	if err := r.balanceRepo.CreditInTx(ctx, tx, destKey, transfer.Amount, now); err != nil {
		return nil, false, err
	}

	insertQuery := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, insertQuery,
		transfer.TransferID, transfer.RequestToken, transfer.FromUserID, transfer.ToID,
		string(transfer.ToKind), transfer.RestaurantID, transfer.Amount, string(transfer.Status), transfer.CreatedAt)
	if err != nil {
		// A concurrent request with the same token won the race on the
		// UNIQUE constraint. Its record is committed by the time the
		// violation fires, so treat this like the token lookup above:
		// replay an identical payload, reject a different one.
		if isUniqueViolation(err) {
			winner, findErr := r.FindTransferByToken(ctx, transfer.RequestToken)
			if findErr == nil && sameTransferPayload(*winner, transfer) {
				logger.Info("Transfer replayed after losing request token race",
					slog.String("transfer_id", winner.TransferID))
				return winner, true, nil
			}
			return nil, false, apperrors.ErrDuplicateRequest
		}
		return nil, false, wrapStorageError(err, fmt.Sprintf("failed to insert transfer %s", transfer.TransferID))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, false, err
	}

	logger.Info("Transfer committed",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("from_user_id", transfer.FromUserID),
		slog.String("to_id", transfer.ToID),
		slog.String("restaurant_id", transfer.RestaurantID))
	return &transfer, false, nil
}

func (r *PgxTransferRepository) findByTokenInTx(ctx context.Context, tx pgx.Tx, requestToken string) (*domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE request_token = $1;
	`
	transfer, err := scanTransfer(tx.QueryRow(ctx, query, requestToken))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStorageError(err, "failed to look up transfer by request token")
	}
	return transfer, nil
}

// sameTransferPayload compares the caller-supplied fields of two transfers,
// ignoring server-assigned ID and timestamps.
func sameTransferPayload(a, b domain.Transfer) bool {
	return a.FromUserID == b.FromUserID &&
		a.ToID == b.ToID &&
		a.ToKind == b.ToKind &&
		a.RestaurantID == b.RestaurantID &&
		a.Amount.Equal(b.Amount)
}

// FindTransferByID retrieves a single transfer record.
func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE transfer_id = $1;
	`
	transfer, err := scanTransfer(r.Pool.QueryRow(ctx, query, transferID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapStorageError(err, fmt.Sprintf("failed to find transfer %s", transferID))
	}
	return transfer, nil
}

// FindTransferByToken retrieves the record committed under a request token.
func (r *PgxTransferRepository) FindTransferByToken(ctx context.Context, requestToken string) (*domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE request_token = $1;
	`
	transfer, err := scanTransfer(r.Pool.QueryRow(ctx, query, requestToken))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapStorageError(err, "failed to find transfer by request token")
	}
	return transfer, nil
}

// ListTransfersForUser returns transfers where the user is sender or
// recipient, newest first.
func (r *PgxTransferRepository) ListTransfersForUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE from_user_id = $1 OR (to_id = $1 AND to_kind = $2)
		ORDER BY created_at DESC, transfer_id DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, userID, string(domain.TargetUser), limit, offset)
	if err != nil {
		return nil, wrapStorageError(err, fmt.Sprintf("failed to query transfers for user %s", userID))
	}
	defer rows.Close()

	transfers := []domain.Transfer{}
	for rows.Next() {
		var m models.Transfer
		if err := rows.Scan(&m.TransferID, &m.RequestToken, &m.FromUserID, &m.ToID, &m.ToKind, &m.RestaurantID, &m.Amount, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transfer row for user %s: %w", userID, err)
		}
		transfers = append(transfers, toDomainTransfer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer rows for user %s: %w", userID, err)
	}
	return transfers, nil
}
