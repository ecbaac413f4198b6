package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	portsrepo "github.com/vmaryna/cashdine_backend/internal/core/ports/repositories"
	"github.com/vmaryna/cashdine_backend/internal/middleware"
	"github.com/vmaryna/cashdine_backend/internal/models"
)

type PgxPurchaseRepository struct {
	BaseRepository
	balanceRepo portsrepo.BalanceTransactionSupport
}

// NewPurchaseRepository creates a new repository for purchase records. It
// shares the balance repository's in-transaction helpers so the purchase row
// and the point award commit together.
func NewPurchaseRepository(pool *pgxpool.Pool, balanceRepo portsrepo.BalanceTransactionSupport) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
		balanceRepo:    balanceRepo,
	}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

// SavePurchase inserts the purchase row and credits PointsAwarded to the
// buyer's balance within one database transaction.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	items, err := json.Marshal(purchase.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal purchase items for %s: %w", purchase.PurchaseID, err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to rollback purchase transaction", slog.String("error", rbErr.Error()))
		}
	}()

	insertQuery := `
		INSERT INTO purchases (purchase_id, user_id, restaurant_id, items, total_amount, points_awarded, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, insertQuery,
		purchase.PurchaseID, purchase.UserID, purchase.RestaurantID, items,
		purchase.TotalAmount, purchase.PointsAwarded, purchase.CreatedAt)
	if err != nil {
		return wrapStorageError(err, fmt.Sprintf("failed to insert purchase %s", purchase.PurchaseID))
	}

	key := domain.BalanceKey{UserID: purchase.UserID, RestaurantID: purchase.RestaurantID}
	if err := r.balanceRepo.CreditInTx(ctx, tx, key, purchase.PointsAwarded, purchase.CreatedAt); err != nil {
		return err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Purchase recorded",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("user_id", purchase.UserID),
		slog.String("restaurant_id", purchase.RestaurantID))
	return nil
}

// ListPurchasesForUser returns the user's purchases, newest first.
func (r *PgxPurchaseRepository) ListPurchasesForUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Purchase, error) {
	query := `
		SELECT purchase_id, user_id, restaurant_id, items, total_amount, points_awarded, created_at
		FROM purchases
		WHERE user_id = $1
		ORDER BY created_at DESC, purchase_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, wrapStorageError(err, fmt.Sprintf("failed to query purchases for user %s", userID))
	}
	defer rows.Close()

	purchases := []domain.Purchase{}
	for rows.Next() {
		var m models.Purchase
		if err := rows.Scan(&m.PurchaseID, &m.UserID, &m.RestaurantID, &m.Items, &m.TotalAmount, &m.PointsAwarded, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase row for user %s: %w", userID, err)
		}
		purchase := domain.Purchase{
			PurchaseID:    m.PurchaseID,
			UserID:        m.UserID,
			RestaurantID:  m.RestaurantID,
			TotalAmount:   m.TotalAmount,
			PointsAwarded: m.PointsAwarded,
			CreatedAt:     m.CreatedAt,
		}
		if len(m.Items) > 0 {
			if err := json.Unmarshal(m.Items, &purchase.Items); err != nil {
				return nil, fmt.Errorf("failed to unmarshal items for purchase %s: %w", m.PurchaseID, err)
			}
		}
		purchases = append(purchases, purchase)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase rows for user %s: %w", userID, err)
	}
	return purchases, nil
}
