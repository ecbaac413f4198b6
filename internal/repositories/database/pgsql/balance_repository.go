package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	portsrepo "github.com/vmaryna/cashdine_backend/internal/core/ports/repositories"
	"github.com/vmaryna/cashdine_backend/internal/models"
)

type PgxBalanceRepository struct {
	BaseRepository
}

// NewBalanceRepository creates a new repository for balance data.
func NewBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

func toDomainBalance(m models.Balance) domain.Balance {
	return domain.Balance{
		UserID:        m.UserID,
		RestaurantID:  m.RestaurantID,
		Points:        m.Points,
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// GetBalance returns the stored balance for (userID, restaurantID).
// A missing row means the user never earned points there: balance zero.
func (r *PgxBalanceRepository) GetBalance(ctx context.Context, userID string, restaurantID string) (decimal.Decimal, error) {
	query := `
		SELECT points
		FROM balances
		WHERE user_id = $1 AND restaurant_id = $2;
	`
	var points decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, userID, restaurantID).Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, wrapStorageError(err, fmt.Sprintf("failed to get balance for user %s restaurant %s", userID, restaurantID))
	}
	return points, nil
}

// ListBalancesForUser returns every balance row the user holds.
func (r *PgxBalanceRepository) ListBalancesForUser(ctx context.Context, userID string) ([]domain.Balance, error) {
	query := `
		SELECT user_id, restaurant_id, points, created_at, last_updated_at
		FROM balances
		WHERE user_id = $1
		ORDER BY restaurant_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapStorageError(err, fmt.Sprintf("failed to query balances for user %s", userID))
	}
	defer rows.Close()

	balances := []domain.Balance{}
	for rows.Next() {
		var m models.Balance
		if err := rows.Scan(&m.UserID, &m.RestaurantID, &m.Points, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan balance row for user %s: %w", userID, err)
		}
		balances = append(balances, toDomainBalance(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance rows for user %s: %w", userID, err)
	}
	return balances, nil
}

// GetBalancesByRestaurantIDs returns the user's balances for the given
// restaurants. Restaurants without a row are absent from the map.
func (r *PgxBalanceRepository) GetBalancesByRestaurantIDs(ctx context.Context, userID string, restaurantIDs []string) (map[string]decimal.Decimal, error) {
	if len(restaurantIDs) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	query := `
		SELECT restaurant_id, points
		FROM balances
		WHERE user_id = $1 AND restaurant_id = ANY($2);
	`
	rows, err := r.Pool.Query(ctx, query, userID, restaurantIDs)
	if err != nil {
		return nil, wrapStorageError(err, fmt.Sprintf("failed to query balances by restaurant IDs for user %s", userID))
	}
	defer rows.Close()

	balances := make(map[string]decimal.Decimal, len(restaurantIDs))
	for rows.Next() {
		var restaurantID string
		var points decimal.Decimal
		if err := rows.Scan(&restaurantID, &points); err != nil {
			return nil, fmt.Errorf("failed to scan balance row during batch fetch: %w", err)
		}
		balances[restaurantID] = points
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance rows during batch fetch: %w", err)
	}
	return balances, nil
}

// Credit atomically adds amount to the balance, creating the row on first
// credit. Runs as a single upsert so concurrent credits never lose updates.
func (r *PgxBalanceRepository) Credit(ctx context.Context, userID string, restaurantID string, amount decimal.Decimal, now time.Time) error {
	query := `
		INSERT INTO balances (user_id, restaurant_id, points, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id, restaurant_id)
		DO UPDATE SET points = balances.points + EXCLUDED.points, last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query, userID, restaurantID, amount, now)
	if err != nil {
		return wrapStorageError(err, fmt.Sprintf("failed to credit balance for user %s restaurant %s", userID, restaurantID))
	}
	return nil
}

// Debit atomically subtracts amount. The points >= amount guard in the WHERE
// clause makes the check-and-subtract a single statement, so the balance can
// never go negative regardless of interleaving.
func (r *PgxBalanceRepository) Debit(ctx context.Context, userID string, restaurantID string, amount decimal.Decimal, now time.Time) error {
	query := `
		UPDATE balances
		SET points = points - $3, last_updated_at = $4
		WHERE user_id = $1 AND restaurant_id = $2 AND points >= $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, restaurantID, amount, now)
	if err != nil {
		return wrapStorageError(err, fmt.Sprintf("failed to debit balance for user %s restaurant %s", userID, restaurantID))
	}
	if cmdTag.RowsAffected() == 0 {
		// Either no row (balance zero) or points < amount.
		return apperrors.ErrInsufficientBalance
	}
	return nil
}

// LockBalancesForUpdate locks the balance rows for the given keys and returns
// the points found; keys without a row map to zero. Keys are locked in sorted
// order so two concurrent transfers touching the same pair of accounts cannot
// deadlock.
func (r *PgxBalanceRepository) LockBalancesForUpdate(ctx context.Context, tx pgx.Tx, keys []domain.BalanceKey) (map[domain.BalanceKey]decimal.Decimal, error) {
	ordered := make([]domain.BalanceKey, 0, len(keys))
	seen := make(map[domain.BalanceKey]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			ordered = append(ordered, k)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Less(ordered[j]) })

	query := `
		SELECT points
		FROM balances
		WHERE user_id = $1 AND restaurant_id = $2
		FOR UPDATE;
	`
	balances := make(map[domain.BalanceKey]decimal.Decimal, len(ordered))
	for _, key := range ordered {
		var points decimal.Decimal
		err := tx.QueryRow(ctx, query, key.UserID, key.RestaurantID).Scan(&points)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				balances[key] = decimal.Zero
				continue
			}
			return nil, wrapStorageError(err, fmt.Sprintf("failed to lock balance for user %s restaurant %s", key.UserID, key.RestaurantID))
		}
		balances[key] = points
	}
	return balances, nil
}

// DebitInTx subtracts amount from a row previously locked in this transaction.
func (r *PgxBalanceRepository) DebitInTx(ctx context.Context, tx pgx.Tx, key domain.BalanceKey, amount decimal.Decimal, now time.Time) error {
	query := `
		UPDATE balances
		SET points = points - $3, last_updated_at = $4
		WHERE user_id = $1 AND restaurant_id = $2 AND points >= $3;
	`
	cmdTag, err := tx.Exec(ctx, query, key.UserID, key.RestaurantID, amount, now)
	if err != nil {
		return wrapStorageError(err, fmt.Sprintf("failed to debit balance for user %s restaurant %s", key.UserID, key.RestaurantID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInsufficientBalance
	}
	return nil
}

// CreditInTx adds amount to the destination row, creating it if absent.
func (r *PgxBalanceRepository) CreditInTx(ctx context.Context, tx pgx.Tx, key domain.BalanceKey, amount decimal.Decimal, now time.Time) error {
	query := `
		INSERT INTO balances (user_id, restaurant_id, points, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id, restaurant_id)
		DO UPDATE SET points = balances.points + EXCLUDED.points, last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := tx.Exec(ctx, query, key.UserID, key.RestaurantID, amount, now)
	if err != nil {
		return wrapStorageError(err, fmt.Sprintf("failed to credit balance for user %s restaurant %s", key.UserID, key.RestaurantID))
	}
	return nil
}
