package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
)

// BalanceReader defines read operations for balance data.
type BalanceReader interface {
	// GetBalance returns the stored balance for the key, or zero when no row exists.
	GetBalance(ctx context.Context, userID string, restaurantID string) (decimal.Decimal, error)

	// ListBalancesForUser returns every balance row the user holds.
	ListBalancesForUser(ctx context.Context, userID string) ([]domain.Balance, error)

	// GetBalancesByRestaurantIDs returns the user's balances for the given
	// restaurants as a map; restaurants with no row are simply absent.
	GetBalancesByRestaurantIDs(ctx context.Context, userID string, restaurantIDs []string) (map[string]decimal.Decimal, error)
}

// BalanceWriter defines standalone atomic mutations on a single balance row.
type BalanceWriter interface {
	// Credit atomically adds amount to the balance, creating the row if absent.
	Credit(ctx context.Context, userID string, restaurantID string, amount decimal.Decimal, now time.Time) error

	// Debit atomically subtracts amount, failing with ErrInsufficientBalance
	// when the stored balance is lower. Never leaves a negative balance.
	Debit(ctx context.Context, userID string, restaurantID string, amount decimal.Decimal, now time.Time) error
}

// BalanceTransactionSupport defines operations that compose into larger
// transactions (transfers, purchase awards). All of them require an open tx.
type BalanceTransactionSupport interface {
	// LockBalancesForUpdate locks the rows for the given keys in deterministic
	// key order and returns the balances found; keys without a row map to zero.
	LockBalancesForUpdate(ctx context.Context, tx pgx.Tx, keys []domain.BalanceKey) (map[domain.BalanceKey]decimal.Decimal, error)

	// DebitInTx subtracts amount from a locked row, guarding against negatives.
	DebitInTx(ctx context.Context, tx pgx.Tx, key domain.BalanceKey, amount decimal.Decimal, now time.Time) error

	// CreditInTx adds amount to the row, creating it if absent.
	CreditInTx(ctx context.Context, tx pgx.Tx, key domain.BalanceKey, amount decimal.Decimal, now time.Time) error
}

// BalanceRepositoryFacade combines all balance repository interfaces.
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
	BalanceTransactionSupport
}
