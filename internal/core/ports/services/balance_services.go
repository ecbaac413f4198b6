package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
)

// BalanceReaderSvc defines read operations for balance data.
type BalanceReaderSvc interface {
	// GetBalance returns the user's balance for a restaurant; zero when none.
	GetBalance(ctx context.Context, userID string, restaurantID string) (decimal.Decimal, error)

	// ListBalances returns every balance the user holds.
	ListBalances(ctx context.Context, userID string) ([]domain.Balance, error)
}

// BalanceWriterSvc defines standalone balance mutations. Transfers do not go
// through this interface; they run inside the transfer repository's
// transaction so debit and credit commit together.
type BalanceWriterSvc interface {
	// Credit adds amount to the balance, creating the row if absent.
	Credit(ctx context.Context, userID string, restaurantID string, amount decimal.Decimal) error

	// Debit subtracts amount, failing with ErrInsufficientBalance when short.
	Debit(ctx context.Context, userID string, restaurantID string, amount decimal.Decimal) error
}

// BalanceSvcFacade combines all balance service interfaces.
type BalanceSvcFacade interface {
	BalanceReaderSvc
	BalanceWriterSvc
}
