package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	portsrepo "github.com/vmaryna/cashdine_backend/internal/core/ports/repositories"
	portssvc "github.com/vmaryna/cashdine_backend/internal/core/ports/services"
)

type BalanceService struct {
	BaseService
	balanceRepo    portsrepo.BalanceRepositoryFacade
	restaurantRepo portsrepo.RestaurantReader
}

// NewBalanceService creates a new service for balance reads and standalone
// credits/debits.
func NewBalanceService(balanceRepo portsrepo.BalanceRepositoryFacade, restaurantRepo portsrepo.RestaurantReader) *BalanceService {
	return &BalanceService{balanceRepo: balanceRepo, restaurantRepo: restaurantRepo}
}

var _ portssvc.BalanceSvcFacade = (*BalanceService)(nil)

// GetBalance returns the user's balance for a restaurant; zero when the user
// never earned points there. The restaurant must exist in the catalog.
func (s *BalanceService) GetBalance(ctx context.Context, userID string, restaurantID string) (decimal.Decimal, error) {
	if _, err := s.restaurantRepo.FindRestaurantByID(ctx, restaurantID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve restaurant %s: %w", restaurantID, err)
	}

	var balance decimal.Decimal
	err := s.withRetry(ctx, func() error {
		var innerErr error
		balance, innerErr = s.balanceRepo.GetBalance(ctx, userID, restaurantID)
		return innerErr
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get balance", slog.String("restaurant_id", restaurantID))
		return decimal.Zero, err
	}
	return balance, nil
}

// ListBalances returns every balance the user holds.
func (s *BalanceService) ListBalances(ctx context.Context, userID string) ([]domain.Balance, error) {
	var balances []domain.Balance
	err := s.withRetry(ctx, func() error {
		var innerErr error
		balances, innerErr = s.balanceRepo.ListBalancesForUser(ctx, userID)
		return innerErr
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list balances")
		return nil, err
	}
	return balances, nil
}

// Credit adds amount to the balance, creating the row if absent.
func (s *BalanceService) Credit(ctx context.Context, userID string, restaurantID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}
	if _, err := s.restaurantRepo.FindRestaurantByID(ctx, restaurantID); err != nil {
		return fmt.Errorf("failed to resolve restaurant %s: %w", restaurantID, err)
	}
	if err := s.balanceRepo.Credit(ctx, userID, restaurantID, amount, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to credit balance", slog.String("restaurant_id", restaurantID))
		return err
	}
	return nil
}

// Debit subtracts amount, failing with ErrInsufficientBalance when short.
func (s *BalanceService) Debit(ctx context.Context, userID string, restaurantID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}
	if _, err := s.restaurantRepo.FindRestaurantByID(ctx, restaurantID); err != nil {
		return fmt.Errorf("failed to resolve restaurant %s: %w", restaurantID, err)
	}
	if err := s.balanceRepo.Debit(ctx, userID, restaurantID, amount, time.Now().UTC()); err != nil {
		return err
	}
	return nil
}
