package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
)

// --- Mock BalanceRepository ---
type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) GetBalance(ctx context.Context, userID string, restaurantID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, restaurantID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBalanceRepository) ListBalancesForUser(ctx context.Context, userID string) ([]domain.Balance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Balance), args.Error(1)
}

func (m *MockBalanceRepository) GetBalancesByRestaurantIDs(ctx context.Context, userID string, restaurantIDs []string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, userID, restaurantIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockBalanceRepository) Credit(ctx context.Context, userID string, restaurantID string, amount decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, userID, restaurantID, amount, now)
	return args.Error(0)
}

func (m *MockBalanceRepository) Debit(ctx context.Context, userID string, restaurantID string, amount decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, userID, restaurantID, amount, now)
	return args.Error(0)
}

func (m *MockBalanceRepository) LockBalancesForUpdate(ctx context.Context, tx pgx.Tx, keys []domain.BalanceKey) (map[domain.BalanceKey]decimal.Decimal, error) {
	args := m.Called(ctx, tx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.BalanceKey]decimal.Decimal), args.Error(1)
}

func (m *MockBalanceRepository) DebitInTx(ctx context.Context, tx pgx.Tx, key domain.BalanceKey, amount decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, key, amount, now)
	return args.Error(0)
}

func (m *MockBalanceRepository) CreditInTx(ctx context.Context, tx pgx.Tx, key domain.BalanceKey, amount decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, key, amount, now)
	return args.Error(0)
}

// --- Mock TransferRepository ---
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) CreateTransfer(ctx context.Context, transfer domain.Transfer) (*domain.Transfer, bool, error) {
	args := m.Called(ctx, transfer)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Transfer), args.Bool(1), args.Error(2)
}

func (m *MockTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) FindTransferByToken(ctx context.Context, requestToken string) (*domain.Transfer, error) {
	args := m.Called(ctx, requestToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) ListTransfersForUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Transfer, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transfer), args.Error(1)
}

// --- Mock RestaurantRepository ---
type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) FindRestaurantByID(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) SaveRestaurant(ctx context.Context, restaurant domain.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) ListPurchasesForUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Purchase, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}
