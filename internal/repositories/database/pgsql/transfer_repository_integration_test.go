package pgsql_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	portsrepo "github.com/vmaryna/cashdine_backend/internal/core/ports/repositories"
	"github.com/vmaryna/cashdine_backend/internal/repositories/database/pgsql"
	"github.com/vmaryna/cashdine_backend/pkg/database"
)

// TransferRepositoryIntegrationTestSuite runs the transfer unit of work
// against a live database: row locking, the balance re-check under lock and
// the request token uniqueness cannot be observed through mocks. Requires
// PGSQL_URL pointing at a migrated database.
type TransferRepositoryIntegrationTestSuite struct {
	suite.Suite
	pool         *pgxpool.Pool
	balanceRepo  portsrepo.BalanceRepositoryFacade
	transferRepo portsrepo.TransferRepositoryFacade

	senderID     string
	recipientID  string
	restaurantID string
}

func (suite *TransferRepositoryIntegrationTestSuite) SetupSuite() {
	pool, err := database.NewPgxPool(context.Background(), os.Getenv("PGSQL_URL"), database.PoolOptions{})
	suite.Require().NoError(err)
	suite.pool = pool
	suite.balanceRepo = pgsql.NewBalanceRepository(pool)
	suite.transferRepo = pgsql.NewTransferRepository(pool, suite.balanceRepo)
}

func (suite *TransferRepositoryIntegrationTestSuite) TearDownSuite() {
	database.ClosePgxPool(suite.pool)
}

// SetupTest seeds a fresh restaurant and gives the sender 100 points, so each
// test works on rows no other test can touch.
func (suite *TransferRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.senderID = uuid.NewString()
	suite.recipientID = uuid.NewString()
	suite.restaurantID = uuid.NewString()

	restaurantRepo := pgsql.NewRestaurantRepository(suite.pool)
	now := time.Now().UTC()
	err := restaurantRepo.SaveRestaurant(ctx, domain.Restaurant{
		RestaurantID: suite.restaurantID,
		Name:         "Integration Diner " + suite.restaurantID[:8],
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     suite.senderID,
			LastUpdatedAt: now,
			LastUpdatedBy: suite.senderID,
		},
	})
	suite.Require().NoError(err)

	suite.Require().NoError(
		suite.balanceRepo.Credit(ctx, suite.senderID, suite.restaurantID, decimal.NewFromInt(100), now))
}

func (suite *TransferRepositoryIntegrationTestSuite) TearDownTest() {
	ctx := context.Background()
	_, _ = suite.pool.Exec(ctx, "DELETE FROM transfers WHERE restaurant_id = $1", suite.restaurantID)
	_, _ = suite.pool.Exec(ctx, "DELETE FROM balances WHERE restaurant_id = $1", suite.restaurantID)
	_, _ = suite.pool.Exec(ctx, "DELETE FROM restaurants WHERE restaurant_id = $1", suite.restaurantID)
}

func (suite *TransferRepositoryIntegrationTestSuite) newTransfer(requestToken string, amount int64) domain.Transfer {
	return domain.Transfer{
		TransferID:   uuid.NewString(),
		RequestToken: requestToken,
		FromUserID:   suite.senderID,
		ToID:         suite.recipientID,
		ToKind:       domain.TargetUser,
		RestaurantID: suite.restaurantID,
		Amount:       decimal.NewFromInt(amount),
		Status:       domain.TransferCommitted,
		CreatedAt:    time.Now().UTC(),
	}
}

func (suite *TransferRepositoryIntegrationTestSuite) balanceOf(userID string) decimal.Decimal {
	balance, err := suite.balanceRepo.GetBalance(context.Background(), userID, suite.restaurantID)
	suite.Require().NoError(err)
	return balance
}

func (suite *TransferRepositoryIntegrationTestSuite) transferRowCount() int {
	var count int
	err := suite.pool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM transfers WHERE restaurant_id = $1", suite.restaurantID).Scan(&count)
	suite.Require().NoError(err)
	return count
}

// Two concurrent 60-point transfers from a 100-point balance: exactly one may
// commit, the other must fail on the balance re-check under the row lock, and
// points are conserved across the debit/credit pair.
func (suite *TransferRepositoryIntegrationTestSuite) TestConcurrentTransfers_OnlyOneSucceeds() {
	ctx := context.Background()
	errs := make([]error, 2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = suite.transferRepo.CreateTransfer(ctx, suite.newTransfer(uuid.NewString(), 60))
		}(i)
	}
	wg.Wait()

	var committed, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			committed++
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			insufficient++
		default:
			suite.Failf("unexpected transfer error", "%v", err)
		}
	}
	suite.Equal(1, committed)
	suite.Equal(1, insufficient)

	senderBalance := suite.balanceOf(suite.senderID)
	recipientBalance := suite.balanceOf(suite.recipientID)
	suite.True(senderBalance.Equal(decimal.NewFromInt(40)), "sender balance = %s", senderBalance)
	suite.True(recipientBalance.Equal(decimal.NewFromInt(60)), "recipient balance = %s", recipientBalance)
	suite.True(senderBalance.Add(recipientBalance).Equal(decimal.NewFromInt(100)))
	suite.Equal(1, suite.transferRowCount())
}

// Two concurrent requests carrying the same token and an identical payload:
// one commits, the other replays the committed record, and the ledger holds a
// single row for the token. Points move exactly once.
func (suite *TransferRepositoryIntegrationTestSuite) TestConcurrentSameToken_IdenticalPayloadReplays() {
	ctx := context.Background()
	token := uuid.NewString()

	results := make([]*domain.Transfer, 2)
	replays := make([]bool, 2)
	errs := make([]error, 2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], replays[i], errs[i] = suite.transferRepo.CreateTransfer(ctx, suite.newTransfer(token, 60))
		}(i)
	}
	wg.Wait()

	suite.Require().NoError(errs[0])
	suite.Require().NoError(errs[1])
	suite.Equal(results[0].TransferID, results[1].TransferID)

	replayCount := 0
	for _, replayed := range replays {
		if replayed {
			replayCount++
		}
	}
	suite.Equal(1, replayCount)

	suite.True(suite.balanceOf(suite.senderID).Equal(decimal.NewFromInt(40)))
	suite.True(suite.balanceOf(suite.recipientID).Equal(decimal.NewFromInt(60)))
	suite.Equal(1, suite.transferRowCount())
}

func (suite *TransferRepositoryIntegrationTestSuite) TestCreateTransfer_SameTokenDifferentPayloadRejected() {
	ctx := context.Background()
	token := uuid.NewString()

	_, replayed, err := suite.transferRepo.CreateTransfer(ctx, suite.newTransfer(token, 10))
	suite.Require().NoError(err)
	suite.False(replayed)

	_, _, err = suite.transferRepo.CreateTransfer(ctx, suite.newTransfer(token, 20))
	suite.ErrorIs(err, apperrors.ErrDuplicateRequest)

	suite.True(suite.balanceOf(suite.senderID).Equal(decimal.NewFromInt(90)))
	suite.Equal(1, suite.transferRowCount())
}

func (suite *TransferRepositoryIntegrationTestSuite) TestCreateTransfer_DebitNeverGoesNegative() {
	ctx := context.Background()

	_, _, err := suite.transferRepo.CreateTransfer(ctx, suite.newTransfer(uuid.NewString(), 150))
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)

	suite.True(suite.balanceOf(suite.senderID).Equal(decimal.NewFromInt(100)))
	suite.True(suite.balanceOf(suite.recipientID).IsZero())
	suite.Equal(0, suite.transferRowCount())
}

func TestTransferRepositoryIntegration(t *testing.T) {
	if os.Getenv("PGSQL_URL") == "" {
		t.Skip("PGSQL_URL not set; skipping database integration tests")
	}
	suite.Run(t, new(TransferRepositoryIntegrationTestSuite))
}
