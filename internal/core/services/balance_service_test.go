package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	portssvc "github.com/vmaryna/cashdine_backend/internal/core/ports/services"
	"github.com/vmaryna/cashdine_backend/internal/core/services"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	mockBalanceRepo    *MockBalanceRepository
	mockRestaurantRepo *MockRestaurantRepository
	service            portssvc.BalanceSvcFacade

	userID       string
	restaurantID string
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockBalanceRepo = new(MockBalanceRepository)
	suite.mockRestaurantRepo = new(MockRestaurantRepository)
	suite.service = services.NewBalanceService(suite.mockBalanceRepo, suite.mockRestaurantRepo)
	suite.userID = uuid.NewString()
	suite.restaurantID = uuid.NewString()
}

func (suite *BalanceServiceTestSuite) expectRestaurantExists() {
	suite.mockRestaurantRepo.On("FindRestaurantByID", mock.Anything, suite.restaurantID).
		Return(&domain.Restaurant{RestaurantID: suite.restaurantID}, nil).Once()
}

func (suite *BalanceServiceTestSuite) TestGetBalance_Success() {
	suite.expectRestaurantExists()
	suite.mockBalanceRepo.On("GetBalance", mock.Anything, suite.userID, suite.restaurantID).
		Return(decimal.NewFromInt(150), nil).Once()

	balance, err := suite.service.GetBalance(context.Background(), suite.userID, suite.restaurantID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(150)))
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetBalance_ZeroWhenNoRow() {
	suite.expectRestaurantExists()
	suite.mockBalanceRepo.On("GetBalance", mock.Anything, suite.userID, suite.restaurantID).
		Return(decimal.Zero, nil).Once()

	balance, err := suite.service.GetBalance(context.Background(), suite.userID, suite.restaurantID)

	suite.Require().NoError(err)
	suite.True(balance.IsZero())
}

func (suite *BalanceServiceTestSuite) TestGetBalance_UnknownRestaurant() {
	suite.mockRestaurantRepo.On("FindRestaurantByID", mock.Anything, suite.restaurantID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetBalance(context.Background(), suite.userID, suite.restaurantID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBalanceRepo.AssertNotCalled(suite.T(), "GetBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestGetBalance_RetriesTransientFailure() {
	suite.expectRestaurantExists()
	suite.mockBalanceRepo.On("GetBalance", mock.Anything, suite.userID, suite.restaurantID).
		Return(decimal.Zero, apperrors.ErrStorageUnavailable).Once()
	suite.mockBalanceRepo.On("GetBalance", mock.Anything, suite.userID, suite.restaurantID).
		Return(decimal.NewFromInt(70), nil).Once()

	balance, err := suite.service.GetBalance(context.Background(), suite.userID, suite.restaurantID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(70)))
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestListBalances_Success() {
	expected := []domain.Balance{
		{UserID: suite.userID, RestaurantID: "r-1", Points: decimal.NewFromInt(10)},
		{UserID: suite.userID, RestaurantID: "r-2", Points: decimal.NewFromInt(20)},
	}
	suite.mockBalanceRepo.On("ListBalancesForUser", mock.Anything, suite.userID).
		Return(expected, nil).Once()

	balances, err := suite.service.ListBalances(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(expected, balances)
}

func (suite *BalanceServiceTestSuite) TestCredit_RejectsNonPositiveAmount() {
	err := suite.service.Credit(context.Background(), suite.userID, suite.restaurantID, decimal.Zero)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	err = suite.service.Credit(context.Background(), suite.userID, suite.restaurantID, decimal.NewFromInt(-5))
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	suite.mockBalanceRepo.AssertNotCalled(suite.T(), "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestCredit_Success() {
	suite.expectRestaurantExists()
	amount := decimal.NewFromInt(30)
	suite.mockBalanceRepo.On("Credit", mock.Anything, suite.userID, suite.restaurantID, amount, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.Credit(context.Background(), suite.userID, suite.restaurantID, amount)

	suite.Require().NoError(err)
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestDebit_InsufficientBalance() {
	suite.expectRestaurantExists()
	amount := decimal.NewFromInt(999)
	suite.mockBalanceRepo.On("Debit", mock.Anything, suite.userID, suite.restaurantID, amount, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrInsufficientBalance).Once()

	err := suite.service.Debit(context.Background(), suite.userID, suite.restaurantID, amount)

	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
}

func TestBalanceService(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
