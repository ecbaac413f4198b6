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

type RankingServiceTestSuite struct {
	suite.Suite
	mockRestaurantRepo *MockRestaurantRepository
	mockBalanceRepo    *MockBalanceRepository
	service            portssvc.RankingSvcFacade

	userID string
}

func (suite *RankingServiceTestSuite) SetupTest() {
	suite.mockRestaurantRepo = new(MockRestaurantRepository)
	suite.mockBalanceRepo = new(MockBalanceRepository)
	suite.service = services.NewRankingService(suite.mockRestaurantRepo, suite.mockBalanceRepo)
	suite.userID = uuid.NewString()
}

func coord(lat, lon float64) *domain.Coordinate {
	return &domain.Coordinate{Latitude: lat, Longitude: lon}
}

// catalog returns three restaurants: two with coordinates near Kyiv city
// center and one with no location at all.
func (suite *RankingServiceTestSuite) catalog() []domain.Restaurant {
	return []domain.Restaurant{
		{RestaurantID: "r-borsch", Name: "borsch house", Location: coord(50.4501, 30.5234)},
		{RestaurantID: "r-aroma", Name: "Aroma Cafe", Location: coord(50.5001, 30.5234)},
		{RestaurantID: "r-zero", Name: "zero point"},
	}
}

func (suite *RankingServiceTestSuite) expectCatalogAndBalances(balances map[string]decimal.Decimal) {
	suite.mockRestaurantRepo.On("ListRestaurants", mock.Anything).Return(suite.catalog(), nil).Once()
	suite.mockBalanceRepo.On("GetBalancesByRestaurantIDs", mock.Anything, suite.userID, mock.AnythingOfType("[]string")).
		Return(balances, nil).Once()
}

func (suite *RankingServiceTestSuite) TestRank_Alphabetical_CaseInsensitive() {
	suite.expectCatalogAndBalances(map[string]decimal.Decimal{})

	ranked, err := suite.service.Rank(context.Background(), suite.userID, domain.RankAlphabetical, nil)

	suite.Require().NoError(err)
	suite.Require().Len(ranked, 3)
	suite.Equal("r-aroma", ranked[0].Restaurant.RestaurantID)
	suite.Equal("r-borsch", ranked[1].Restaurant.RestaurantID)
	suite.Equal("r-zero", ranked[2].Restaurant.RestaurantID)
}

func (suite *RankingServiceTestSuite) TestRank_Alphabetical_ZeroBalancesFilledIn() {
	suite.expectCatalogAndBalances(map[string]decimal.Decimal{"r-borsch": decimal.NewFromInt(42)})

	ranked, err := suite.service.Rank(context.Background(), suite.userID, domain.RankAlphabetical, nil)

	suite.Require().NoError(err)
	for _, row := range ranked {
		if row.Restaurant.RestaurantID == "r-borsch" {
			suite.True(row.Points.Equal(decimal.NewFromInt(42)))
		} else {
			suite.True(row.Points.IsZero())
		}
	}
}

func (suite *RankingServiceTestSuite) TestRank_Distance_RequiresLocation() {
	ranked, err := suite.service.Rank(context.Background(), suite.userID, domain.RankDistance, nil)

	suite.Require().Error(err)
	suite.Nil(ranked)
	suite.ErrorIs(err, apperrors.ErrLocationUnavailable)
	suite.mockRestaurantRepo.AssertNotCalled(suite.T(), "ListRestaurants", mock.Anything)
}

func (suite *RankingServiceTestSuite) TestRank_Distance_NearestFirstMissingCoordinatesLast() {
	suite.expectCatalogAndBalances(map[string]decimal.Decimal{})

	// Caller stands at Kyiv city center, right where borsch house is.
	ranked, err := suite.service.Rank(context.Background(), suite.userID, domain.RankDistance, coord(50.4501, 30.5234))

	suite.Require().NoError(err)
	suite.Require().Len(ranked, 3)
	suite.Equal("r-borsch", ranked[0].Restaurant.RestaurantID)
	suite.Equal("r-aroma", ranked[1].Restaurant.RestaurantID)
	suite.Equal("r-zero", ranked[2].Restaurant.RestaurantID)

	suite.Require().NotNil(ranked[0].DistanceM)
	suite.InDelta(0, *ranked[0].DistanceM, 0.001)
	suite.Require().NotNil(ranked[1].DistanceM)
	suite.Greater(*ranked[1].DistanceM, 5000.0)
	suite.Nil(ranked[2].DistanceM)
}

func (suite *RankingServiceTestSuite) TestRank_Points_DescendingTiesByName() {
	suite.expectCatalogAndBalances(map[string]decimal.Decimal{
		"r-borsch": decimal.NewFromInt(10),
		"r-aroma":  decimal.NewFromInt(10),
		"r-zero":   decimal.NewFromInt(99),
	})

	ranked, err := suite.service.Rank(context.Background(), suite.userID, domain.RankPoints, nil)

	suite.Require().NoError(err)
	suite.Equal("r-zero", ranked[0].Restaurant.RestaurantID)
	// Tie between aroma and borsch resolved alphabetically.
	suite.Equal("r-aroma", ranked[1].Restaurant.RestaurantID)
	suite.Equal("r-borsch", ranked[2].Restaurant.RestaurantID)
}

func (suite *RankingServiceTestSuite) TestRank_UnknownCriterion() {
	suite.expectCatalogAndBalances(map[string]decimal.Decimal{})

	_, err := suite.service.Rank(context.Background(), suite.userID, domain.RankCriterion("RANDOM"), nil)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RankingServiceTestSuite) TestRank_LocationAnnotatesOtherCriteria() {
	suite.expectCatalogAndBalances(map[string]decimal.Decimal{})

	ranked, err := suite.service.Rank(context.Background(), suite.userID, domain.RankAlphabetical, coord(50.4501, 30.5234))

	suite.Require().NoError(err)
	for _, row := range ranked {
		if row.Restaurant.Location != nil {
			suite.NotNil(row.DistanceM)
		} else {
			suite.Nil(row.DistanceM)
		}
	}
}

func TestRankingService(t *testing.T) {
	suite.Run(t, new(RankingServiceTestSuite))
}
