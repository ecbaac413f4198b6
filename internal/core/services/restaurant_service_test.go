package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	portssvc "github.com/vmaryna/cashdine_backend/internal/core/ports/services"
	"github.com/vmaryna/cashdine_backend/internal/core/services"
	"github.com/vmaryna/cashdine_backend/internal/dto"
)

type RestaurantServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRestaurantRepository
	service  portssvc.RestaurantSvcFacade
}

func (suite *RestaurantServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRestaurantRepository)
	suite.service = services.NewRestaurantService(suite.mockRepo)
}

func (suite *RestaurantServiceTestSuite) TestCreateRestaurant_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	lat, lon := 50.4501, 30.5234
	req := dto.CreateRestaurantRequest{
		Name:        "Borsch House",
		Description: "Ukrainian kitchen",
		Latitude:    &lat,
		Longitude:   &lon,
		ImageURL:    "https://img.example.com/borsch.jpg",
	}

	suite.mockRepo.On("SaveRestaurant", ctx, mock.MatchedBy(func(r domain.Restaurant) bool {
		return r.Name == req.Name &&
			r.Description == req.Description &&
			r.Location != nil && r.Location.Latitude == lat && r.Location.Longitude == lon &&
			r.CreatedBy == creatorUserID &&
			r.RestaurantID != ""
	})).Return(nil).Once()

	restaurant, err := suite.service.CreateRestaurant(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(restaurant)
	suite.Equal(req.Name, restaurant.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RestaurantServiceTestSuite) TestCreateRestaurant_NoLocation() {
	ctx := context.Background()
	req := dto.CreateRestaurantRequest{Name: "Mystery Diner"}

	suite.mockRepo.On("SaveRestaurant", ctx, mock.MatchedBy(func(r domain.Restaurant) bool {
		return r.Location == nil
	})).Return(nil).Once()

	restaurant, err := suite.service.CreateRestaurant(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Nil(restaurant.Location)
}

func (suite *RestaurantServiceTestSuite) TestCreateRestaurant_LatitudeWithoutLongitude() {
	lat := 50.4501
	req := dto.CreateRestaurantRequest{Name: "Half Coordinates", Latitude: &lat}

	restaurant, err := suite.service.CreateRestaurant(context.Background(), req, uuid.NewString())

	suite.Nil(restaurant)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRestaurant", mock.Anything, mock.Anything)
}

func (suite *RestaurantServiceTestSuite) TestCreateRestaurant_SaveError() {
	expectedErr := assert.AnError
	req := dto.CreateRestaurantRequest{Name: "Broken"}
	suite.mockRepo.On("SaveRestaurant", mock.Anything, mock.AnythingOfType("domain.Restaurant")).
		Return(expectedErr).Once()

	restaurant, err := suite.service.CreateRestaurant(context.Background(), req, uuid.NewString())

	suite.Nil(restaurant)
	suite.ErrorIs(err, expectedErr)
}

func (suite *RestaurantServiceTestSuite) TestGetRestaurantByID_NotFound() {
	suite.mockRepo.On("FindRestaurantByID", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	restaurant, err := suite.service.GetRestaurantByID(context.Background(), "missing")

	suite.Nil(restaurant)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RestaurantServiceTestSuite) TestListRestaurants_Success() {
	expected := []domain.Restaurant{{RestaurantID: "r-1", Name: "Aroma"}}
	suite.mockRepo.On("ListRestaurants", mock.Anything).Return(expected, nil).Once()

	restaurants, err := suite.service.ListRestaurants(context.Background())

	suite.Require().NoError(err)
	suite.Equal(expected, restaurants)
}

func TestRestaurantService(t *testing.T) {
	suite.Run(t, new(RestaurantServiceTestSuite))
}
