package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	portsrepo "github.com/vmaryna/cashdine_backend/internal/core/ports/repositories"
	portssvc "github.com/vmaryna/cashdine_backend/internal/core/ports/services"
	"github.com/vmaryna/cashdine_backend/internal/dto"
)

type RestaurantService struct {
	BaseService
	restaurantRepo portsrepo.RestaurantRepositoryFacade
}

// NewRestaurantService creates a new service for catalog operations.
func NewRestaurantService(restaurantRepo portsrepo.RestaurantRepositoryFacade) *RestaurantService {
	return &RestaurantService{restaurantRepo: restaurantRepo}
}

var _ portssvc.RestaurantSvcFacade = (*RestaurantService)(nil)

// GetRestaurantByID retrieves a catalog entry, or ErrNotFound.
func (s *RestaurantService) GetRestaurantByID(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	var restaurant *domain.Restaurant
	err := s.withRetry(ctx, func() error {
		var innerErr error
		restaurant, innerErr = s.restaurantRepo.FindRestaurantByID(ctx, restaurantID)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

// ListRestaurants returns the full catalog ordered by name.
func (s *RestaurantService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	err := s.withRetry(ctx, func() error {
		var innerErr error
		restaurants, innerErr = s.restaurantRepo.ListRestaurants(ctx)
		return innerErr
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list restaurants")
		return nil, err
	}
	return restaurants, nil
}

// CreateRestaurant persists a new catalog entry. Latitude and longitude are
// optional but must be provided together.
func (s *RestaurantService) CreateRestaurant(ctx context.Context, req dto.CreateRestaurantRequest, creatorUserID string) (*domain.Restaurant, error) {
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, fmt.Errorf("%w: latitude and longitude must be provided together", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	restaurant := domain.Restaurant{
		RestaurantID: uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.Latitude != nil && req.Longitude != nil {
		restaurant.Location = &domain.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	if err := s.restaurantRepo.SaveRestaurant(ctx, restaurant); err != nil {
		s.LogError(ctx, err, "Failed to create restaurant", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Restaurant created", slog.String("restaurant_id", restaurant.RestaurantID))
	return &restaurant, nil
}
