package services

import (
	"context"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	"github.com/vmaryna/cashdine_backend/internal/dto"
)

// RestaurantReaderSvc is the catalog read path consumed by ranking and the
// transfer workflow.
type RestaurantReaderSvc interface {
	// GetRestaurantByID retrieves a catalog entry, or ErrNotFound.
	GetRestaurantByID(ctx context.Context, restaurantID string) (*domain.Restaurant, error)

	// ListRestaurants returns the full catalog ordered by name.
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
}

// RestaurantWriterSvc defines catalog write operations.
type RestaurantWriterSvc interface {
	// CreateRestaurant persists a new catalog entry.
	CreateRestaurant(ctx context.Context, req dto.CreateRestaurantRequest, creatorUserID string) (*domain.Restaurant, error)
}

// RestaurantSvcFacade combines catalog service interfaces.
type RestaurantSvcFacade interface {
	RestaurantReaderSvc
	RestaurantWriterSvc
}
