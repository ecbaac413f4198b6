package repositories

import (
	"context"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
)

// RestaurantReader defines the catalog read path. This is the only surface
// the ledger and ranking layers depend on.
type RestaurantReader interface {
	// FindRestaurantByID retrieves a catalog entry, or ErrNotFound.
	FindRestaurantByID(ctx context.Context, restaurantID string) (*domain.Restaurant, error)

	// ListRestaurants returns the full catalog ordered by name.
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
}

// RestaurantWriter defines catalog write operations (owner/admin path).
type RestaurantWriter interface {
	// SaveRestaurant persists a new catalog entry.
	SaveRestaurant(ctx context.Context, restaurant domain.Restaurant) error
}

// RestaurantRepositoryFacade combines catalog read and write interfaces.
type RestaurantRepositoryFacade interface {
	RestaurantReader
	RestaurantWriter
}
