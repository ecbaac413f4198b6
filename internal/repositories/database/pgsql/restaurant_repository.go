package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	portsrepo "github.com/vmaryna/cashdine_backend/internal/core/ports/repositories"
	"github.com/vmaryna/cashdine_backend/internal/models"
)

type PgxRestaurantRepository struct {
	BaseRepository
}

// NewRestaurantRepository creates a new repository for catalog data.
func NewRestaurantRepository(pool *pgxpool.Pool) portsrepo.RestaurantRepositoryFacade {
	return &PgxRestaurantRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RestaurantRepositoryFacade = (*PgxRestaurantRepository)(nil)

func toDomainRestaurant(m models.Restaurant) domain.Restaurant {
	restaurant := domain.Restaurant{
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.Latitude != nil && m.Longitude != nil {
		restaurant.Location = &domain.Coordinate{Latitude: *m.Latitude, Longitude: *m.Longitude}
	}
	return restaurant
}

const restaurantColumns = `restaurant_id, name, description, latitude, longitude, image_url, created_at, created_by, last_updated_at, last_updated_by`

func scanRestaurant(row pgx.Row) (*domain.Restaurant, error) {
	var m models.Restaurant
	err := row.Scan(&m.RestaurantID, &m.Name, &m.Description, &m.Latitude, &m.Longitude, &m.ImageURL,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		return nil, err
	}
	restaurant := toDomainRestaurant(m)
	return &restaurant, nil
}

// FindRestaurantByID retrieves a catalog entry, or ErrNotFound.
func (r *PgxRestaurantRepository) FindRestaurantByID(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE restaurant_id = $1;
	`
	restaurant, err := scanRestaurant(r.Pool.QueryRow(ctx, query, restaurantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapStorageError(err, fmt.Sprintf("failed to find restaurant %s", restaurantID))
	}
	return restaurant, nil
}

// ListRestaurants returns the full catalog ordered by name.
func (r *PgxRestaurantRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		ORDER BY name, restaurant_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, wrapStorageError(err, "failed to query restaurants")
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var m models.Restaurant
		if err := rows.Scan(&m.RestaurantID, &m.Name, &m.Description, &m.Latitude, &m.Longitude, &m.ImageURL,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, toDomainRestaurant(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurant rows: %w", err)
	}
	return restaurants, nil
}

// SaveRestaurant persists a new catalog entry.
func (r *PgxRestaurantRepository) SaveRestaurant(ctx context.Context, restaurant domain.Restaurant) error {
	var lat, lon *float64
	if restaurant.Location != nil {
		lat = &restaurant.Location.Latitude
		lon = &restaurant.Location.Longitude
	}
	query := `
		INSERT INTO restaurants (` + restaurantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		restaurant.RestaurantID, restaurant.Name, restaurant.Description, lat, lon, restaurant.ImageURL,
		restaurant.CreatedAt, restaurant.CreatedBy, restaurant.LastUpdatedAt, restaurant.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return wrapStorageError(err, fmt.Sprintf("failed to save restaurant %s", restaurant.RestaurantID))
	}
	return nil
}
