package dto

import (
	"time"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
)

// CreateRestaurantRequest defines the data needed to add a catalog entry.
// Latitude and longitude are optional but must be provided together.
type CreateRestaurantRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	ImageURL    string   `json:"imageURL" binding:"omitempty,url"`
}

// RestaurantResponse defines the data returned for a catalog entry.
type RestaurantResponse struct {
	RestaurantID string    `json:"restaurantID"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	ImageURL     string    `json:"imageURL,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListRestaurantsResponse wraps the catalog listing.
type ListRestaurantsResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
}

// ToRestaurantResponse converts a domain.Restaurant to its DTO.
func ToRestaurantResponse(r *domain.Restaurant) RestaurantResponse {
	resp := RestaurantResponse{
		RestaurantID: r.RestaurantID,
		Name:         r.Name,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		CreatedAt:    r.CreatedAt,
	}
	if r.Location != nil {
		lat, lon := r.Location.Latitude, r.Location.Longitude
		resp.Latitude = &lat
		resp.Longitude = &lon
	}
	return resp
}

// ToListRestaurantsResponse converts a slice of domain restaurants.
func ToListRestaurantsResponse(restaurants []domain.Restaurant) ListRestaurantsResponse {
	res := make([]RestaurantResponse, len(restaurants))
	for i, r := range restaurants {
		res[i] = ToRestaurantResponse(&r)
	}
	return ListRestaurantsResponse{Restaurants: res}
}
