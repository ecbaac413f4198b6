package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
)

// RankParams defines query parameters for a ranked restaurant listing.
// Lat/Lon are required only for the DISTANCE criterion; the service reports
// ErrLocationUnavailable when they are missing there.
type RankParams struct {
	Criterion domain.RankCriterion `form:"criterion,default=ALPHABETICAL" binding:"omitempty,oneof=ALPHABETICAL DISTANCE POINTS"`
	Lat       *float64             `form:"lat" binding:"omitempty,gte=-90,lte=90"`
	Lon       *float64             `form:"lon" binding:"omitempty,gte=-180,lte=180"`
}

// RankedRestaurantResponse is one row of a ranked listing.
type RankedRestaurantResponse struct {
	Restaurant RestaurantResponse `json:"restaurant"`
	Points     decimal.Decimal    `json:"points"`
	DistanceM  *float64           `json:"distanceM,omitempty"`
}

// RankResponse wraps a ranked listing.
type RankResponse struct {
	Criterion   domain.RankCriterion       `json:"criterion"`
	Restaurants []RankedRestaurantResponse `json:"restaurants"`
}

// ToRankResponse converts ranked domain rows to the response DTO.
func ToRankResponse(criterion domain.RankCriterion, ranked []domain.RankedRestaurant) RankResponse {
	res := make([]RankedRestaurantResponse, len(ranked))
	for i, r := range ranked {
		res[i] = RankedRestaurantResponse{
			Restaurant: ToRestaurantResponse(&r.Restaurant),
			Points:     r.Points,
			DistanceM:  r.DistanceM,
		}
	}
	return RankResponse{Criterion: criterion, Restaurants: res}
}
