package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
)

// BalanceParams defines query parameters for a single balance lookup.
type BalanceParams struct {
	RestaurantID string `form:"restaurantID" binding:"required"`
}

// BalanceResponse defines the data returned for one balance row.
type BalanceResponse struct {
	UserID        string          `json:"userID"`
	RestaurantID  string          `json:"restaurantID"`
	Points        decimal.Decimal `json:"points"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListBalancesResponse wraps all balances the caller holds.
type ListBalancesResponse struct {
	Balances []BalanceResponse `json:"balances"`
}

// ToBalanceResponse converts a domain.Balance to its DTO.
func ToBalanceResponse(b *domain.Balance) BalanceResponse {
	return BalanceResponse{
		UserID:        b.UserID,
		RestaurantID:  b.RestaurantID,
		Points:        b.Points,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToListBalancesResponse converts a slice of domain balances.
func ToListBalancesResponse(balances []domain.Balance) ListBalancesResponse {
	res := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = ToBalanceResponse(&b)
	}
	return ListBalancesResponse{Balances: res}
}
