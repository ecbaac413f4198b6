package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is the accumulated points a user holds for one restaurant.
// A missing row means a balance of zero; rows are created implicitly on the
// first credit and are never deleted, only driven to zero.
type Balance struct {
	UserID        string          `json:"userID"`
	RestaurantID  string          `json:"restaurantID"`
	Points        decimal.Decimal `json:"points"` // >= 0 at all times
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// BalanceKey identifies a single balance row.
type BalanceKey struct {
	UserID       string
	RestaurantID string
}

// Less orders keys lexicographically. Used to lock balance rows in a
// deterministic order so concurrent transfers cannot deadlock.
func (k BalanceKey) Less(other BalanceKey) bool {
	if k.UserID != other.UserID {
		return k.UserID < other.UserID
	}
	return k.RestaurantID < other.RestaurantID
}
