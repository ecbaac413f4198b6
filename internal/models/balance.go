package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance mirrors one row of the balances table.
// Primary key is (user_id, restaurant_id).
type Balance struct {
	UserID        string          `db:"user_id"`
	RestaurantID  string          `db:"restaurant_id"`
	Points        decimal.Decimal `db:"points"`
	CreatedAt     time.Time       `db:"created_at"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
