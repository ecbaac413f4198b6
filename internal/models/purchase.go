package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase mirrors one row of the purchases table. Items is stored as JSONB.
type Purchase struct {
	PurchaseID    string          `db:"purchase_id"`
	UserID        string          `db:"user_id"`
	RestaurantID  string          `db:"restaurant_id"`
	Items         []byte          `db:"items"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PointsAwarded decimal.Decimal `db:"points_awarded"`
	CreatedAt     time.Time       `db:"created_at"`
}
