package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItem is a single line of a purchase receipt.
type PurchaseItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Purchase records a visit that awarded loyalty points. Awards are additive
// only: they credit the buyer's balance without debiting anyone.
type Purchase struct {
	PurchaseID    string          `json:"purchaseID"`
	UserID        string          `json:"userID"`
	RestaurantID  string          `json:"restaurantID"`
	Items         []PurchaseItem  `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PointsAwarded decimal.Decimal `json:"pointsAwarded"`
	CreatedAt     time.Time       `json:"createdAt"`
}
