package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
)

// PurchaseItemRequest is a single receipt line in a purchase submission.
type PurchaseItemRequest struct {
	Name     string          `json:"name" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,gt=0"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

// CreatePurchaseRequest defines the data needed to record a purchase and
// award points for it.
type CreatePurchaseRequest struct {
	RestaurantID string                `json:"restaurantID" binding:"required"`
	Items        []PurchaseItemRequest `json:"items" binding:"omitempty,dive"`
	TotalAmount  decimal.Decimal       `json:"totalAmount" binding:"required"`
}

// PurchaseResponse defines the data returned for a recorded purchase.
type PurchaseResponse struct {
	PurchaseID    string                `json:"purchaseID"`
	RestaurantID  string                `json:"restaurantID"`
	Items         []domain.PurchaseItem `json:"items"`
	TotalAmount   decimal.Decimal       `json:"totalAmount"`
	PointsAwarded decimal.Decimal       `json:"pointsAwarded"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ListPurchasesParams defines query parameters for purchase history.
type ListPurchasesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListPurchasesResponse wraps the caller's purchase history.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

// ToPurchaseResponse converts a domain.Purchase to its DTO.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:    p.PurchaseID,
		RestaurantID:  p.RestaurantID,
		Items:         p.Items,
		TotalAmount:   p.TotalAmount,
		PointsAwarded: p.PointsAwarded,
		CreatedAt:     p.CreatedAt,
	}
}

// ToListPurchasesResponse converts a slice of domain purchases.
func ToListPurchasesResponse(purchases []domain.Purchase) ListPurchasesResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		res[i] = ToPurchaseResponse(&p)
	}
	return ListPurchasesResponse{Purchases: res}
}
