package services

import (
	"context"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	"github.com/vmaryna/cashdine_backend/internal/dto"
)

// PurchaseSvcFacade records purchases and the point awards they earn.
type PurchaseSvcFacade interface {
	// RecordPurchase validates the restaurant, computes the point award from
	// the purchase total and persists both atomically.
	RecordPurchase(ctx context.Context, userID string, req dto.CreatePurchaseRequest) (*domain.Purchase, error)

	// ListPurchases returns the user's purchase history, newest first.
	ListPurchases(ctx context.Context, userID string, params dto.ListPurchasesParams) ([]domain.Purchase, error)
}
