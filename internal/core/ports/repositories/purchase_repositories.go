package repositories

import (
	"context"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
)

// PurchaseWriter persists a purchase and its point award atomically.
type PurchaseWriter interface {
	// SavePurchase inserts the purchase row and credits PointsAwarded to the
	// buyer's balance within one database transaction.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
}

// PurchaseReader defines read operations over purchase history.
type PurchaseReader interface {
	// ListPurchasesForUser returns the user's purchases, newest first.
	ListPurchasesForUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Purchase, error)
}

// PurchaseRepositoryFacade combines purchase read and write interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseWriter
	PurchaseReader
}
