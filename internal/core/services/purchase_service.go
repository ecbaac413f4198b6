package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	portsrepo "github.com/vmaryna/cashdine_backend/internal/core/ports/repositories"
	portssvc "github.com/vmaryna/cashdine_backend/internal/core/ports/services"
	"github.com/vmaryna/cashdine_backend/internal/dto"
)

type PurchaseService struct {
	BaseService
	purchaseRepo   portsrepo.PurchaseRepositoryFacade
	restaurantRepo portsrepo.RestaurantReader
	rewardRate     decimal.Decimal
}

// NewPurchaseService creates a new service recording purchases. rewardRate is
// the fraction of the purchase total awarded as points (0.10 = 10%).
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, restaurantRepo portsrepo.RestaurantReader, rewardRate decimal.Decimal) *PurchaseService {
	return &PurchaseService{purchaseRepo: purchaseRepo, restaurantRepo: restaurantRepo, rewardRate: rewardRate}
}

var _ portssvc.PurchaseSvcFacade = (*PurchaseService)(nil)

// RecordPurchase validates the restaurant, computes the point award from the
// purchase total and persists both atomically. Awards round to two decimal
// places, half up.
func (s *PurchaseService) RecordPurchase(ctx context.Context, userID string, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	if !req.TotalAmount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	if _, err := s.restaurantRepo.FindRestaurantByID(ctx, req.RestaurantID); err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrUnknownRestaurant
		}
		return nil, fmt.Errorf("failed to resolve restaurant %s: %w", req.RestaurantID, err)
	}

	items := make([]domain.PurchaseItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.PurchaseItem{Name: item.Name, Quantity: item.Quantity, Price: item.Price}
	}

	purchase := domain.Purchase{
		PurchaseID:    uuid.NewString(),
		UserID:        userID,
		RestaurantID:  req.RestaurantID,
		Items:         items,
		TotalAmount:   req.TotalAmount,
		PointsAwarded: req.TotalAmount.Mul(s.rewardRate).Round(2),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to record purchase", slog.String("restaurant_id", req.RestaurantID))
		return nil, err
	}
	return &purchase, nil
}

// ListPurchases returns the user's purchase history, newest first.
func (s *PurchaseService) ListPurchases(ctx context.Context, userID string, params dto.ListPurchasesParams) ([]domain.Purchase, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	var purchases []domain.Purchase
	err := s.withRetry(ctx, func() error {
		var innerErr error
		purchases, innerErr = s.purchaseRepo.ListPurchasesForUser(ctx, userID, limit, offset)
		return innerErr
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases")
		return nil, err
	}
	return purchases, nil
}
