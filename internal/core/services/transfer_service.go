package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	portsrepo "github.com/vmaryna/cashdine_backend/internal/core/ports/repositories"
	portssvc "github.com/vmaryna/cashdine_backend/internal/core/ports/services"
	"github.com/vmaryna/cashdine_backend/internal/dto"
)

type TransferService struct {
	BaseService
	transferRepo   portsrepo.TransferRepositoryFacade
	restaurantRepo portsrepo.RestaurantReader
}

// NewTransferService creates a new service for the points-transfer workflow.
func NewTransferService(transferRepo portsrepo.TransferRepositoryFacade, restaurantRepo portsrepo.RestaurantReader) *TransferService {
	return &TransferService{transferRepo: transferRepo, restaurantRepo: restaurantRepo}
}

var _ portssvc.TransferSvcFacade = (*TransferService)(nil)

// Transfer validates and executes a point movement from the caller. Validation
// runs in a fixed order so clients get stable error codes: amount, self
// transfer, restaurant existence. The balance check happens inside the
// repository transaction, under the row locks.
func (s *TransferService) Transfer(ctx context.Context, fromUserID string, req dto.CreateTransferRequest) (*domain.Transfer, bool, error) {
	if !req.Amount.IsPositive() {
		return nil, false, apperrors.ErrInvalidAmount
	}
	if req.ToKind == domain.TargetUser && req.ToID == fromUserID {
		return nil, false, apperrors.ErrSelfTransfer
	}
	if req.ToKind == domain.TargetRestaurant && req.ToID != req.RestaurantID {
		// A restaurant only holds points it issued itself.
		return nil, false, fmt.Errorf("%w: restaurant target must match the points' restaurant", apperrors.ErrValidation)
	}

	if _, err := s.restaurantRepo.FindRestaurantByID(ctx, req.RestaurantID); err != nil {
		if isNotFound(err) {
			return nil, false, apperrors.ErrUnknownRestaurant
		}
		return nil, false, fmt.Errorf("failed to resolve restaurant %s: %w", req.RestaurantID, err)
	}

	transfer := domain.Transfer{
		TransferID:   uuid.NewString(),
		RequestToken: req.RequestToken,
		FromUserID:   fromUserID,
		ToID:         req.ToID,
		ToKind:       req.ToKind,
		RestaurantID: req.RestaurantID,
		Amount:       req.Amount,
		Status:       domain.TransferCommitted,
		CreatedAt:    time.Now().UTC(),
	}

	// The request token makes the whole unit idempotent, so a retry after a
	// transient failure either replays the committed record or starts clean.
	var (
		committed *domain.Transfer
		replayed  bool
	)
	err := s.withRetry(ctx, func() error {
		var innerErr error
		committed, replayed, innerErr = s.transferRepo.CreateTransfer(ctx, transfer)
		return innerErr
	})
	if err != nil {
		s.LogError(ctx, err, "Transfer failed",
			slog.String("to_id", req.ToID),
			slog.String("restaurant_id", req.RestaurantID))
		return nil, false, err
	}
	return committed, replayed, nil
}

// GetTransferByID retrieves a single transfer record.
func (s *TransferService) GetTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

// ListTransfers returns the user's sent and received transfers, newest first.
func (s *TransferService) ListTransfers(ctx context.Context, userID string, params dto.ListTransfersParams) ([]domain.Transfer, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	var transfers []domain.Transfer
	err := s.withRetry(ctx, func() error {
		var innerErr error
		transfers, innerErr = s.transferRepo.ListTransfersForUser(ctx, userID, limit, offset)
		return innerErr
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transfers")
		return nil, err
	}
	return transfers, nil
}
