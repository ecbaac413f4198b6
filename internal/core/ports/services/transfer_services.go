package services

import (
	"context"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	"github.com/vmaryna/cashdine_backend/internal/dto"
)

// TransferSvcFacade defines the points-transfer workflow and ledger reads.
type TransferSvcFacade interface {
	// Transfer validates and executes a point movement from the caller to a
	// user or restaurant. The bool result is true when the request token had
	// already been committed and the original record is returned.
	Transfer(ctx context.Context, fromUserID string, req dto.CreateTransferRequest) (*domain.Transfer, bool, error)

	// GetTransferByID retrieves a single transfer record.
	GetTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)

	// ListTransfers returns the user's sent and received transfers, newest first.
	ListTransfers(ctx context.Context, userID string, params dto.ListTransfersParams) ([]domain.Transfer, error)
}
