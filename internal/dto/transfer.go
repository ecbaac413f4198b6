package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
)

// CreateTransferRequest defines the data needed to move points between
// accounts. The sender is always the authenticated caller.
type CreateTransferRequest struct {
	ToID         string                    `json:"toID" binding:"required"`
	ToKind       domain.TransferTargetKind `json:"toKind" binding:"required,oneof=USER RESTAURANT"`
	RestaurantID string                    `json:"restaurantID" binding:"required"`
	Amount       decimal.Decimal           `json:"amount" binding:"required"`
	RequestToken string                    `json:"requestToken" binding:"required"`
}

// TransferResponse defines the data returned for a transfer record.
type TransferResponse struct {
	TransferID   string                    `json:"transferID"`
	FromUserID   string                    `json:"fromUserID"`
	ToID         string                    `json:"toID"`
	ToKind       domain.TransferTargetKind `json:"toKind"`
	RestaurantID string                    `json:"restaurantID"`
	Amount       decimal.Decimal           `json:"amount"`
	Status       domain.TransferStatus     `json:"status"`
	CreatedAt    time.Time                 `json:"createdAt"`
}

// ListTransfersParams defines query parameters for transfer history.
type ListTransfersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListTransfersResponse wraps the caller's transfer history.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
}

// InsufficientBalanceResponse is returned on a failed balance check so the
// client can show the points actually available.
type InsufficientBalanceResponse struct {
	Error          string          `json:"error"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// ToTransferResponse converts a domain.Transfer to its DTO.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:   t.TransferID,
		FromUserID:   t.FromUserID,
		ToID:         t.ToID,
		ToKind:       t.ToKind,
		RestaurantID: t.RestaurantID,
		Amount:       t.Amount,
		Status:       t.Status,
		CreatedAt:    t.CreatedAt,
	}
}

// ToListTransfersResponse converts a slice of domain transfers.
func ToListTransfersResponse(transfers []domain.Transfer) ListTransfersResponse {
	res := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		res[i] = ToTransferResponse(&t)
	}
	return ListTransfersResponse{Transfers: res}
}
