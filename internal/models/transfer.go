package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer mirrors one row of the append-only transfers table.
// request_token carries a UNIQUE constraint; replays surface as 23505.
type Transfer struct {
	TransferID   string          `db:"transfer_id"`
	RequestToken string          `db:"request_token"`
	FromUserID   string          `db:"from_user_id"`
	ToID         string          `db:"to_id"`
	ToKind       string          `db:"to_kind"`
	RestaurantID string          `db:"restaurant_id"`
	Amount       decimal.Decimal `db:"amount"`
	Status       string          `db:"status"`
	CreatedAt    time.Time       `db:"created_at"`
}
