package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferTargetKind says whether points go to another user or back to the
// restaurant itself.
type TransferTargetKind string

const (
	TargetUser       TransferTargetKind = "USER"
	TargetRestaurant TransferTargetKind = "RESTAURANT"
)

// TransferStatus is the state of a transfer record. Only committed transfers
// are persisted; failed validations never reach the ledger.
type TransferStatus string

const (
	TransferCommitted TransferStatus = "COMMITTED"
)

// Transfer is one immutable point movement between two accounts, scoped to a
// single restaurant's points. Records are append-only: never updated or
// deleted once written.
type Transfer struct {
	TransferID   string             `json:"transferID"`
	RequestToken string             `json:"requestToken"` // client-generated idempotency token
	FromUserID   string             `json:"fromUserID"`
	ToID         string             `json:"toID"` // user ID or restaurant ID, per ToKind
	ToKind       TransferTargetKind `json:"toKind"`
	RestaurantID string             `json:"restaurantID"` // the points "currency" scope
	Amount       decimal.Decimal    `json:"amount"`       // > 0
	Status       TransferStatus     `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// DestinationKey returns the balance key credited by this transfer. Both user
// and restaurant targets hold their points scoped to the same restaurant.
func (t Transfer) DestinationKey() BalanceKey {
	return BalanceKey{UserID: t.ToID, RestaurantID: t.RestaurantID}
}

// SourceKey returns the balance key debited by this transfer.
func (t Transfer) SourceKey() BalanceKey {
	return BalanceKey{UserID: t.FromUserID, RestaurantID: t.RestaurantID}
}
