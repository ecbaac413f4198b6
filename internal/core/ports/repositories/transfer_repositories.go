package repositories

import (
	"context"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
)

// TransferWriter owns the atomic transfer unit of work.
type TransferWriter interface {
	// CreateTransfer executes the whole transfer inside one database
	// transaction: request-token idempotency check, balance row locks in
	// deterministic order, balance re-check, debit, credit and the append of
	// the committed record. The bool result is true when the token had already
	// been committed and the stored record is returned instead.
	CreateTransfer(ctx context.Context, transfer domain.Transfer) (*domain.Transfer, bool, error)
}

// TransferReader defines read operations over the append-only ledger.
type TransferReader interface {
	// FindTransferByID retrieves a single transfer record.
	FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)

	// FindTransferByToken retrieves the record committed under a request token.
	FindTransferByToken(ctx context.Context, requestToken string) (*domain.Transfer, error)

	// ListTransfersForUser returns transfers where the user is sender or
	// recipient, newest first.
	ListTransfersForUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Transfer, error)
}

// TransferRepositoryFacade combines all transfer repository interfaces.
type TransferRepositoryFacade interface {
	TransferWriter
	TransferReader
}
