package interfaces

import (
	"context"

	"gardenroom-billing/internal/domain/entities"
)

// IPaymentHistoryRepository abstracts the append-only payment ledger.
//
// There is deliberately no update or delete: corrections are appended as
// new REFUND/ADJUSTMENT entries.
type IPaymentHistoryRepository interface {
	Create(ctx context.Context, p entities.PaymentHistoryItem) (entities.PaymentHistoryItem, error)
	// ListByQuoteID returns every ledger entry for a quote, newest first.
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.PaymentHistoryItem, error)
}
