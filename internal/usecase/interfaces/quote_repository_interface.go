package interfaces

import (
	"context"
	"time"

	"gardenroom-billing/internal/domain/entities"
)

// QuoteFilter narrows and pages a quote listing.
type QuoteFilter struct {
	Status   entities.PaymentStatus
	Page     int
	PageSize int
}

// PaymentSummary is the materialized ledger summary written back onto a
// quote after every ledger recompute.
type PaymentSummary struct {
	TotalPaid     float64
	LastPaymentAt time.Time
	Status        entities.PaymentStatus
}

// IQuoteRepository abstracts quote persistence.
//
// Implementations return a zero-value Quote (ID == "") for "not found";
// use cases translate that into their not-found sentinel. Any other
// failure is returned as an error with the store error wrapped.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByQuoteNumber(ctx context.Context, number string) (entities.Quote, error)
	List(ctx context.Context, filter QuoteFilter) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Quote, error)
	UpdatePaymentSummary(ctx context.Context, id string, summary PaymentSummary) (entities.Quote, error)
}
