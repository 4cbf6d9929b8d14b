package response

import (
	"time"

	"gardenroom-billing/internal/domain/entities"
)

type CustomerResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type QuoteResponse struct {
	ID          string `json:"id"`
	QuoteNumber string `json:"quote_number"`

	Customer  CustomerResponse `json:"customer"`
	Breakdown BreakdownResponse `json:"breakdown"`

	PaymentStatus        string     `json:"payment_status"`
	TotalPaid            float64    `json:"total_paid"`
	ExpectedInstallments *int       `json:"expected_installments,omitempty"`
	LastPaymentAt        *time.Time `json:"last_payment_at,omitempty"`

	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		QuoteNumber: q.QuoteNumber,
		Customer: CustomerResponse{
			Name:    q.Customer.Name,
			Email:   q.Customer.Email,
			Phone:   q.Customer.Phone,
			Address: q.Customer.Address,
		},
		Breakdown:            FromBreakdown(q.Breakdown),
		PaymentStatus:        string(q.PaymentStatus),
		TotalPaid:            q.TotalPaid,
		ExpectedInstallments: q.ExpectedInstallments,
		LastPaymentAt:        q.LastPaymentAt,
		ExpiresAt:            q.ExpiresAt,
		CreatedAt:            q.CreatedAt,
		UpdatedAt:            q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
