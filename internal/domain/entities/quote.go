package entities

import "time"

// PaymentStatus tracks where a quote sits in its payment lifecycle.
//
// Transitions are driven by ledger appends (deposit paid, installments,
// fully paid, refunded) and by back-office status updates (overdue).

type PaymentStatus string

const (
	PaymentStatusPreQuote     PaymentStatus = "pre-quote"
	PaymentStatusQuoted       PaymentStatus = "quoted"
	PaymentStatusDepositPaid  PaymentStatus = "deposit-paid"
	PaymentStatusInstallments PaymentStatus = "installments"
	PaymentStatusPaid         PaymentStatus = "paid"
	PaymentStatusOverdue      PaymentStatus = "overdue"
	PaymentStatusRefunded     PaymentStatus = "refunded"
)

// CustomerContact is the contact block attached to a quote.
type CustomerContact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Quote is the persisted, customer-facing record of a priced configuration.
//
// Storage model:
//   - PK: id (uuid)
//   - secondary lookup: quote_number (unique per billing period sequence)
//
// TotalPaid is a materialized summary of the payment ledger. It is always
// recomputed from the full entry set on mutation, never incremented in
// place.
type Quote struct {
	ID          string `json:"id"`
	QuoteNumber string `json:"quote_number"`

	Customer      CustomerContact       `json:"customer"`
	Configuration BuildingConfiguration `json:"configuration"`
	Breakdown     PriceBreakdown        `json:"breakdown"`

	PaymentStatus        PaymentStatus `json:"payment_status"`
	TotalPaid            float64       `json:"total_paid"`
	ExpectedInstallments *int          `json:"expected_installments,omitempty"`
	LastPaymentAt        *time.Time    `json:"last_payment_at,omitempty"`

	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
