package entities

import "time"

// PaymentType classifies a ledger entry.
type PaymentType string

const (
	PaymentTypeDeposit     PaymentType = "DEPOSIT"
	PaymentTypeInstallment PaymentType = "INSTALLMENT"
	PaymentTypeFinal       PaymentType = "FINAL"
	PaymentTypeRefund      PaymentType = "REFUND"
	PaymentTypeAdjustment  PaymentType = "ADJUSTMENT"
)

// KnownPaymentType reports whether t is one of the ledger entry types.
func KnownPaymentType(t PaymentType) bool {
	switch t {
	case PaymentTypeDeposit, PaymentTypeInstallment, PaymentTypeFinal,
		PaymentTypeRefund, PaymentTypeAdjustment:
		return true
	}
	return false
}

// PaymentHistoryItem is one entry of a quote's payment ledger.
//
// Entries are immutable once written. The ledger is append-only: a mistake
// is corrected by appending an ADJUSTMENT or REFUND entry with a negative
// amount, never by editing or deleting an earlier entry.
type PaymentHistoryItem struct {
	ID                string      `json:"id"`
	QuoteID           string      `json:"quote_id"`
	PaymentType       PaymentType `json:"payment_type"`
	Amount            float64     `json:"amount"`
	InstallmentNumber *int        `json:"installment_number,omitempty"`
	Note              string      `json:"note,omitempty"`
	RecordedBy        string      `json:"recorded_by,omitempty"`
	RecordedAt        time.Time   `json:"recorded_at"`
}
