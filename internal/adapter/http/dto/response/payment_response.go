package response

import (
	"time"

	"gardenroom-billing/internal/domain/entities"
)

type PaymentHistoryItemResponse struct {
	ID                string    `json:"id"`
	QuoteID           string    `json:"quote_id"`
	PaymentType       string    `json:"payment_type"`
	Amount            float64   `json:"amount"`
	InstallmentNumber *int      `json:"installment_number,omitempty"`
	Note              string    `json:"note,omitempty"`
	RecordedBy        string    `json:"recorded_by,omitempty"`
	RecordedAt        time.Time `json:"recorded_at"`
}

func FromPaymentHistoryItem(p entities.PaymentHistoryItem) PaymentHistoryItemResponse {
	return PaymentHistoryItemResponse{
		ID:                p.ID,
		QuoteID:           p.QuoteID,
		PaymentType:       string(p.PaymentType),
		Amount:            p.Amount,
		InstallmentNumber: p.InstallmentNumber,
		Note:              p.Note,
		RecordedBy:        p.RecordedBy,
		RecordedAt:        p.RecordedAt,
	}
}

func FromPaymentHistory(items []entities.PaymentHistoryItem) []PaymentHistoryItemResponse {
	out := make([]PaymentHistoryItemResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPaymentHistoryItem(p))
	}
	return out
}
