package request

import (
	"gardenroom-billing/internal/domain/entities"
	"gardenroom-billing/internal/usecase"
)

// AppendPaymentRequest records one ledger entry against a quote. Negative
// amounts are accepted only for REFUND and ADJUSTMENT entries; the use
// case enforces that.
type AppendPaymentRequest struct {
	PaymentType       string  `json:"payment_type" binding:"required"`
	Amount            float64 `json:"amount" binding:"required"`
	InstallmentNumber *int    `json:"installment_number"`
	Note              string  `json:"note"`
	RecordedBy        string  `json:"recorded_by"`
}

func (r AppendPaymentRequest) ToCommand() usecase.AppendPaymentCommand {
	return usecase.AppendPaymentCommand{
		Type:              entities.PaymentType(r.PaymentType),
		Amount:            r.Amount,
		InstallmentNumber: r.InstallmentNumber,
		Note:              r.Note,
		RecordedBy:        r.RecordedBy,
	}
}
