package response

import "gardenroom-billing/internal/domain/entities"

// The breakdown wire shape is consumed by the quote emails and the wizard
// UI; its field names are a fixed contract.

type BreakdownItemResponse struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
	Unit        string  `json:"unit,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

type DiscountResponse struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

type BreakdownResponse struct {
	Subtotal  float64                 `json:"subtotal"`
	VATAmount float64                 `json:"vatAmount"`
	VATRate   float64                 `json:"vatRate"`
	Total     float64                 `json:"total"`
	Items     []BreakdownItemResponse `json:"items"`
	Discounts []DiscountResponse      `json:"discounts,omitempty"`
	Currency  string                  `json:"currency"`
}

func FromBreakdown(b entities.PriceBreakdown) BreakdownResponse {
	items := make([]BreakdownItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BreakdownItemResponse{
			Category:    string(it.Category),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
			Unit:        it.Unit,
			Notes:       it.Notes,
		})
	}

	var discounts []DiscountResponse
	for _, d := range b.Discounts {
		discounts = append(discounts, DiscountResponse{
			Description: d.Description,
			Amount:      d.Amount,
			Type:        d.Type,
		})
	}

	return BreakdownResponse{
		Subtotal:  b.Subtotal,
		VATAmount: b.VATAmount,
		VATRate:   b.VATRate,
		Total:     b.Total,
		Items:     items,
		Discounts: discounts,
		Currency:  b.Currency,
	}
}
