package entities

// BreakdownCategory names the cost component a breakdown line belongs to.
type BreakdownCategory string

const (
	CategoryBaseStructure BreakdownCategory = "base_structure"
	CategoryCladding      BreakdownCategory = "cladding"
	CategoryBathroom      BreakdownCategory = "bathroom"
	CategoryElectrical    BreakdownCategory = "electrical"
	CategoryGlazing       BreakdownCategory = "glazing"
	CategoryInternal      BreakdownCategory = "internal"
	CategoryFlooring      BreakdownCategory = "flooring"
	CategoryDelivery      BreakdownCategory = "delivery"
	CategoryExtras        BreakdownCategory = "extras"
)

// BreakdownItem is one priced line of an estimate. TotalPrice is already
// rounded to 2 decimal places; the breakdown subtotal is the exact sum of
// its lines.
type BreakdownItem struct {
	Category    BreakdownCategory `json:"category"`
	Description string            `json:"description"`
	Quantity    float64           `json:"quantity"`
	UnitPrice   float64           `json:"unit_price"`
	TotalPrice  float64           `json:"total_price"`
	Unit        string            `json:"unit,omitempty"`
	Notes       string            `json:"notes,omitempty"`
}

// Discount is a named deduction applied to an estimate.
type Discount struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

// PriceBreakdown is the itemized result of pricing a configuration.
// It is always derived from its configuration, never edited in place, so a
// stored snapshot can be recomputed and compared at any time.
//
// Currency is a 3-letter ISO code carried alongside the numbers; monetary
// values are plain numbers rounded to 2 decimal places.
type PriceBreakdown struct {
	Items     []BreakdownItem `json:"items"`
	Discounts []Discount      `json:"discounts,omitempty"`
	Subtotal  float64         `json:"subtotal"`
	VATRate   float64         `json:"vat_rate"`
	VATAmount float64         `json:"vat_amount"`
	Total     float64         `json:"total"`
	Currency  string          `json:"currency"`
}
