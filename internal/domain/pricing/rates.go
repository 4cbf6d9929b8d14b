package pricing

import "gardenroom-billing/internal/domain/entities"

// GlazingRate prices one glazed-opening category: a fixed charge per item
// plus a rate applied to the opening's area.
type GlazingRate struct {
	FixedCharge float64
	RatePerSqm  float64
}

// PriceList is the rate card an Estimator prices against. All values are
// VAT-exclusive amounts in the list's currency.
type PriceList struct {
	Currency string
	VATRate  float64

	BaseFixedCharge float64
	BaseRatePerSqm  float64

	CladdingRatePerSqm float64

	HalfBathroomPrice         float64
	ThreeQuarterBathroomPrice float64

	SwitchPrice float64
	SocketPrice float64
	HeaterPrice float64

	Glazing map[entities.BreakdownCategory]GlazingRate

	InternalDoorCharge float64
	WallFinishRates    map[entities.WallFinish]float64

	FlooringRates map[entities.FloorType]float64

	DeliveryFreeKm    float64
	DeliveryRatePerKm float64

	PaintedFinishCharge float64
	GuttersCharge       float64
	DeckingRatePerSqm   float64
}

// Glazing rate map keys. Kept distinct from breakdown categories so a rate
// lookup can never collide with an unrelated category.
const (
	glazingWindows       entities.BreakdownCategory = "glazing_windows"
	glazingExternalDoors entities.BreakdownCategory = "glazing_external_doors"
	glazingSkylights     entities.BreakdownCategory = "glazing_skylights"
)

// DefaultPriceList is the standard rate card, EUR with Irish VAT.
func DefaultPriceList() PriceList {
	return PriceList{
		Currency: "EUR",
		VATRate:  0.23,

		BaseFixedCharge: 4500.00,
		BaseRatePerSqm:  720.00,

		CladdingRatePerSqm: 38.50,

		HalfBathroomPrice:         2650.00,
		ThreeQuarterBathroomPrice: 4200.00,

		SwitchPrice: 45.00,
		SocketPrice: 58.00,
		HeaterPrice: 185.00,

		Glazing: map[entities.BreakdownCategory]GlazingRate{
			glazingWindows:       {FixedCharge: 320.00, RatePerSqm: 210.00},
			glazingExternalDoors: {FixedCharge: 580.00, RatePerSqm: 260.00},
			glazingSkylights:     {FixedCharge: 410.00, RatePerSqm: 300.00},
		},

		InternalDoorCharge: 395.00,
		WallFinishRates: map[entities.WallFinish]float64{
			entities.WallFinishNone:      0,
			entities.WallFinishPanelled:  24.00,
			entities.WallFinishPlastered: 31.50,
		},

		FlooringRates: map[entities.FloorType]float64{
			entities.FloorTypeLaminate: 26.00,
			entities.FloorTypeWooden:   42.00,
			entities.FloorTypeVinyl:    22.00,
		},

		DeliveryFreeKm:    50,
		DeliveryRatePerKm: 1.80,

		PaintedFinishCharge: 850.00,
		GuttersCharge:       440.00,
		DeckingRatePerSqm:   95.00,
	}
}
