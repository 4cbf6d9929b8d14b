// Package pricing turns a validated building configuration into an
// itemized, VAT-aware price breakdown. Everything in here is pure: no
// I/O, no shared state, identical input always yields an identical
// breakdown.
package pricing

import (
	"fmt"

	"gardenroom-billing/internal/domain/entities"
)

// Estimator prices configurations against a fixed rate card.
type Estimator struct {
	prices PriceList
}

func NewEstimator(prices PriceList) *Estimator {
	return &Estimator{prices: prices}
}

// Estimate prices cfg and returns the itemized breakdown.
//
// Each line is computed from unrounded intermediates and rounded half-up
// to cents exactly once; the subtotal is the exact cent sum of the lines,
// VAT is applied to the subtotal in cents. cfg is expected to have passed
// validation — the estimator never rejects business values.
func (e *Estimator) Estimate(cfg entities.BuildingConfiguration, includeVAT bool) entities.PriceBreakdown {
	p := e.prices
	var items []entities.BreakdownItem

	add := func(it entities.BreakdownItem) {
		items = append(items, it)
	}

	// Base structure: fixed charge plus footprint rate.
	area := cfg.FootprintAreaSqm()
	add(line(entities.CategoryBaseStructure, "Base structure fixed charge", 1, p.BaseFixedCharge, ""))
	add(line(entities.CategoryBaseStructure,
		fmt.Sprintf("Base structure %.1fm x %.1fm", cfg.WidthM, cfg.DepthM),
		area, p.BaseRatePerSqm, "sqm"))

	if cfg.CladdingAreaSqm > 0 {
		add(line(entities.CategoryCladding, "External cladding", cfg.CladdingAreaSqm, p.CladdingRatePerSqm, "sqm"))
	}

	if cfg.HalfBathrooms > 0 {
		add(line(entities.CategoryBathroom, "Half bathroom", float64(cfg.HalfBathrooms), p.HalfBathroomPrice, ""))
	}
	if cfg.ThreeQuarterBathrooms > 0 {
		add(line(entities.CategoryBathroom, "Three-quarter bathroom", float64(cfg.ThreeQuarterBathrooms), p.ThreeQuarterBathroomPrice, ""))
	}

	if cfg.Switches > 0 {
		add(line(entities.CategoryElectrical, "Light switch", float64(cfg.Switches), p.SwitchPrice, ""))
	}
	if cfg.Sockets > 0 {
		add(line(entities.CategoryElectrical, "Double socket", float64(cfg.Sockets), p.SocketPrice, ""))
	}
	if cfg.Heaters > 0 {
		add(line(entities.CategoryElectrical, "Electric heater", float64(cfg.Heaters), p.HeaterPrice, ""))
	}

	items = append(items, e.glazingLines("Window", glazingWindows, cfg.Glazing.Windows)...)
	items = append(items, e.glazingLines("External door", glazingExternalDoors, cfg.Glazing.ExternalDoors)...)
	items = append(items, e.glazingLines("Skylight", glazingSkylights, cfg.Glazing.Skylights)...)

	if cfg.InternalDoors > 0 {
		add(line(entities.CategoryInternal, "Internal door", float64(cfg.InternalDoors), p.InternalDoorCharge, ""))
	}
	if cfg.WallFinish != entities.WallFinishNone && cfg.WallFinishAreaSqm > 0 {
		add(line(entities.CategoryInternal,
			fmt.Sprintf("Wall finish (%s)", cfg.WallFinish),
			cfg.WallFinishAreaSqm, p.WallFinishRates[cfg.WallFinish], "sqm"))
	}

	if cfg.FloorType != entities.FloorTypeNone && cfg.FloorAreaSqm > 0 {
		add(line(entities.CategoryFlooring,
			fmt.Sprintf("Flooring (%s)", cfg.FloorType),
			cfg.FloorAreaSqm, p.FlooringRates[cfg.FloorType], "sqm"))
	}

	if billable := cfg.DeliveryDistanceKm - p.DeliveryFreeKm; billable > 0 {
		add(line(entities.CategoryDelivery, "Delivery", billable, p.DeliveryRatePerKm, "km"))
	}

	if cfg.Upgrades.PaintedFinish {
		add(line(entities.CategoryExtras, "Painted external finish", 1, p.PaintedFinishCharge, ""))
	}
	if cfg.Upgrades.Gutters {
		add(line(entities.CategoryExtras, "Gutters and downpipes", 1, p.GuttersCharge, ""))
	}
	if cfg.Upgrades.DeckingAreaSqm > 0 {
		add(line(entities.CategoryExtras, "Decking", cfg.Upgrades.DeckingAreaSqm, p.DeckingRatePerSqm, "sqm"))
	}
	for _, x := range cfg.Extras {
		add(line(entities.CategoryExtras, x.Title, 1, x.Cost, ""))
	}

	var subtotalCents int64
	for _, it := range items {
		subtotalCents += Cents(it.TotalPrice)
	}

	var vatCents int64
	if includeVAT {
		vatCents = RateCents(subtotalCents, p.VATRate)
	}

	return entities.PriceBreakdown{
		Items:     items,
		Subtotal:  FromCents(subtotalCents),
		VATRate:   p.VATRate,
		VATAmount: FromCents(vatCents),
		Total:     FromCents(subtotalCents + vatCents),
		Currency:  p.Currency,
	}
}

func (e *Estimator) glazingLines(label string, rateKey entities.BreakdownCategory, gl []entities.GlazingItem) []entities.BreakdownItem {
	rate := e.prices.Glazing[rateKey]
	out := make([]entities.BreakdownItem, 0, len(gl))
	for i, g := range gl {
		charge := rate.FixedCharge + g.WidthM*g.HeightM*rate.RatePerSqm
		it := line(entities.CategoryGlazing,
			fmt.Sprintf("%s %d (%.2fm x %.2fm)", label, i+1, g.WidthM, g.HeightM),
			1, charge, "")
		out = append(out, it)
	}
	return out
}

// line rounds quantity*unitPrice half-up to cents once, at the line level.
func line(cat entities.BreakdownCategory, desc string, qty, unitPrice float64, unit string) entities.BreakdownItem {
	return entities.BreakdownItem{
		Category:    cat,
		Description: desc,
		Quantity:    qty,
		UnitPrice:   RoundHalfUp(unitPrice),
		TotalPrice:  RoundHalfUp(qty * unitPrice),
		Unit:        unit,
	}
}
