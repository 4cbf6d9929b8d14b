// Package validation performs structural range checks on building
// configurations before they are priced. It reports every violation, not
// just the first, so a caller can surface all problems at once.
package validation

import (
	"fmt"

	"gardenroom-billing/internal/domain/entities"
)

// Stable violation codes. These are part of the API contract; clients key
// field-level UI messages off them.
const (
	CodeNegative   = "NEGATIVE"
	CodeOutOfRange = "OUT_OF_RANGE"
	CodeTooMany    = "TOO_MANY"
	CodeZeroArea   = "ZERO_AREA"
	CodeUnknown    = "UNKNOWN_VALUE"
)

// Footprint and glazing bounds.
const (
	MinFootprintM = 2.0
	MaxFootprintM = 15.0

	MaxWindows       = 20
	MaxExternalDoors = 5
	MaxSkylights     = 10
	MaxExtras        = 20
)

// FieldError is one violated rule on one field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result collects every violation found in a configuration.
type Result struct {
	Errors []FieldError `json:"errors"`
}

func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Validate checks cfg against the construction ranges. Side-effect free.
func Validate(cfg entities.BuildingConfiguration) Result {
	var r Result

	r.rangeCheck("width_m", cfg.WidthM)
	r.rangeCheck("depth_m", cfg.DepthM)
	r.nonNegative("height_m", cfg.HeightM)

	r.nonNegative("cladding_area_sqm", cfg.CladdingAreaSqm)
	r.nonNegativeCount("half_bathrooms", cfg.HalfBathrooms)
	r.nonNegativeCount("three_quarter_bathrooms", cfg.ThreeQuarterBathrooms)
	r.nonNegativeCount("switches", cfg.Switches)
	r.nonNegativeCount("sockets", cfg.Sockets)
	r.nonNegativeCount("heaters", cfg.Heaters)
	r.nonNegativeCount("internal_doors", cfg.InternalDoors)
	r.nonNegative("wall_finish_area_sqm", cfg.WallFinishAreaSqm)
	r.nonNegative("floor_area_sqm", cfg.FloorAreaSqm)
	r.nonNegative("delivery_distance_km", cfg.DeliveryDistanceKm)
	r.nonNegative("upgrades.decking_area_sqm", cfg.Upgrades.DeckingAreaSqm)

	switch cfg.WallFinish {
	case entities.WallFinishNone, entities.WallFinishPanelled, entities.WallFinishPlastered:
	default:
		r.add("wall_finish", CodeUnknown, fmt.Sprintf("unknown wall finish %q", cfg.WallFinish))
	}

	switch cfg.FloorType {
	case entities.FloorTypeNone, entities.FloorTypeLaminate, entities.FloorTypeWooden, entities.FloorTypeVinyl:
	default:
		r.add("floor_type", CodeUnknown, fmt.Sprintf("unknown floor type %q", cfg.FloorType))
	}
	if cfg.FloorType != entities.FloorTypeNone && cfg.FloorAreaSqm <= 0 {
		r.add("floor_area_sqm", CodeZeroArea, "floor area must be positive when a floor type is selected")
	}

	r.glazingCheck("glazing.windows", cfg.Glazing.Windows, MaxWindows)
	r.glazingCheck("glazing.external_doors", cfg.Glazing.ExternalDoors, MaxExternalDoors)
	r.glazingCheck("glazing.skylights", cfg.Glazing.Skylights, MaxSkylights)

	if len(cfg.Extras) > MaxExtras {
		r.add("extras", CodeTooMany, fmt.Sprintf("at most %d extra items allowed", MaxExtras))
	}
	for i, x := range cfg.Extras {
		if x.Cost < 0 {
			r.add(fmt.Sprintf("extras[%d].cost", i), CodeNegative, "extra item cost must not be negative")
		}
	}

	return r
}

func (r *Result) add(field, code, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Code: code, Message: message})
}

func (r *Result) rangeCheck(field string, v float64) {
	if v < MinFootprintM || v > MaxFootprintM {
		r.add(field, CodeOutOfRange,
			fmt.Sprintf("must be between %.0f and %.0f meters", MinFootprintM, MaxFootprintM))
	}
}

func (r *Result) nonNegative(field string, v float64) {
	if v < 0 {
		r.add(field, CodeNegative, "must not be negative")
	}
}

func (r *Result) nonNegativeCount(field string, v int) {
	if v < 0 {
		r.add(field, CodeNegative, "must not be negative")
	}
}

func (r *Result) glazingCheck(field string, items []entities.GlazingItem, max int) {
	if len(items) > max {
		r.add(field, CodeTooMany, fmt.Sprintf("at most %d items allowed", max))
	}
	for i, g := range items {
		if g.WidthM < 0 || g.HeightM < 0 {
			r.add(fmt.Sprintf("%s[%d]", field, i), CodeNegative, "dimensions must not be negative")
		}
	}
}
