package request

import "gardenroom-billing/internal/domain/entities"

type GlazingItemRequest struct {
	WidthM  float64 `json:"width_m"`
	HeightM float64 `json:"height_m"`
}

type GlazingRequest struct {
	Windows       []GlazingItemRequest `json:"windows"`
	ExternalDoors []GlazingItemRequest `json:"external_doors"`
	Skylights     []GlazingItemRequest `json:"skylights"`
}

type ExtraItemRequest struct {
	Title string  `json:"title" binding:"required"`
	Cost  float64 `json:"cost"`
}

type UpgradesRequest struct {
	PaintedFinish  bool    `json:"painted_finish"`
	Gutters        bool    `json:"gutters"`
	DeckingAreaSqm float64 `json:"decking_area_sqm"`
}

// ConfigurationRequest mirrors the building configuration the wizard
// submits. Range rules live in the validation package, not in binding
// tags, so the caller gets every violation in one response.
type ConfigurationRequest struct {
	WidthM  float64 `json:"width_m" binding:"required"`
	DepthM  float64 `json:"depth_m" binding:"required"`
	HeightM float64 `json:"height_m"`

	CladdingAreaSqm float64 `json:"cladding_area_sqm"`

	HalfBathrooms         int `json:"half_bathrooms"`
	ThreeQuarterBathrooms int `json:"three_quarter_bathrooms"`

	Switches int `json:"switches"`
	Sockets  int `json:"sockets"`
	Heaters  int `json:"heaters"`

	InternalDoors     int     `json:"internal_doors"`
	WallFinish        string  `json:"wall_finish"`
	WallFinishAreaSqm float64 `json:"wall_finish_area_sqm"`

	FloorType    string  `json:"floor_type"`
	FloorAreaSqm float64 `json:"floor_area_sqm"`

	Glazing GlazingRequest `json:"glazing"`

	DeliveryDistanceKm float64 `json:"delivery_distance_km"`

	Upgrades UpgradesRequest    `json:"upgrades"`
	Extras   []ExtraItemRequest `json:"extras"`

	Note string `json:"note"`
}

func (r ConfigurationRequest) ToEntity() entities.BuildingConfiguration {
	cfg := entities.BuildingConfiguration{
		WidthM:                r.WidthM,
		DepthM:                r.DepthM,
		HeightM:               r.HeightM,
		CladdingAreaSqm:       r.CladdingAreaSqm,
		HalfBathrooms:         r.HalfBathrooms,
		ThreeQuarterBathrooms: r.ThreeQuarterBathrooms,
		Switches:              r.Switches,
		Sockets:               r.Sockets,
		Heaters:               r.Heaters,
		InternalDoors:         r.InternalDoors,
		WallFinish:            entities.WallFinish(r.WallFinish),
		WallFinishAreaSqm:     r.WallFinishAreaSqm,
		FloorType:             entities.FloorType(r.FloorType),
		FloorAreaSqm:          r.FloorAreaSqm,
		DeliveryDistanceKm:    r.DeliveryDistanceKm,
		Upgrades: entities.Upgrades{
			PaintedFinish:  r.Upgrades.PaintedFinish,
			Gutters:        r.Upgrades.Gutters,
			DeckingAreaSqm: r.Upgrades.DeckingAreaSqm,
		},
		Note: r.Note,
	}
	if r.WallFinish == "" {
		cfg.WallFinish = entities.WallFinishNone
	}
	if r.FloorType == "" {
		cfg.FloorType = entities.FloorTypeNone
	}
	cfg.Glazing = entities.Glazing{
		Windows:       toGlazingItems(r.Glazing.Windows),
		ExternalDoors: toGlazingItems(r.Glazing.ExternalDoors),
		Skylights:     toGlazingItems(r.Glazing.Skylights),
	}
	for _, x := range r.Extras {
		cfg.Extras = append(cfg.Extras, entities.ExtraItem{Title: x.Title, Cost: x.Cost})
	}
	return cfg
}

func toGlazingItems(in []GlazingItemRequest) []entities.GlazingItem {
	out := make([]entities.GlazingItem, 0, len(in))
	for _, g := range in {
		out = append(out, entities.GlazingItem{WidthM: g.WidthM, HeightM: g.HeightM})
	}
	return out
}

// EstimateRequest prices a configuration without persisting anything.
// VAT is included unless explicitly switched off.
type EstimateRequest struct {
	Configuration ConfigurationRequest `json:"configuration" binding:"required"`
	IncludeVAT    *bool                `json:"include_vat"`
}

func (r EstimateRequest) ResolveIncludeVAT() bool {
	if r.IncludeVAT == nil {
		return true
	}
	return *r.IncludeVAT
}

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r CustomerRequest) ToEntity() entities.CustomerContact {
	return entities.CustomerContact{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// CreateQuoteRequest is the wizard's submission payload.
type CreateQuoteRequest struct {
	Customer             CustomerRequest      `json:"customer" binding:"required"`
	Configuration        ConfigurationRequest `json:"configuration" binding:"required"`
	ExpectedInstallments *int                 `json:"expected_installments"`
}

// UpdateQuoteStatusRequest is the back-office status patch payload.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
