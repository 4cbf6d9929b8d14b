package entities

// WallFinish identifies the internal wall treatment applied to the room.
type WallFinish string

const (
	WallFinishNone      WallFinish = "none"
	WallFinishPanelled  WallFinish = "panelled"
	WallFinishPlastered WallFinish = "plastered"
)

// FloorType identifies the floor covering fitted over the structural floor.
type FloorType string

const (
	FloorTypeNone     FloorType = "none"
	FloorTypeLaminate FloorType = "laminate"
	FloorTypeWooden   FloorType = "wooden"
	FloorTypeVinyl    FloorType = "vinyl"
)

// GlazingItem is one glazed opening (window, external door or skylight),
// dimensions in meters.
type GlazingItem struct {
	WidthM  float64 `json:"width_m"`
	HeightM float64 `json:"height_m"`
}

// Glazing groups the three glazed-opening categories of a configuration.
type Glazing struct {
	Windows       []GlazingItem `json:"windows"`
	ExternalDoors []GlazingItem `json:"external_doors"`
	Skylights     []GlazingItem `json:"skylights"`
}

// ExtraItem is a free-form extra line priced as-is. Always an explicit
// {title, cost} pair, never an untyped payload.
type ExtraItem struct {
	Title string  `json:"title"`
	Cost  float64 `json:"cost"`
}

// Upgrades are the named optional extras the customer can toggle on.
// Painted finish and gutters are fixed charges; decking is priced per m².
type Upgrades struct {
	PaintedFinish  bool    `json:"painted_finish"`
	Gutters        bool    `json:"gutters"`
	DeckingAreaSqm float64 `json:"decking_area_sqm"`
}

// BuildingConfiguration is the customer-selected specification of a
// prefabricated garden room. It is the sole input of the price estimator;
// a configuration is always validated before it is priced.
type BuildingConfiguration struct {
	WidthM  float64 `json:"width_m"`
	DepthM  float64 `json:"depth_m"`
	HeightM float64 `json:"height_m"`

	CladdingAreaSqm float64 `json:"cladding_area_sqm"`

	HalfBathrooms         int `json:"half_bathrooms"`
	ThreeQuarterBathrooms int `json:"three_quarter_bathrooms"`

	Switches int `json:"switches"`
	Sockets  int `json:"sockets"`
	Heaters  int `json:"heaters"`

	InternalDoors     int        `json:"internal_doors"`
	WallFinish        WallFinish `json:"wall_finish"`
	WallFinishAreaSqm float64    `json:"wall_finish_area_sqm"`

	FloorType    FloorType `json:"floor_type"`
	FloorAreaSqm float64   `json:"floor_area_sqm"`

	Glazing Glazing `json:"glazing"`

	DeliveryDistanceKm float64 `json:"delivery_distance_km"`

	Upgrades Upgrades    `json:"upgrades"`
	Extras   []ExtraItem `json:"extras"`

	Note string `json:"note,omitempty"`
}

// FootprintAreaSqm is the structural floor area used by the base charge.
func (c BuildingConfiguration) FootprintAreaSqm() float64 {
	return c.WidthM * c.DepthM
}
