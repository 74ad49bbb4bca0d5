package model

import "github.com/google/uuid"

// RackType identifies the storage rack construction, which determines
// pallet depth multipliers and accessibility characteristics.
type RackType string

const (
	RackSelective  RackType = "selective"
	RackDriveIn    RackType = "drive-in"
	RackPushBack   RackType = "push-back"
	RackPalletFlow RackType = "pallet-flow"
	RackMobile     RackType = "mobile"
)

// DepthMultiplier returns how many pallet positions a single bay x level
// slot of this rack type provides.
func (t RackType) DepthMultiplier() float64 {
	switch t {
	case RackDriveIn:
		return 4
	case RackPushBack:
		return 3
	case RackPalletFlow:
		return 6
	case RackMobile:
		return 1.5
	default: // selective and unknown types store one pallet deep
		return 1
	}
}

// DefaultBeamLevels is the level count assumed for racks whose elevation
// profile has not been optimized yet.
const DefaultBeamLevels = 3

// RackConfig holds the derived vertical configuration of a rack. Both
// fields are produced by the elevation profile optimizer; zero values
// mean the rack has not been profiled yet.
type RackConfig struct {
	BeamElevations []float64 `json:"beam_elevations,omitempty"` // ft, ascending, first is 0
	BeamLevels     int       `json:"beam_levels,omitempty"`     // len(BeamElevations) - 1
}

// Levels returns the usable level count, falling back to
// DefaultBeamLevels for unprofiled racks.
func (c RackConfig) Levels() int {
	if c.BeamLevels > 0 {
		return c.BeamLevels
	}
	return DefaultBeamLevels
}

// Rack represents a storage rack placed within a layout.
type Rack struct {
	ID       string   `json:"id"`
	LayoutID string   `json:"layout_id"`
	Type     RackType `json:"type"`

	Footprint   Polygon `json:"footprint"`
	Orientation float64 `json:"orientation"` // radians
	Height      float64 `json:"height"`      // ft
	Length      float64 `json:"length"`      // ft
	Depth       float64 `json:"depth"`       // ft
	Bays        int     `json:"bays"`

	Config RackConfig `json:"config"`
}

// Capacity returns the storage capacity of the rack in pallet positions.
func (r Rack) Capacity() float64 {
	return float64(r.Bays*r.Config.Levels()) * r.Type.DepthMultiplier()
}

// AisleType is the functional classification of an aisle, which drives
// its minimum width policy.
type AisleType string

const (
	AisleMain     AisleType = "main"
	AisleCross    AisleType = "cross"
	AisleStaging  AisleType = "staging"
	AisleStandard AisleType = "standard"
)

// Aisle represents a travel pathway between racks.
type Aisle struct {
	ID       string     `json:"id"`
	LayoutID string     `json:"layout_id"`
	Type     AisleType  `json:"type"`
	Path     LineString `json:"path"`
	Width    float64    `json:"width"` // ft
}

// Length returns the aisle path length in feet, or a 50 ft default for
// aisles without a path.
func (a Aisle) Length() float64 {
	if len(a.Path) < 2 {
		return 50
	}
	return a.Path.Length()
}

// Metrics maps metric names to computed values.
type Metrics map[string]float64

// Layout represents a complete warehouse layout configuration. The
// optimization engine is the sole mutator of a layout during a pipeline
// run.
type Layout struct {
	ID          string `json:"id"`
	FacilityID  string `json:"facility_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"` // free-form: "draft", "in_progress", "completed", ...

	Racks       []Rack              `json:"racks"`
	Aisles      []Aisle             `json:"aisles"`
	Assignments []ProductAssignment `json:"assignments,omitempty"`
	Metrics     Metrics             `json:"metrics,omitempty"`
}

func NewLayout(facility Facility) *Layout {
	return &Layout{
		ID:          uuid.New().String()[:8],
		FacilityID:  facility.ID,
		Name:        "Layout " + facility.Name,
		Description: "Auto-generated layout",
		Status:      "draft",
	}
}

// AddRack appends a rack to the layout.
func (l *Layout) AddRack(r Rack) { l.Racks = append(l.Racks, r) }

// AddAisle appends an aisle to the layout.
func (l *Layout) AddAisle(a Aisle) { l.Aisles = append(l.Aisles, a) }

// FindRack returns a pointer to the rack with the given id, or nil.
func (l *Layout) FindRack(id string) *Rack {
	for i := range l.Racks {
		if l.Racks[i].ID == id {
			return &l.Racks[i]
		}
	}
	return nil
}

// FindAisle returns a pointer to the aisle with the given id, or nil.
func (l *Layout) FindAisle(id string) *Aisle {
	for i := range l.Aisles {
		if l.Aisles[i].ID == id {
			return &l.Aisles[i]
		}
	}
	return nil
}

// Dimensions holds a length/width/height triple in inches.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Default pallet opening used for storage locations, in inches. The
// opening height comes from the gap to the next beam when the rack has
// an elevation profile.
const (
	DefaultLocationLength = 48
	DefaultLocationWidth  = 40
	DefaultLocationHeight = 72
	DefaultWeightLimit    = 2000 // lbs
)

// Location represents one storage slot within a rack, derived from a
// (rack, bay, level) triple. Locations are enumerated on demand and not
// persisted independently.
type Location struct {
	ID       string   `json:"id"`
	RackID   string   `json:"rack_id"`
	Bay      int      `json:"bay"`
	Level    int      `json:"level"`
	RackType RackType `json:"rack_type"`

	Elevation     float64    `json:"elevation"` // ft above floor
	Dimensions    Dimensions `json:"dimensions"`
	WeightLimit   float64    `json:"weight_limit"`  // lbs
	Accessibility float64    `json:"accessibility"` // [0,1]
}

// Fits reports whether the product fits the location opening in either
// planar orientation.
func (loc Location) Fits(p Product) bool {
	d := loc.Dimensions
	if p.Height > d.Height {
		return false
	}
	normal := p.Length <= d.Length && p.Width <= d.Width
	rotated := p.Width <= d.Length && p.Length <= d.Width
	return normal || rotated
}

// WithinWeightLimit reports whether the product respects the location
// weight limit.
func (loc Location) WithinWeightLimit(p Product) bool {
	return p.Weight <= loc.WeightLimit
}

// ProductAssignment records the placement of a product at a storage
// location. At most one product occupies a location.
type ProductAssignment struct {
	ProductID  string `json:"product_id"`
	LocationID string `json:"location_id"`
	Quantity   int    `json:"quantity"`
}
