package model

import "github.com/google/uuid"

// Equipment represents a material handling equipment model with its
// operational limits. Equipment defines the feasibility ceilings and
// floors for aisle width and beam elevation optimization and is
// immutable for the duration of an optimization run.
type Equipment struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	ReachHeight   float64 `json:"reach_height"`    // Maximum lift height, ft
	MinAisleWidth float64 `json:"min_aisle_width"` // ft
	MaxAisleWidth float64 `json:"max_aisle_width"` // ft
	TurningRadius float64 `json:"turning_radius"`  // ft
	LiftCapacity  float64 `json:"lift_capacity"`   // lbs
}

func NewEquipment(name string, reachHeight, minAisle, maxAisle float64) Equipment {
	return Equipment{
		ID:            uuid.New().String()[:8],
		Name:          name,
		ReachHeight:   reachHeight,
		MinAisleWidth: minAisle,
		MaxAisleWidth: maxAisle,
	}
}

// CanReach reports whether the equipment can service a beam at the given
// height in feet.
func (e Equipment) CanReach(height float64) bool {
	return height <= e.ReachHeight
}

// CanLift reports whether the equipment can lift the given weight in lbs.
func (e Equipment) CanLift(weight float64) bool {
	return weight <= e.LiftCapacity
}

// AisleWidthRange returns the supported aisle width range in feet.
func (e Equipment) AisleWidthRange() (min, max float64) {
	return e.MinAisleWidth, e.MaxAisleWidth
}
