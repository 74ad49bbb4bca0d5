package model

import "github.com/google/uuid"

// Facility represents a warehouse building with its physical boundary
// and properties. Facilities are immutable inputs to layout generation.
type Facility struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ClearHeight float64 `json:"clear_height"` // ft
	Boundary    Polygon `json:"boundary"`

	Obstructions []Obstruction `json:"obstructions,omitempty"`
	Zones        []Zone        `json:"zones,omitempty"`
}

func NewFacility(name string, boundary Polygon, clearHeight float64) Facility {
	return Facility{
		ID:          uuid.New().String()[:8],
		Name:        name,
		ClearHeight: clearHeight,
		Boundary:    boundary,
	}
}

// Area returns the floor area enclosed by the facility boundary in sq ft.
func (f Facility) Area() float64 {
	return f.Boundary.Area()
}

// Obstruction represents a fixed physical obstacle inside a facility,
// such as a column, interior wall, or dock area.
type Obstruction struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"` // "column", "wall", "dock"
	Shape  Polygon `json:"shape"`
	Height float64 `json:"height"` // ft
}

// Zone represents a designated area within a facility with a specific
// purpose such as receiving, shipping, or storage.
type Zone struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Purpose  string  `json:"purpose"`
	Boundary Polygon `json:"boundary"`
}
