package model

import "github.com/google/uuid"

// VelocityClass is the A/B/C tiering of a product by pick frequency.
// Class A is the highest frequency and drives placement near the most
// accessible locations.
type VelocityClass string

const (
	VelocityA VelocityClass = "A"
	VelocityB VelocityClass = "B"
	VelocityC VelocityClass = "C"
)

// Rank returns a sortable priority for the class: A > B > C.
func (v VelocityClass) Rank() int {
	switch v {
	case VelocityA:
		return 3
	case VelocityB:
		return 2
	default:
		return 1
	}
}

// Product represents a stock keeping unit with physical dimensions and
// handling characteristics. Products are immutable per optimization run.
type Product struct {
	ID   string `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`

	Length float64 `json:"length"` // in
	Width  float64 `json:"width"`  // in
	Height float64 `json:"height"` // in
	Weight float64 `json:"weight"` // lbs

	VelocityClass     VelocityClass `json:"velocity_class"`
	MonthlyThroughput int           `json:"monthly_throughput"` // units/month
}

func NewProduct(sku string, length, width, height, weight float64) Product {
	return Product{
		ID:            uuid.New().String()[:8],
		SKU:           sku,
		Name:          sku,
		Length:        length,
		Width:         width,
		Height:        height,
		Weight:        weight,
		VelocityClass: VelocityC,
	}
}

// Volume returns the product volume in cubic inches.
func (p Product) Volume() float64 {
	return p.Length * p.Width * p.Height
}

// Density returns weight per cubic inch, or 0 for degenerate dimensions.
func (p Product) Density() float64 {
	v := p.Volume()
	if v <= 0 {
		return 0
	}
	return p.Weight / v
}

// MaxHeight returns the tallest product height in the set, in inches.
func MaxHeight(products []Product) float64 {
	var max float64
	for _, p := range products {
		if p.Height > max {
			max = p.Height
		}
	}
	return max
}
