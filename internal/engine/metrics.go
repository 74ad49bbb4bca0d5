package engine

import (
	"math"

	"github.com/libinalum/WH-LayoutDesigner/internal/model"
)

// The metric formulas are closed-form placeholders keyed off rack type
// multipliers and layout cardinalities, not physically derived
// engineering calculations. They are deterministic: evaluating an
// unmodified layout twice yields identical values.

// LayoutMetrics computes the layout-level performance metrics.
func LayoutMetrics(layout *model.Layout) model.Metrics {
	var palletPositions float64
	for _, rack := range layout.Racks {
		palletPositions += rack.Capacity()
	}

	numRacks := float64(len(layout.Racks))
	numAisles := float64(len(layout.Aisles))

	return model.Metrics{
		"pallet_positions":    palletPositions,
		"storage_density":     math.Min(0.95, 0.5+numRacks*0.05),
		"space_utilization":   math.Min(0.9, 0.4+numRacks*0.04),
		"travel_distance":     math.Max(20, 100-numAisles*5),
		"accessibility_score": math.Min(0.95, 0.6+numAisles*0.03),
		"throughput_capacity": math.Min(200, 50+palletPositions/10),
	}
}

// RackMetrics computes per-rack metrics after elevation profiling.
func RackMetrics(rack model.Rack, products []model.Product) model.Metrics {
	verticalUtilization := 0.8
	if elev := rack.Config.BeamElevations; len(elev) > 1 && rack.Height > 0 {
		topBeam := elev[len(elev)-1]
		verticalUtilization = math.Min(0.95, topBeam/rack.Height)
	}

	return model.Metrics{
		"pallet_positions":     rack.Capacity(),
		"storage_efficiency":   0.85,
		"vertical_utilization": verticalUtilization,
	}
}

// SlottingMetrics computes assignment quality metrics from the slotted
// fraction of the product set.
func SlottingMetrics(assignments []model.ProductAssignment, products []model.Product) model.Metrics {
	var slotted float64
	if len(products) > 0 {
		slotted = float64(len(assignments)) / (float64(len(products)) * 2)
	}
	slottingEfficiency := math.Min(0.95, 0.7+slotted)
	travelEfficiency := math.Min(0.9, 0.6+slottingEfficiency*0.3)

	return model.Metrics{
		"slotting_efficiency": slottingEfficiency,
		"travel_efficiency":   travelEfficiency,
		"pick_rate":           60 + travelEfficiency*40, // picks per hour
	}
}
