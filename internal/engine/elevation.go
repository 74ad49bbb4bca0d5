package engine

import (
	"time"

	"github.com/libinalum/WH-LayoutDesigner/internal/model"
	"github.com/libinalum/WH-LayoutDesigner/internal/solver"
)

// Unit conversions for the elevation solver's integer millimeter domain.
const (
	mmPerFoot = 304.8
	mmPerInch = 25.4
)

// ElevationProfileOptimizer assigns ascending beam elevations within a
// rack to maximize usable storage levels under the equipment reach
// ceiling. The spacing rule uses the single tallest product across the
// provided set.
type ElevationProfileOptimizer struct{}

// Optimize returns the beam elevation profile for a rack in feet:
// floor-anchored at 0, strictly increasing, with every consecutive gap
// at least the tallest product height plus clearance. An empty product
// set yields an empty profile.
func (o *ElevationProfileOptimizer) Optimize(rack model.Rack, products []model.Product, eq model.Equipment, opts model.ElevationOptions, timeLimit time.Duration) ([]float64, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return []float64{}, nil
	}

	maxProductHeight := model.MaxHeight(products) // in

	elevations, status := o.solveExact(maxProductHeight, eq.ReachHeight, opts, solver.NewBudget(timeLimit))
	if status == solver.StatusSolved {
		return elevations, nil
	}
	return o.solveHeuristic(maxProductHeight, eq.ReachHeight, opts), nil
}

// solveExact works in integer millimeters. The gap constraints bind on
// every level, so every feasible profile carries the full level count
// and the tightest packing is an optimal solution; it is constructed
// directly and validated against the reach ceiling.
func (o *ElevationProfileOptimizer) solveExact(maxProductHeight, reachHeight float64, opts model.ElevationOptions, budget solver.Budget) (result []float64, status solver.Status) {
	defer func() {
		if r := recover(); r != nil {
			result, status = nil, solver.StatusFault
		}
	}()
	if budget.Expired() {
		return nil, solver.StatusInfeasible
	}

	maxHeightMM := int(reachHeight * mmPerFoot)
	clearanceMM := int(opts.MinClearance * mmPerInch)
	spacingMM := int(opts.MinBeamSpacing * mmPerInch)
	productMM := int(maxProductHeight * mmPerInch)

	gapMM := productMM + clearanceMM
	if gapMM < 1 {
		gapMM = 1 // strict ascent needs at least one millimeter
	}

	firstMM := gapMM
	if firstMM < spacingMM {
		firstMM = spacingMM
	}

	elevationsMM := make([]int, opts.MaxLevels+1)
	for i := 1; i <= opts.MaxLevels; i++ {
		elevationsMM[i] = firstMM + (i-1)*gapMM
	}
	if elevationsMM[opts.MaxLevels] > maxHeightMM {
		return nil, solver.StatusInfeasible
	}

	result = make([]float64, len(elevationsMM))
	for i, mm := range elevationsMM {
		result[i] = float64(mm) / mmPerFoot
	}
	return result, solver.StatusSolved
}

// solveHeuristic computes a uniform level height from the tallest
// product plus clearance, floored by the minimum beam spacing, and
// stacks as many levels as fit under the reach ceiling. All arithmetic
// is in inches; results convert to feet.
func (o *ElevationProfileOptimizer) solveHeuristic(maxProductHeight, reachHeight float64, opts model.ElevationOptions) []float64 {
	levelHeight := maxProductHeight + opts.MinClearance
	if levelHeight < opts.MinBeamSpacing {
		levelHeight = opts.MinBeamSpacing
	}

	reachIn := reachHeight * inchesPerFoot
	numLevels := opts.MaxLevels
	if fit := int(reachIn / levelHeight); fit < numLevels {
		numLevels = fit
	}

	elevations := make([]float64, numLevels+1)
	for i := 1; i <= numLevels; i++ {
		elevations[i] = float64(i) * levelHeight / inchesPerFoot
	}
	return elevations
}
