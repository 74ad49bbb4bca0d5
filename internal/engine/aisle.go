// Package engine implements the warehouse layout optimization pipeline:
// rack placement, aisle width optimization, beam elevation profiling,
// product slotting, and layout metrics.
//
// Each optimizer runs an exact discrete solve under a wall-clock budget
// and falls back to a deterministic heuristic when the exact phase
// reports infeasible or faults.
package engine

import (
	"math"
	"time"

	"github.com/libinalum/WH-LayoutDesigner/internal/model"
	"github.com/libinalum/WH-LayoutDesigner/internal/solver"
)

// inchesPerFoot converts aisle widths between the foot-denominated
// model and the integer inch domain of the exact solver.
const inchesPerFoot = 12

// aisleBufferWidth is the buffer in feet applied around an aisle path
// when testing rack adjacency.
const aisleBufferWidth = 10.0

// AisleWidth is one optimized aisle width in feet.
type AisleWidth struct {
	ID    string  `json:"id"`
	Width float64 `json:"width"`
}

// AisleWidthOptimizer assigns a width to every aisle in a layout,
// balancing storage density against accessibility subject to per-type
// and adjacent-rack minimums.
type AisleWidthOptimizer struct{}

// Optimize returns a width for every aisle in the layout. The exact
// phase enumerates the discretized width domain per aisle; if it
// reports infeasible or faults, the deterministic heuristic runs
// instead. A layout with no aisles yields an empty result.
func (o *AisleWidthOptimizer) Optimize(layout *model.Layout, eq model.Equipment, opts model.AisleOptions, timeLimit time.Duration) ([]AisleWidth, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(layout.Aisles) == 0 {
		return []AisleWidth{}, nil
	}

	widths, status := o.solveExact(layout, opts, solver.NewBudget(timeLimit))
	if status == solver.StatusSolved {
		return widths, nil
	}
	return o.solveHeuristic(layout, opts), nil
}

// typeFloorBonus is the extra width in inches required over the domain
// floor for each aisle type.
func typeFloorBonus(t model.AisleType) int {
	switch t {
	case model.AisleMain:
		return 12
	case model.AisleStaging:
		return 24
	default: // cross and standard aisles sit on the equipment floor
		return 0
	}
}

// accessibilityWeight is the objective weight favoring wider aisles,
// by aisle type.
func accessibilityWeight(t model.AisleType) float64 {
	switch t {
	case model.AisleMain:
		return 50
	case model.AisleStaging:
		return 30
	default:
		return 10
	}
}

// rackFloorBonus is the extra width in inches an adjacent rack of the
// given type demands.
func rackFloorBonus(t model.RackType) int {
	switch t {
	case model.RackDriveIn, model.RackPushBack:
		return 12
	case model.RackPalletFlow:
		return 6
	default:
		return 0
	}
}

// solveExact minimizes the width objective independently per aisle over
// the integer-inch domain. The objective is separable across aisles, so
// a per-aisle scan of the tick multiples is an exact solve of the joint
// problem.
func (o *AisleWidthOptimizer) solveExact(layout *model.Layout, opts model.AisleOptions, budget solver.Budget) (result []AisleWidth, status solver.Status) {
	defer func() {
		if r := recover(); r != nil {
			result, status = nil, solver.StatusFault
		}
	}()

	minIn := int(opts.MinWidth * inchesPerFoot)
	maxIn := int(opts.MaxWidth * inchesPerFoot)
	tick := int(opts.Increment * inchesPerFoot)
	if tick <= 0 {
		return nil, solver.StatusFault
	}

	result = make([]AisleWidth, 0, len(layout.Aisles))
	for _, aisle := range layout.Aisles {
		if budget.Expired() {
			return nil, solver.StatusInfeasible
		}

		floor := minIn + typeFloorBonus(aisle.Type)
		for _, rack := range adjacentRacks(layout, aisle) {
			if f := minIn + rackFloorBonus(rack.Type); f > floor {
				floor = f
			}
		}

		length := aisle.Length()
		bestIn := -1
		bestCost := math.Inf(1)
		// First tick multiple at or above the domain floor.
		start := ((minIn + tick - 1) / tick) * tick
		for w := start; w <= maxIn; w += tick {
			if w < floor {
				continue
			}
			var cost float64
			if opts.OptimizeForDensity {
				cost += length * 10 * float64(w)
			}
			if opts.OptimizeForAccessibility {
				cost -= accessibilityWeight(aisle.Type) * float64(maxIn-w)
			}
			if cost < bestCost {
				bestCost = cost
				bestIn = w
			}
		}
		if bestIn < 0 {
			return nil, solver.StatusInfeasible
		}
		result = append(result, AisleWidth{
			ID:    aisle.ID,
			Width: float64(bestIn) / inchesPerFoot,
		})
	}
	return result, solver.StatusSolved
}

// solveHeuristic assigns widths from per-type base values adjusted for
// adjacent rack types and the density/accessibility preference, rounded
// to the increment and clamped to the domain. It is deterministic and
// always produces a width per aisle.
func (o *AisleWidthOptimizer) solveHeuristic(layout *model.Layout, opts model.AisleOptions) []AisleWidth {
	result := make([]AisleWidth, 0, len(layout.Aisles))
	for _, aisle := range layout.Aisles {
		var base float64
		switch aisle.Type {
		case model.AisleMain:
			base = opts.MinWidth + 2.0
		case model.AisleStaging:
			base = opts.MinWidth + 3.0
		default: // cross and standard
			base = opts.MinWidth + 1.0
		}

		for _, rack := range adjacentRacks(layout, aisle) {
			switch rack.Type {
			case model.RackDriveIn, model.RackPushBack:
				base += 1.0
			case model.RackPalletFlow:
				base += 0.5
			}
		}

		if opts.OptimizeForDensity {
			base = math.Max(opts.MinWidth, base-0.5)
		} else {
			base = math.Min(opts.MaxWidth, base+1.0)
		}

		width := math.Round(base/opts.Increment) * opts.Increment
		width = math.Max(opts.MinWidth, math.Min(opts.MaxWidth, width))

		result = append(result, AisleWidth{ID: aisle.ID, Width: width})
	}
	return result
}

// adjacentRacks returns the racks whose footprint overlaps the aisle
// path buffered by a fixed width.
func adjacentRacks(layout *model.Layout, aisle model.Aisle) []model.Rack {
	if len(aisle.Path) == 0 {
		return nil
	}
	buffer := aisle.Path.Buffer(aisleBufferWidth)
	var adjacent []model.Rack
	for _, rack := range layout.Racks {
		if rack.Footprint.IntersectsBuffer(buffer) {
			adjacent = append(adjacent, rack)
		}
	}
	return adjacent
}
