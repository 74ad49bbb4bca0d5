package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/libinalum/WH-LayoutDesigner/internal/model"
	"github.com/libinalum/WH-LayoutDesigner/internal/solver"
)

// throughputCeiling normalizes monthly throughput into [0,1].
const throughputCeiling = 1000.0

// SlottingOptimizer assigns products to storage locations maximizing a
// velocity/accessibility/throughput score subject to one-product-per-
// location capacity and physical fit constraints.
type SlottingOptimizer struct{}

// Optimize returns product-to-location assignments for the layout. The
// exact phase requires every product to receive a location, so it
// reports infeasible when products outnumber feasible locations; the
// greedy heuristic then assigns what it can and leaves the rest
// unassigned. Empty product or location sets yield an empty result.
func (o *SlottingOptimizer) Optimize(layout *model.Layout, products []model.Product, opts model.SlottingOptions, timeLimit time.Duration) ([]model.ProductAssignment, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	locations := EnumerateLocations(layout)
	if len(locations) == 0 || len(products) == 0 {
		return []model.ProductAssignment{}, nil
	}

	assignments, status := o.solveExact(products, locations, opts, solver.NewBudget(timeLimit))
	if status == solver.StatusSolved {
		return assignments, nil
	}
	return o.solveHeuristic(products, locations, opts), nil
}

// solveExact formulates the bipartite assignment and solves it to
// optimality under the budget.
func (o *SlottingOptimizer) solveExact(products []model.Product, locations []model.Location, opts model.SlottingOptions, budget solver.Budget) (result []model.ProductAssignment, status solver.Status) {
	defer func() {
		if r := recover(); r != nil {
			result, status = nil, solver.StatusFault
		}
	}()

	problem := solver.AssignmentProblem{
		Agents: len(products),
		Tasks:  len(locations),
		Score: func(p, l int) float64 {
			return pairScore(products[p], locations[l], opts)
		},
		Allowed: func(p, l int) bool {
			return feasiblePair(products[p], locations[l], opts)
		},
	}

	assignment, status := solver.SolveAssignment(problem, budget)
	if status != solver.StatusSolved {
		return nil, status
	}

	result = make([]model.ProductAssignment, 0, len(products))
	for p, l := range assignment {
		result = append(result, model.ProductAssignment{
			ProductID:  products[p].ID,
			LocationID: locations[l].ID,
			Quantity:   1,
		})
	}
	return result, solver.StatusSolved
}

// solveHeuristic greedily assigns products in descending velocity order
// to the most accessible compatible locations. Products with no
// compatible free location remain unassigned.
func (o *SlottingOptimizer) solveHeuristic(products []model.Product, locations []model.Location, opts model.SlottingOptions) []model.ProductAssignment {
	sortedProducts := append([]model.Product(nil), products...)
	sort.SliceStable(sortedProducts, func(i, j int) bool {
		return sortedProducts[i].VelocityClass.Rank() > sortedProducts[j].VelocityClass.Rank()
	})

	sortedLocations := append([]model.Location(nil), locations...)
	sort.SliceStable(sortedLocations, func(i, j int) bool {
		return sortedLocations[i].Accessibility > sortedLocations[j].Accessibility
	})

	assignments := make([]model.ProductAssignment, 0, len(sortedProducts))
	taken := make(map[string]bool, len(sortedLocations))

	for _, product := range sortedProducts {
		for _, loc := range sortedLocations {
			if taken[loc.ID] {
				continue
			}
			if !feasiblePair(product, loc, opts) {
				continue
			}
			assignments = append(assignments, model.ProductAssignment{
				ProductID:  product.ID,
				LocationID: loc.ID,
				Quantity:   1,
			})
			taken[loc.ID] = true
			break
		}
	}
	return assignments
}

// feasiblePair applies the enabled pruning rules to a product-location
// pair.
func feasiblePair(p model.Product, loc model.Location, opts model.SlottingOptions) bool {
	if opts.RespectDimensions && !loc.Fits(p) {
		return false
	}
	if opts.RespectWeightLimits && !loc.WithinWeightLimit(p) {
		return false
	}
	return true
}

// pairScore blends the velocity, accessibility, and optional throughput
// scores for a product-location pair.
func pairScore(p model.Product, loc model.Location, opts model.SlottingOptions) float64 {
	score := opts.VelocityWeight*velocityScore(p, loc) +
		opts.AccessibilityWeight*loc.Accessibility
	if opts.OptimizeForThroughput {
		score += 0.2 * throughputScore(p, loc)
	}
	return score
}

// velocityScore is a step function of the product's velocity class
// blended with the location accessibility: fast movers are rewarded
// most for accessible slots.
func velocityScore(p model.Product, loc model.Location) float64 {
	a := loc.Accessibility
	switch p.VelocityClass {
	case model.VelocityA:
		return 0.8 + 0.2*a
	case model.VelocityB:
		return 0.5 + 0.3*a
	default:
		return 0.2 + 0.2*a
	}
}

// throughputScore normalizes monthly throughput against a fixed ceiling
// and scales it by location accessibility.
func throughputScore(p model.Product, loc model.Location) float64 {
	normalized := float64(p.MonthlyThroughput) / throughputCeiling
	if normalized > 1 {
		normalized = 1
	}
	return normalized * loc.Accessibility
}

// EnumerateLocations derives every storage location in the layout, one
// per (rack, bay, level) triple, with elevations from the rack's beam
// profile and an accessibility score from rack type, level, and bay
// position.
func EnumerateLocations(layout *model.Layout) []model.Location {
	var locations []model.Location
	for _, rack := range layout.Racks {
		levels := rack.Config.Levels()
		for bay := 0; bay < rack.Bays; bay++ {
			for level := 0; level < levels; level++ {
				loc := model.Location{
					ID:            fmt.Sprintf("loc-%s-%d-%d", rack.ID, bay, level),
					RackID:        rack.ID,
					Bay:           bay,
					Level:         level,
					RackType:      rack.Type,
					Elevation:     levelElevation(rack, level),
					Dimensions:    locationDimensions(rack, level),
					WeightLimit:   model.DefaultWeightLimit,
					Accessibility: locationAccessibility(rack, bay, level),
				}
				locations = append(locations, loc)
			}
		}
	}
	return locations
}

// levelElevation returns the beam elevation in feet for a level,
// defaulting to 6 ft per level for unprofiled racks.
func levelElevation(rack model.Rack, level int) float64 {
	if level < len(rack.Config.BeamElevations) {
		return rack.Config.BeamElevations[level]
	}
	return float64(level) * 6
}

// locationDimensions returns the pallet opening for a level in inches.
// The opening height is the gap to the next beam when the rack carries
// an elevation profile.
func locationDimensions(rack model.Rack, level int) model.Dimensions {
	d := model.Dimensions{
		Length: model.DefaultLocationLength,
		Width:  model.DefaultLocationWidth,
		Height: model.DefaultLocationHeight,
	}
	elev := rack.Config.BeamElevations
	if level+1 < len(elev) {
		d.Height = (elev[level+1] - elev[level]) * inchesPerFoot
	}
	return d
}

// locationAccessibility scores a slot in [0,1]: selective racks and
// floor levels score highest, middle bays slightly lower.
func locationAccessibility(rack model.Rack, bay, level int) float64 {
	var base float64
	switch rack.Type {
	case model.RackSelective:
		base = 0.9
	case model.RackDriveIn, model.RackPushBack:
		base = 0.7
	case model.RackPalletFlow:
		base = 0.8
	default:
		base = 0.75
	}

	const maxLevel = 5.0
	levelFactor := 1.0 - (float64(level)/maxLevel)*0.8

	denom := rack.Bays - 1
	if denom < 1 {
		denom = 1
	}
	pos := float64(bay) / float64(denom)
	diff := pos - 0.5
	if diff < 0 {
		diff = -diff
	}
	bayFactor := 1.0 - 0.2*(1.0-2.0*diff)

	return base * levelFactor * bayFactor
}
