package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/libinalum/WH-LayoutDesigner/internal/model"
)

// ErrRackNotFound is returned when an operation references a rack id
// that does not exist in the layout.
var ErrRackNotFound = errors.New("rack not found")

// ErrAisleNotFound is returned when an optimization result references
// an aisle id that does not exist in the layout.
var ErrAisleNotFound = errors.New("aisle not found")

// Engine orchestrates the optimization pipeline and is the sole
// mutator of a layout during a run. Stages execute in a fixed order:
// rack placement, aisle widths, elevations per rack, slotting, metrics.
// Each stage applies its result to the layout before the next stage
// reads it.
type Engine struct {
	placement RackPlacementGenerator
	aisle     AisleWidthOptimizer
	elevation ElevationProfileOptimizer
	slotting  SlottingOptimizer
}

func New() *Engine {
	return &Engine{}
}

// OptimizeLayout builds a layout for the facility and runs every
// enabled pipeline stage, returning the layout with metrics computed.
func (e *Engine) OptimizeLayout(facility model.Facility, products []model.Product, eq model.Equipment, opts model.EngineOptions) (*model.Layout, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	layout := model.NewLayout(facility)

	if opts.PlaceRacks {
		e.placement.Generate(layout, facility, eq)
	}

	if opts.OptimizeAisles {
		widths, err := e.aisle.Optimize(layout, eq, opts.AisleOptions(eq), opts.SolveTimeLimit)
		if err != nil {
			return nil, err
		}
		if err := applyAisleWidths(layout, widths); err != nil {
			return nil, err
		}
	}

	if opts.OptimizeElevations {
		for i := range layout.Racks {
			elevations, err := e.elevation.Optimize(layout.Racks[i], products, eq, opts.Elevation, opts.SolveTimeLimit)
			if err != nil {
				return nil, err
			}
			applyElevations(&layout.Racks[i], elevations)
		}
	}

	if opts.OptimizeSlotting {
		assignments, err := e.slotting.Optimize(layout, products, opts.SlottingOptions(), opts.SolveTimeLimit)
		if err != nil {
			return nil, err
		}
		layout.Assignments = assignments
	}

	layout.Metrics = LayoutMetrics(layout)
	return layout, nil
}

// AisleWidthResult is the outcome of a standalone aisle width
// optimization applied to an existing layout.
type AisleWidthResult struct {
	LayoutID string        `json:"layout_id"`
	Aisles   []AisleWidth  `json:"optimized_aisles"`
	Metrics  model.Metrics `json:"metrics"`
}

// OptimizeAisleWidths optimizes and applies aisle widths on an
// existing layout, then recomputes layout metrics.
func (e *Engine) OptimizeAisleWidths(layout *model.Layout, eq model.Equipment, opts model.AisleOptions, timeLimit time.Duration) (*AisleWidthResult, error) {
	widths, err := e.aisle.Optimize(layout, eq, opts, timeLimit)
	if err != nil {
		return nil, err
	}
	if err := applyAisleWidths(layout, widths); err != nil {
		return nil, err
	}
	layout.Metrics = LayoutMetrics(layout)
	return &AisleWidthResult{
		LayoutID: layout.ID,
		Aisles:   widths,
		Metrics:  layout.Metrics,
	}, nil
}

// RackElevationResult is the outcome of profiling a single rack.
type RackElevationResult struct {
	RackID         string        `json:"rack_id"`
	BeamElevations []float64     `json:"beam_elevations"`
	Metrics        model.Metrics `json:"metrics"`
}

// OptimizeRackElevations optimizes beam elevations for one rack in the
// layout. An unknown rack id is a configuration error and surfaces to
// the caller.
func (e *Engine) OptimizeRackElevations(layout *model.Layout, rackID string, products []model.Product, eq model.Equipment, opts model.ElevationOptions, timeLimit time.Duration) (*RackElevationResult, error) {
	rack := layout.FindRack(rackID)
	if rack == nil {
		return nil, fmt.Errorf("%w: %s", ErrRackNotFound, rackID)
	}

	elevations, err := e.elevation.Optimize(*rack, products, eq, opts, timeLimit)
	if err != nil {
		return nil, err
	}
	applyElevations(rack, elevations)

	return &RackElevationResult{
		RackID:         rackID,
		BeamElevations: elevations,
		Metrics:        RackMetrics(*rack, products),
	}, nil
}

// SlottingResult is the outcome of a standalone slotting optimization.
type SlottingResult struct {
	LayoutID    string                    `json:"layout_id"`
	Assignments []model.ProductAssignment `json:"assignments"`
	Unassigned  []string                  `json:"unassigned,omitempty"`
	Metrics     model.Metrics             `json:"metrics"`
}

// OptimizeSlotting optimizes product slotting for an existing layout,
// applies the assignments, and reports products left unassigned.
func (e *Engine) OptimizeSlotting(layout *model.Layout, products []model.Product, opts model.SlottingOptions, timeLimit time.Duration) (*SlottingResult, error) {
	assignments, err := e.slotting.Optimize(layout, products, opts, timeLimit)
	if err != nil {
		return nil, err
	}
	layout.Assignments = assignments

	assigned := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		assigned[a.ProductID] = true
	}
	var unassigned []string
	for _, p := range products {
		if !assigned[p.ID] {
			unassigned = append(unassigned, p.ID)
		}
	}

	return &SlottingResult{
		LayoutID:    layout.ID,
		Assignments: assignments,
		Unassigned:  unassigned,
		Metrics:     SlottingMetrics(assignments, products),
	}, nil
}

// EvaluateLayout computes metrics for a layout without modifying it.
// Slotting metrics are included when products are provided, using the
// layout's current assignments.
func (e *Engine) EvaluateLayout(layout *model.Layout, products []model.Product) model.Metrics {
	metrics := LayoutMetrics(layout)
	if len(products) > 0 {
		for k, v := range SlottingMetrics(layout.Assignments, products) {
			metrics[k] = v
		}
	}
	return metrics
}

// applyAisleWidths writes optimized widths back onto the layout.
func applyAisleWidths(layout *model.Layout, widths []AisleWidth) error {
	for _, w := range widths {
		aisle := layout.FindAisle(w.ID)
		if aisle == nil {
			return fmt.Errorf("%w: %s", ErrAisleNotFound, w.ID)
		}
		aisle.Width = w.Width
	}
	return nil
}

// applyElevations writes an elevation profile onto a rack. An empty
// profile (no products) leaves the rack unchanged.
func applyElevations(rack *model.Rack, elevations []float64) {
	if len(elevations) == 0 {
		return
	}
	rack.Config.BeamElevations = elevations
	rack.Config.BeamLevels = len(elevations) - 1
}
