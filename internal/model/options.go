package model

import (
	"fmt"
	"time"
)

// AisleOptions configures the aisle width optimizer. Widths are in feet.
type AisleOptions struct {
	MinWidth                 float64 `json:"min_aisle_width"`
	MaxWidth                 float64 `json:"max_aisle_width"`
	Increment                float64 `json:"aisle_width_increment"`
	OptimizeForDensity       bool    `json:"optimize_for_density"`
	OptimizeForAccessibility bool    `json:"optimize_for_accessibility"`
}

// DefaultAisleOptions returns aisle options bounded by the equipment's
// supported width range with a 0.5 ft discretization increment.
func DefaultAisleOptions(eq Equipment) AisleOptions {
	return AisleOptions{
		MinWidth:                 eq.MinAisleWidth,
		MaxWidth:                 eq.MaxAisleWidth,
		Increment:                0.5,
		OptimizeForDensity:       true,
		OptimizeForAccessibility: true,
	}
}

func (o AisleOptions) Validate() error {
	if o.MinWidth <= 0 {
		return fmt.Errorf("min aisle width must be positive, got %.2f", o.MinWidth)
	}
	if o.MaxWidth < o.MinWidth {
		return fmt.Errorf("max aisle width %.2f below min %.2f", o.MaxWidth, o.MinWidth)
	}
	if o.Increment <= 0 {
		return fmt.Errorf("aisle width increment must be positive, got %.2f", o.Increment)
	}
	return nil
}

// ElevationOptions configures the elevation profile optimizer.
// Clearance and spacing are in inches.
type ElevationOptions struct {
	MinClearance   float64 `json:"min_clearance"`
	MinBeamSpacing float64 `json:"min_beam_spacing"`
	MaxLevels      int     `json:"max_levels"`
}

// DefaultElevationOptions returns 6 in clearance, 12 in beam spacing,
// and a cap of 4 levels above the floor.
func DefaultElevationOptions() ElevationOptions {
	return ElevationOptions{
		MinClearance:   6.0,
		MinBeamSpacing: 12.0,
		MaxLevels:      4,
	}
}

func (o ElevationOptions) Validate() error {
	if o.MinClearance < 0 {
		return fmt.Errorf("min clearance must not be negative, got %.2f", o.MinClearance)
	}
	if o.MinBeamSpacing <= 0 {
		return fmt.Errorf("min beam spacing must be positive, got %.2f", o.MinBeamSpacing)
	}
	if o.MaxLevels < 1 {
		return fmt.Errorf("max levels must be at least 1, got %d", o.MaxLevels)
	}
	return nil
}

// SlottingOptions configures the slotting optimizer score blend and
// feasibility pruning.
type SlottingOptions struct {
	VelocityWeight        float64 `json:"velocity_weighting"`
	AccessibilityWeight   float64 `json:"accessibility_weighting"`
	OptimizeForThroughput bool    `json:"optimize_for_throughput"`
	RespectDimensions     bool    `json:"respect_product_dimensions"`
	RespectWeightLimits   bool    `json:"respect_weight_limits"`
}

// DefaultSlottingOptions returns the 0.7/0.3 velocity/accessibility
// blend with dimensional and weight pruning enabled.
func DefaultSlottingOptions() SlottingOptions {
	return SlottingOptions{
		VelocityWeight:      0.7,
		AccessibilityWeight: 0.3,
		RespectDimensions:   true,
		RespectWeightLimits: true,
	}
}

func (o SlottingOptions) Validate() error {
	if o.VelocityWeight < 0 || o.AccessibilityWeight < 0 {
		return fmt.Errorf("score weights must not be negative, got %.2f/%.2f",
			o.VelocityWeight, o.AccessibilityWeight)
	}
	if o.VelocityWeight == 0 && o.AccessibilityWeight == 0 {
		return fmt.Errorf("at least one score weight must be positive")
	}
	return nil
}

// EngineOptions configures a full pipeline run: which stages execute,
// how scoring preferences translate into per-optimizer options, and the
// per-solve wall-clock budget.
type EngineOptions struct {
	PlaceRacks         bool `json:"optimize_rack_placement"`
	OptimizeAisles     bool `json:"optimize_aisle_widths"`
	OptimizeElevations bool `json:"optimize_elevations"`
	OptimizeSlotting   bool `json:"optimize_slotting"`

	StorageDensityWeight float64 `json:"storage_density_weight"`
	AccessibilityWeight  float64 `json:"accessibility_weight"`
	ThroughputWeight     float64 `json:"throughput_weight"`

	Elevation ElevationOptions `json:"elevation"`

	SolveTimeLimit time.Duration `json:"solve_time_limit"`
}

// DefaultEngineOptions enables every stage, weights density 0.6 over
// accessibility 0.4, and budgets 30 s per exact solve.
func DefaultEngineOptions() EngineOptions {
	return EngineOptions{
		PlaceRacks:           true,
		OptimizeAisles:       true,
		OptimizeElevations:   true,
		OptimizeSlotting:     true,
		StorageDensityWeight: 0.6,
		AccessibilityWeight:  0.4,
		ThroughputWeight:     0.0,
		Elevation:            DefaultElevationOptions(),
		SolveTimeLimit:       30 * time.Second,
	}
}

func (o EngineOptions) Validate() error {
	if o.StorageDensityWeight < 0 || o.AccessibilityWeight < 0 || o.ThroughputWeight < 0 {
		return fmt.Errorf("engine weights must not be negative")
	}
	if o.SolveTimeLimit < 0 {
		return fmt.Errorf("solve time limit must not be negative, got %s", o.SolveTimeLimit)
	}
	return o.Elevation.Validate()
}

// AisleOptions derives aisle optimizer options from the engine-level
// weighting preferences.
func (o EngineOptions) AisleOptions(eq Equipment) AisleOptions {
	opts := DefaultAisleOptions(eq)
	opts.OptimizeForDensity = o.StorageDensityWeight > 0.5
	opts.OptimizeForAccessibility = o.AccessibilityWeight > 0.3
	return opts
}

// SlottingOptions derives slotting optimizer options from the
// engine-level weighting preferences.
func (o EngineOptions) SlottingOptions() SlottingOptions {
	opts := DefaultSlottingOptions()
	opts.VelocityWeight = o.StorageDensityWeight
	opts.AccessibilityWeight = o.AccessibilityWeight
	opts.OptimizeForThroughput = o.ThroughputWeight > 0.2
	return opts
}
