package engine

import (
	"testing"
	"time"

	"github.com/libinalum/WH-LayoutDesigner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aisleTestOptions() model.AisleOptions {
	return model.AisleOptions{
		MinWidth:                 12,
		MaxWidth:                 14,
		Increment:                0.5,
		OptimizeForDensity:       true,
		OptimizeForAccessibility: true,
	}
}

func layoutWithAisle(t model.AisleType) *model.Layout {
	layout := &model.Layout{ID: "l1"}
	layout.AddAisle(model.Aisle{
		ID:   "a1",
		Type: t,
		Path: model.LineString{{X: 0, Y: 0}, {X: 0, Y: 50}},
	})
	return layout
}

func TestAisleOptimize_MainAisleExact(t *testing.T) {
	opt := &AisleWidthOptimizer{}
	layout := layoutWithAisle(model.AisleMain)

	widths, err := opt.Optimize(layout, model.Equipment{}, aisleTestOptions(), time.Second)
	require.NoError(t, err)
	require.Len(t, widths, 1)

	// Density pressure pushes to the main-aisle floor: 12 ft + 12 in.
	assert.Equal(t, "a1", widths[0].ID)
	assert.Equal(t, 13.0, widths[0].Width)
}

func TestAisleOptimize_StagingFloor(t *testing.T) {
	opt := &AisleWidthOptimizer{}
	layout := layoutWithAisle(model.AisleStaging)

	widths, err := opt.Optimize(layout, model.Equipment{}, aisleTestOptions(), time.Second)
	require.NoError(t, err)
	require.Len(t, widths, 1)

	// Staging aisles require 24 in over the domain floor.
	assert.Equal(t, 14.0, widths[0].Width)
}

func TestAisleOptimize_CrossAisleSitsOnFloor(t *testing.T) {
	opt := &AisleWidthOptimizer{}
	layout := layoutWithAisle(model.AisleCross)

	widths, err := opt.Optimize(layout, model.Equipment{}, aisleTestOptions(), time.Second)
	require.NoError(t, err)
	require.Len(t, widths, 1)

	assert.Equal(t, 12.0, widths[0].Width)
}

func TestAisleOptimize_AdjacentRackRaisesFloor(t *testing.T) {
	opt := &AisleWidthOptimizer{}
	layout := layoutWithAisle(model.AisleCross)
	// Drive-in rack right next to the path raises the floor by 12 in.
	layout.AddRack(model.Rack{
		ID:   "r1",
		Type: model.RackDriveIn,
		Footprint: model.Polygon{
			{X: 2, Y: 10}, {X: 6, Y: 10}, {X: 6, Y: 34}, {X: 2, Y: 34},
		},
	})

	widths, err := opt.Optimize(layout, model.Equipment{}, aisleTestOptions(), time.Second)
	require.NoError(t, err)
	require.Len(t, widths, 1)

	assert.Equal(t, 13.0, widths[0].Width)
}

func TestAisleOptimize_FarRackDoesNotRaiseFloor(t *testing.T) {
	opt := &AisleWidthOptimizer{}
	layout := layoutWithAisle(model.AisleCross)
	// Same rack far away from the path has no effect.
	layout.AddRack(model.Rack{
		ID:   "r1",
		Type: model.RackDriveIn,
		Footprint: model.Polygon{
			{X: 100, Y: 10}, {X: 104, Y: 10}, {X: 104, Y: 34}, {X: 100, Y: 34},
		},
	})

	widths, err := opt.Optimize(layout, model.Equipment{}, aisleTestOptions(), time.Second)
	require.NoError(t, err)
	require.Len(t, widths, 1)

	assert.Equal(t, 12.0, widths[0].Width)
}

func TestAisleOptimize_InfeasibleFallsBackToHeuristic(t *testing.T) {
	opt := &AisleWidthOptimizer{}
	layout := layoutWithAisle(model.AisleMain)

	// Max below the main-aisle floor: exact phase is infeasible, the
	// heuristic still produces a clamped width.
	opts := aisleTestOptions()
	opts.MaxWidth = 12.5

	widths, err := opt.Optimize(layout, model.Equipment{}, opts, time.Second)
	require.NoError(t, err)
	require.Len(t, widths, 1)

	assert.Equal(t, 12.5, widths[0].Width)
}

func TestAisleHeuristic_MainAisle(t *testing.T) {
	opt := &AisleWidthOptimizer{}
	layout := layoutWithAisle(model.AisleMain)

	widths := opt.solveHeuristic(layout, aisleTestOptions())
	require.Len(t, widths, 1)

	// Base 12+2 minus the density preference, on the 0.5 grid.
	assert.Equal(t, 13.5, widths[0].Width)
}

func TestAisleHeuristic_AccessibilityPreference(t *testing.T) {
	opt := &AisleWidthOptimizer{}
	layout := layoutWithAisle(model.AisleMain)

	opts := aisleTestOptions()
	opts.OptimizeForDensity = false

	widths := opt.solveHeuristic(layout, opts)
	require.Len(t, widths, 1)

	// Base 14 widened by 1 ft, clamped to the 14 ft maximum.
	assert.Equal(t, 14.0, widths[0].Width)
}

func TestAisleOptimize_Deterministic(t *testing.T) {
	opt := &AisleWidthOptimizer{}
	layout := layoutWithAisle(model.AisleMain)
	layout.AddAisle(model.Aisle{
		ID:   "a2",
		Type: model.AisleStaging,
		Path: model.LineString{{X: 30, Y: 0}, {X: 30, Y: 50}},
	})

	first, err := opt.Optimize(layout, model.Equipment{}, aisleTestOptions(), time.Second)
	require.NoError(t, err)
	second, err := opt.Optimize(layout, model.Equipment{}, aisleTestOptions(), time.Second)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAisleOptimize_EmptyLayout(t *testing.T) {
	opt := &AisleWidthOptimizer{}
	layout := &model.Layout{ID: "l1"}

	widths, err := opt.Optimize(layout, model.Equipment{}, aisleTestOptions(), time.Second)
	require.NoError(t, err)
	assert.Empty(t, widths)
}

func TestAisleOptimize_InvalidOptions(t *testing.T) {
	opt := &AisleWidthOptimizer{}
	layout := layoutWithAisle(model.AisleMain)

	opts := aisleTestOptions()
	opts.Increment = 0

	_, err := opt.Optimize(layout, model.Equipment{}, opts, time.Second)
	assert.Error(t, err)
}

func TestAisleOptimize_WidthsWithinDomain(t *testing.T) {
	opt := &AisleWidthOptimizer{}
	layout := &model.Layout{ID: "l1"}
	for i, at := range []model.AisleType{model.AisleMain, model.AisleCross, model.AisleStaging, model.AisleStandard} {
		layout.AddAisle(model.Aisle{
			ID:   string(at),
			Type: at,
			Path: model.LineString{{X: float64(i * 30), Y: 0}, {X: float64(i * 30), Y: 50}},
		})
	}

	opts := aisleTestOptions()
	widths, err := opt.Optimize(layout, model.Equipment{}, opts, time.Second)
	require.NoError(t, err)
	require.Len(t, widths, 4)

	for _, w := range widths {
		assert.GreaterOrEqual(t, w.Width, opts.MinWidth)
		assert.LessOrEqual(t, w.Width, opts.MaxWidth)
	}
}
