package engine

import (
	"testing"
	"time"

	"github.com/libinalum/WH-LayoutDesigner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeLayout_FullPipeline(t *testing.T) {
	eng := New()
	facility := rectangularFacility(200, 100)
	eq := model.NewEquipment("Reach Truck", 20, 8, 12)
	products := []model.Product{
		velocityProduct("A-1", model.VelocityA),
		velocityProduct("B-1", model.VelocityB),
	}

	layout, err := eng.OptimizeLayout(facility, products, eq, model.DefaultEngineOptions())
	require.NoError(t, err)
	require.NotNil(t, layout)

	assert.Equal(t, facility.ID, layout.FacilityID)
	assert.Equal(t, "draft", layout.Status)
	assert.Len(t, layout.Racks, 32)
	assert.Len(t, layout.Aisles, 9)

	// Elevation profiling ran on every rack: five beams, four levels.
	for _, rack := range layout.Racks {
		require.Len(t, rack.Config.BeamElevations, 5)
		assert.Equal(t, 4, rack.Config.BeamLevels)
		assert.Equal(t, 0.0, rack.Config.BeamElevations[0])
	}

	// Density-weighted defaults drive main aisles to the 9 ft floor.
	for _, aisle := range layout.Aisles {
		switch aisle.Type {
		case model.AisleMain:
			assert.Equal(t, 9.0, aisle.Width)
		case model.AisleCross:
			assert.Equal(t, 8.0, aisle.Width)
		}
	}

	// Both products found a slot.
	assert.Len(t, layout.Assignments, 2)

	require.NotNil(t, layout.Metrics)
	assert.Equal(t, 384.0, layout.Metrics["pallet_positions"])
	for _, key := range []string{
		"storage_density", "space_utilization", "travel_distance",
		"accessibility_score", "throughput_capacity",
	} {
		assert.Contains(t, layout.Metrics, key)
	}
}

func TestOptimizeLayout_StagesDisabled(t *testing.T) {
	eng := New()
	facility := rectangularFacility(200, 100)
	eq := model.NewEquipment("Reach Truck", 20, 8, 12)

	opts := model.DefaultEngineOptions()
	opts.PlaceRacks = false
	opts.OptimizeAisles = false
	opts.OptimizeElevations = false
	opts.OptimizeSlotting = false

	layout, err := eng.OptimizeLayout(facility, nil, eq, opts)
	require.NoError(t, err)

	assert.Empty(t, layout.Racks)
	assert.Empty(t, layout.Aisles)
	assert.Empty(t, layout.Assignments)

	// Metrics still come out, reflecting the empty layout.
	assert.Equal(t, 0.0, layout.Metrics["pallet_positions"])
	assert.Equal(t, 0.5, layout.Metrics["storage_density"])
}

func TestOptimizeLayout_InvalidOptions(t *testing.T) {
	eng := New()
	opts := model.DefaultEngineOptions()
	opts.StorageDensityWeight = -1

	_, err := eng.OptimizeLayout(rectangularFacility(200, 100), nil, model.NewEquipment("Reach Truck", 20, 8, 12), opts)
	assert.Error(t, err)
}

func TestOptimizeAisleWidths_AppliesToLayout(t *testing.T) {
	eng := New()
	layout := &model.Layout{ID: "l1"}
	layout.AddAisle(model.Aisle{
		ID:   "a1",
		Type: model.AisleMain,
		Path: model.LineString{{X: 0, Y: 0}, {X: 0, Y: 50}},
	})
	eq := model.NewEquipment("Reach Truck", 20, 8, 12)

	result, err := eng.OptimizeAisleWidths(layout, eq, model.DefaultAisleOptions(eq), time.Second)
	require.NoError(t, err)

	require.Len(t, result.Aisles, 1)
	assert.Equal(t, "l1", result.LayoutID)
	assert.Equal(t, 9.0, result.Aisles[0].Width)
	assert.Equal(t, 9.0, layout.Aisles[0].Width)
	assert.Contains(t, result.Metrics, "accessibility_score")
}

func TestOptimizeRackElevations_AppliesProfile(t *testing.T) {
	eng := New()
	layout := twoLocationLayout()
	eq := model.NewEquipment("Reach Truck", 20, 8, 12)

	result, err := eng.OptimizeRackElevations(layout, "r1", palletProducts(48), eq, model.DefaultElevationOptions(), time.Second)
	require.NoError(t, err)

	assert.Equal(t, "r1", result.RackID)
	require.Len(t, result.BeamElevations, 5)

	rack := layout.FindRack("r1")
	require.NotNil(t, rack)
	assert.Equal(t, result.BeamElevations, rack.Config.BeamElevations)
	assert.Equal(t, 4, rack.Config.BeamLevels)
	assert.Contains(t, result.Metrics, "vertical_utilization")
}

func TestOptimizeRackElevations_UnknownRack(t *testing.T) {
	eng := New()
	layout := twoLocationLayout()
	eq := model.NewEquipment("Reach Truck", 20, 8, 12)

	_, err := eng.OptimizeRackElevations(layout, "nope", palletProducts(48), eq, model.DefaultElevationOptions(), time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRackNotFound)
}

func TestOptimizeSlotting_ReportsUnassigned(t *testing.T) {
	eng := New()
	layout := twoLocationLayout()
	products := []model.Product{
		velocityProduct("A-1", model.VelocityA),
		velocityProduct("B-1", model.VelocityB),
		velocityProduct("C-1", model.VelocityC),
	}

	result, err := eng.OptimizeSlotting(layout, products, model.DefaultSlottingOptions(), time.Second)
	require.NoError(t, err)

	assert.Equal(t, layout.ID, result.LayoutID)
	assert.Len(t, result.Assignments, 2)
	assert.Equal(t, result.Assignments, layout.Assignments)
	require.Len(t, result.Unassigned, 1)
	assert.Equal(t, products[2].ID, result.Unassigned[0])
	assert.Contains(t, result.Metrics, "slotting_efficiency")
}

func TestEvaluateLayout_ReadOnly(t *testing.T) {
	eng := New()
	layout := twoLocationLayout()
	products := []model.Product{velocityProduct("A-1", model.VelocityA)}
	layout.Assignments = []model.ProductAssignment{
		{ProductID: products[0].ID, LocationID: "loc-r1-0-0", Quantity: 1},
	}

	before := len(layout.Racks)
	metrics := eng.EvaluateLayout(layout, products)

	assert.Len(t, layout.Racks, before)
	assert.Nil(t, layout.Metrics, "evaluation must not write metrics back")
	assert.Contains(t, metrics, "pallet_positions")
	assert.Contains(t, metrics, "slotting_efficiency")
	assert.Contains(t, metrics, "pick_rate")
}

func TestApplyElevations_EmptyProfileKeepsRack(t *testing.T) {
	rack := model.Rack{
		ID:     "r1",
		Config: model.RackConfig{BeamElevations: []float64{0, 6}, BeamLevels: 1},
	}
	applyElevations(&rack, nil)
	assert.Equal(t, []float64{0, 6}, rack.Config.BeamElevations)
	assert.Equal(t, 1, rack.Config.BeamLevels)
}
