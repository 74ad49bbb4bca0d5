package engine

import (
	"github.com/libinalum/WH-LayoutDesigner/internal/model"
)

// ComparisonScenario defines a named engine option set to compare.
type ComparisonScenario struct {
	Name    string
	Options model.EngineOptions
}

// ComparisonResult holds the layout and headline metrics produced by a
// single scenario.
type ComparisonResult struct {
	Scenario        ComparisonScenario
	Layout          *model.Layout
	PalletPositions float64
	StorageDensity  float64
	Accessibility   float64
	AssignedCount   int
	Err             error
}

// CompareScenarios runs the full pipeline once per scenario and returns
// the results in scenario order, enabling side-by-side comparison of
// different optimization preferences.
func CompareScenarios(scenarios []ComparisonScenario, facility model.Facility, products []model.Product, eq model.Equipment) []ComparisonResult {
	eng := New()
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		layout, err := eng.OptimizeLayout(facility, products, eq, scenario.Options)
		result := ComparisonResult{Scenario: scenario, Layout: layout, Err: err}
		if err == nil {
			result.PalletPositions = layout.Metrics["pallet_positions"]
			result.StorageDensity = layout.Metrics["storage_density"]
			result.Accessibility = layout.Metrics["accessibility_score"]
			result.AssignedCount = len(layout.Assignments)
		}
		results = append(results, result)
	}
	return results
}

// BuildDefaultScenarios generates what-if alternatives around a base
// option set, varying the density/accessibility balance and the
// throughput term.
func BuildDefaultScenarios(base model.EngineOptions) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Options: base},
	}

	dense := base
	dense.StorageDensityWeight = 0.8
	dense.AccessibilityWeight = 0.2
	scenarios = append(scenarios, ComparisonScenario{Name: "Density Focus", Options: dense})

	accessible := base
	accessible.StorageDensityWeight = 0.3
	accessible.AccessibilityWeight = 0.7
	scenarios = append(scenarios, ComparisonScenario{Name: "Accessibility Focus", Options: accessible})

	if base.ThroughputWeight <= 0.2 {
		throughput := base
		throughput.ThroughputWeight = 0.3
		scenarios = append(scenarios, ComparisonScenario{Name: "Throughput Weighted", Options: throughput})
	}

	return scenarios
}
