// LayoutDesigner is a warehouse layout optimizer.
//
// A command line tool that generates and optimizes warehouse layouts:
// rack placement, aisle widths, beam elevation profiles, and product
// slotting, with PDF, label, and Excel exports.
//
// Build:
//   go build -o layoutdesigner ./cmd/layoutdesigner
//
// Typical usage:
//   layoutdesigner -new "DC East" -facility-dxf floor.dxf -products skus.csv -out results/
//   layoutdesigner -project ~/.layoutdesigner/projects/dc-east.json -compare

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/libinalum/WH-LayoutDesigner/internal/engine"
	"github.com/libinalum/WH-LayoutDesigner/internal/export"
	"github.com/libinalum/WH-LayoutDesigner/internal/importer"
	"github.com/libinalum/WH-LayoutDesigner/internal/model"
	"github.com/libinalum/WH-LayoutDesigner/internal/project"
)

func main() {
	var (
		projectPath = flag.String("project", "", "path to an existing project file")
		newName     = flag.String("new", "", "create a new project with this name")
		facilityDXF = flag.String("facility-dxf", "", "import facility boundary from a DXF file")
		productFile = flag.String("products", "", "import product catalog from a CSV or XLSX file")
		clearHeight = flag.Float64("clear-height", 32, "facility clear height in ft (new projects)")
		reachHeight = flag.Float64("reach-height", 20, "equipment reach height in ft")
		minAisle    = flag.Float64("min-aisle", 8, "equipment minimum aisle width in ft")
		maxAisle    = flag.Float64("max-aisle", 12, "equipment maximum aisle width in ft")
		timeLimit   = flag.Duration("time-limit", 30*time.Second, "solver time limit per stage")
		outDir      = flag.String("out", "", "directory for exported results")
		pdfOut      = flag.Bool("pdf", false, "export a PDF layout report")
		labelsOut   = flag.Bool("labels", false, "export QR location labels")
		xlsxOut     = flag.Bool("xlsx", false, "export an Excel workbook")
		compare     = flag.Bool("compare", false, "compare optimization scenarios instead of a single run")
		backupPath  = flag.String("backup", "", "export app config and all stored projects to this file")
		restorePath = flag.String("restore", "", "restore app config and projects from a backup file")
	)
	flag.Parse()

	if *backupPath != "" || *restorePath != "" {
		if err := runBackupRestore(*backupPath, *restorePath); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*projectPath, *newName, *facilityDXF, *productFile,
		*clearHeight, *reachHeight, *minAisle, *maxAisle,
		*timeLimit, *outDir, *pdfOut, *labelsOut, *xlsxOut, *compare); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(projectPath, newName, facilityDXF, productFile string,
	clearHeight, reachHeight, minAisle, maxAisle float64,
	timeLimit time.Duration, outDir string,
	pdfOut, labelsOut, xlsxOut, compare bool) error {

	proj, path, err := loadOrCreateProject(projectPath, newName, facilityDXF,
		clearHeight, reachHeight, minAisle, maxAisle)
	if err != nil {
		return err
	}

	if productFile != "" {
		products, err := importProducts(productFile)
		if err != nil {
			return err
		}
		proj.Products = products
		fmt.Printf("Imported %d products from %s\n", len(products), productFile)
	}

	proj.Options.SolveTimeLimit = timeLimit
	if err := proj.Options.Validate(); err != nil {
		return err
	}

	if compare {
		return runComparison(proj)
	}

	eng := engine.New()
	layout, err := eng.OptimizeLayout(proj.Facility, proj.Products, proj.Equipment, proj.Options)
	if err != nil {
		return err
	}
	proj.Layout = layout

	fmt.Printf("Optimized layout %s: %d racks, %d aisles, %d assignments\n",
		layout.ID, len(layout.Racks), len(layout.Aisles), len(layout.Assignments))
	printMetrics(layout.Metrics)

	if err := project.Save(path, proj); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	fmt.Println("Saved project to", path)

	if err := rememberProject(path); err != nil {
		return err
	}

	return exportResults(proj, outDir, pdfOut, labelsOut, xlsxOut)
}

// loadOrCreateProject resolves the project to work on. Exactly one of
// -project or -new must be given.
func loadOrCreateProject(projectPath, newName, facilityDXF string,
	clearHeight, reachHeight, minAisle, maxAisle float64) (project.Project, string, error) {

	switch {
	case projectPath != "" && newName != "":
		return project.Project{}, "", fmt.Errorf("use either -project or -new, not both")

	case projectPath != "":
		proj, err := project.Load(projectPath)
		if err != nil {
			return project.Project{}, "", fmt.Errorf("failed to load project: %w", err)
		}
		return proj, projectPath, nil

	case newName != "":
		facility, err := buildFacility(newName, facilityDXF, clearHeight)
		if err != nil {
			return project.Project{}, "", err
		}
		eq := model.NewEquipment("Reach Truck", reachHeight, minAisle, maxAisle)
		proj := project.NewProject(newName, facility, eq)
		path := filepath.Join(project.DefaultProjectsDir(), proj.ID+".json")
		return proj, path, nil

	default:
		return project.Project{}, "", fmt.Errorf("either -project or -new is required")
	}
}

// buildFacility imports a boundary from DXF when given, or falls back
// to a rectangular 200 x 100 ft footprint.
func buildFacility(name, dxfPath string, clearHeight float64) (model.Facility, error) {
	if dxfPath == "" {
		boundary := model.Polygon{
			{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 200, Y: 100}, {X: 0, Y: 100},
		}
		return model.NewFacility(name, boundary, clearHeight), nil
	}

	result := importer.ImportFacilityDXF(dxfPath)
	for _, w := range result.Warnings {
		fmt.Println("warning:", w)
	}
	if len(result.Errors) > 0 {
		return model.Facility{}, fmt.Errorf("DXF import failed: %s", result.Errors[0])
	}

	facility := model.NewFacility(name, result.Boundary, clearHeight)
	facility.Obstructions = result.Obstructions
	fmt.Printf("Imported boundary (%.0f sq ft) and %d obstructions from %s\n",
		facility.Area(), len(facility.Obstructions), dxfPath)
	return facility, nil
}

func importProducts(path string) ([]model.Product, error) {
	var result importer.ImportResult
	switch filepath.Ext(path) {
	case ".xlsx":
		result = importer.ImportExcel(path)
	default:
		result = importer.ImportCSV(path)
	}

	for _, w := range result.Warnings {
		fmt.Println("warning:", w)
	}
	for _, e := range result.Errors {
		fmt.Println("error:", e)
	}
	if len(result.Products) == 0 {
		return nil, fmt.Errorf("no products imported from %s", path)
	}
	return result.Products, nil
}

func runComparison(proj project.Project) error {
	scenarios := engine.BuildDefaultScenarios(proj.Options)
	results := engine.CompareScenarios(scenarios, proj.Facility, proj.Products, proj.Equipment)

	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%-22s failed: %v\n", r.Scenario.Name, r.Err)
			continue
		}
		fmt.Printf("%-22s positions=%.0f density=%.2f accessibility=%.2f assigned=%d\n",
			r.Scenario.Name, r.PalletPositions, r.StorageDensity, r.Accessibility, r.AssignedCount)
	}
	return nil
}

// runBackupRestore handles the -backup and -restore flags, which run
// standalone without a project.
func runBackupRestore(backupPath, restorePath string) error {
	if backupPath != "" && restorePath != "" {
		return fmt.Errorf("use either -backup or -restore, not both")
	}

	if backupPath != "" {
		cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			return err
		}
		projects, warnings := project.LoadAll(project.DefaultProjectsDir())
		for _, w := range warnings {
			fmt.Println("warning:", w)
		}
		if err := project.ExportAllData(backupPath, cfg, projects); err != nil {
			return err
		}
		fmt.Printf("Backed up %d projects to %s\n", len(projects), backupPath)
		return nil
	}

	backup, err := project.ImportAllData(restorePath)
	if err != nil {
		return err
	}
	if err := project.RestoreAllData(backup, project.DefaultConfigPath(), project.DefaultProjectsDir()); err != nil {
		return err
	}
	fmt.Printf("Restored %d projects from %s\n", len(backup.Projects), restorePath)
	return nil
}

func rememberProject(path string) error {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return err
	}
	cfg.AddRecentProject(path)
	return project.SaveAppConfig(project.DefaultConfigPath(), cfg)
}

func exportResults(proj project.Project, outDir string, pdfOut, labelsOut, xlsxOut bool) error {
	if !pdfOut && !labelsOut && !xlsxOut {
		return nil
	}
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	if pdfOut {
		path := filepath.Join(outDir, "layout.pdf")
		if err := export.ExportPDF(path, proj.Layout, proj.Facility); err != nil {
			return fmt.Errorf("PDF export failed: %w", err)
		}
		fmt.Println("Wrote", path)
	}
	if labelsOut {
		path := filepath.Join(outDir, "labels.pdf")
		locations := engine.EnumerateLocations(proj.Layout)
		if err := export.ExportLabels(path, locations, proj.Layout.Assignments, proj.Products); err != nil {
			return fmt.Errorf("label export failed: %w", err)
		}
		fmt.Println("Wrote", path)
	}
	if xlsxOut {
		path := filepath.Join(outDir, "layout.xlsx")
		if err := export.ExportExcel(path, proj.Layout, proj.Products); err != nil {
			return fmt.Errorf("Excel export failed: %w", err)
		}
		fmt.Println("Wrote", path)
	}
	return nil
}

func printMetrics(metrics model.Metrics) {
	names := []string{
		"pallet_positions", "storage_density", "space_utilization",
		"travel_distance", "accessibility_score", "throughput_capacity",
	}
	for _, name := range names {
		if v, ok := metrics[name]; ok {
			fmt.Printf("  %-20s %.2f\n", name, v)
		}
	}
}
