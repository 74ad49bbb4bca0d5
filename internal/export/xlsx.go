package export

import (
	"fmt"
	"sort"

	"github.com/libinalum/WH-LayoutDesigner/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportExcel writes an optimized layout to an Excel workbook with one
// sheet each for racks, aisles, slotting assignments, and metrics.
func ExportExcel(path string, layout *model.Layout, products []model.Product) error {
	if layout == nil {
		return fmt.Errorf("no layout to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeRackSheet(f, layout); err != nil {
		return err
	}
	if err := writeAisleSheet(f, layout); err != nil {
		return err
	}
	if err := writeAssignmentSheet(f, layout, products); err != nil {
		return err
	}
	if err := writeMetricsSheet(f, layout); err != nil {
		return err
	}

	// Drop the default sheet created by excelize
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// writeRows writes a header row followed by data rows to a new sheet.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeRackSheet(f *excelize.File, layout *model.Layout) error {
	rows := [][]interface{}{
		{"Rack ID", "Type", "Length (ft)", "Depth (ft)", "Height (ft)", "Bays", "Levels", "Capacity", "Beam Elevations (ft)"},
	}
	for _, rack := range layout.Racks {
		rows = append(rows, []interface{}{
			rack.ID,
			string(rack.Type),
			rack.Length,
			rack.Depth,
			rack.Height,
			rack.Bays,
			rack.Config.Levels(),
			rack.Capacity(),
			formatElevations(rack.Config.BeamElevations),
		})
	}
	return writeRows(f, "Racks", rows)
}

func writeAisleSheet(f *excelize.File, layout *model.Layout) error {
	rows := [][]interface{}{
		{"Aisle ID", "Type", "Width (ft)", "Length (ft)"},
	}
	for _, aisle := range layout.Aisles {
		rows = append(rows, []interface{}{
			aisle.ID,
			string(aisle.Type),
			aisle.Width,
			aisle.Length(),
		})
	}
	return writeRows(f, "Aisles", rows)
}

func writeAssignmentSheet(f *excelize.File, layout *model.Layout, products []model.Product) error {
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	rows := [][]interface{}{
		{"Location ID", "Product ID", "SKU", "Product", "Velocity", "Quantity"},
	}
	for _, a := range layout.Assignments {
		sku, name, velocity := "", "", ""
		if p, ok := byID[a.ProductID]; ok {
			sku, name, velocity = p.SKU, p.Name, string(p.VelocityClass)
		}
		rows = append(rows, []interface{}{
			a.LocationID,
			a.ProductID,
			sku,
			name,
			velocity,
			a.Quantity,
		})
	}
	return writeRows(f, "Assignments", rows)
}

func writeMetricsSheet(f *excelize.File, layout *model.Layout) error {
	names := make([]string, 0, len(layout.Metrics))
	for name := range layout.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := [][]interface{}{
		{"Metric", "Value"},
	}
	for _, name := range names {
		rows = append(rows, []interface{}{name, layout.Metrics[name]})
	}
	return writeRows(f, "Metrics", rows)
}
