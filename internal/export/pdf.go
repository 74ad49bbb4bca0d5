// Package export writes optimization results to external file formats:
// PDF layout reports, QR-coded location labels, and Excel workbooks.
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/libinalum/WH-LayoutDesigner/internal/model"
)

// rackColor represents an RGB color for a rendered rack.
type rackColor struct {
	R, G, B int
}

// rackColors assigns a consistent color per rack type.
var rackColors = map[model.RackType]rackColor{
	model.RackSelective:  {R: 33, G: 150, B: 243}, // blue
	model.RackDriveIn:    {R: 255, G: 152, B: 0},  // orange
	model.RackPushBack:   {R: 156, G: 39, B: 176}, // purple
	model.RackPalletFlow: {R: 0, G: 188, B: 212},  // cyan
	model.RackMobile:     {R: 121, G: 85, B: 72},  // brown
}

var defaultRackColor = rackColor{R: 76, G: 175, B: 80} // green

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF report for an optimized layout. The first
// page shows the facility floor plan with racks and aisles to scale,
// followed by a summary page with metrics and per-rack details.
func ExportPDF(path string, layout *model.Layout, facility model.Facility) error {
	if layout == nil {
		return fmt.Errorf("no layout to export")
	}
	if len(facility.Boundary) < 3 {
		return fmt.Errorf("facility boundary is not a closed shape")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderFloorPlanPage(pdf, layout, facility)

	pdf.AddPage()
	renderSummaryPage(pdf, layout, facility)

	return pdf.OutputFileAndClose(path)
}

// renderFloorPlanPage draws the facility boundary, racks, and aisles on
// the current PDF page.
func renderFloorPlanPage(pdf *fpdf.Fpdf, layout *model.Layout, facility model.Facility) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s - %s", facility.Name, layout.Name)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Racks: %d | Aisles: %d | Floor area: %.0f sq ft | Clear height: %.0f ft",
		len(layout.Racks), len(layout.Aisles), facility.Area(), facility.ClearHeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the facility bounding box to the drawing area
	bbox := facility.Boundary.BoundingBox()
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scaleX := drawWidth / bbox.Width()
	scaleY := drawHeight / bbox.Depth()
	scale := math.Min(scaleX, scaleY)

	canvasW := bbox.Width() * scale
	canvasH := bbox.Depth() * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Y is flipped so the facility origin sits at the bottom-left.
	toPage := func(p model.Point2D) (float64, float64) {
		return offsetX + (p.X-bbox.MinX)*scale, offsetY + canvasH - (p.Y-bbox.MinY)*scale
	}

	// Facility floor
	pdf.SetFillColor(245, 245, 240)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.5)
	drawPolygon(pdf, facility.Boundary, toPage, "FD")

	// Obstructions
	pdf.SetFillColor(180, 180, 180)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.2)
	for _, obs := range facility.Obstructions {
		drawPolygon(pdf, obs.Shape, toPage, "FD")
	}

	// Aisles as width-scaled paths
	pdf.SetDrawColor(255, 220, 150)
	for _, aisle := range layout.Aisles {
		pdf.SetLineWidth(math.Max(aisle.Width*scale, 0.3))
		for i := 0; i+1 < len(aisle.Path); i++ {
			x1, y1 := toPage(aisle.Path[i])
			x2, y2 := toPage(aisle.Path[i+1])
			pdf.Line(x1, y1, x2, y2)
		}
	}

	// Racks colored by type
	pdf.SetLineWidth(0.3)
	for _, rack := range layout.Racks {
		col, ok := rackColors[rack.Type]
		if !ok {
			col = defaultRackColor
		}
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		drawPolygon(pdf, rack.Footprint, toPage, "FD")
	}

	drawRackLegend(pdf, layout, offsetY+canvasH+5)
}

// drawPolygon renders a closed polygon using the fpdf path API.
func drawPolygon(pdf *fpdf.Fpdf, poly model.Polygon, toPage func(model.Point2D) (float64, float64), style string) {
	if len(poly) < 3 {
		return
	}
	pts := make([]fpdf.PointType, 0, len(poly))
	for _, p := range poly {
		x, y := toPage(p)
		pts = append(pts, fpdf.PointType{X: x, Y: y})
	}
	pdf.Polygon(pts, style)
}

// drawRackLegend renders a compact legend of rack types present in the
// layout at the bottom of the floor plan page.
func drawRackLegend(pdf *fpdf.Fpdf, layout *model.Layout, startY float64) {
	counts := map[model.RackType]int{}
	for _, r := range layout.Racks {
		counts[r.Type]++
	}
	if len(counts) == 0 {
		return
	}

	types := make([]model.RackType, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Rack types:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	for _, t := range types {
		col, ok := rackColors[t]
		if !ok {
			col = defaultRackColor
		}
		label := fmt.Sprintf("%s (%d)", t, counts[t])
		labelW := pdf.GetStringWidth(label) + 6

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the metrics and per-rack breakdown tables.
func renderSummaryPage(pdf *fpdf.Fpdf, layout *model.Layout, facility model.Facility) {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Layout Optimization Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Metrics
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Metrics", "", 0, "L", false, 0, "")
	y += 9

	names := make([]string, 0, len(layout.Metrics))
	for name := range layout.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	pdf.SetFont("Helvetica", "", 10)
	for _, name := range names {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, name+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", layout.Metrics[name]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-rack breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Rack Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{35, 35, 45, 25, 25, 35, 45}
	headers := []string{"Rack", "Type", "Size (ft)", "Bays", "Levels", "Capacity", "Beam Elevations (ft)"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, rack := range layout.Racks {
		xPos = marginLeft
		rowData := []string{
			rack.ID,
			string(rack.Type),
			fmt.Sprintf("%.0f x %.0f x %.0f", rack.Length, rack.Depth, rack.Height),
			fmt.Sprintf("%d", rack.Bays),
			fmt.Sprintf("%d", rack.Config.Levels()),
			fmt.Sprintf("%.0f", rack.Capacity()),
			formatElevations(rack.Config.BeamElevations),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6

		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
		}
	}

	// Slotting summary
	if len(layout.Assignments) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Slotting", "", 0, "L", false, 0, "")
		y += 9

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(100, 6, fmt.Sprintf("Products assigned: %d", len(layout.Assignments)), "", 0, "L", false, 0, "")
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by LayoutDesigner - Warehouse Layout Optimizer", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// formatElevations renders a beam elevation profile as a compact string.
func formatElevations(elevations []float64) string {
	if len(elevations) == 0 {
		return "-"
	}
	s := ""
	for i, e := range elevations {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%.1f", e)
	}
	return s
}
