package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/libinalum/WH-LayoutDesigner/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each location label's QR code.
type LabelInfo struct {
	LocationID string  `json:"location"`
	RackID     string  `json:"rack"`
	Bay        int     `json:"bay"`
	Level      int     `json:"level"`
	Elevation  float64 `json:"elevation_ft"`
	SKU        string  `json:"sku,omitempty"`
	Product    string  `json:"product,omitempty"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels for storage locations.
// Each label contains the location id, its rack position, and a QR code
// encoding location metadata as JSON. Assigned products appear on their
// location's label. Labels are laid out on a standard label sheet format
// (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, locations []model.Location, assignments []model.ProductAssignment, products []model.Product) error {
	labels := CollectLabelInfos(locations, assignments, products)
	if len(labels) == 0 {
		return fmt.Errorf("no locations to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		// Add new page when needed
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.LocationID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Register QR image with a unique name
	imgName := fmt.Sprintf("qr_%s", info.LocationID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Location id (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	// Truncate id if too long
	locationID := info.LocationID
	if pdf.GetStringWidth(locationID) > textW {
		for len(locationID) > 0 && pdf.GetStringWidth(locationID+"...") > textW {
			locationID = locationID[:len(locationID)-1]
		}
		locationID += "..."
	}
	pdf.CellFormat(textW, 4.5, locationID, "", 1, "L", false, 0, "")

	// Rack position
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pos := fmt.Sprintf("Rack %s, bay %d, level %d", info.RackID, info.Bay, info.Level)
	pdf.CellFormat(textW, 3.5, pos, "", 1, "L", false, 0, "")

	// Elevation
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Elevation %.1f ft", info.Elevation), "", 1, "L", false, 0, "")

	// Assigned product
	if info.SKU != "" {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(0, 100, 0)
		pdf.CellFormat(textW, 3, "SKU "+info.SKU, "", 0, "L", false, 0, "")
	}

	// Reset text color
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos builds label information for a set of locations,
// joining slotting assignments and the product catalog by id.
func CollectLabelInfos(locations []model.Location, assignments []model.ProductAssignment, products []model.Product) []LabelInfo {
	assigned := make(map[string]string, len(assignments))
	for _, a := range assignments {
		assigned[a.LocationID] = a.ProductID
	}
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var labels []LabelInfo
	for _, loc := range locations {
		info := LabelInfo{
			LocationID: loc.ID,
			RackID:     loc.RackID,
			Bay:        loc.Bay,
			Level:      loc.Level,
			Elevation:  loc.Elevation,
		}
		if productID, ok := assigned[loc.ID]; ok {
			if p, found := byID[productID]; found {
				info.SKU = p.SKU
				info.Product = p.Name
			}
		}
		labels = append(labels, info)
	}
	return labels
}
