// Package importer provides CSV, Excel, and DXF import for product
// catalogs and facility boundaries. It supports automatic delimiter
// detection, flexible column mapping, and case-insensitive header
// recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/libinalum/WH-LayoutDesigner/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of a product catalog import.
type ImportResult struct {
	Products []model.Product
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	SKU        int
	Name       int
	Length     int
	Width      int
	Height     int
	Weight     int
	Velocity   int
	Throughput int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"sku":        {"sku", "id", "item", "item number", "part number", "code"},
	"name":       {"name", "description", "desc", "product", "product name", "label"},
	"length":     {"length", "len", "l", "depth"},
	"width":      {"width", "w"},
	"height":     {"height", "h"},
	"weight":     {"weight", "wt", "lbs", "pounds"},
	"velocity":   {"velocity", "velocity class", "class", "abc", "abc class", "movement"},
	"throughput": {"throughput", "monthly throughput", "monthly", "picks", "volume"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		SKU: -1, Name: -1, Length: -1, Width: -1,
		Height: -1, Weight: -1, Velocity: -1, Throughput: -1,
	}

	assign := func(role string, i int) {
		switch role {
		case "sku":
			if mapping.SKU == -1 {
				mapping.SKU = i
			}
		case "name":
			if mapping.Name == -1 {
				mapping.Name = i
			}
		case "length":
			if mapping.Length == -1 {
				mapping.Length = i
			}
		case "width":
			if mapping.Width == -1 {
				mapping.Width = i
			}
		case "height":
			if mapping.Height == -1 {
				mapping.Height = i
			}
		case "weight":
			if mapping.Weight == -1 {
				mapping.Weight = i
			}
		case "velocity":
			if mapping.Velocity == -1 {
				mapping.Velocity = i
			}
		case "throughput":
			if mapping.Throughput == -1 {
				mapping.Throughput = i
			}
		}
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					assign(role, i)
				}
			}
		}
	}

	if !isHeader {
		// Positional fallback: sku, length, width, height, weight
		return ColumnMapping{
			SKU: 0, Name: -1, Length: 1, Width: 2, Height: 3,
			Weight: 4, Velocity: 5, Throughput: 6,
		}, false
	}
	return mapping, true
}

// parseVelocity recognizes an A/B/C velocity class string.
// It returns the class and a boolean indicating whether the string was recognized.
func parseVelocity(s string) (model.VelocityClass, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return model.VelocityA, true
	case "B":
		return model.VelocityB, true
	case "C", "":
		return model.VelocityC, true
	default:
		return model.VelocityC, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a Product from a row using the given column mapping.
// Returns the product, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, productCount int) (model.Product, string, string) {
	sku := getCell(row, mapping.SKU)
	if sku == "" {
		sku = fmt.Sprintf("SKU-%d", productCount+1)
	}

	parseDim := func(idx int, field string) (float64, string) {
		s := getCell(row, idx)
		if s == "" {
			return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, field)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, field, s)
		}
		return v, ""
	}

	length, errMsg := parseDim(mapping.Length, "length")
	if errMsg != "" {
		return model.Product{}, errMsg, ""
	}
	width, errMsg := parseDim(mapping.Width, "width")
	if errMsg != "" {
		return model.Product{}, errMsg, ""
	}
	height, errMsg := parseDim(mapping.Height, "height")
	if errMsg != "" {
		return model.Product{}, errMsg, ""
	}
	if length <= 0 || width <= 0 || height <= 0 {
		return model.Product{}, fmt.Sprintf("%s: Dimensions must be positive", rowLabel), ""
	}

	var weight float64
	if s := getCell(row, mapping.Weight); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.Product{}, fmt.Sprintf("%s: Invalid weight '%s'", rowLabel, s), ""
		}
		weight = v
	}

	product := model.NewProduct(sku, length, width, height, weight)
	if name := getCell(row, mapping.Name); name != "" {
		product.Name = name
	}

	var warning string
	if s := getCell(row, mapping.Velocity); s != "" {
		class, ok := parseVelocity(s)
		product.VelocityClass = class
		if !ok {
			warning = fmt.Sprintf("%s: Unknown velocity class '%s', defaulting to C", rowLabel, s)
		}
	}

	if s := getCell(row, mapping.Throughput); s != "" {
		tp, err := strconv.Atoi(s)
		if err != nil || tp < 0 {
			warning = fmt.Sprintf("%s: Invalid throughput '%s', defaulting to 0", rowLabel, s)
		} else {
			product.MonthlyThroughput = tp
		}
	}

	return product, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports products from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports products from a CSV reader with a specific delimiter.
// This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports products from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into products.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	mapping, hasHeader := DetectColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
	} else {
		result.Warnings = append(result.Warnings, "No header row detected, using positional columns")
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		product, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Products))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		result.Products = append(result.Products, product)
	}

	if len(result.Products) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No products found in file")
	}

	return result
}
