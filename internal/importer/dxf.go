package importer

import (
	"fmt"
	"math"

	"github.com/libinalum/WH-LayoutDesigner/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed rings.
type segment struct {
	start model.Point2D
	end   model.Point2D
}

// FacilityImportResult holds the boundary and interior obstructions
// extracted from a CAD drawing.
type FacilityImportResult struct {
	Boundary     model.Polygon
	Obstructions []model.Obstruction
	Errors       []string
	Warnings     []string
}

// ImportFacilityDXF extracts a facility footprint from a DXF file. The
// largest closed shape (LWPOLYLINE or chain of connected LINEs) becomes
// the facility boundary; smaller closed shapes inside the drawing
// become column obstructions. Coordinates are taken as feet.
func ImportFacilityDXF(path string) FacilityImportResult {
	result := FacilityImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var rings []model.Polygon
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			ring := lwPolylineToPolygon(e)
			if len(ring) >= 3 {
				rings = append(rings, ring)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: model.Point2D{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point2D{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	for _, ring := range chainSegments(segments, 0.01) {
		if len(ring) >= 3 {
			rings = append(rings, ring)
		}
	}

	if len(rings) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	// The largest ring by area is the facility boundary.
	boundaryIdx := 0
	for i, ring := range rings {
		if ring.Area() > rings[boundaryIdx].Area() {
			boundaryIdx = i
		}
	}
	result.Boundary = rings[boundaryIdx]

	for i, ring := range rings {
		if i == boundaryIdx {
			continue
		}
		if ring.Area() < 1 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f sq ft)", ring.Area()))
			continue
		}
		result.Obstructions = append(result.Obstructions, model.Obstruction{
			ID:    fmt.Sprintf("obstruction-%d", len(result.Obstructions)+1),
			Type:  "column",
			Shape: ring,
		})
	}

	return result
}

// lwPolylineToPolygon converts a DXF LWPOLYLINE entity to a closed ring.
// Bulged (arced) edges are flattened to their chord.
func lwPolylineToPolygon(lw *entity.LwPolyline) model.Polygon {
	ring := make(model.Polygon, 0, len(lw.Vertices))
	for _, v := range lw.Vertices {
		ring = append(ring, model.Point2D{X: v[0], Y: v[1]})
	}
	return ring
}

// chainSegments links loose line segments into closed rings. Segments
// whose endpoints are within tolerance of each other are joined; only
// chains that close back on their start survive.
func chainSegments(segments []segment, tolerance float64) []model.Polygon {
	var rings []model.Polygon
	used := make([]bool, len(segments))

	near := func(a, b model.Point2D) bool {
		return math.Abs(a.X-b.X) <= tolerance && math.Abs(a.Y-b.Y) <= tolerance
	}

	for i := range segments {
		if used[i] {
			continue
		}
		used[i] = true
		ring := model.Polygon{segments[i].start, segments[i].end}

		for {
			tail := ring[len(ring)-1]
			extended := false
			for j := range segments {
				if used[j] {
					continue
				}
				switch {
				case near(segments[j].start, tail):
					ring = append(ring, segments[j].end)
					used[j] = true
					extended = true
				case near(segments[j].end, tail):
					ring = append(ring, segments[j].start)
					used[j] = true
					extended = true
				}
				if extended {
					break
				}
			}
			if !extended {
				break
			}
			if near(ring[len(ring)-1], ring[0]) {
				rings = append(rings, ring[:len(ring)-1])
				break
			}
		}
	}

	return rings
}
