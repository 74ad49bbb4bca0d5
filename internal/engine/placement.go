package engine

import (
	"fmt"
	"math"

	"github.com/libinalum/WH-LayoutDesigner/internal/model"
)

// Fixed rack dimensions used by the grid generator, in feet.
const (
	gridRackLength = 24.0 // three 8 ft bays
	gridRackDepth  = 4.0  // standard pallet depth
	gridRackHeight = 20.0
	gridRackBays   = 3
	gridRackGap    = 10.0 // gap between racks along an aisle
)

// usableFraction is the share of the facility bounding extents used for
// the storage grid; the rest stays clear around the perimeter.
const usableFraction = 0.8

// RackPlacementGenerator produces an initial grid of selective racks
// and aisles from a facility boundary. This is a deterministic
// heuristic; no exact solver backs it.
type RackPlacementGenerator struct{}

// Generate partitions the facility's usable footprint into alternating
// rack rows and main aisles, with racks on both sides of each aisle and
// evenly spaced cross aisles. A facility without a boundary leaves the
// layout untouched.
func (g *RackPlacementGenerator) Generate(layout *model.Layout, facility model.Facility, eq model.Equipment) {
	if len(facility.Boundary) < 3 {
		return
	}

	bounds := facility.Boundary.BoundingBox()
	width := bounds.Width()
	depth := bounds.Depth()

	aisleWidth := math.Max(eq.MinAisleWidth, 10)

	usableWidth := width * usableFraction
	usableDepth := depth * usableFraction

	numAisles := int(usableWidth / (2*gridRackDepth + aisleWidth))
	if numAisles < 1 {
		numAisles = 1
	}
	racksPerAisle := int(usableDepth / (gridRackLength + gridRackGap))
	if racksPerAisle < 1 {
		racksPerAisle = 1
	}

	startX := bounds.MinX + (width-usableWidth)/2
	startY := bounds.MinY + (depth-usableDepth)/2

	for aisleIdx := 0; aisleIdx < numAisles; aisleIdx++ {
		aisleX := startX + float64(aisleIdx)*(2*gridRackDepth+aisleWidth) + gridRackDepth

		layout.AddAisle(model.Aisle{
			ID:       fmt.Sprintf("aisle-%s-%d", layout.ID, aisleIdx),
			LayoutID: layout.ID,
			Type:     model.AisleMain,
			Path: model.LineString{
				{X: aisleX, Y: startY},
				{X: aisleX, Y: startY + usableDepth},
			},
			Width: aisleWidth,
		})

		for _, side := range []float64{-1, 1} {
			rackX := aisleX + side*(aisleWidth/2+gridRackDepth/2)
			orientation := 0.0
			if side > 0 {
				orientation = math.Pi
			}

			for rackIdx := 0; rackIdx < racksPerAisle; rackIdx++ {
				rackY := startY + float64(rackIdx)*(gridRackLength+gridRackGap) + gridRackLength/2

				sideTag := "l"
				if side > 0 {
					sideTag = "r"
				}
				layout.AddRack(model.Rack{
					ID:       fmt.Sprintf("rack-%s-%d-%s-%d", layout.ID, aisleIdx, sideTag, rackIdx),
					LayoutID: layout.ID,
					Type:     model.RackSelective,
					Footprint: model.Polygon{
						{X: rackX - gridRackDepth/2, Y: rackY - gridRackLength/2},
						{X: rackX + gridRackDepth/2, Y: rackY - gridRackLength/2},
						{X: rackX + gridRackDepth/2, Y: rackY + gridRackLength/2},
						{X: rackX - gridRackDepth/2, Y: rackY + gridRackLength/2},
					},
					Orientation: orientation,
					Height:      gridRackHeight,
					Length:      gridRackLength,
					Depth:       gridRackDepth,
					Bays:        gridRackBays,
				})
			}
		}
	}

	numCross := racksPerAisle / 5
	if numCross < 1 {
		numCross = 1
	}
	for crossIdx := 0; crossIdx < numCross; crossIdx++ {
		crossY := startY + float64(crossIdx+1)*usableDepth/float64(numCross+1)
		layout.AddAisle(model.Aisle{
			ID:       fmt.Sprintf("cross-%s-%d", layout.ID, crossIdx),
			LayoutID: layout.ID,
			Type:     model.AisleCross,
			Path: model.LineString{
				{X: startX, Y: crossY},
				{X: startX + usableWidth, Y: crossY},
			},
			Width: aisleWidth,
		})
	}
}
