package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineStringLength(t *testing.T) {
	assert.Equal(t, 0.0, LineString{}.Length())
	assert.Equal(t, 0.0, LineString{{X: 5, Y: 5}}.Length())

	l := LineString{{X: 0, Y: 0}, {X: 3, Y: 4}}
	assert.InDelta(t, 5.0, l.Length(), 1e-9)

	bent := LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	assert.InDelta(t, 20.0, bent.Length(), 1e-9)
}

func TestLineStringBuffer(t *testing.T) {
	l := LineString{{X: 0, Y: 0}, {X: 10, Y: 0}}
	rects := l.Buffer(4)

	require.Len(t, rects, 1)
	assert.Equal(t, Rect{MinX: -2, MinY: -2, MaxX: 12, MaxY: 2}, rects[0])

	// A single point buffers to a square.
	point := LineString{{X: 5, Y: 5}}
	rects = point.Buffer(2)
	require.Len(t, rects, 1)
	assert.Equal(t, Rect{MinX: 4, MinY: 4, MaxX: 6, MaxY: 6}, rects[0])
}

func TestPolygonArea(t *testing.T) {
	square := Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	assert.InDelta(t, 100.0, square.Area(), 1e-9)

	// Winding order does not matter.
	reversed := Polygon{{X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}}
	assert.InDelta(t, 100.0, reversed.Area(), 1e-9)

	triangle := Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	assert.InDelta(t, 50.0, triangle.Area(), 1e-9)

	assert.Equal(t, 0.0, Polygon{}.Area())
	assert.Equal(t, 0.0, Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}.Area())
}

func TestPolygonBoundingBox(t *testing.T) {
	assert.Equal(t, Rect{}, Polygon{}.BoundingBox())

	p := Polygon{{X: 3, Y: 7}, {X: -2, Y: 4}, {X: 9, Y: -1}}
	box := p.BoundingBox()
	assert.Equal(t, Rect{MinX: -2, MinY: -1, MaxX: 9, MaxY: 7}, box)
	assert.Equal(t, 11.0, box.Width())
	assert.Equal(t, 8.0, box.Depth())
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}

	assert.True(t, a.Overlaps(Rect{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}))
	assert.True(t, a.Overlaps(Rect{MinX: 2, MinY: 2, MaxX: 8, MaxY: 8}))
	assert.False(t, a.Overlaps(Rect{MinX: 20, MinY: 0, MaxX: 30, MaxY: 10}))

	// Shared edges do not count as overlap.
	assert.False(t, a.Overlaps(Rect{MinX: 10, MinY: 0, MaxX: 20, MaxY: 10}))
}

func TestPolygonIntersectsBuffer(t *testing.T) {
	footprint := Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 24}, {X: 0, Y: 24}}

	near := LineString{{X: 6, Y: 0}, {X: 6, Y: 24}}.Buffer(10)
	assert.True(t, footprint.IntersectsBuffer(near))

	far := LineString{{X: 100, Y: 0}, {X: 100, Y: 24}}.Buffer(10)
	assert.False(t, footprint.IntersectsBuffer(far))

	assert.False(t, footprint.IntersectsBuffer(nil))
}
