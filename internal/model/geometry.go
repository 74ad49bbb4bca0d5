package model

import "math"

// Point2D represents a 2D coordinate in feet.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LineString represents an open polyline as a sequence of 2D points.
type LineString []Point2D

// Length returns the total length of the polyline as the sum of its
// segment lengths.
func (l LineString) Length() float64 {
	var length float64
	for i := 0; i < len(l)-1; i++ {
		dx := l[i+1].X - l[i].X
		dy := l[i+1].Y - l[i].Y
		length += math.Sqrt(dx*dx + dy*dy)
	}
	return length
}

// Buffer expands the polyline by half the given width on every side and
// returns the covered area as one rectangle per segment.
func (l LineString) Buffer(width float64) []Rect {
	half := width / 2
	rects := make([]Rect, 0, len(l))
	if len(l) == 1 {
		rects = append(rects, Rect{
			MinX: l[0].X - half, MinY: l[0].Y - half,
			MaxX: l[0].X + half, MaxY: l[0].Y + half,
		})
		return rects
	}
	for i := 0; i < len(l)-1; i++ {
		r := Rect{
			MinX: math.Min(l[i].X, l[i+1].X) - half,
			MinY: math.Min(l[i].Y, l[i+1].Y) - half,
			MaxX: math.Max(l[i].X, l[i+1].X) + half,
			MaxY: math.Max(l[i].Y, l[i+1].Y) + half,
		}
		rects = append(rects, r)
	}
	return rects
}

// Polygon represents a closed ring as a sequence of 2D points.
// The ring is implicitly closed: the last point connects back to the first.
type Polygon []Point2D

// BoundingBox returns the axis-aligned bounding rectangle of the polygon.
func (p Polygon) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{MinX: p[0].X, MinY: p[0].Y, MaxX: p[0].X, MaxY: p[0].Y}
	for _, pt := range p[1:] {
		if pt.X < r.MinX {
			r.MinX = pt.X
		}
		if pt.Y < r.MinY {
			r.MinY = pt.Y
		}
		if pt.X > r.MaxX {
			r.MaxX = pt.X
		}
		if pt.Y > r.MaxY {
			r.MaxY = pt.Y
		}
	}
	return r
}

// Area returns the enclosed area of the polygon via the shoelace formula.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	for i := range p {
		j := (i + 1) % len(p)
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return math.Abs(sum) / 2
}

// Rect is an axis-aligned rectangle in feet.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Depth returns the vertical extent of the rectangle.
func (r Rect) Depth() float64 { return r.MaxY - r.MinY }

// Overlaps returns true if two rectangles overlap (not just touch).
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && r.MaxX > o.MinX &&
		r.MinY < o.MaxY && r.MaxY > o.MinY
}

// IntersectsBuffer returns true if any rectangle of a buffered path
// overlaps the polygon's bounding box. Rack footprints are rectangular,
// so the bounding box test is exact for grid layouts.
func (p Polygon) IntersectsBuffer(buffer []Rect) bool {
	bbox := p.BoundingBox()
	for _, r := range buffer {
		if bbox.Overlaps(r) {
			return true
		}
	}
	return false
}
