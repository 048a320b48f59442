package polyedit

import "github.com/gogpu/polyedit/internal/trig"

// Rect is an axis-aligned integer rectangle described by an origin and a
// signed size. A negative size extends the rectangle toward smaller
// coordinates; Normalize folds it back into a positive size.
//
// Containment and intersection tests are inclusive on every edge.
type Rect struct {
	Origin Vertex
	Size   Vertex
}

// RectFromCorners returns the normalized rectangle spanning two corners.
func RectFromCorners(a, b Vertex) Rect {
	r := Rect{Origin: a, Size: b.Sub(a)}
	return r.Normalize()
}

// End returns the corner opposite the origin.
func (r Rect) End() Vertex {
	return r.Origin.Add(r.Size)
}

// SetEnd moves the end corner to v, keeping the origin in place.
func (r Rect) SetEnd(v Vertex) Rect {
	r.Size = v.Sub(r.Origin)
	return r
}

// Width returns the absolute horizontal extent.
func (r Rect) Width() int {
	return abs(r.Size.X)
}

// Height returns the absolute vertical extent.
func (r Rect) Height() int {
	return abs(r.Size.Y)
}

// Normalize returns an equivalent rectangle with non-negative size.
func (r Rect) Normalize() Rect {
	if r.Size.X < 0 {
		r.Origin.X += r.Size.X
		r.Size.X = -r.Size.X
	}
	if r.Size.Y < 0 {
		r.Origin.Y += r.Size.Y
		r.Size.Y = -r.Size.Y
	}
	return r
}

// Inflate grows the rectangle by delta on every side. A negative delta
// shrinks it; a side that would invert collapses onto the rectangle's
// center line instead.
func (r Rect) Inflate(delta int) Rect {
	r = r.Normalize()
	r.Origin.X, r.Size.X = inflateSpan(r.Origin.X, r.Size.X, delta)
	r.Origin.Y, r.Size.Y = inflateSpan(r.Origin.Y, r.Size.Y, delta)
	return r
}

func inflateSpan(pos, size, delta int) (int, int) {
	if size+2*delta >= 0 {
		return pos - delta, size + 2*delta
	}
	return pos + size/2, 0
}

// RevertYAxis mirrors the rectangle about the X axis, converting between
// y-down model space and the y-up convention used for reported bounds.
func (r Rect) RevertYAxis() Rect {
	r.Origin.Y = -r.Origin.Y
	r.Size.Y = -r.Size.Y
	return r.Normalize()
}

// Contains reports whether v lies inside or on the edge of r.
func (r Rect) Contains(v Vertex) bool {
	n := r.Normalize()
	end := n.End()
	return v.X >= n.Origin.X && v.X <= end.X &&
		v.Y >= n.Origin.Y && v.Y <= end.Y
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.Contains(o.Origin) && r.Contains(o.End())
}

// Intersects reports whether r and o overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	a, b := r.Normalize(), o.Normalize()
	aEnd, bEnd := a.End(), b.End()

	left := max(a.Origin.X, b.Origin.X)
	right := min(aEnd.X, bEnd.X)
	top := max(a.Origin.Y, b.Origin.Y)
	bottom := min(aEnd.Y, bEnd.Y)

	return left <= right && top <= bottom
}

// IntersectsSegment reports whether the segment [p1, p2] touches r.
// A segment crossing r without an endpoint inside it must cross at least
// two sides, so only three of the four sides are tested.
func (r Rect) IntersectsSegment(p1, p2 Vertex) bool {
	if r.Contains(p1) || r.Contains(p2) {
		return true
	}

	n := r.Normalize()
	origin := trig.Point(n.Origin)
	end := trig.Point(n.End())
	topRight := trig.Point{X: end.X, Y: origin.Y}
	bottomLeft := trig.Point{X: origin.X, Y: end.Y}
	a, b := trig.Point(p1), trig.Point(p2)

	return trig.SegmentsIntersect(a, b, origin, topRight) ||
		trig.SegmentsIntersect(a, b, topRight, end) ||
		trig.SegmentsIntersect(a, b, end, bottomLeft)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
