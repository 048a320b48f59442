package trig

import (
	"cmp"
	"math"
	"math/bits"
)

// Point is an integer coordinate pair.
// It has the same layout as polyedit.Vertex, so the two convert directly.
type Point struct {
	X, Y int
}

func sub(a, b Point) (int64, int64) {
	return int64(a.X) - int64(b.X), int64(a.Y) - int64(b.Y)
}

// offset measures p against the closed segment [a, b]. When p projects
// past either end, sq is its squared distance to that end and cross is 0.
// Otherwise the squared distance is cross*cross / length2.
func offset(a, b, p Point) (sq, cross, length2 int64) {
	dx, dy := sub(b, a)
	wx, wy := sub(p, a)

	dot := wx*dx + wy*dy
	if dot <= 0 {
		return wx*wx + wy*wy, 0, 0
	}

	length2 = dx*dx + dy*dy
	if dot >= length2 {
		ex, ey := sub(p, b)
		return ex*ex + ey*ey, 0, 0
	}
	return 0, wx*dy - wy*dx, length2
}

// compareDist returns the sign of d minus the measured distance. At an end
// it compares d*d with sq; inside the segment it compares d*d*length2 with
// cross*cross in 128 bits.
func compareDist(d uint64, sq, cross, length2 int64) int {
	dd := d * d
	if length2 == 0 {
		return cmp.Compare(dd, uint64(sq))
	}
	c := uint64(abs64(cross))
	hiC, loC := bits.Mul64(c, c)
	hiD, loD := bits.Mul64(dd, uint64(length2))
	if hiD != hiC {
		return cmp.Compare(hiD, hiC)
	}
	return cmp.Compare(loD, loC)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// SegmentDistance returns the distance from p to the segment [a, b],
// clamped to the segment ends and truncated toward zero.
// A degenerate segment (a == b) measures the distance to a.
func SegmentDistance(a, b, p Point) int {
	sq, cross, length2 := offset(a, b, p)

	// The float estimate is off by at most one; compareDist settles it.
	est := float64(sq)
	if length2 != 0 {
		est = float64(cross) * float64(cross) / float64(length2)
	}
	d := uint64(math.Sqrt(est))
	for d > 0 && compareDist(d, sq, cross, length2) > 0 {
		d--
	}
	for compareDist(d+1, sq, cross, length2) <= 0 {
		d++
	}
	return int(d)
}

// SegmentHit reports whether p lies within dist of the segment [a, b].
func SegmentHit(p, a, b Point, dist int) bool {
	if dist < 0 {
		return false
	}
	sq, cross, length2 := offset(a, b, p)
	return compareDist(uint64(dist), sq, cross, length2) >= 0
}

// orientation returns the sign of the cross product (b-a) x (c-a).
func orientation(a, b, c Point) int {
	bx, by := sub(b, a)
	cx, cy := sub(c, a)
	v := bx*cy - by*cx
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// onSegment reports whether c, known to be collinear with [a, b], lies
// within the segment's bounding box.
func onSegment(a, b, c Point) bool {
	return min(a.X, b.X) <= c.X && c.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= c.Y && c.Y <= max(a.Y, b.Y)
}

// SegmentsIntersect reports whether the closed segments [a1, a2] and
// [b1, b2] share at least one point. Touching endpoints and collinear
// overlaps count as intersections.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	o1 := orientation(a1, a2, b1)
	o2 := orientation(a1, a2, b2)
	o3 := orientation(b1, b2, a1)
	o4 := orientation(b1, b2, a2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	switch {
	case o1 == 0 && onSegment(a1, a2, b1):
		return true
	case o2 == 0 && onSegment(a1, a2, b2):
		return true
	case o3 == 0 && onSegment(b1, b2, a1):
		return true
	case o4 == 0 && onSegment(b1, b2, a2):
		return true
	}
	return false
}

// RotateQuarter rotates p by a quarter turn about center.
// With ccw set the relative offset (x, y) becomes (-y, x); otherwise it
// becomes (y, -x). The rotation is exact, so four turns in the same
// direction restore the original point.
func RotateQuarter(p, center Point, ccw bool) Point {
	x := p.X - center.X
	y := p.Y - center.Y
	if ccw {
		x, y = -y, x
	} else {
		x, y = y, -x
	}
	return Point{X: x + center.X, Y: y + center.Y}
}
