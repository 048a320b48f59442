package polyedit

import (
	"slices"

	"github.com/gogpu/polyedit/internal/trig"
)

// FillMode selects how the interior of a polyline is rendered.
type FillMode int

const (
	// FillNone draws the outline only.
	FillNone FillMode = iota

	// FillShape fills the interior with the outline color.
	FillShape

	// FillBackground fills the interior with the body background color.
	FillBackground
)

// String returns the fill mode name.
func (f FillMode) String() string {
	switch f {
	case FillNone:
		return "none"
	case FillShape:
		return "shape"
	case FillBackground:
		return "background"
	}
	return "unknown"
}

// MinimalPenSize is the pen size reported for a negative width.
// Backends draw it as the thinnest line the device supports.
const MinimalPenSize = -1

// Polyline is an editable open or closed chain of integer vertices.
//
// Once construction is finalized a polyline always holds at least two
// vertices. Operations do not validate indices or sizes; callers keep those
// preconditions, and a polyline with fewer than two vertices has no
// meaningful geometry.
//
// A Polyline is not safe for concurrent use.
type Polyline struct {
	Item

	points   []Vertex
	width    int
	fill     FillMode
	settings Settings
}

// NewPolyline creates an empty polyline with a fresh identity.
func NewPolyline(opts ...Option) *Polyline {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Polyline{
		Item:     newItem(),
		settings: s,
	}
}

// NewPolylineFrom creates a polyline holding a copy of points.
func NewPolylineFrom(points []Vertex, opts ...Option) *Polyline {
	p := NewPolyline(opts...)
	p.points = slices.Clone(points)
	return p
}

// Clone returns a deep copy sharing the same identity and settings.
func (p *Polyline) Clone() *Polyline {
	c := *p
	c.points = slices.Clone(p.points)
	return &c
}

// Settings returns the configuration the polyline was created with.
func (p *Polyline) Settings() Settings {
	return p.settings
}

// IsFillable reports whether the host may offer fill modes for this item.
// Polylines are always fillable.
func (p *Polyline) IsFillable() bool {
	return true
}

// Width returns the stored stroke width; 0 means the default width.
func (p *Polyline) Width() int {
	return p.width
}

// SetWidth sets the stroke width.
func (p *Polyline) SetWidth(w int) {
	p.width = w
}

// Fill returns the fill mode.
func (p *Polyline) Fill() FillMode {
	return p.fill
}

// SetFill sets the fill mode.
func (p *Polyline) SetFill(f FillMode) {
	p.fill = f
}

// CornerCount returns the number of vertices.
func (p *Polyline) CornerCount() int {
	return len(p.points)
}

// Points returns a copy of the vertex list.
func (p *Polyline) Points() []Vertex {
	return slices.Clone(p.points)
}

// Point returns the vertex at index i.
func (p *Polyline) Point(i int) Vertex {
	return p.points[i]
}

// SetPoint overwrites the vertex at index i.
func (p *Polyline) SetPoint(i int, v Vertex) {
	p.points[i] = v
}

// PenSize returns the effective stroke width: the stored width when
// positive, the configured default when zero, and MinimalPenSize otherwise.
func (p *Polyline) PenSize() int {
	switch {
	case p.width > 0:
		return p.width
	case p.width == 0:
		return p.settings.DefaultLineWidth
	}
	return MinimalPenSize
}

// AddPoint appends v to the end of the vertex list.
func (p *Polyline) AddPoint(v Vertex) {
	p.points = append(p.points, v)
}

// AddCorner inserts v into the segment closest to it.
//
// Only the open chain of segments is considered; the closing segment from
// the last vertex back to the first is not. The new vertex lands between
// the two ends of the chosen segment. Ties go to the lowest segment index.
func (p *Polyline) AddCorner(v Vertex) {
	if len(p.points) < 2 {
		p.points = append(p.points, v)
		return
	}

	best := 0
	bestDist := -1
	for i := 0; i < len(p.points)-1; i++ {
		d := trig.SegmentDistance(trig.Point(p.points[i]), trig.Point(p.points[i+1]), trig.Point(v))
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}

	p.points = slices.Insert(p.points, best+1, v)
}

// RemoveCorner deletes the vertex at index i.
// The caller keeps at least two vertices.
func (p *Polyline) RemoveCorner(i int) {
	p.points = slices.Delete(p.points, i, i+1)
}

// DeleteSegment shrinks the polyline from its tail while drawing.
//
// While more than two vertices remain, the last one is dropped. If the new
// last vertex differs from v it is moved to v and shrinking stops;
// otherwise the trailing segment was degenerate at v and shrinking goes on.
// The first segment is always kept.
func (p *Polyline) DeleteSegment(v Vertex) {
	for len(p.points) > 2 {
		p.points = p.points[:len(p.points)-1]

		last := len(p.points) - 1
		if p.points[last] != v {
			p.points[last] = v
			break
		}
	}
}

// Offset translates every vertex by delta.
func (p *Polyline) Offset(delta Vertex) {
	for i := range p.points {
		p.points[i] = p.points[i].Add(delta)
	}
}

// MoveTo translates the polyline so that its first vertex lands on target.
func (p *Polyline) MoveTo(target Vertex) {
	if len(p.points) == 0 {
		return
	}
	p.Offset(target.Sub(p.points[0]))
}

// Position returns the first vertex, the polyline's reference point.
func (p *Polyline) Position() Vertex {
	if len(p.points) == 0 {
		return Vertex{}
	}
	return p.points[0]
}

// MirrorHorizontal reflects every vertex's X about center.X.
func (p *Polyline) MirrorHorizontal(center Vertex) {
	for i := range p.points {
		p.points[i] = p.points[i].MirrorX(center)
	}
}

// MirrorVertical reflects every vertex's Y about center.Y.
func (p *Polyline) MirrorVertical(center Vertex) {
	for i := range p.points {
		p.points[i] = p.points[i].MirrorY(center)
	}
}

// Rotate turns every vertex a quarter turn about center.
func (p *Polyline) Rotate(center Vertex, ccw bool) {
	c := trig.Point(center)
	for i := range p.points {
		p.points[i] = Vertex(trig.RotateQuarter(trig.Point(p.points[i]), c, ccw))
	}
}

// BoundingBox returns the box covering every vertex, grown by half the pen
// size (rounded up) on each side and reported with the Y axis reverted.
func (p *Polyline) BoundingBox() Rect {
	if len(p.points) == 0 {
		return Rect{}
	}

	lo, hi := p.points[0], p.points[0]
	for _, v := range p.points[1:] {
		lo.X = min(lo.X, v.X)
		lo.Y = min(lo.Y, v.Y)
		hi.X = max(hi.X, v.X)
		hi.Y = max(hi.Y, v.Y)
	}

	r := Rect{Origin: lo}.SetEnd(hi)
	r = r.Inflate((p.PenSize() + 1) / 2)
	return r.RevertYAxis()
}

// Inside reports whether any vertex, with its Y negated, lies in r.
func (p *Polyline) Inside(r Rect) bool {
	for _, v := range p.points {
		if r.Contains(Vertex{X: v.X, Y: -v.Y}) {
			return true
		}
	}
	return false
}
