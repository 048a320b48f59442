package polyedit

import "github.com/gogpu/polyedit/internal/trig"

// HitTest reports whether pos lies within the selection tolerance of the
// polyline's outline.
//
// The outline is treated as open: only the segments between consecutive
// vertices are tested, never the closing segment from the last vertex back
// to the first. HitTestRect treats the same outline as closed; callers rely
// on both behaviors.
//
// The tolerance is accuracy plus half the pen size, but never less than
// the configured minimum selection distance. Vertices are mapped through
// the configured transform before testing.
func (p *Polyline) HitTest(pos Vertex, accuracy int) bool {
	minDist := max(accuracy+p.PenSize()/2, p.settings.MinSelectionDistance)
	t := p.settings.Transform
	target := trig.Point(pos)

	for i := 1; i < len(p.points); i++ {
		start := trig.Point(t.TransformCoordinate(p.points[i-1]))
		end := trig.Point(t.TransformCoordinate(p.points[i]))

		if trig.SegmentHit(target, start, end, minDist) {
			return true
		}
	}
	return false
}

// HitTestRect reports whether the polyline touches r, or with contained
// set, whether r holds its entire bounding box.
//
// The outline is treated as a closed polygon: the segment from the last
// vertex back to the first is tested along with the others. Items flagged
// FlagDeleted or FlagSkip never match.
func (p *Polyline) HitTestRect(r Rect, contained bool, accuracy int) bool {
	if p.HasFlags(FlagDeleted | FlagSkip) {
		return false
	}

	sel := r.Normalize()
	if accuracy != 0 {
		sel = sel.Inflate(accuracy)
	}

	bbox := p.BoundingBox()
	if contained {
		return sel.ContainsRect(bbox)
	}

	// Disjoint from the bounds means disjoint from every segment.
	if !sel.Intersects(bbox) {
		return false
	}

	sel = sel.Inflate(p.width / 2)

	t := p.settings.Transform
	n := len(p.points)
	for i := range n {
		pt := t.TransformCoordinate(p.points[i])
		next := t.TransformCoordinate(p.points[(i+1)%n])

		if sel.Contains(pt) {
			return true
		}
		if sel.IntersectsSegment(pt, next) {
			return true
		}
	}
	return false
}
