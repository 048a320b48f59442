package polyedit

import (
	"fmt"
	"log/slog"
	"slices"
)

// EditMode identifies the interactive edit being performed.
type EditMode int

const (
	// ModeNone means no edit is in progress.
	ModeNone EditMode = iota

	// ModeCreate draws a new polyline one segment at a time.
	ModeCreate

	// ModeReshape drags an existing vertex or inserts a new one.
	ModeReshape

	// ModeTranslate moves the whole polyline.
	ModeTranslate
)

// String returns the edit mode name.
func (m EditMode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeCreate:
		return "create"
	case ModeReshape:
		return "reshape"
	case ModeTranslate:
		return "translate"
	}
	return fmt.Sprintf("EditMode(%d)", int(m))
}

// TargetKind tells what a reshape edit does to its target index.
type TargetKind int

const (
	// TargetDrag moves the existing vertex at the target index.
	TargetDrag TargetKind = iota

	// TargetInsert inserts a new vertex at the target index on the next
	// CalcEdit, after which the target becomes a TargetDrag.
	TargetInsert
)

// ReshapeTarget is the vertex a reshape edit acts on.
type ReshapeTarget struct {
	Kind  TargetKind
	Index int
}

// Editor drives the interactive edits of one polyline.
//
// The host calls BeginEdit on the first pointer event, CalcEdit on every
// motion, ContinueEdit on intermediate clicks and EndEdit to finish. The
// editor keeps only the mode, the reshape target and two anchor positions;
// it never holds on to the vertex slice across mutations.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	poly *Polyline

	mode         EditMode
	target       ReshapeTarget
	anchorPoint  Vertex
	anchorCursor Vertex
}

// NewEditor returns an idle editor for p.
func NewEditor(p *Polyline) *Editor {
	return &Editor{poly: p}
}

// Polyline returns the polyline being edited.
func (e *Editor) Polyline() *Polyline {
	return e.poly
}

// Mode returns the current edit mode.
func (e *Editor) Mode() EditMode {
	return e.mode
}

// Target returns the reshape target. It is meaningful only in ModeReshape.
func (e *Editor) Target() ReshapeTarget {
	return e.target
}

// Anchor returns the vertex captured when the edit began.
func (e *Editor) Anchor() Vertex {
	return e.anchorPoint
}

// BeginEdit starts an edit in the given mode at pointer position pos.
//
// ModeCreate appends pos twice, giving a zero-length first segment whose
// end follows the pointer. ModeReshape picks the vertex or segment
// midpoint nearest to pos. ModeTranslate records pos and the first vertex
// as anchors.
func (e *Editor) BeginEdit(mode EditMode, pos Vertex) error {
	if e.mode != ModeNone {
		return fmt.Errorf("%w: %s", ErrEditInProgress, e.mode)
	}

	switch mode {
	case ModeCreate:
		e.poly.AddPoint(pos)
		e.poly.AddPoint(pos)
	case ModeReshape:
		if e.poly.CornerCount() < 2 {
			return ErrTooFewPoints
		}
		e.target, e.anchorPoint = nearestTarget(e.poly.points, pos)
		Logger().Debug("polyedit: reshape target",
			slog.Int("index", e.target.Index),
			slog.Bool("insert", e.target.Kind == TargetInsert))
	case ModeTranslate:
		if e.poly.CornerCount() < 2 {
			return ErrTooFewPoints
		}
		e.anchorCursor = pos
		e.anchorPoint = e.poly.points[0]
	default:
		return fmt.Errorf("%w: %s", ErrInvalidEditMode, mode)
	}

	e.mode = mode
	Logger().Debug("polyedit: begin edit",
		slog.String("mode", mode.String()),
		slog.Int("x", pos.X), slog.Int("y", pos.Y))
	return nil
}

// nearestTarget scans the vertices and segment midpoints for the one
// nearest to pos.
//
// Squared distances are compared. A midpoint's squared distance carries a
// +1 bias, so a vertex wins any tie against a midpoint at the same spot.
// Earlier candidates win exact ties.
func nearestTarget(points []Vertex, pos Vertex) (ReshapeTarget, Vertex) {
	target := ReshapeTarget{Kind: TargetDrag, Index: 0}
	anchor := points[0]
	best := pos.DistanceSquared(points[0])

	prev := points[0]
	for i, v := range points {
		if d := pos.DistanceSquared(v); d < best {
			target = ReshapeTarget{Kind: TargetDrag, Index: i}
			anchor = v
			best = d
		}

		// Twice the offset from the midpoint of [prev, v], squared and
		// quartered, is the squared offset without halving coordinates.
		offset := pos.Mul(2).Sub(v).Sub(prev)
		if d := offset.LengthSquared()/4 + 1; d < best {
			target = ReshapeTarget{Kind: TargetInsert, Index: i}
			anchor = v
			best = d
		}

		prev = v
	}
	return target, anchor
}

// ContinueEdit handles an intermediate click. While creating, it starts a
// new segment at pos unless the current last segment has zero length. It
// reports whether the click was consumed, which happens only in ModeCreate.
func (e *Editor) ContinueEdit(pos Vertex) bool {
	if e.mode != ModeCreate {
		return false
	}

	pts := e.poly.points
	if n := len(pts); pts[n-2] != pts[n-1] {
		e.poly.AddPoint(pos)
	}
	return true
}

// CalcEdit updates the geometry for pointer position pos without
// finishing the edit.
func (e *Editor) CalcEdit(pos Vertex) {
	switch e.mode {
	case ModeCreate:
		e.poly.points[len(e.poly.points)-1] = pos
	case ModeReshape:
		if e.target.Kind == TargetInsert {
			e.poly.points = slices.Insert(e.poly.points, e.target.Index, pos)
			e.target.Kind = TargetDrag
		}
		e.poly.points[e.target.Index] = pos
	case ModeTranslate:
		e.poly.MoveTo(e.anchorPoint.Add(pos).Sub(e.anchorCursor))
	}
}

// EndEdit finishes the current edit and returns the editor to idle.
//
// A finished creation drops a duplicated last vertex. A finished reshape
// removes the dragged vertex if it landed on either neighbor. Both keep at
// least two vertices.
func (e *Editor) EndEdit(pos Vertex) {
	pts := e.poly.points

	switch e.mode {
	case ModeCreate:
		if n := len(pts); n > 2 && pts[n-2] == pts[n-1] {
			e.poly.points = pts[:n-1]
			Logger().Debug("polyedit: dropped duplicate end point", slog.Int("count", n-1))
		}
	case ModeReshape:
		i := e.target.Index
		if e.target.Kind == TargetDrag && len(pts) > 2 {
			if (i > 0 && pts[i] == pts[i-1]) || (i < len(pts)-1 && pts[i] == pts[i+1]) {
				e.poly.RemoveCorner(i)
				Logger().Debug("polyedit: removed coincident vertex", slog.Int("index", i))
			}
		}
	}

	Logger().Debug("polyedit: end edit",
		slog.String("mode", e.mode.String()),
		slog.Int("x", pos.X), slog.Int("y", pos.Y),
		slog.Int("corners", e.poly.CornerCount()))

	e.mode = ModeNone
	e.target = ReshapeTarget{}
}
