// Package polyedit provides an editable polyline for schematic symbol editors.
//
// # Overview
//
// A Polyline is an ordered list of integer vertices with a stroke width
// and a fill mode. It answers the geometric queries an interactive editor
// needs (bounding box, point and rectangle hit tests, nearest-segment
// insertion) and supports exact affine edits: offset, mirror and quarter
// turn rotation. An Editor layered over a Polyline turns pointer events
// into vertex-list changes for three interactive modes: create, reshape
// and translate.
//
// # Quick Start
//
//	import "github.com/gogpu/polyedit"
//
//	p := polyedit.NewPolyline()
//	ed := polyedit.NewEditor(p)
//
//	// Draw two segments
//	_ = ed.BeginEdit(polyedit.ModeCreate, polyedit.Vt(0, 0))
//	ed.CalcEdit(polyedit.Vt(100, 0))
//	ed.ContinueEdit(polyedit.Vt(100, 0))
//	ed.CalcEdit(polyedit.Vt(100, 100))
//	ed.EndEdit(polyedit.Vt(100, 100))
//
//	// Hit test in screen space
//	hit := p.HitTest(polyedit.Vt(50, 2), 0)
//
// # Rendering
//
// Polyline.Render maps vertices to device space and sends one polygon per
// pass of the render plan (see Plan) to a Backend. Backends live in
// sub-packages:
//   - backend/ggraster: raster images through github.com/gogpu/gg
//   - backend/svgplot: SVG documents through github.com/ajstarks/svgo
//
// # Coordinate System
//
// Vertices are stored in internal units (mils) with Y growing downward.
// BoundingBox reports Y reverted (growing upward), and the default hit-test
// transform flips Y the same way, so positions given to HitTest and
// HitTestRect are in the reverted space.
//
// # Concurrency
//
// Polyline, Editor and Library are not safe for concurrent use. A host
// sharing them between goroutines must serialize every call.
package polyedit
