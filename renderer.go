package polyedit

import (
	"fmt"
	"log/slog"
)

// Pass is one polygon drawing request in a render plan.
type Pass struct {
	// Filled requests the interior painted with FillLayer.
	Filled    bool
	FillLayer Layer

	// Stroked requests the outline drawn with StrokeLayer at Width.
	// A Width of 0 asks for the thinnest line the device can draw.
	Stroked     bool
	StrokeLayer Layer
	Width       int
}

// Backend is the interface for drawing polygons produced by Render.
// Points are in device space, already transformed and offset.
type Backend interface {
	// DrawPolygon draws one closed polygon for the given pass.
	// Returns an error if the drawing operation fails.
	DrawPolygon(points []Vertex, pass Pass) error
}

// Plan returns the ordered passes that render a polygon with the given
// fill mode and pen size.
//
//	fill            pen > 0                          pen <= 0
//	FillNone        stroke(device)                   stroke(device, hairline)
//	FillShape       fill+stroke(device)              fill+stroke(device, hairline)
//	FillBackground  fill(background), stroke(device) fill(background)
//
// Every backend consumes the same plan, so the raster and vector outputs
// never disagree about fills.
func Plan(fill FillMode, penSize int) []Pass {
	width := max(penSize, 0)
	stroke := Pass{Stroked: true, StrokeLayer: LayerDevice, Width: width}

	switch fill {
	case FillShape:
		stroke.Filled = true
		stroke.FillLayer = LayerDevice
		return []Pass{stroke}
	case FillBackground:
		passes := []Pass{{Filled: true, FillLayer: LayerDeviceBackground}}
		if penSize > 0 {
			passes = append(passes, stroke)
		}
		return passes
	}
	return []Pass{stroke}
}

// RenderOptions controls how a polyline is mapped onto a backend.
type RenderOptions struct {
	// Offset is added to every vertex after the transform.
	Offset Vertex

	// Transform maps model space to device space. Nil means Identity.
	Transform Transform

	// AllowFill enables the polyline's fill mode. When false the polyline
	// is drawn as an outline only, as for a ghost image during a drag.
	AllowFill bool
}

// Render draws the polyline on b, one DrawPolygon call per planned pass.
func (p *Polyline) Render(b Backend, opts RenderOptions) error {
	if b == nil {
		return ErrNilBackend
	}
	if len(p.points) < 2 {
		return ErrTooFewPoints
	}

	var t Transform = Identity()
	if opts.Transform != nil {
		t = opts.Transform
	}

	corners := make([]Vertex, len(p.points))
	for i, v := range p.points {
		corners[i] = t.TransformCoordinate(v).Add(opts.Offset)
	}

	fill := p.fill
	if !opts.AllowFill {
		fill = FillNone
	}

	for i, pass := range Plan(fill, p.PenSize()) {
		if err := b.DrawPolygon(corners, pass); err != nil {
			Logger().Warn("polyedit: render pass failed", slog.Int("pass", i), slog.Any("err", err))
			return fmt.Errorf("polyedit: render pass %d: %w", i, err)
		}
	}
	return nil
}
