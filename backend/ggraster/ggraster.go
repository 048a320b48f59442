// Package ggraster renders polylines into raster images with gogpu/gg.
//
// Importing the package registers the "png" output with the backend registry.
package ggraster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/polyedit"
	"github.com/gogpu/polyedit/backend"
)

// Name is the registry name of the raster output.
const Name = "png"

func init() {
	backend.Register(Name, func(cfg backend.Config) (backend.Output, error) {
		return New(cfg)
	})
}

// Raster is a backend.Output drawing onto a gg.Context.
type Raster struct {
	dc    *gg.Context
	cfg   backend.Config
	scale float64
}

// New creates a raster output with a white canvas of cfg.Width x cfg.Height.
func New(cfg backend.Config) (*Raster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	dc.ClearWithColor(gg.RGB(1, 1, 1))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	return &Raster{dc: dc, cfg: cfg, scale: cfg.EffectiveScale()}, nil
}

// Name returns "png".
func (r *Raster) Name() string {
	return Name
}

// DrawPolygon fills and strokes one closed polygon as the pass requests.
func (r *Raster) DrawPolygon(points []polyedit.Vertex, pass polyedit.Pass) error {
	if len(points) == 0 || (!pass.Filled && !pass.Stroked) {
		return nil
	}

	if pass.Filled {
		r.tracePath(points)
		r.dc.SetColor(r.cfg.Palette.Color(pass.FillLayer))
		if err := r.dc.Fill(); err != nil {
			return fmt.Errorf("ggraster: fill: %w", err)
		}
	}

	if pass.Stroked {
		r.tracePath(points)
		r.dc.SetColor(r.cfg.Palette.Color(pass.StrokeLayer))
		r.dc.SetLineWidth(r.cfg.StrokeWidth(pass))
		if err := r.dc.Stroke(); err != nil {
			return fmt.Errorf("ggraster: stroke: %w", err)
		}
	}

	polyedit.Logger().Debug("ggraster: polygon drawn",
		"points", len(points), "filled", pass.Filled, "stroked", pass.Stroked)
	return nil
}

func (r *Raster) tracePath(points []polyedit.Vertex) {
	r.dc.ClearPath()
	r.dc.MoveTo(float64(points[0].X)*r.scale, float64(points[0].Y)*r.scale)
	for _, v := range points[1:] {
		r.dc.LineTo(float64(v.X)*r.scale, float64(v.Y)*r.scale)
	}
	r.dc.ClosePath()
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// Encode writes the image as PNG.
func (r *Raster) Encode(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("ggraster: encode: %w", err)
	}
	return nil
}

// Close releases the drawing context.
func (r *Raster) Close() error {
	return r.dc.Close()
}
