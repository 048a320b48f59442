// Package svgplot renders polylines into SVG documents with ajstarks/svgo.
//
// Importing the package registers the "svg" output with the backend registry.
package svgplot

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/polyedit"
	"github.com/gogpu/polyedit/backend"
)

// Name is the registry name of the vector output.
const Name = "svg"

func init() {
	backend.Register(Name, func(cfg backend.Config) (backend.Output, error) {
		return New(cfg)
	})
}

type polygon struct {
	x, y  []int
	style string
}

// Plot is a backend.Output that records polygons and writes them as SVG.
type Plot struct {
	cfg      backend.Config
	polygons []polygon
}

// New creates an empty plot of cfg.Width x cfg.Height.
func New(cfg backend.Config) (*Plot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Plot{cfg: cfg}, nil
}

// Name returns "svg".
func (p *Plot) Name() string {
	return Name
}

// Len returns the number of recorded polygons.
func (p *Plot) Len() int {
	return len(p.polygons)
}

// DrawPolygon records one polygon styled for the pass.
func (p *Plot) DrawPolygon(points []polyedit.Vertex, pass polyedit.Pass) error {
	if len(points) == 0 || (!pass.Filled && !pass.Stroked) {
		return nil
	}

	pg := polygon{
		x:     make([]int, len(points)),
		y:     make([]int, len(points)),
		style: p.style(pass),
	}
	for i, v := range points {
		pg.x[i], pg.y[i] = v.X, v.Y
	}
	p.polygons = append(p.polygons, pg)
	return nil
}

func (p *Plot) style(pass polyedit.Pass) string {
	var sb strings.Builder
	if pass.Filled {
		sb.WriteString("fill:" + hex(p.cfg.Palette.Color(pass.FillLayer)))
	} else {
		sb.WriteString("fill:none")
	}
	if pass.Stroked {
		sb.WriteString(";stroke:" + hex(p.cfg.Palette.Color(pass.StrokeLayer)))
		// The group scale already applies to stroke widths.
		w := max(float64(pass.Width), 1/p.cfg.EffectiveScale())
		sb.WriteString(";stroke-width:" + strconv.FormatFloat(w, 'g', -1, 64))
		sb.WriteString(";stroke-linejoin:round;stroke-linecap:round")
	}
	return sb.String()
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Encode writes the recorded polygons as a standalone SVG document.
func (p *Plot) Encode(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(p.cfg.Width, p.cfg.Height)

	scale := p.cfg.EffectiveScale()
	if scale != 1 {
		canvas.Gtransform("scale(" + strconv.FormatFloat(scale, 'g', -1, 64) + ")")
	}
	for _, pg := range p.polygons {
		canvas.Polygon(pg.x, pg.y, pg.style)
	}
	if scale != 1 {
		canvas.Gend()
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("svgplot: encode: %w", ew.err)
	}
	polyedit.Logger().Debug("svgplot: document written", "polygons", len(p.polygons))
	return nil
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return len(b), nil
	}
	n, err := e.w.Write(b)
	if err != nil {
		e.err = err
	}
	return n, err
}
