// Command polydemo replays a scripted polyline edit session and renders the
// result.
//
// Usage:
//
//	polydemo [-script edits.txt] [-formats png,svg] [-out polyline] [-thumb 64]
//
// Without -script a built-in session is replayed. Each format is written to
// <out>.<format>. The inspection panel is printed to stdout.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/text/language"

	"github.com/gogpu/polyedit"
	"github.com/gogpu/polyedit/backend"
	_ "github.com/gogpu/polyedit/backend/ggraster"
	_ "github.com/gogpu/polyedit/backend/svgplot"
	"github.com/gogpu/polyedit/inspect"
)

func main() {
	var (
		script  = flag.String("script", "", "edit script (default: built-in demo)")
		out     = flag.String("out", "polyline", "output file name without extension")
		formats = flag.String("formats", "png,svg", "comma-separated outputs: "+strings.Join(backend.Available(), ","))
		width   = flag.Int("width", 512, "canvas width")
		height  = flag.Int("height", 512, "canvas height")
		scale   = flag.Float64("scale", 1, "pixels per mil")
		units   = flag.String("units", "mm", "display units: mils, mm, in")
		lang    = flag.String("lang", "en", "language for the inspection panel")
		fg      = flag.String("color", "", "outline color as hex (default 840000)")
		bg      = flag.String("background", "", "background fill color as hex (default ffffc2)")
		thumb   = flag.Int("thumb", 0, "also write <out>_thumb.png with this width (0 disables)")
		verbose = flag.Bool("v", false, "log edit events to stderr")
	)
	flag.Parse()

	if *verbose {
		polyedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	u, err := inspect.ParseUnits(*units)
	if err != nil {
		log.Fatal(err)
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("bad -lang: %v", err)
	}

	p, err := replay(*script)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}

	info := p.Info()
	fmt.Println(inspect.SelectMenuText(info, u, tag))
	for _, it := range inspect.PanelItems(info, u, tag) {
		fmt.Printf("  %-20s %s\n", it.Label, it.Text)
	}

	cfg := backend.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Scale = *width, *height, *scale
	if *fg != "" {
		if cfg.Palette.Device, err = polyedit.ParseHex(*fg); err != nil {
			log.Fatal(err)
		}
	}
	if *bg != "" {
		if cfg.Palette.Background, err = polyedit.ParseHex(*bg); err != nil {
			log.Fatal(err)
		}
	}

	for _, name := range strings.Split(*formats, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		path := *out + "." + name
		if err := render(p, name, cfg, path, *thumb); err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		log.Printf("wrote %s", path)
	}
}

func replay(path string) (*polyedit.Polyline, error) {
	var r io.Reader = strings.NewReader(defaultScript)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	p := polyedit.NewPolyline()
	if err := newSession(p).run(r); err != nil {
		return nil, err
	}
	if p.CornerCount() < 2 {
		return nil, polyedit.ErrTooFewPoints
	}
	return p, nil
}

// render draws p centered on a fresh output and writes it to path.
func render(p *polyedit.Polyline, name string, cfg backend.Config, path string, thumbWidth int) error {
	o, err := backend.Get(name, cfg)
	if err != nil {
		return err
	}
	if c, ok := o.(io.Closer); ok {
		defer c.Close()
	}

	s := cfg.EffectiveScale()
	opts := polyedit.RenderOptions{
		Offset: polyedit.Vertex{
			X: int(float64(cfg.Width) / (2 * s)),
			Y: int(float64(cfg.Height) / (2 * s)),
		},
		Transform: polyedit.DefaultTransform,
		AllowFill: true,
	}
	if err := p.Render(o, opts); err != nil {
		return err
	}

	if err := writeFile(path, o.Encode); err != nil {
		return err
	}

	if ir, ok := o.(interface{ Image() image.Image }); ok && thumbWidth > 0 {
		img := thumbnail(ir.Image(), thumbWidth)
		thumbPath := strings.TrimSuffix(path, "."+name) + "_thumb.png"
		return writeFile(thumbPath, func(w io.Writer) error { return png.Encode(w, img) })
	}
	return nil
}

// thumbnail scales src to width w, keeping its aspect ratio.
func thumbnail(src image.Image, w int) image.Image {
	b := src.Bounds()
	h := max(b.Dy()*w/max(b.Dx(), 1), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
