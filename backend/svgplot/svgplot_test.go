package svgplot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/polyedit"
	"github.com/gogpu/polyedit/backend"
)

func triangle(fill polyedit.FillMode, width int) *polyedit.Polyline {
	p := polyedit.NewPolylineFrom([]polyedit.Vertex{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 10, Y: 15}})
	p.SetFill(fill)
	p.SetWidth(width)
	return p
}

func encode(t *testing.T, p *Plot) string {
	t.Helper()
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return buf.String()
}

func TestRegistered(t *testing.T) {
	out, err := backend.Get(Name, backend.DefaultConfig())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if out.Name() != Name {
		t.Errorf("Name() = %q, want %q", out.Name(), Name)
	}
}

func TestEncodeFillModes(t *testing.T) {
	tests := []struct {
		name   string
		fill   polyedit.FillMode
		width  int
		styles []string
	}{
		{
			name:   "outline",
			fill:   polyedit.FillNone,
			width:  3,
			styles: []string{`style="fill:none;stroke:#840000;stroke-width:3;`},
		},
		{
			name:   "shape",
			fill:   polyedit.FillShape,
			width:  3,
			styles: []string{`style="fill:#840000;stroke:#840000;stroke-width:3;`},
		},
		{
			name:  "background",
			fill:  polyedit.FillBackground,
			width: 3,
			styles: []string{
				`style="fill:#ffffc2"`,
				`style="fill:none;stroke:#840000;stroke-width:3;`,
			},
		},
		{
			name:   "background without pen",
			fill:   polyedit.FillBackground,
			width:  -1,
			styles: []string{`style="fill:#ffffc2"`},
		},
		{
			name:   "zero width uses default pen",
			fill:   polyedit.FillNone,
			width:  0,
			styles: []string{`style="fill:none;stroke:#840000;stroke-width:6;`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(backend.DefaultConfig())
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if err := triangle(tt.fill, tt.width).Render(p, polyedit.RenderOptions{AllowFill: true}); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if p.Len() != len(tt.styles) {
				t.Fatalf("Len() = %d, want %d", p.Len(), len(tt.styles))
			}

			doc := encode(t, p)
			if !strings.Contains(doc, `points="0,0 20,0 10,15"`) {
				t.Errorf("missing polygon points in:\n%s", doc)
			}
			for _, s := range tt.styles {
				if !strings.Contains(doc, s) {
					t.Errorf("missing %s in:\n%s", s, doc)
				}
			}
		})
	}
}

func TestEncodeDocument(t *testing.T) {
	cfg := backend.DefaultConfig()
	cfg.Width, cfg.Height = 100, 80
	p, _ := New(cfg)

	doc := encode(t, p)
	if !strings.Contains(doc, `width="100" height="80"`) {
		t.Errorf("missing canvas size in:\n%s", doc)
	}
	if !strings.HasSuffix(strings.TrimSpace(doc), "</svg>") {
		t.Errorf("document not closed:\n%s", doc)
	}
	if strings.Contains(doc, "<g") {
		t.Error("unit scale should not emit a transform group")
	}
}

func TestEncodeScaled(t *testing.T) {
	cfg := backend.DefaultConfig()
	cfg.Scale = 2
	p, _ := New(cfg)
	if err := triangle(polyedit.FillNone, -1).Render(p, polyedit.RenderOptions{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	doc := encode(t, p)
	if !strings.Contains(doc, `transform="scale(2)"`) {
		t.Errorf("missing scale group in:\n%s", doc)
	}
	if !strings.Contains(doc, "stroke-width:0.5;") {
		t.Errorf("hairline should be one device pixel:\n%s", doc)
	}
}

type failWriter struct{}

var errDiskFull = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestEncodeWriteError(t *testing.T) {
	p, _ := New(backend.DefaultConfig())
	if err := p.Encode(failWriter{}); !errors.Is(err, errDiskFull) {
		t.Errorf("Encode() error = %v, want %v", err, errDiskFull)
	}
}
