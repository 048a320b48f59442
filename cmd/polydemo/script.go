package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/polyedit"
)

// defaultScript draws a triangle, reshapes it into a quadrilateral and moves it.
const defaultScript = `# draw
begin create -100 -80
move 100 -80
click 100 -80
move 0 90
click 0 90
end 0 90
# insert a corner on the first edge and drag it down
begin reshape 0 -80
move 0 -140
end 0 -140
# shift the whole shape
begin translate 0 0
move 10 20
end 10 20
width 4
fill background
`

var errSyntax = errors.New("syntax error")

// session replays an edit script against a single polyline.
type session struct {
	editor *polyedit.Editor
}

func newSession(p *polyedit.Polyline) *session {
	return &session{editor: polyedit.NewEditor(p)}
}

// run executes every line of the script. Blank lines and lines starting
// with '#' are skipped.
func (s *session) run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := s.exec(strings.Fields(text)); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}

func (s *session) exec(f []string) error {
	p := s.editor.Polyline()

	switch f[0] {
	case "begin":
		if len(f) != 4 {
			return fmt.Errorf("%w: begin MODE X Y", errSyntax)
		}
		mode, err := parseMode(f[1])
		if err != nil {
			return err
		}
		v, err := parseVertex(f[2:])
		if err != nil {
			return err
		}
		return s.editor.BeginEdit(mode, v)

	case "click", "move", "end", "corner", "delete", "offset":
		v, err := parseVertex(f[1:])
		if err != nil {
			return err
		}
		switch f[0] {
		case "click":
			s.editor.ContinueEdit(v)
		case "move":
			s.editor.CalcEdit(v)
		case "end":
			s.editor.EndEdit(v)
		case "corner":
			p.AddCorner(v)
		case "delete":
			p.DeleteSegment(v)
		case "offset":
			p.Offset(v)
		}
		return nil

	case "mirror", "rotate":
		if len(f) != 4 {
			return fmt.Errorf("%w: %s DIR X Y", errSyntax, f[0])
		}
		c, err := parseVertex(f[2:])
		if err != nil {
			return err
		}
		switch {
		case f[0] == "mirror" && f[1] == "h":
			p.MirrorHorizontal(c)
		case f[0] == "mirror" && f[1] == "v":
			p.MirrorVertical(c)
		case f[0] == "rotate" && f[1] == "ccw":
			p.Rotate(c, true)
		case f[0] == "rotate" && f[1] == "cw":
			p.Rotate(c, false)
		default:
			return fmt.Errorf("%w: bad direction %q", errSyntax, f[1])
		}
		return nil

	case "remove", "width":
		if len(f) != 2 {
			return fmt.Errorf("%w: %s N", errSyntax, f[0])
		}
		n, err := strconv.Atoi(f[1])
		if err != nil {
			return fmt.Errorf("%w: %v", errSyntax, err)
		}
		if f[0] == "width" {
			p.SetWidth(n)
			return nil
		}
		if n < 0 || n >= p.CornerCount() {
			return fmt.Errorf("remove: index %d out of range", n)
		}
		p.RemoveCorner(n)
		return nil

	case "fill":
		if len(f) != 2 {
			return fmt.Errorf("%w: fill MODE", errSyntax)
		}
		mode, err := parseFill(f[1])
		if err != nil {
			return err
		}
		p.SetFill(mode)
		return nil
	}
	return fmt.Errorf("%w: unknown command %q", errSyntax, f[0])
}

func parseVertex(f []string) (polyedit.Vertex, error) {
	if len(f) != 2 {
		return polyedit.Vertex{}, fmt.Errorf("%w: want X Y", errSyntax)
	}
	x, err := strconv.Atoi(f[0])
	if err != nil {
		return polyedit.Vertex{}, fmt.Errorf("%w: %v", errSyntax, err)
	}
	y, err := strconv.Atoi(f[1])
	if err != nil {
		return polyedit.Vertex{}, fmt.Errorf("%w: %v", errSyntax, err)
	}
	return polyedit.Vertex{X: x, Y: y}, nil
}

func parseMode(s string) (polyedit.EditMode, error) {
	for _, m := range []polyedit.EditMode{polyedit.ModeCreate, polyedit.ModeReshape, polyedit.ModeTranslate} {
		if m.String() == s {
			return m, nil
		}
	}
	return polyedit.ModeNone, fmt.Errorf("%w: unknown mode %q", errSyntax, s)
}

func parseFill(s string) (polyedit.FillMode, error) {
	for _, m := range []polyedit.FillMode{polyedit.FillNone, polyedit.FillShape, polyedit.FillBackground} {
		if m.String() == s {
			return m, nil
		}
	}
	return polyedit.FillNone, fmt.Errorf("%w: unknown fill %q", errSyntax, s)
}
