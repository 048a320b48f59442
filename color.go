package polyedit

import (
	"fmt"
	"image/color"
)

// Layer names the color role a render pass paints with.
type Layer int

const (
	// LayerDevice is the symbol body outline and shape fill color.
	LayerDevice Layer = iota

	// LayerDeviceBackground is the body background fill color.
	LayerDeviceBackground
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerDevice:
		return "device"
	case LayerDeviceBackground:
		return "device-background"
	}
	return "unknown"
}

// Palette maps layers to colors for a backend.
type Palette struct {
	Device     color.NRGBA
	Background color.NRGBA
}

// DefaultPalette returns the schematic editor's default body colors:
// dark red outlines on a pale yellow background.
func DefaultPalette() Palette {
	return Palette{
		Device:     color.NRGBA{R: 0x84, G: 0x00, B: 0x00, A: 0xff},
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xc2, A: 0xff},
	}
}

// Color returns the color assigned to layer l.
func (p Palette) Color(l Layer) color.NRGBA {
	if l == LayerDeviceBackground {
		return p.Background
	}
	return p.Device
}

// ParseHex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'.
func ParseHex(hex string) (color.NRGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	default:
		ok = false
	}

	if !ok {
		return color.NRGBA{}, fmt.Errorf("polyedit: invalid hex color %q", hex)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
