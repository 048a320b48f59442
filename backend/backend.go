package backend

import (
	"errors"
	"io"

	"github.com/gogpu/polyedit"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrInvalidSize is returned when a backend is asked for an empty canvas.
	ErrInvalidSize = errors.New("backend: width and height must be positive")
)

// Output is a polyedit.Backend that accumulates polygons into a document
// and encodes it on demand.
//
// Outputs must be registered via Register() and are created via Get().
type Output interface {
	polyedit.Backend

	// Name returns the backend identifier (e.g., "png", "svg").
	Name() string

	// Encode writes the document rendered so far to w.
	Encode(w io.Writer) error
}

// Config holds the canvas settings shared by every output.
type Config struct {
	// Width and Height are the canvas size in device pixels.
	Width, Height int

	// Scale converts device units from Render into pixels. Zero means 1.
	Scale float64

	// Palette maps render layers to colors.
	Palette polyedit.Palette
}

// DefaultConfig returns a 512x512 canvas at unit scale with the default palette.
func DefaultConfig() Config {
	return Config{
		Width:   512,
		Height:  512,
		Scale:   1,
		Palette: polyedit.DefaultPalette(),
	}
}

// Validate reports whether the canvas can be allocated.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidSize
	}
	return nil
}

// EffectiveScale returns Scale, or 1 when Scale is not positive.
func (c Config) EffectiveScale() float64 {
	if c.Scale <= 0 {
		return 1
	}
	return c.Scale
}

// StrokeWidth converts a pass width to device pixels.
// Zero-width passes become one-pixel hairlines.
func (c Config) StrokeWidth(pass polyedit.Pass) float64 {
	w := float64(pass.Width) * c.EffectiveScale()
	if w < 1 {
		return 1
	}
	return w
}
