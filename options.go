package polyedit

// Default settings applied by NewPolyline.
const (
	// DefaultLineWidth is the stroke width used when a polyline's width is 0,
	// in internal units (mils).
	DefaultLineWidth = 6

	// MinimumSelectionDistance is the smallest hit-test tolerance, in
	// internal units, regardless of the requested accuracy.
	MinimumSelectionDistance = 3
)

// Settings holds the injected configuration a Polyline reads when
// computing pen size and hit tests.
type Settings struct {
	// DefaultLineWidth replaces a zero polyline width.
	DefaultLineWidth int

	// MinSelectionDistance is the lower bound of the point hit-test tolerance.
	MinSelectionDistance int

	// Transform maps model space to the space hit-test positions are given in.
	Transform Transform
}

// Option configures a Polyline during creation.
//
// Example:
//
//	// Default settings
//	p := polyedit.NewPolyline()
//
//	// Thicker default pen and an untransformed hit-test space
//	p := polyedit.NewPolyline(
//	    polyedit.WithDefaultLineWidth(10),
//	    polyedit.WithTransform(polyedit.Identity()),
//	)
type Option func(*Settings)

// defaultSettings returns the default polyline settings.
func defaultSettings() Settings {
	return Settings{
		DefaultLineWidth:     DefaultLineWidth,
		MinSelectionDistance: MinimumSelectionDistance,
		Transform:            DefaultTransform,
	}
}

// WithDefaultLineWidth sets the width used for polylines whose own width is 0.
func WithDefaultLineWidth(w int) Option {
	return func(s *Settings) {
		s.DefaultLineWidth = w
	}
}

// WithMinSelectionDistance sets the lower bound of the point hit-test tolerance.
func WithMinSelectionDistance(d int) Option {
	return func(s *Settings) {
		s.MinSelectionDistance = d
	}
}

// WithTransform sets the transform applied to each vertex before hit testing.
// A nil transform is ignored.
func WithTransform(t Transform) Option {
	return func(s *Settings) {
		if t != nil {
			s.Transform = t
		}
	}
}
