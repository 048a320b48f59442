package inspect

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Units selects how internal mil values are shown.
type Units int

const (
	// Mils shows values as integer thousandths of an inch.
	Mils Units = iota

	// Millimetres shows values in millimetres.
	Millimetres

	// Inches shows values in inches.
	Inches
)

const milsPerInch = 1000

// String returns the unit suffix.
func (u Units) String() string {
	switch u {
	case Mils:
		return "mils"
	case Millimetres:
		return "mm"
	case Inches:
		return "in"
	}
	return fmt.Sprintf("Units(%d)", int(u))
}

// ParseUnits accepts the suffixes String returns.
func ParseUnits(s string) (Units, error) {
	switch s {
	case "mils", "mil":
		return Mils, nil
	case "mm":
		return Millimetres, nil
	case "in", "inch", "inches":
		return Inches, nil
	}
	return Mils, fmt.Errorf("inspect: unknown units %q", s)
}

// FromMils converts an internal value into u.
func FromMils(u Units, v int) float64 {
	switch u {
	case Millimetres:
		return float64(v) * 25.4 / milsPerInch
	case Inches:
		return float64(v) / milsPerInch
	}
	return float64(v)
}

// ValueText formats v, given in mils, with its unit suffix for tag.
func ValueText(u Units, v int, tag language.Tag) string {
	return formatValue(newPrinter(tag), u, v)
}

func formatValue(p *message.Printer, u Units, v int) string {
	switch u {
	case Millimetres:
		return p.Sprintf("%.4f mm", FromMils(u, v))
	case Inches:
		return p.Sprintf("%.4f in", FromMils(u, v))
	}
	return p.Sprintf("%d mils", v)
}
