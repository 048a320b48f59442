package polyedit

// Info is the raw data a status panel shows for a polyline.
// Formatting into text with units is left to the inspect package.
type Info struct {
	Width       int
	BoundingBox Rect
	CornerCount int
	Start       Vertex
}

// Info returns the polyline's inspection record.
func (p *Polyline) Info() Info {
	return Info{
		Width:       p.width,
		BoundingBox: p.BoundingBox(),
		CornerCount: len(p.points),
		Start:       p.Position(),
	}
}
