package polyedit

// Vertex is an integer 2D point in model space.
// All stored geometry uses exact integer arithmetic.
type Vertex struct {
	X, Y int
}

// Vt is a convenience function to create a Vertex.
func Vt(x, y int) Vertex {
	return Vertex{X: x, Y: y}
}

// Add returns the sum of two vertices (vector addition).
func (v Vertex) Add(w Vertex) Vertex {
	return Vertex{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vertices (vector subtraction).
func (v Vertex) Sub(w Vertex) Vertex {
	return Vertex{X: v.X - w.X, Y: v.Y - w.Y}
}

// Neg returns the vertex mirrored through the origin.
func (v Vertex) Neg() Vertex {
	return Vertex{X: -v.X, Y: -v.Y}
}

// Mul returns the vertex scaled by an integer factor.
func (v Vertex) Mul(s int) Vertex {
	return Vertex{X: v.X * s, Y: v.Y * s}
}

// LengthSquared returns the squared length of the vertex taken as a vector.
// The result is widened to int64 so that coordinates in the int32 range
// never overflow.
func (v Vertex) LengthSquared() int64 {
	x, y := int64(v.X), int64(v.Y)
	return x*x + y*y
}

// DistanceSquared returns the squared Euclidean distance between v and w.
func (v Vertex) DistanceSquared(w Vertex) int64 {
	return v.Sub(w).LengthSquared()
}

// MirrorX reflects the X coordinate about center.X.
func (v Vertex) MirrorX(center Vertex) Vertex {
	return Vertex{X: 2*center.X - v.X, Y: v.Y}
}

// MirrorY reflects the Y coordinate about center.Y.
func (v Vertex) MirrorY(center Vertex) Vertex {
	return Vertex{X: v.X, Y: 2*center.Y - v.Y}
}
