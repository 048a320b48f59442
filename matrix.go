package polyedit

// Transform maps a model-space vertex to device space.
// Implementations must be pure: the same input always yields the same
// output, and no state is carried between calls.
type Transform interface {
	TransformCoordinate(v Vertex) Vertex
}

// TransformFunc adapts an ordinary function to the Transform interface.
type TransformFunc func(Vertex) Vertex

// TransformCoordinate calls f(v).
func (f TransformFunc) TransformCoordinate(v Vertex) Vertex {
	return f(v)
}

// Matrix is an integer 2x2 linear transformation.
//
//	| A  B |
//	| D  E |
//
// This represents the transformation:
//
//	x' = A*x + B*y
//	y' = D*x + E*y
//
// Symbol editors only need rotations by quarter turns and mirroring, all of
// which have entries in {-1, 0, 1}, so the integer form is exact.
type Matrix struct {
	A, B int
	D, E int
}

// DefaultTransform is the model-to-screen transform used for hit testing:
// it keeps X and flips Y, since symbol coordinates are stored y-down and
// drawn y-up.
var DefaultTransform = Matrix{A: 1, B: 0, D: 0, E: -1}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, B: 0, D: 0, E: 1}
}

// QuarterTurn returns the matrix rotating by n quarter turns.
// Positive n rotates in the same direction as Polyline.Rotate with ccw set.
func QuarterTurn(n int) Matrix {
	switch ((n % 4) + 4) % 4 {
	case 1:
		return Matrix{A: 0, B: -1, D: 1, E: 0}
	case 2:
		return Matrix{A: -1, B: 0, D: 0, E: -1}
	case 3:
		return Matrix{A: 0, B: 1, D: -1, E: 0}
	}
	return Identity()
}

// MirrorX returns the matrix negating X.
func MirrorX() Matrix {
	return Matrix{A: -1, B: 0, D: 0, E: 1}
}

// MirrorY returns the matrix negating Y.
func MirrorY() Matrix {
	return Matrix{A: 1, B: 0, D: 0, E: -1}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
	}
}

// TransformCoordinate applies the transformation to a vertex.
func (m Matrix) TransformCoordinate(v Vertex) Vertex {
	return Vertex{
		X: m.A*v.X + m.B*v.Y,
		Y: m.D*v.X + m.E*v.Y,
	}
}

// Determinant returns A*E - B*D.
func (m Matrix) Determinant() int {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix.
// Only unimodular matrices (determinant of 1 or -1) have an exact integer
// inverse; for any other matrix Invert returns the identity and false.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det != 1 && det != -1 {
		return Identity(), false
	}
	return Matrix{
		A: m.E * det,
		B: -m.B * det,
		D: -m.D * det,
		E: m.A * det,
	}, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
