package g

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Elements store a *Matrix in their "matrix" attribute; a nil pointer means
// "no transform" and is distinct from the identity matrix.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Translated returns the matrix composed with a translation.
func (m Matrix) Translated(x, y float64) Matrix {
	return m.Multiply(Translate(x, y))
}

// Scaled returns the matrix composed with a scale.
func (m Matrix) Scaled(x, y float64) Matrix {
	return m.Multiply(Scale(x, y))
}

// Rotated returns the matrix composed with a rotation (angle in radians).
func (m Matrix) Rotated(angle float64) Matrix {
	return m.Multiply(Rotate(angle))
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// Equal reports whether two matrices are equal within tolerance eps.
func (m Matrix) Equal(other Matrix, eps float64) bool {
	return math.Abs(m.A-other.A) <= eps &&
		math.Abs(m.B-other.B) <= eps &&
		math.Abs(m.C-other.C) <= eps &&
		math.Abs(m.D-other.D) <= eps &&
		math.Abs(m.E-other.E) <= eps &&
		math.Abs(m.F-other.F) <= eps
}

// Clone returns a pointer to a copy of the matrix. Elements store matrices
// by pointer in their attribute maps; Clone keeps two elements from sharing
// one mutable matrix.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	cp := *m
	return &cp
}
