package scaler

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

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Determinant returns the determinant of the linear part of the matrix.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix and whether the matrix was invertible.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Identity(), false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// TransformFromParams builds the affine transform mapping source pixel
// coordinates to plot coordinates for an image of the given shape,
// combining translation (x0, y0), rotation (angle in radians), per-axis
// scaling (dx, dy) and optional horizontal/vertical flips.
//
// The returned matrix is the forward source-to-plot transform; ScaleTr
// inverts it internally to locate the source sample of each destination
// pixel.
func TransformFromParams(x0, y0, angle, dx, dy float64, hflip, vflip bool, cols, rows int) (Matrix, error) {
	rot := Rotate(-angle)
	tr1 := Translate(float64(cols)/2+0.5, float64(rows)/2+0.5)
	xflip, yflip := 1.0, 1.0
	if hflip {
		xflip = -1.0
	}
	if vflip {
		yflip = -1.0
	}
	if dx == 0 || dy == 0 {
		return Identity(), domainErrorf("zero scaling factor (dx=%g, dy=%g)", dx, dy)
	}
	sc := Scale(xflip/dx, yflip/dy)
	tr2 := Translate(-x0, -y0)
	// plot-to-pixel transform, composed right to left
	tr := tr1.Multiply(sc).Multiply(rot).Multiply(tr2)
	inv, ok := tr.Invert()
	if !ok {
		return Identity(), domainErrorf("transform is not invertible")
	}
	return inv, nil
}
