package repdemo

import "math"

// Matrix is a 2x2 linear encoder in row-major order:
//
//	| a  b |
//	| c  d |
//
// which maps latent factors to codes as
//
//	h1 = a*z1 + b*z2
//	h2 = c*z1 + d*z2
type Matrix struct {
	A, B float64
	C, D float64
}

// Identity returns the identity encoder.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0,
		C: 0, D: 1,
	}
}

// Diag creates an axis-aligned scaling encoder.
func Diag(sx, sy float64) Matrix {
	return Matrix{
		A: sx, B: 0,
		C: 0, D: sy,
	}
}

// Rotation creates a rotation encoder (angle in radians).
func Rotation(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin,
		C: sin, D: cos,
	}
}

// MatrixFromParams builds the encoder R(θ)·diag(scaleX, scaleY) from a
// rotation in degrees and two axis scales:
//
//	| scaleX·cosθ  -scaleY·sinθ |
//	| scaleX·sinθ   scaleY·cosθ |
func MatrixFromParams(angleDeg, scaleX, scaleY float64) Matrix {
	return Rotation(angleDeg * math.Pi / 180).Multiply(Diag(scaleX, scaleY))
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
	}
}

// Apply encodes a single point (matrix-vector product).
func (m Matrix) Apply(p Point2D) Point2D {
	return Point2D{
		Z1: m.A*p.Z1 + m.B*p.Z2,
		Z2: m.C*p.Z1 + m.D*p.Z2,
	}
}

// ApplyAll encodes a batch into a freshly allocated slice.
func (m Matrix) ApplyAll(points []Point2D) []Point2D {
	out := make([]Point2D, len(points))
	for i, p := range points {
		out[i] = m.Apply(p)
	}
	return out
}

// Column returns the image of the i-th standard basis vector (0 or 1),
// i.e. the direction the encoder assigns to latent factor i+1.
func (m Matrix) Column(i int) Point2D {
	if i == 0 {
		return Point2D{Z1: m.A, Z2: m.C}
	}
	return Point2D{Z1: m.B, Z2: m.D}
}

// Det returns the determinant. For MatrixFromParams it equals
// scaleX·scaleY regardless of the angle.
func (m Matrix) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// IsInvertible reports whether the encoder preserves all information.
func (m Matrix) IsInvertible() bool {
	return math.Abs(m.Det()) > 1e-12
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 &&
		m.C == 0 && m.D == 1
}

// Rows returns the entries row by row.
func (m Matrix) Rows() [2][2]float64 {
	return [2][2]float64{{m.A, m.B}, {m.C, m.D}}
}
