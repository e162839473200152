package repdemo

import "math"

// Point2D is an ordered pair of latent factors (z1, z2).
//
// The same type carries encoded codes (h1, h2) after Matrix.Apply; the
// fields then hold representation-space coordinates.
type Point2D struct {
	Z1, Z2 float64
}

// Pt is a convenience function to create a Point2D.
func Pt(z1, z2 float64) Point2D {
	return Point2D{Z1: z1, Z2: z2}
}

// Add returns the component-wise sum of two points.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{Z1: p.Z1 + q.Z1, Z2: p.Z2 + q.Z2}
}

// Mul returns the point scaled by a scalar.
func (p Point2D) Mul(s float64) Point2D {
	return Point2D{Z1: p.Z1 * s, Z2: p.Z2 * s}
}

// Dot returns the dot product of two vectors.
func (p Point2D) Dot(q Point2D) float64 {
	return p.Z1*q.Z1 + p.Z2*q.Z2
}

// Length returns the Euclidean norm.
func (p Point2D) Length() float64 {
	return math.Hypot(p.Z1, p.Z2)
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point2D) IsFinite() bool {
	return !math.IsNaN(p.Z1) && !math.IsInf(p.Z1, 0) &&
		!math.IsNaN(p.Z2) && !math.IsInf(p.Z2, 0)
}

// Columns splits a batch into its two coordinate sequences.
func Columns(points []Point2D) (z1, z2 []float64) {
	z1 = make([]float64, len(points))
	z2 = make([]float64, len(points))
	for i, p := range points {
		z1[i] = p.Z1
		z2[i] = p.Z2
	}
	return z1, z2
}
