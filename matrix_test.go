package repdemo

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const eps = 1e-9

func matrixNear(a, b Matrix, tol float64) bool {
	return math.Abs(a.A-b.A) < tol && math.Abs(a.B-b.B) < tol &&
		math.Abs(a.C-b.C) < tol && math.Abs(a.D-b.D) < tol
}

func TestMatrixFromParams(t *testing.T) {
	s := math.Sqrt2 / 2
	tests := []struct {
		name   string
		angle  float64
		sx, sy float64
		want   Matrix
	}{
		{"identity", 0, 1, 1, Identity()},
		{"scale only", 0, 2, 0.5, Matrix{A: 2, D: 0.5}},
		{"quarter turn", 90, 1, 1, Matrix{A: 0, B: -1, C: 1, D: 0}},
		{"45 degrees", 45, 1, 1, Matrix{A: s, B: -s, C: s, D: s}},
		{"45 degrees scaled", 45, 2, 3, Matrix{A: 2 * s, B: -3 * s, C: 2 * s, D: 3 * s}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatrixFromParams(tt.angle, tt.sx, tt.sy)
			if !matrixNear(got, tt.want, eps) {
				t.Errorf("MatrixFromParams(%v, %v, %v) = %+v, want %+v", tt.angle, tt.sx, tt.sy, got, tt.want)
			}
		})
	}
}

// det(R(θ)·S) = sx·sy for every rotation; gonum's LU determinant is the
// reference.
func TestMatrixDetIsScaleProduct(t *testing.T) {
	for angle := 0.0; angle <= 90; angle += 5 {
		for _, sc := range [][2]float64{{1, 1}, {0.1, 3}, {2.5, 0.4}, {3, 3}} {
			m := MatrixFromParams(angle, sc[0], sc[1])
			want := sc[0] * sc[1]
			if got := m.Det(); math.Abs(got-want) > eps {
				t.Errorf("angle %v scale %v: Det() = %v, want %v", angle, sc, got, want)
			}

			r := m.Rows()
			ref := mat.Det(mat.NewDense(2, 2, []float64{r[0][0], r[0][1], r[1][0], r[1][1]}))
			if math.Abs(m.Det()-ref) > 1e-9 {
				t.Errorf("angle %v scale %v: Det() = %v, gonum = %v", angle, sc, m.Det(), ref)
			}
		}
	}
}

func TestMatrixApply(t *testing.T) {
	m := MatrixFromParams(90, 2, 1)
	got := m.Apply(Pt(1, 0))
	if math.Abs(got.Z1) > eps || math.Abs(got.Z2-2) > eps {
		t.Errorf("Apply(1,0) = %+v, want (0,2)", got)
	}

	pts := []Point2D{Pt(1, 0), Pt(0, 1), Pt(-1, 2)}
	all := m.ApplyAll(pts)
	if len(all) != len(pts) {
		t.Fatalf("ApplyAll len = %d, want %d", len(all), len(pts))
	}
	for i, p := range pts {
		if all[i] != m.Apply(p) {
			t.Errorf("ApplyAll[%d] = %+v, want %+v", i, all[i], m.Apply(p))
		}
	}
	if pts[0] != Pt(1, 0) {
		t.Error("ApplyAll modified its input")
	}
}

func TestMatrixMultiply(t *testing.T) {
	a := Matrix{A: 1, B: 2, C: 3, D: 4}
	b := Matrix{A: 5, B: 6, C: 7, D: 8}
	want := Matrix{A: 19, B: 22, C: 43, D: 50}
	if got := a.Multiply(b); got != want {
		t.Errorf("Multiply = %+v, want %+v", got, want)
	}
	if got := a.Multiply(Identity()); got != a {
		t.Errorf("Multiply(Identity) = %+v, want %+v", got, a)
	}

	r := a.Rows()
	dense := mat.NewDense(2, 2, []float64{r[0][0], r[0][1], r[1][0], r[1][1]})
	rb := b.Rows()
	var prod mat.Dense
	prod.Mul(dense, mat.NewDense(2, 2, []float64{rb[0][0], rb[0][1], rb[1][0], rb[1][1]}))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := want.Rows()[i][j]; got != prod.At(i, j) {
				t.Errorf("entry (%d,%d) = %v, gonum = %v", i, j, got, prod.At(i, j))
			}
		}
	}
}

func TestMatrixColumn(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4}
	if got := m.Column(0); got != Pt(1, 3) {
		t.Errorf("Column(0) = %+v, want (1,3)", got)
	}
	if got := m.Column(1); got != Pt(2, 4) {
		t.Errorf("Column(1) = %+v, want (2,4)", got)
	}
	// Columns are the images of the basis vectors.
	if m.Column(0) != m.Apply(Pt(1, 0)) || m.Column(1) != m.Apply(Pt(0, 1)) {
		t.Error("Column disagrees with Apply on the basis")
	}
}

func TestMatrixPredicates(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Diag(2, 1).IsIdentity() {
		t.Error("Diag(2,1).IsIdentity() = true")
	}
	if !MatrixFromParams(33, 0.1, 0.1).IsInvertible() {
		t.Error("smallest slider scales should stay invertible")
	}
	if (Matrix{A: 1, B: 2, C: 2, D: 4}).IsInvertible() {
		t.Error("singular matrix reported invertible")
	}
}
