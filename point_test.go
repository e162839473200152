package repdemo

import (
	"math"
	"testing"
)

func TestPoint2DOps(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)
	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add = %+v", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %+v", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot = %v", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
}

func TestPoint2DIsFinite(t *testing.T) {
	tests := []struct {
		p    Point2D
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(math.NaN(), 0), false},
		{Pt(0, math.Inf(-1)), false},
	}
	for _, tt := range tests {
		if got := tt.p.IsFinite(); got != tt.want {
			t.Errorf("%+v.IsFinite() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestColumns(t *testing.T) {
	z1, z2 := Columns([]Point2D{Pt(1, 2), Pt(3, 4)})
	if len(z1) != 2 || z1[0] != 1 || z1[1] != 3 || z2[0] != 2 || z2[1] != 4 {
		t.Errorf("Columns = %v, %v", z1, z2)
	}
	a, b := Columns(nil)
	if len(a) != 0 || len(b) != 0 {
		t.Errorf("Columns(nil) = %v, %v", a, b)
	}
}
