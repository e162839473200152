package canvas

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFaceErrors(t *testing.T) {
	if _, err := NewFace(goregular.TTF, 0); err == nil {
		t.Error("NewFace with size 0 succeeded")
	}
	if _, err := NewFace([]byte("not a font"), 12); err == nil {
		t.Error("NewFace with garbage succeeded")
	}
}

func TestFaceMeasure(t *testing.T) {
	f, err := DefaultFace(10)
	if err != nil {
		t.Fatal(err)
	}
	w1, h := f.Measure("z")
	if !(w1 > 0) || h != 10 {
		t.Errorf("Measure(z) = %v, %v", w1, h)
	}
	w2, _ := f.Measure("zz")
	if w2 <= w1 {
		t.Errorf("Measure(zz) = %v, not wider than %v", w2, w1)
	}
	if w, _ := f.Measure(""); w != 0 {
		t.Errorf("Measure(\"\") = %v", w)
	}

	big := f.WithSize(20)
	if big.Size() != 20 || f.Size() != 10 {
		t.Errorf("WithSize: %v / %v", big.Size(), f.Size())
	}
	wb, _ := big.Measure("z")
	if wb <= w1 {
		t.Errorf("20px advance %v not larger than 10px advance %v", wb, w1)
	}
}

// A precomposed letter and its decomposed form shape to the same width.
func TestFaceMeasureNormalizes(t *testing.T) {
	f, err := DefaultFace(12)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := f.Measure("\u00e9")
	b, _ := f.Measure("e\u0301")
	if a != b {
		t.Errorf("é widths differ: %v vs %v", a, b)
	}
}

func TestFaceHasGlyphs(t *testing.T) {
	f, err := DefaultFace(12)
	if err != nil {
		t.Fatal(err)
	}
	if !f.HasGlyphs("z1 z2") {
		t.Error("Go Regular should cover ASCII")
	}
	if f.HasGlyphs("z\U0001F600") {
		t.Error("emoji reported as covered")
	}
}
