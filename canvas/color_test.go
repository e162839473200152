package canvas

import (
	"image/color"
	"math"
	"testing"
)

func near(a, b RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#ffffff", White},
		{"000000", Black},
		{"#fff", White},
		{"#338dff", RGBA{R: 0x33 / 255.0, G: 0x8d / 255.0, B: 1, A: 1}},
		{"#ff000080", RGBA{R: 1, A: 128 / 255.0}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error = %v", tt.in, err)
			continue
		}
		if !near(got, tt.want, 1e-9) {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12", "#ggg", "#112233zz"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) succeeded", bad)
		}
	}
}

func TestHexFallsBackToBlack(t *testing.T) {
	if got := Hex("nope"); got != Black {
		t.Errorf("Hex(nope) = %+v, want black", got)
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := RGBA{R: 0.2, G: 0.55, B: 1, A: 0.6}
	got := FromColor(c.Color())
	if !near(got, c, 1.0/255) {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
	n := c.Color().(color.NRGBA)
	if n.A != 153 {
		t.Errorf("alpha byte = %d, want 153", n.A)
	}
}

func TestBlend(t *testing.T) {
	if got := Black.Blend(White, 0); !near(got, Black, 1e-6) {
		t.Errorf("Blend(0) = %+v", got)
	}
	if got := Black.Blend(White, 1); !near(got, White, 1e-6) {
		t.Errorf("Blend(1) = %+v", got)
	}
	mid := Black.Blend(White.WithAlpha(0), 0.5)
	if mid.A != 0.5 {
		t.Errorf("Blend alpha = %v, want 0.5", mid.A)
	}
	if !(mid.R > 0 && mid.R < 1) {
		t.Errorf("Blend midpoint R = %v", mid.R)
	}
}
