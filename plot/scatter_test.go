package plot

import (
	"bytes"
	"math"
	"testing"

	"github.com/gogpu/repdemo"
	"github.com/gogpu/repdemo/canvas"
)

func nearColor(a, b canvas.RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}

func at(s *canvas.ImageSurface, x, y int) canvas.RGBA {
	return canvas.FromColor(s.Image().RGBAAt(x, y))
}

func TestVisualScaleAndProject(t *testing.T) {
	if got := VisualScale(300, 300); got != 37.5 {
		t.Errorf("VisualScale(300,300) = %v", got)
	}
	if got := VisualScale(400, 200); got != 25 {
		t.Errorf("VisualScale(400,200) = %v", got)
	}
	x, y := Project(repdemo.Pt(1, 1), 300, 300)
	if x != 187.5 || y != 112.5 {
		t.Errorf("Project(1,1) = (%v,%v), want (187.5,112.5)", x, y)
	}
	x, y = Project(repdemo.Pt(0, 0), 300, 200)
	if x != 150 || y != 100 {
		t.Errorf("origin = (%v,%v), want canvas centre", x, y)
	}
}

func TestRenderBufferFollowsDPR(t *testing.T) {
	for _, dpr := range []float64{1, 2, 1.5} {
		s := canvas.NewImageSurface(dpr)
		Render(s, nil, repdemo.Identity(), 300, 200, ThemeLight)
		wantW, wantH := canvas.DeviceSize(300, 200, dpr)
		if b := s.Image().Bounds(); b.Dx() != wantW || b.Dy() != wantH {
			t.Errorf("dpr %v: buffer %v, want %dx%d", dpr, b, wantW, wantH)
		}
	}
}

func TestRenderBackground(t *testing.T) {
	for _, theme := range []Theme{ThemeLight, ThemeDark} {
		s := canvas.NewImageSurface(2)
		Render(s, nil, repdemo.Identity(), DefaultWidth, DefaultHeight, theme)
		if got, want := at(s, 4, 4), theme.Palette().Background; !nearColor(got, want, 1.0/255) {
			t.Errorf("%v corner = %+v, want %+v", theme, got, want)
		}
	}
}

func TestRenderCrosshair(t *testing.T) {
	s := canvas.NewImageSurface(2)
	Render(s, nil, repdemo.MatrixFromParams(45, 1, 1), DefaultWidth, DefaultHeight, ThemeDark)

	grid := ThemeDark.Palette().Grid
	// Vertical and horizontal lines through the logical centre (150,150).
	for _, p := range [][2]int{{300, 80}, {299, 80}, {80, 300}, {80, 299}} {
		if got := at(s, p[0], p[1]); !nearColor(got, grid, 2.0/255) {
			t.Errorf("At(%d,%d) = %+v, want grid %+v", p[0], p[1], got, grid)
		}
	}
	if got := at(s, 290, 80); !nearColor(got, ThemeDark.Palette().Background, 1.0/255) {
		t.Errorf("beside the crosshair = %+v, want background", got)
	}
}

func TestRenderDashedAxes(t *testing.T) {
	s := canvas.NewImageSurface(2)
	Render(s, nil, repdemo.MatrixFromParams(45, 1, 1), DefaultWidth, DefaultHeight, ThemeDark)

	// The first axis runs up and to the right through the centre; sample
	// the device pixels it crosses diagonally.
	on, off := 0, 0
	for k := 10; k < 200; k++ {
		if at(s, 300+k, 299-k).R > 0.25 {
			on++
		} else {
			off++
		}
	}
	if on == 0 || off == 0 {
		t.Errorf("axis pixels on=%d off=%d, want a dash pattern", on, off)
	}
}

func TestRenderPoint(t *testing.T) {
	s := canvas.NewImageSurface(2)
	pts := []repdemo.Point2D{repdemo.Pt(1, 1)}
	Render(s, pts, repdemo.Identity(), DefaultWidth, DefaultHeight, ThemeDark)

	// Project(1,1) = (187.5, 112.5) logical.
	got := at(s, 375, 225)
	if !(got.B > got.R+0.3) {
		t.Errorf("point pixel = %+v, want blue", got)
	}
	if got := at(s, 375, 245); !nearColor(got, ThemeDark.Palette().Background, 1.0/255) {
		t.Errorf("outside the disc = %+v, want background", got)
	}

	// The encoder moves the point: a scale of 2 on z1 doubles its offset.
	Render(s, pts, repdemo.Diag(2, 1), DefaultWidth, DefaultHeight, ThemeDark)
	if got := at(s, 450, 225); !(got.B > got.R+0.3) {
		t.Errorf("scaled point pixel = %+v, want blue", got)
	}
	if got := at(s, 375, 225); got.B > got.R+0.3 {
		t.Errorf("old position still painted: %+v", got)
	}
}

func TestRenderSkipsNonFinitePoints(t *testing.T) {
	s := canvas.NewImageSurface(1)
	pts := []repdemo.Point2D{repdemo.Pt(math.NaN(), 0), repdemo.Pt(0, math.Inf(1))}
	Render(s, pts, repdemo.Identity(), 50, 50, ThemeLight)
	if s.Image() == nil {
		t.Fatal("no frame rendered")
	}
}

func TestRenderNoContext(t *testing.T) {
	// Must not panic.
	Render(canvas.Unavailable{DPR: 2}, []repdemo.Point2D{repdemo.Pt(0, 0)}, repdemo.Identity(), 300, 300, ThemeLight)
	Render(nil, nil, repdemo.Identity(), 300, 300, ThemeLight)

	s := canvas.NewImageSurface(1)
	Render(s, nil, repdemo.Identity(), 0, 300, ThemeLight)
	if s.Image() != nil {
		t.Error("zero-width render allocated a frame")
	}
}

func TestRenderLabels(t *testing.T) {
	withLabels := canvas.NewImageSurface(1)
	NewRenderer().Render(withLabels, nil, repdemo.Identity(), 300, 300, ThemeLight)

	plain := canvas.NewImageSurface(1)
	(&Renderer{}).Render(plain, nil, repdemo.Identity(), 300, 300, ThemeLight)

	if bytes.Equal(withLabels.Image().Pix, plain.Image().Pix) {
		t.Error("labels left no trace on the frame")
	}
}

func TestRenderIsPureFunctionOfInputs(t *testing.T) {
	pts, err := repdemo.NewSeededSampler(1).Generate(50, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	m := repdemo.MatrixFromParams(30, 1.5, 0.7)
	r := NewRenderer()

	a := canvas.NewImageSurface(1)
	r.Render(a, pts, m, 120, 90, ThemeDark)
	b := canvas.NewImageSurface(1)
	r.Render(b, nil, repdemo.Identity(), 120, 90, ThemeLight)
	r.Render(b, pts, m, 120, 90, ThemeDark)

	if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
		t.Error("a re-render differs from a fresh render of the same inputs")
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
		ok   bool
	}{
		{"light", ThemeLight, true},
		{"", ThemeLight, true},
		{"DARK", ThemeDark, true},
		{" dark ", ThemeDark, true},
		{"sepia", ThemeLight, false},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseTheme(%q) = %v, %v", tt.in, got, err)
		}
	}
	if ThemeDark.String() != "dark" || ThemeLight.String() != "light" {
		t.Error("Theme.String mismatch")
	}
}

func TestPalettesDiffer(t *testing.T) {
	light, dark := ThemeLight.Palette(), ThemeDark.Palette()
	if light.Background == dark.Background {
		t.Error("themes share a background")
	}
	if light.Point != dark.Point || light.Point.A != 0.6 {
		t.Errorf("point colour = %+v / %+v", light.Point, dark.Point)
	}
}
