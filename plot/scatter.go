package plot

import (
	"log/slog"
	"math"

	"github.com/gogpu/repdemo"
	"github.com/gogpu/repdemo/canvas"
)

// Default logical canvas size of the demo.
const (
	DefaultWidth  = 300
	DefaultHeight = 300
)

const (
	pointRadius = 2.5
	// axisExtent is how far, in visual-scale units, the encoder axes
	// extend from the origin in each direction.
	axisExtent = 4
	labelSize  = 11
	axisDash   = 4
)

// Renderer draws the scatter view. It keeps the parsed label font
// between frames and is not safe for concurrent use.
type Renderer struct {
	face   *canvas.Face
	labels [2]string
}

// Axis labels, with a fallback for fonts lacking the hat and subscripts.
var (
	axisLabels  = [2]string{"ẑ₁", "ẑ₂"}
	asciiLabels = [2]string{"z1", "z2"}
)

// NewRenderer creates a renderer. If the label font cannot be loaded the
// renderer still draws everything except the axis labels.
func NewRenderer() *Renderer {
	face, err := canvas.DefaultFace(labelSize)
	if err != nil {
		repdemo.Logger().Warn("plot: label font unavailable", slog.Any("err", err))
		return &Renderer{labels: asciiLabels}
	}
	labels := axisLabels
	if !face.HasGlyphs(labels[0] + labels[1]) {
		labels = asciiLabels
	}
	return &Renderer{face: face, labels: labels}
}

// Render draws one frame with a throwaway Renderer.
func Render(s canvas.Surface, points []repdemo.Point2D, m repdemo.Matrix, width, height int, theme Theme) {
	NewRenderer().Render(s, points, m, width, height, theme)
}

// VisualScale returns the number of logical pixels per representation
// unit for a canvas of the given size.
func VisualScale(width, height int) float64 {
	return math.Min(float64(width)/2, float64(height)/2) * 0.25
}

// Project maps a representation-space point to logical pixel
// coordinates. The y axis is flipped: data y grows upward, screen y
// grows downward.
func Project(h repdemo.Point2D, width, height int) (x, y float64) {
	scale := VisualScale(width, height)
	return float64(width)/2 + h.Z1*scale, float64(height)/2 - h.Z2*scale
}

// Render redraws the whole frame for (points, m, width, height, theme)
// on s. The backing buffer is sized by the surface's device pixel ratio
// and all drawing happens in logical pixels. A surface without a drawing
// context makes Render a no-op.
func (r *Renderer) Render(s canvas.Surface, points []repdemo.Point2D, m repdemo.Matrix, width, height int, theme Theme) {
	log := repdemo.Logger()
	if s == nil || width <= 0 || height <= 0 {
		return
	}
	dpr := s.DevicePixelRatio()
	if !(dpr > 0) {
		dpr = 1
	}
	dw, dh := canvas.DeviceSize(width, height, dpr)
	dc := s.Context(dw, dh)
	if dc == nil {
		log.Debug("plot: no drawing context, frame skipped")
		return
	}
	dc.Scale(dpr, dpr)

	pal := theme.Palette()
	w, h := float64(width), float64(height)
	hw, hh := w/2, h/2
	scale := VisualScale(width, height)

	dc.Clear(pal.Background)

	// Crosshair through the origin.
	dc.SetColor(pal.Grid)
	dc.SetLineWidth(1)
	dc.DrawLine(hw, 0, hw, h)
	dc.DrawLine(0, hh, w, hh)
	_ = dc.Stroke()

	// Images of the latent basis vectors: the encoder's axes.
	dc.SetColor(pal.Axis)
	dc.SetLineWidth(0.5)
	dc.SetDash(axisDash, axisDash)
	for i := 0; i < 2; i++ {
		ax := m.Column(i).Mul(scale * axisExtent)
		dc.DrawLine(hw-ax.Z1, hh+ax.Z2, hw+ax.Z1, hh-ax.Z2)
	}
	_ = dc.Stroke()
	dc.SetDash()

	// Encoded points. Each disc is filled on its own so overlaps darken.
	dc.SetColor(pal.Point)
	drawn := 0
	for _, p := range points {
		code := m.Apply(p)
		if !code.IsFinite() {
			continue
		}
		x, y := Project(code, width, height)
		dc.DrawCircle(x, y, pointRadius)
		_ = dc.Fill()
		drawn++
	}

	if r.face != nil {
		dc.SetFontFace(r.face)
		dc.SetColor(pal.Label)
		dc.DrawString(r.labels[0], w-20, hh-6)
		dc.DrawString(r.labels[1], hw+6, 14)
	}

	log.Debug("plot: frame rendered",
		slog.Int("width", dw),
		slog.Int("height", dh),
		slog.Int("points", drawn),
		slog.String("theme", theme.String()))
}
