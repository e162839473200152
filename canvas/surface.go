package canvas

import (
	"errors"
	"image"
	"image/png"
	"io"
	"math"
	"os"
)

// ErrNoFrame is returned when exporting a surface that was never drawn.
var ErrNoFrame = errors.New("canvas: surface has no frame")

// Surface is a raster target with a device pixel ratio.
//
// Context sizes the backing buffer to width×height device pixels, resets
// the drawing state and returns a context for it. It returns nil when
// the surface cannot draw; callers treat that as "nothing to do".
type Surface interface {
	DevicePixelRatio() float64
	Context(width, height int) *Context
}

// DeviceSize converts logical dimensions to device pixels for dpr.
func DeviceSize(width, height int, dpr float64) (int, int) {
	if !(dpr > 0) {
		dpr = 1
	}
	return int(math.Ceil(float64(width)*dpr - 1e-9)), int(math.Ceil(float64(height)*dpr - 1e-9))
}

// ImageSurface is a software Surface backed by an *image.RGBA. The
// buffer is reused while the requested size stays the same.
type ImageSurface struct {
	dpr float64
	ctx *Context
}

// NewImageSurface creates a surface with the given device pixel ratio;
// non-positive ratios mean 1.
func NewImageSurface(dpr float64) *ImageSurface {
	if !(dpr > 0) {
		dpr = 1
	}
	return &ImageSurface{dpr: dpr}
}

// DevicePixelRatio implements Surface.
func (s *ImageSurface) DevicePixelRatio() float64 { return s.dpr }

// Context implements Surface. Like assigning canvas.width, it always
// yields a cleared buffer with default state.
func (s *ImageSurface) Context(width, height int) *Context {
	if width <= 0 || height <= 0 {
		return nil
	}
	if s.ctx == nil || s.ctx.Width() != width || s.ctx.Height() != height {
		s.ctx = NewContext(width, height)
		return s.ctx
	}
	s.ctx.Clear(Transparent)
	s.ctx.resetState()
	return s.ctx
}

// Image returns the last frame, or nil before the first Context call.
func (s *ImageSurface) Image() *image.RGBA {
	if s.ctx == nil {
		return nil
	}
	return s.ctx.Image()
}

// EncodePNG writes the last frame as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if s.ctx == nil {
		return ErrNoFrame
	}
	return s.ctx.EncodePNG(w)
}

// SavePNG saves the last frame to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	if s.ctx == nil {
		return ErrNoFrame
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := s.ctx.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Unavailable is a Surface without a drawing context, such as a headless
// run with no display. Rendering onto it is a no-op.
type Unavailable struct {
	DPR float64
}

// DevicePixelRatio implements Surface.
func (u Unavailable) DevicePixelRatio() float64 {
	if !(u.DPR > 0) {
		return 1
	}
	return u.DPR
}

// Context implements Surface and always returns nil.
func (Unavailable) Context(int, int) *Context { return nil }

func encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
