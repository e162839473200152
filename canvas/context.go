package canvas

import (
	"image"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Context is the drawing context of one surface frame. It holds the
// pixel buffer, the current path (in device space), the paint state and
// the current transformation.
type Context struct {
	img  *image.RGBA
	rast *vector.Rasterizer

	path      Path
	color     RGBA
	lineWidth float64
	dash      *Dash
	face      *Face

	matrix Matrix
	stack  []Matrix
}

// NewContext creates a context with a transparent buffer of the given
// device-pixel dimensions.
func NewContext(width, height int) *Context {
	return NewContextForImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewContextForImage creates a context that draws directly into img.
func NewContextForImage(img *image.RGBA) *Context {
	b := img.Bounds()
	c := &Context{
		img:  img,
		rast: vector.NewRasterizer(b.Dx(), b.Dy()),
	}
	c.resetState()
	return c
}

// resetState restores the default paint state and transform, as
// resizing an HTML canvas does.
func (c *Context) resetState() {
	c.path.Clear()
	c.color = Black
	c.lineWidth = 1
	c.dash = nil
	c.matrix = Identity()
	c.stack = c.stack[:0]
}

// Width returns the buffer width in device pixels.
func (c *Context) Width() int { return c.img.Bounds().Dx() }

// Height returns the buffer height in device pixels.
func (c *Context) Height() int { return c.img.Bounds().Dy() }

// Image returns the backing buffer.
func (c *Context) Image() *image.RGBA { return c.img }

// Clear fills the whole buffer with col, replacing what was there.
func (c *Context) Clear(col RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// SetColor sets the paint color.
func (c *Context) SetColor(col RGBA) { c.color = col }

// SetRGBA sets the paint color from components in [0, 1].
func (c *Context) SetRGBA(r, g, b, a float64) { c.color = RGBA2(r, g, b, a) }

// SetHexColor sets the paint color from a hex string.
func (c *Context) SetHexColor(hex string) { c.color = Hex(hex) }

// SetLineWidth sets the stroke width in user-space units.
func (c *Context) SetLineWidth(width float64) { c.lineWidth = width }

// SetDash sets the dash pattern; no arguments return to solid lines.
//
//	dc.SetDash(4, 4) // 4 units dash, 4 units gap
//	dc.SetDash()     // solid
func (c *Context) SetDash(lengths ...float64) { c.dash = NewDash(lengths...) }

// IsDashed returns true if the current stroke uses a dash pattern.
func (c *Context) IsDashed() bool { return c.dash.IsDashed() }

// SetFontFace sets the face used by DrawString.
func (c *Context) SetFontFace(f *Face) { c.face = f }

// Push saves the current transformation.
func (c *Context) Push() { c.stack = append(c.stack, c.matrix) }

// Pop restores the last saved transformation.
func (c *Context) Pop() {
	if n := len(c.stack); n > 0 {
		c.matrix = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// Identity resets the current transformation.
func (c *Context) Identity() { c.matrix = Identity() }

// Translate applies a translation to the current transformation.
func (c *Context) Translate(x, y float64) { c.matrix = c.matrix.Multiply(Translate(x, y)) }

// Scale applies a scale to the current transformation.
func (c *Context) Scale(x, y float64) { c.matrix = c.matrix.Multiply(Scale(x, y)) }

// Transform returns the current transformation.
func (c *Context) Transform() Matrix { return c.matrix }

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(c.matrix.TransformPoint(Pt(x, y)))
}

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) {
	c.path.LineTo(c.matrix.TransformPoint(Pt(x, y)))
}

// CubicTo adds a cubic Bézier curve to the current path.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(
		c.matrix.TransformPoint(Pt(c1x, c1y)),
		c.matrix.TransformPoint(Pt(c2x, c2y)),
		c.matrix.TransformPoint(Pt(x, y)))
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() { c.path.Close() }

// ClearPath clears the current path.
func (c *Context) ClearPath() { c.path.Clear() }

// DrawLine adds a line segment as its own subpath.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
}

// DrawCircle adds a circle as four cubic arcs.
func (c *Context) DrawCircle(x, y, r float64) {
	const k = 0.5522847498307936
	offset := r * k

	c.MoveTo(x+r, y)
	c.CubicTo(x+r, y+offset, x+offset, y+r, x, y+r)
	c.CubicTo(x-offset, y+r, x-r, y+offset, x-r, y)
	c.CubicTo(x-r, y-offset, x-offset, y-r, x, y-r)
	c.CubicTo(x+offset, y-r, x+r, y-offset, x+r, y)
	c.ClosePath()
}

// Fill fills the current path and clears it.
func (c *Context) Fill() error {
	if r := c.region(1); !r.Empty() {
		c.begin(r)
		c.path.rasterize(c.rast, origin(r))
		c.composite(r)
	}
	c.path.Clear()
	return nil
}

// Stroke strokes the current path with the line width and dash pattern
// and clears it.
func (c *Context) Stroke() error {
	scale := c.matrix.ScaleFactor()
	w := c.lineWidth * scale
	r := c.region(w/2 + 1)
	if r.Empty() || !(w > 0) {
		c.path.Clear()
		return nil
	}

	c.begin(r)
	off := origin(r)
	dash := c.dash.Scale(scale)
	for _, poly := range c.path.flatten() {
		if !dash.IsDashed() {
			strokePolyline(c.rast, poly, w, off)
			continue
		}
		for _, piece := range dash.split(poly) {
			strokePolyline(c.rast, piece, w, off)
		}
	}
	c.composite(r)
	c.path.Clear()
	return nil
}

// DrawString draws s with its baseline starting at (x, y). It does
// nothing when no face is set.
func (c *Context) DrawString(s string, x, y float64) {
	if c.face == nil || s == "" {
		return
	}
	px := c.face.Size() * c.matrix.ScaleFactor()
	if !(px > 0) {
		return
	}
	r := c.img.Bounds()
	c.begin(r)
	c.face.rasterize(c.rast, s, c.matrix.TransformPoint(Pt(x, y)).Sub(origin(r)), px)
	c.composite(r)
}

// MeasureString returns the advance width and height of s in user-space
// units, or zeros when no face is set.
func (c *Context) MeasureString(s string) (w, h float64) {
	if c.face == nil {
		return 0, 0
	}
	return c.face.Measure(s)
}

// EncodePNG encodes the buffer as PNG.
func (c *Context) EncodePNG(w io.Writer) error {
	return encodePNG(w, c.img)
}

// region returns the device rectangle covering the current path grown
// by pad pixels, clipped to the buffer.
func (c *Context) region(pad float64) image.Rectangle {
	lo, hi, ok := c.path.bounds()
	if !ok {
		return image.Rectangle{}
	}
	r := image.Rect(
		int(math.Floor(lo.X-pad)), int(math.Floor(lo.Y-pad)),
		int(math.Ceil(hi.X+pad)), int(math.Ceil(hi.Y+pad)))
	return r.Intersect(c.img.Bounds())
}

// begin prepares the rasterizer for a region of the buffer.
func (c *Context) begin(r image.Rectangle) {
	c.rast.Reset(r.Dx(), r.Dy())
	c.rast.DrawOp = draw.Over
}

// composite blends the accumulated coverage over r in the paint color.
func (c *Context) composite(r image.Rectangle) {
	src := image.NewUniform(c.color.Color())
	c.rast.Draw(c.img, r, src, image.Point{})
}

// origin returns the top-left corner of r as a Point.
func origin(r image.Rectangle) Point {
	return Pt(float64(r.Min.X), float64(r.Min.Y))
}

// At returns the color of a device pixel, transparent outside the buffer.
func (c *Context) At(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}.In(c.img.Bounds())) {
		return Transparent
	}
	return FromColor(c.img.RGBAAt(x, y))
}
