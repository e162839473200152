package canvas

import "golang.org/x/image/vector"

// strokePolyline adds one quad per segment of poly, width w in device
// pixels, to z, translated by -off. Caps are butt; joins come from the
// overlap of neighbouring quads.
//
// All quads share one orientation whatever the segment direction, so
// overlaps accumulate instead of cancelling.
func strokePolyline(z *vector.Rasterizer, poly []Point, w float64, off Point) {
	half := w / 2
	for i := 1; i < len(poly); i++ {
		a, b := poly[i-1].Sub(off), poly[i].Sub(off)
		n := b.Sub(a).normal().Mul(half)
		if n == (Point{}) {
			continue
		}
		p0, p1 := a.Add(n), b.Add(n)
		p2, p3 := b.Sub(n), a.Sub(n)
		z.MoveTo(float32(p0.X), float32(p0.Y))
		z.LineTo(float32(p1.X), float32(p1.Y))
		z.LineTo(float32(p2.X), float32(p2.Y))
		z.LineTo(float32(p3.X), float32(p3.Y))
		z.ClosePath()
	}
}
