package canvas

import (
	"math"

	"golang.org/x/image/vector"
)

// op is a path construction command.
type op uint8

const (
	opMoveTo op = iota
	opLineTo
	opCubicTo
	opClose
)

// segment is one path command with its points in device space.
// MoveTo and LineTo use pts[0]; CubicTo uses all three.
type segment struct {
	op  op
	pts [3]Point
}

// Path is a sequence of subpaths in device coordinates.
type Path struct {
	segs    []segment
	start   Point
	current Point
	hasCur  bool
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(pt Point) {
	p.segs = append(p.segs, segment{op: opMoveTo, pts: [3]Point{pt}})
	p.start, p.current, p.hasCur = pt, pt, true
}

// LineTo adds a line; without a current point it acts as MoveTo.
func (p *Path) LineTo(pt Point) {
	if !p.hasCur {
		p.MoveTo(pt)
		return
	}
	p.segs = append(p.segs, segment{op: opLineTo, pts: [3]Point{pt}})
	p.current = pt
}

// CubicTo adds a cubic Bézier curve.
func (p *Path) CubicTo(c1, c2, pt Point) {
	if !p.hasCur {
		p.MoveTo(c1)
	}
	p.segs = append(p.segs, segment{op: opCubicTo, pts: [3]Point{c1, c2, pt}})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	if !p.hasCur {
		return
	}
	p.segs = append(p.segs, segment{op: opClose})
	p.current = p.start
}

// Clear removes all segments.
func (p *Path) Clear() {
	p.segs = p.segs[:0]
	p.hasCur = false
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.segs) == 0
}

// bounds returns the box around all points of the path, including
// Bézier control points (which contain the curve).
func (p *Path) bounds() (lo, hi Point, ok bool) {
	for _, s := range p.segs {
		n := 0
		switch s.op {
		case opMoveTo, opLineTo:
			n = 1
		case opCubicTo:
			n = 3
		}
		for _, pt := range s.pts[:n] {
			if !ok {
				lo, hi, ok = pt, pt, true
				continue
			}
			lo.X, lo.Y = math.Min(lo.X, pt.X), math.Min(lo.Y, pt.Y)
			hi.X, hi.Y = math.Max(hi.X, pt.X), math.Max(hi.Y, pt.Y)
		}
	}
	return lo, hi, ok
}

// rasterize adds the path, translated by -off, to z as a filled shape.
// Every subpath is closed, as filling implies.
func (p *Path) rasterize(z *vector.Rasterizer, off Point) {
	xy := func(pt Point) (float32, float32) {
		return float32(pt.X - off.X), float32(pt.Y - off.Y)
	}
	open := false
	for _, s := range p.segs {
		switch s.op {
		case opMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(xy(s.pts[0]))
			open = true
		case opLineTo:
			z.LineTo(xy(s.pts[0]))
		case opCubicTo:
			bx, by := xy(s.pts[0])
			cx, cy := xy(s.pts[1])
			dx, dy := xy(s.pts[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case opClose:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}
}

// cubicSteps is the number of line segments a curve is flattened into
// for stroking.
const cubicSteps = 16

// flatten converts the path into polylines. A closed subpath ends with
// a copy of its first point.
func (p *Path) flatten() [][]Point {
	var polys [][]Point
	var cur []Point
	flush := func() {
		if len(cur) > 1 {
			polys = append(polys, cur)
		}
		cur = nil
	}

	for _, s := range p.segs {
		switch s.op {
		case opMoveTo:
			flush()
			cur = []Point{s.pts[0]}
		case opLineTo:
			cur = append(cur, s.pts[0])
		case opCubicTo:
			p0 := cur[len(cur)-1]
			for i := 1; i <= cubicSteps; i++ {
				cur = append(cur, cubicAt(p0, s.pts[0], s.pts[1], s.pts[2], float64(i)/cubicSteps))
			}
		case opClose:
			if len(cur) > 0 {
				first := cur[0]
				cur = append(cur, first)
				flush()
				cur = []Point{first}
			}
		}
	}
	flush()
	return polys
}

// cubicAt evaluates a cubic Bézier at t.
func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
