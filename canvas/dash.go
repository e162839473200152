package canvas

import "math"

// Dash defines a dash pattern for stroking: alternating dash and gap
// lengths in user-space units. An odd-length array is logically repeated
// ([4] behaves like [4, 4]).
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken by absolute value. Returns nil if no
// positive length is given, which means a solid line.
func NewDash(lengths ...float64) *Dash {
	positive := false
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		if normalized[i] > 0 {
			positive = true
		}
	}
	if !positive {
		return nil
	}
	return &Dash{Array: normalized}
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.effectiveArray() {
		total += l
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	return d != nil && d.PatternLength() > 0
}

// Scale returns a new Dash with all lengths multiplied by factor. Dash
// lengths are user-space units and scale with the transform.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}
	return &Dash{Array: scaled, Offset: d.Offset * factor}
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// split cuts a polyline into its "on" pieces. The pattern restarts at
// the beginning of every polyline, shifted by Offset.
func (d *Dash) split(poly []Point) [][]Point {
	pattern := d.effectiveArray()
	total := d.PatternLength()
	if len(poly) < 2 || total <= 0 {
		return [][]Point{poly}
	}

	// Locate the starting phase.
	idx := 0
	remaining := pattern[0]
	phase := math.Mod(d.Offset, total)
	if phase < 0 {
		phase += total
	}
	for phase > 0 {
		if phase < remaining {
			remaining -= phase
			break
		}
		phase -= remaining
		idx = (idx + 1) % len(pattern)
		remaining = pattern[idx]
	}

	var out [][]Point
	var cur []Point
	on := idx%2 == 0
	if on {
		cur = []Point{poly[0]}
	}

	for i := 1; i < len(poly); i++ {
		a, b := poly[i-1], poly[i]
		segLen := b.Sub(a).Length()
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			p := a.Lerp(b, pos/segLen)
			if on {
				cur = append(cur, p)
				out = append(out, cur)
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}
