package repdemo

// State is the derived tuple of one demo frame.
//
// Points is shared between consecutive states when only the encoder
// geometry changed; callers must treat it as read-only.
type State struct {
	Params  Params
	Points  []Point2D
	Matrix  Matrix
	Reading Reading
}

// Derive is the demo's transition function. It recomputes the encoder and
// the reading for next, and draws a fresh batch of n points only when
// prev has no batch of that size or the correlation changed. Angle and
// scale changes keep the sampled cloud.
//
// On error prev is returned unchanged.
func Derive(prev State, next Params, s *Sampler, n int) (State, error) {
	points := prev.Points
	if needsResample(prev, next, n) {
		fresh, err := s.Generate(n, next.Correlation)
		if err != nil {
			return prev, err
		}
		points = fresh
	}

	m := next.Matrix()
	return State{
		Params:  next,
		Points:  points,
		Matrix:  m,
		Reading: Measure(points, m),
	}, nil
}

// needsResample reports whether the transition prev -> next must draw a
// new batch.
func needsResample(prev State, next Params, n int) bool {
	return len(prev.Points) != n || prev.Params.Correlation != next.Correlation
}
