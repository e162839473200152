package repdemo

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Reading is the metric readout for one (batch, encoder) pair.
type Reading struct {
	// MCC is the two-factor mean correlation coefficient in [0, 1].
	MCC float64

	// Det is det(M); non-zero means the encoder is invertible.
	Det float64
}

// Measure scores the batch under m and attaches the encoder determinant.
func Measure(points []Point2D, m Matrix) Reading {
	return Reading{
		MCC: Score(points, m),
		Det: m.Det(),
	}
}

// Score returns the simplified mean correlation coefficient between the
// true factors (z1, z2) and the codes (h1, h2) = M·(z1, z2).
//
// The four absolute Pearson correlations |corr(zi, hj)| are paired in the
// two possible 1-to-1 ways, (z1↔h1, z2↔h2) and (z1↔h2, z2↔h1); the better
// pairing, averaged over its two terms, is returned. A swap of axes
// therefore still scores 1.
//
// Score has no hidden state: equal inputs give bit-identical results.
func Score(points []Point2D, m Matrix) float64 {
	if len(points) == 0 {
		return 0
	}
	z1, z2 := Columns(points)
	h1, h2 := Columns(m.ApplyAll(points))

	c11 := absCorrelation(z1, h1)
	c12 := absCorrelation(z1, h2)
	c21 := absCorrelation(z2, h1)
	c22 := absCorrelation(z2, h2)

	return math.Max(c11+c22, c12+c21) / 2
}

// absCorrelation returns |Pearson(a, b)| clamped to [0, 1]. A sequence
// with zero variance has correlation 0.
func absCorrelation(a, b []float64) float64 {
	if len(a) < 2 || len(a) != len(b) {
		return 0
	}
	if _, va := stat.MeanVariance(a, nil); !(va > 0) {
		return 0
	}
	if _, vb := stat.MeanVariance(b, nil); !(vb > 0) {
		return 0
	}
	r := math.Abs(stat.Correlation(a, b, nil))
	if math.IsNaN(r) {
		return 0
	}
	return math.Min(r, 1)
}

// Grade buckets an MCC value the way the readout colours it.
type Grade int

const (
	// GradeEntangled means codes mix the factors (MCC <= 0.7).
	GradeEntangled Grade = iota
	// GradePartial means a noticeable but incomplete alignment (0.7 < MCC <= 0.9).
	GradePartial
	// GradeAligned means each code tracks one factor (MCC > 0.9).
	GradeAligned
)

// GradeOf classifies an MCC value.
func GradeOf(mcc float64) Grade {
	switch {
	case mcc > 0.9:
		return GradeAligned
	case mcc > 0.7:
		return GradePartial
	default:
		return GradeEntangled
	}
}

// String returns the lowercase grade name.
func (g Grade) String() string {
	switch g {
	case GradeAligned:
		return "aligned"
	case GradePartial:
		return "partial"
	case GradeEntangled:
		return "entangled"
	default:
		return "unknown"
	}
}
