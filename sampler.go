package repdemo

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Sampler draws correlated bivariate-normal latent batches.
//
// The random source is injected so demos can be reproduced; a Sampler is
// not safe for concurrent use (its source is not).
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler over src. A nil src selects a PCG source
// seeded from the runtime's entropy, so every sampler draws a different
// stream.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Sampler{rng: rand.New(src)}
}

// NewSeededSampler creates a sampler with a reproducible stream.
func NewSeededSampler(seed uint64) *Sampler {
	return NewSampler(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform returns a draw in (0, 1). Exact zeros are redrawn because the
// Box-Muller transform takes their logarithm.
func (s *Sampler) uniform() float64 {
	for {
		if u := s.rng.Float64(); u != 0 {
			return u
		}
	}
}

// NormFloat64 returns a standard-normal variate via the Box-Muller
// transform of two independent uniform draws.
func (s *Sampler) NormFloat64() float64 {
	u := s.uniform()
	v := s.uniform()
	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}

// Generate returns n points with unit variances and correlation rho:
//
//	z1 = u
//	z2 = rho·u + sqrt(1-rho²)·v
//
// for independent standard normals u and v. The sample correlation of a
// finite batch only approximates rho.
//
// Generate rejects |rho| >= 1 (and NaN) with ErrInvalidCorrelation rather
// than letting NaN reach the metric.
func (s *Sampler) Generate(n int, rho float64) ([]Point2D, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPointCount, n)
	}
	if math.IsNaN(rho) || math.Abs(rho) >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCorrelation, rho)
	}

	k := math.Sqrt(1 - rho*rho)
	pts := make([]Point2D, n)
	for i := range pts {
		u := s.NormFloat64()
		v := s.NormFloat64()
		pts[i] = Point2D{Z1: u, Z2: rho*u + k*v}
	}
	return pts, nil
}
