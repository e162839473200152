package repdemo

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Controller owns the UI state of one mounted demo instance: the current
// parameters, the point batch and the derived reading.
//
// Every call to Set completes its recompute before returning, so events
// never overlap. A Controller is not safe for concurrent use; create one
// per session. Independent controllers share nothing.
type Controller struct {
	id      uuid.UUID
	sampler *Sampler
	n       int
	state   State
}

// NewController creates a demo instance and draws its first batch.
func NewController(opts ...Option) (*Controller, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.points <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPointCount, o.points)
	}
	params, err := o.params.Normalize()
	if err != nil {
		return nil, err
	}

	sampler := o.sampler
	switch {
	case sampler != nil:
	case o.seed != nil:
		sampler = NewSeededSampler(*o.seed)
	default:
		sampler = NewSampler(nil)
	}

	c := &Controller{
		id:      uuid.New(),
		sampler: sampler,
		n:       o.points,
	}
	st, err := Derive(State{}, params, sampler, c.n)
	if err != nil {
		return nil, fmt.Errorf("initial batch: %w", err)
	}
	c.state = st

	c.logger().Info("demo created",
		slog.Int("points", c.n),
		slog.Float64("mcc", st.Reading.MCC),
		slog.Float64("det", st.Reading.Det))
	return c, nil
}

// logger returns the package logger tagged with the instance id.
func (c *Controller) logger() *slog.Logger {
	return Logger().With(slog.String("demo", c.id.String()))
}

// ID returns the instance identifier.
func (c *Controller) ID() uuid.UUID { return c.id }

// PointCount returns the fixed batch size.
func (c *Controller) PointCount() int { return c.n }

// State returns the current frame.
func (c *Controller) State() State { return c.state }

// Params returns the current parameters.
func (c *Controller) Params() Params { return c.state.Params }

// Sliders returns the slider views of the current parameters.
func (c *Controller) Sliders() []Slider { return c.state.Params.Sliders() }

// Set applies one slider event. The value is snapped into the slider
// range; changing the correlation draws a new batch.
func (c *Controller) Set(k Param, v float64) (State, error) {
	next, err := c.state.Params.With(k, v)
	if err != nil {
		c.logger().Warn("rejected slider value", slog.String("param", k.String()), slog.Float64("value", v))
		return c.state, err
	}
	return c.apply(next)
}

// SetParams replaces all four parameters in one transition.
func (c *Controller) SetParams(p Params) (State, error) {
	next, err := p.Normalize()
	if err != nil {
		return c.state, err
	}
	return c.apply(next)
}

// Reset returns to the default parameters.
func (c *Controller) Reset() (State, error) {
	return c.apply(DefaultParams())
}

// Resample draws a fresh batch at the current correlation, as a remount
// of the demo would.
func (c *Controller) Resample() (State, error) {
	st, err := Derive(State{}, c.state.Params, c.sampler, c.n)
	if err != nil {
		return c.state, err
	}
	c.state = st
	c.logger().Debug("batch resampled", slog.Float64("mcc", st.Reading.MCC))
	return st, nil
}

func (c *Controller) apply(next Params) (State, error) {
	prev := c.state
	st, err := Derive(prev, next, c.sampler, c.n)
	if err != nil {
		return prev, err
	}
	c.state = st

	if needsResample(prev, next, c.n) {
		c.logger().Debug("batch regenerated", slog.Float64("corr", next.Correlation))
	}
	c.logger().Debug("state derived",
		slog.Float64("angle", next.Angle),
		slog.Float64("scale_x", next.ScaleX),
		slog.Float64("scale_y", next.ScaleY),
		slog.Float64("mcc", st.Reading.MCC),
		slog.Float64("det", st.Reading.Det))
	return st, nil
}
