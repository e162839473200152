package repdemo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Param names one of the four demo sliders.
type Param int

const (
	// ParamAngle is the encoder rotation in degrees.
	ParamAngle Param = iota
	// ParamScaleX scales the first latent axis.
	ParamScaleX
	// ParamScaleY scales the second latent axis.
	ParamScaleY
	// ParamCorrelation is the latent correlation used for sampling.
	ParamCorrelation
)

// AllParams lists the sliders in display order.
var AllParams = []Param{ParamAngle, ParamScaleX, ParamScaleY, ParamCorrelation}

// String returns the short name used by the shell and config files.
func (p Param) String() string {
	switch p {
	case ParamAngle:
		return "angle"
	case ParamScaleX:
		return "scalex"
	case ParamScaleY:
		return "scaley"
	case ParamCorrelation:
		return "corr"
	default:
		return "Param(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParseParam resolves a slider name. Aliases such as "rotation", "sx"
// and "rho" are accepted, case-insensitively.
func ParseParam(s string) (Param, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "angle", "rotation", "theta":
		return ParamAngle, nil
	case "scalex", "sx", "scale1":
		return ParamScaleX, nil
	case "scaley", "sy", "scale2":
		return ParamScaleY, nil
	case "corr", "correlation", "rho":
		return ParamCorrelation, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParam, s)
}

// Slider is the UI-facing view of one parameter.
type Slider struct {
	Param Param
	Label string
	Value float64
	Min   float64
	Max   float64
	Step  float64
	Unit  string
}

// sliderDefs holds the bounds of every slider. The correlation bound
// keeps |rho| < 1 for the sampler; the scale minimum keeps det(M) away
// from zero.
var sliderDefs = map[Param]Slider{
	ParamAngle:       {Param: ParamAngle, Label: "Rotation", Min: 0, Max: 90, Step: 1, Unit: "°"},
	ParamScaleX:      {Param: ParamScaleX, Label: "Scale ẑ₁", Min: 0.1, Max: 3, Step: 0.1, Unit: "×"},
	ParamScaleY:      {Param: ParamScaleY, Label: "Scale ẑ₂", Min: 0.1, Max: 3, Step: 0.1, Unit: "×"},
	ParamCorrelation: {Param: ParamCorrelation, Label: "Latent correlation", Min: 0, Max: 0.95, Step: 0.05},
}

// SliderFor returns the slider definition for p with a zero Value.
func SliderFor(p Param) (Slider, error) {
	s, ok := sliderDefs[p]
	if !ok {
		return Slider{}, fmt.Errorf("%w: %v", ErrUnknownParam, p)
	}
	return s, nil
}

// Snap clamps v into [Min, Max] and rounds it onto the step grid, the
// way a range input settles a dragged thumb.
func (s Slider) Snap(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
		// Drop accumulated binary noise such as 0.30000000000000004.
		v = math.Round(v*1e9) / 1e9
	}
	return math.Min(math.Max(v, s.Min), s.Max)
}

// Format renders the current value with its unit: two decimals for
// fractional steps, none otherwise.
func (s Slider) Format() string {
	prec := 0
	if s.Step < 1 {
		prec = 2
	}
	return strconv.FormatFloat(s.Value, 'f', prec, 64) + s.Unit
}

// Params is the immutable parameter tuple of the demo.
type Params struct {
	Angle       float64 `yaml:"angle"`
	ScaleX      float64 `yaml:"scale_x"`
	ScaleY      float64 `yaml:"scale_y"`
	Correlation float64 `yaml:"correlation"`
}

// DefaultParams returns the identity encoder over independent factors,
// which scores MCC = 1 and det = 1.
func DefaultParams() Params {
	return Params{Angle: 0, ScaleX: 1, ScaleY: 1, Correlation: 0}
}

// Get returns the value of one parameter.
func (p Params) Get(k Param) float64 {
	switch k {
	case ParamAngle:
		return p.Angle
	case ParamScaleX:
		return p.ScaleX
	case ParamScaleY:
		return p.ScaleY
	case ParamCorrelation:
		return p.Correlation
	default:
		return math.NaN()
	}
}

// With returns a copy of p with k set to v, snapped into the slider range.
func (p Params) With(k Param, v float64) (Params, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return p, fmt.Errorf("%w: %s=%v", ErrInvalidValue, k, v)
	}
	s, err := SliderFor(k)
	if err != nil {
		return p, err
	}
	v = s.Snap(v)

	switch k {
	case ParamAngle:
		p.Angle = v
	case ParamScaleX:
		p.ScaleX = v
	case ParamScaleY:
		p.ScaleY = v
	case ParamCorrelation:
		p.Correlation = v
	}
	return p, nil
}

// Normalize snaps every parameter into its slider range.
func (p Params) Normalize() (Params, error) {
	out := p
	for _, k := range AllParams {
		var err error
		if out, err = out.With(k, p.Get(k)); err != nil {
			return p, err
		}
	}
	return out, nil
}

// Matrix derives the encoder from the current angle and scales.
func (p Params) Matrix() Matrix {
	return MatrixFromParams(p.Angle, p.ScaleX, p.ScaleY)
}

// Sliders returns the four sliders carrying the current values.
func (p Params) Sliders() []Slider {
	out := make([]Slider, 0, len(AllParams))
	for _, k := range AllParams {
		s := sliderDefs[k]
		s.Value = p.Get(k)
		out = append(out, s)
	}
	return out
}
