package repdemo

// DefaultPointCount is the batch size of a demo instance.
const DefaultPointCount = 200

// Option configures a Controller during creation.
//
// Example:
//
//	// Non-deterministic cloud of 200 points, identity encoder
//	ctrl, _ := repdemo.NewController()
//
//	// Reproducible cloud for screenshots and tests
//	ctrl, _ := repdemo.NewController(repdemo.WithSeed(42))
type Option func(*options)

// options holds optional configuration for Controller creation.
type options struct {
	sampler *Sampler
	seed    *uint64
	points  int
	params  Params
}

// defaultOptions returns the default controller options.
func defaultOptions() options {
	return options{
		sampler: nil, // NewSampler(nil) unless a seed is given
		points:  DefaultPointCount,
		params:  DefaultParams(),
	}
}

// WithSampler injects the sampler, for example one over a fixed
// rand.Source. It takes precedence over WithSeed.
func WithSampler(s *Sampler) Option {
	return func(o *options) {
		o.sampler = s
	}
}

// WithSeed makes the controller's batches reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithPointCount sets the batch size. It is fixed for the lifetime of
// the controller.
func WithPointCount(n int) Option {
	return func(o *options) {
		o.points = n
	}
}

// WithParams sets the initial parameters. Values are snapped into the
// slider ranges.
func WithParams(p Params) Option {
	return func(o *options) {
		o.params = p
	}
}
