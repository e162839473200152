package repdemo

import "errors"

var (
	// ErrInvalidCorrelation is returned when a correlation outside (-1, 1)
	// is used for sampling. The square-root term of the correlated draw
	// would be undefined.
	ErrInvalidCorrelation = errors.New("repdemo: correlation must satisfy |rho| < 1")

	// ErrInvalidPointCount is returned when a batch size is not positive.
	ErrInvalidPointCount = errors.New("repdemo: point count must be positive")

	// ErrUnknownParam is returned for a parameter name that is not one of
	// the four demo sliders.
	ErrUnknownParam = errors.New("repdemo: unknown parameter")

	// ErrInvalidValue is returned for NaN or infinite slider values.
	ErrInvalidValue = errors.New("repdemo: parameter value must be finite")
)
