package hmc

import "errors"

// Domain errors surfaced at the sampling entry point. All are returned
// before any sampling work begins; a failed call never produces a
// partial result.
var (
	// ErrUnknownTarget indicates an unrecognized target distribution name.
	ErrUnknownTarget = errors.New("hmc: unknown target distribution")

	// ErrInvalidStepSize indicates a non-positive leapfrog step size.
	ErrInvalidStepSize = errors.New("hmc: step size must be positive")

	// ErrInvalidStepCount indicates a leapfrog step count below 1.
	ErrInvalidStepCount = errors.New("hmc: step count must be at least 1")

	// ErrInvalidSampleCount indicates a negative requested sample count.
	ErrInvalidSampleCount = errors.New("hmc: sample count must be non-negative")
)
