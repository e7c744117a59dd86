package daisy

import (
	"errors"
	"fmt"
)

// Configuration errors. Every one of them is raised before a run starts.
var (
	// ErrInvalidParams indicates a parameter set that would break the recurrence.
	ErrInvalidParams = errors.New("daisy: invalid parameters")

	// ErrInvalidFlux indicates a non-positive (or non-finite) stellar flux.
	ErrInvalidFlux = errors.New("daisy: flux must be positive")

	// ErrInvalidGenerations indicates a run with fewer than one generation.
	ErrInvalidGenerations = errors.New("daisy: generation count must be at least 1")

	// ErrInvalidSweep indicates an empty or non-advancing flux sweep.
	ErrInvalidSweep = errors.New("daisy: invalid flux sweep")

	// ErrInvalidDistance indicates a non-positive orbital distance.
	ErrInvalidDistance = errors.New("daisy: distance must be positive")
)

// ParamError names the offending parameter.
type ParamError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidParams, e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParams
}
