package bezier

import "errors"

var (
	// ErrInvalidInput is returned for inputs that violate a precondition, such
	// as an empty point set or a non-finite parameter value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfTolerance is returned by [CheckInterval] for values that lie
	// too far outside of [0, 1] to be explained by roundoff.
	ErrOutOfTolerance = errors.New("value out of tolerance")
)
