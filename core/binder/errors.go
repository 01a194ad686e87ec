package binder

import "errors"

var (
	// ErrUnsupportedParameterType indicates an entry point declares a parameter
	// type the binder does not know. It is a configuration error.
	ErrUnsupportedParameterType = errors.New("unsupported parameter type")

	// ErrInvariantViolation indicates a route parameter does not satisfy its
	// declared type even though the path matcher accepted it. It is a
	// programming error, never a client error.
	ErrInvariantViolation = errors.New("invariant violation")
)
