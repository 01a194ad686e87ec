package action

import "errors"

var (
	// Spec errors
	ErrEmptyMiddlewareID     = errors.New("empty middleware id")
	ErrDuplicateMiddlewareID = errors.New("duplicate middleware id")

	// Construction errors
	ErrNilController     = errors.New("nil controller")
	ErrNilMiddleware     = errors.New("nil middleware")
	ErrUnknownEntryPoint = errors.New("unknown entry point")

	// Execution errors
	ErrActionConsumed = errors.New("action already handled")
)
