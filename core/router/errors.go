package router

import "errors"

var (
	// Map errors
	ErrDuplicateRoute = errors.New("duplicate route name")
	ErrEmptyRouteName = errors.New("empty route name")
	ErrInvalidMethod  = errors.New("invalid http method")
	ErrInvalidPattern = errors.New("invalid route path pattern")

	// Pattern errors
	ErrInvalidRegexp    = errors.New("invalid route path pattern regexp")
	ErrWildcardPosition = errors.New("wildcard position must be last")
	ErrDuplicateParam   = errors.New("duplicate parameter name")

	// Dispatch errors
	ErrRouteNotFound     = errors.New("route not found")
	ErrInvalidController = errors.New("dependency is not a controller")
	ErrInvalidMiddleware = errors.New("dependency is not a middleware")

	// Table errors
	ErrInvalidTable = errors.New("invalid route table")
)
