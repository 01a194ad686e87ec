package handler

import "net/http"

// Response is a function that renders HTTP responses.
// It sets headers, status code, and writes the response body.
// Rendering errors are handled by the caller's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// Handler produces a response for a request.
type Handler interface {
	Handle(r *http.Request) (Response, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(r *http.Request) (Response, error)

// Handle calls f(r).
func (f HandlerFunc) Handle(r *http.Request) (Response, error) {
	return f(r)
}

// Middleware processes a request around the next handler in the chain.
// Returning without calling next short-circuits every inner layer.
type Middleware interface {
	Process(r *http.Request, next Handler) (Response, error)
}

// MiddlewareFunc adapts an ordinary function to the Middleware interface.
type MiddlewareFunc func(r *http.Request, next Handler) (Response, error)

// Process calls f(r, next).
func (f MiddlewareFunc) Process(r *http.Request, next Handler) (Response, error) {
	return f(r, next)
}

// ErrorHandler handles errors during request processing.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
