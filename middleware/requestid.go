package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dispatch/core/handler"
)

// requestIDContextKey is used as a key for storing request ID in request context.
type requestIDContextKey struct{}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to use an existing request ID from the incoming request
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration.
// It generates a new UUID for each request and includes it in both context and response headers.
func RequestID() handler.Middleware {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom configuration.
// The ID is stored in the request context passed to inner layers and added to
// the response headers.
func RequestIDWithConfig(cfg RequestIDConfig) handler.Middleware {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}

	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return handler.MiddlewareFunc(func(r *http.Request, next handler.Handler) (handler.Response, error) {
		if cfg.Skip != nil && cfg.Skip(r) {
			return next.Handle(r)
		}

		var requestID string

		// Try to use existing request ID from incoming headers if configured
		if cfg.UseExisting {
			requestID = r.Header.Get(cfg.HeaderName)
		}

		if requestID == "" {
			requestID = cfg.Generator()
		}

		r = r.WithContext(context.WithValue(r.Context(), requestIDContextKey{}, requestID))

		response, err := next.Handle(r)
		if err != nil || response == nil {
			return response, err
		}

		return func(w http.ResponseWriter, r *http.Request) error {
			w.Header().Set(cfg.HeaderName, requestID)
			return response(w, r)
		}, nil
	})
}

// GetRequestID retrieves the request ID from the context.
// Returns the request ID and a boolean indicating whether it was found.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
