package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Info("msg", logger.Error(err)) without explicit nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// InvariantViolation marks a log record as a broken programming contract.
func InvariantViolation() slog.Attr {
	return slog.Bool("invariant_violation", true)
}

// ============================================================================
// Performance and Timing
// ============================================================================

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// ============================================================================
// Network and HTTP
// ============================================================================

// RequestID creates an attribute for HTTP request IDs.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for URL paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status", code)
}

// RemoteAddr creates an attribute for the client address.
func RemoteAddr(addr string) slog.Attr {
	if addr == "" {
		return slog.Attr{}
	}
	return slog.String("remote_addr", addr)
}

// ============================================================================
// Dispatch
// ============================================================================

// Route creates an attribute for a route name.
func Route(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("route", name)
}

// Controller creates an attribute for a namespace-qualified controller name.
func Controller(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("controller", name)
}

// EntryPoint creates an attribute for a controller entry point.
func EntryPoint(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("entry_point", name)
}

// Middleware creates an attribute for a middleware id.
func Middleware(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("middleware", id)
}

// Middlewares creates an attribute listing middleware ids in order.
func Middlewares(ids []string) slog.Attr {
	return slog.Any("middlewares", ids)
}

// ============================================================================
// Application Context
// ============================================================================

// Component creates an attribute for a component name.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for an event name.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
