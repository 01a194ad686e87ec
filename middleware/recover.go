package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
)

// PanicError allows error handlers to detect and handle panics.
// When Recover catches a panic it is wrapped in an error implementing this
// interface, giving access to the original panic value and stack trace.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any { return e.value }

func (e *panicError) Stack() []byte { return e.stack }

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

// RecoverConfig configures the panic recovery middleware.
type RecoverConfig struct {
	// Logger receives a record for every recovered panic (default: no logging)
	Logger *slog.Logger
}

// Recover converts panics raised by inner layers, and by the rendering of
// their responses, into PanicError values.
func Recover() handler.Middleware {
	return RecoverWithConfig(RecoverConfig{})
}

// RecoverWithConfig creates a recovery middleware with custom configuration.
func RecoverWithConfig(cfg RecoverConfig) handler.Middleware {
	report := func(r *http.Request, p any) error {
		pe := &panicError{value: p, stack: debug.Stack()}
		if cfg.Logger != nil {
			cfg.Logger.ErrorContext(r.Context(), "panic recovered",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.Error(pe),
				slog.String("stack", string(pe.stack)),
			)
		}
		return pe
	}

	return handler.MiddlewareFunc(func(r *http.Request, next handler.Handler) (resp handler.Response, err error) {
		defer func() {
			if p := recover(); p != nil {
				resp, err = nil, report(r, p)
			}
		}()

		inner, err := next.Handle(r)
		if err != nil || inner == nil {
			return inner, err
		}

		return func(w http.ResponseWriter, r *http.Request) (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = report(r, p)
				}
			}()
			return inner(w, r)
		}, nil
	})
}
