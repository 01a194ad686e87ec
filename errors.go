package dispatch

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/dispatch/core/action"
	"github.com/dmitrymomot/dispatch/core/binder"
	"github.com/dmitrymomot/dispatch/core/container"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/resolver"
	"github.com/dmitrymomot/dispatch/core/router"
)

// Dispatch errors, re-exported from the packages that produce them.
var (
	ErrInvalidRouteIdentifier   = resolver.ErrInvalidRouteIdentifier
	ErrUnsupportedParameterType = binder.ErrUnsupportedParameterType
	ErrInvariantViolation       = binder.ErrInvariantViolation
	ErrDependencyNotFound       = container.ErrDependencyNotFound
	ErrCircularDependency       = container.ErrCircularDependency
	ErrUnknownEntryPoint        = action.ErrUnknownEntryPoint
	ErrActionConsumed           = action.ErrActionConsumed
	ErrInvalidController        = router.ErrInvalidController
	ErrInvalidMiddleware        = router.ErrInvalidMiddleware
	ErrRouteNotFound            = router.ErrRouteNotFound
	ErrNilRouter                = errors.New("nil router")
	ErrNilContainer             = errors.New("nil container")
)

// Error is an error with an HTTP status that handlers and middlewares may
// return to produce a client-facing error response.
type Error struct {
	Status  int            `json:"-"`                 // HTTP status code (not in JSON)
	Code    string         `json:"code"`              // Machine-readable error code
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Optional context
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code.
func (e Error) StatusCode() int {
	return e.Status
}

// WithMessage returns a copy of the error with a custom message.
func (e Error) WithMessage(message string) Error {
	e.Message = message
	return e
}

// WithDetails returns a copy of the error with additional details.
func (e Error) WithDetails(details map[string]any) Error {
	e.Details = details
	return e
}

// Predefined HTTP errors using http.StatusText for default messages.
var (
	ErrBadRequest          = Error{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: http.StatusText(http.StatusBadRequest)}
	ErrUnauthorized        = Error{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: http.StatusText(http.StatusUnauthorized)}
	ErrForbidden           = Error{Status: http.StatusForbidden, Code: "FORBIDDEN", Message: http.StatusText(http.StatusForbidden)}
	ErrNotFound            = Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: http.StatusText(http.StatusNotFound)}
	ErrInternalServerError = Error{Status: http.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR", Message: http.StatusText(http.StatusInternalServerError)}
)

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler renders errors produced while dispatching.
//
// Only errors carrying a status code are shown to clients. Invariant
// violations are never given a client status, even when something in the
// chain wrapped them in one.
func defaultErrorHandler(log *slog.Logger) handler.ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		// Prevent double-writing responses which causes HTTP protocol errors
		if ww, ok := w.(*handler.ResponseWriter); ok && ww.Written() {
			log.ErrorContext(r.Context(), "error after response written",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(ww.Status()),
				logger.Error(err),
			)
			return
		}

		if errors.Is(err, binder.ErrInvariantViolation) {
			log.ErrorContext(r.Context(), "dispatch invariant violated",
				logger.InvariantViolation(),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.Error(err),
			)
			writeError(w, ErrInternalServerError)
			return
		}

		var sc statusCode
		if errors.As(err, &sc) && sc.StatusCode() >= 400 && sc.StatusCode() < 600 {
			var apiErr Error
			if errors.As(err, &apiErr) {
				writeError(w, apiErr)
				return
			}
			writeError(w, Error{Status: sc.StatusCode(), Message: err.Error()})
			return
		}

		log.ErrorContext(r.Context(), "dispatch failed",
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
		writeError(w, ErrInternalServerError)
	}
}

func writeError(w http.ResponseWriter, e Error) {
	if e.Code == "" {
		e.Code = http.StatusText(e.Status)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}
