package dispatch

import (
	"log/slog"

	"github.com/dmitrymomot/dispatch/core/handler"
)

// Option configures an Application.
type Option func(*Application)

// WithLogger sets the logger used by the default error handler.
func WithLogger(log *slog.Logger) Option {
	return func(app *Application) {
		if log != nil {
			app.logger = log
		}
	}
}

// WithErrorHandler sets the handler for errors returned from dispatch or rendering.
func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(app *Application) {
		app.errorHandler = h
	}
}

// WithControllerAttribute sets the request attribute holding the controller.
func WithControllerAttribute(name string) Option {
	return func(app *Application) {
		if name != "" {
			app.controllerAttribute = name
		}
	}
}

// WithPermittedRolesAttribute sets the request attribute holding permitted roles.
func WithPermittedRolesAttribute(name string) Option {
	return func(app *Application) {
		if name != "" {
			app.rolesAttribute = name
		}
	}
}

// WithMethodOverride sets the header and form field consulted when
// normalizing the request method. An empty name disables that source.
func WithMethodOverride(header, field string) Option {
	return func(app *Application) {
		app.overrideHeader = header
		app.overrideField = field
	}
}
