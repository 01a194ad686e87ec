package action

import "log/slog"

// Option configures an Action.
type Option func(*Action)

// WithLogger sets the logger used for dispatch logging.
func WithLogger(log *slog.Logger) Option {
	return func(a *Action) {
		if log != nil {
			a.logger = log
		}
	}
}

// WithParams sets the captured route parameters.
func WithParams(params map[string]string) Option {
	return func(a *Action) {
		a.params = params
	}
}

// WithPermittedRoles sets the permitted roles carried by the action.
// nil means no restriction; an empty slice means nobody.
func WithPermittedRoles(roles []string) Option {
	return func(a *Action) {
		a.roles = roles
	}
}
