package router

import (
	"log/slog"

	"github.com/dmitrymomot/dispatch/core/resolver"
)

// Option configures a Router.
type Option func(*Router)

// WithResolver sets the root namespace and suffix used to resolve route
// identifiers into controller names.
func WithResolver(res resolver.Resolver) Option {
	return func(rt *Router) {
		rt.resolver = res
	}
}

// WithFallback sets the route dispatched when nothing matches.
func WithFallback(name string) Option {
	return func(rt *Router) {
		if name != "" {
			rt.fallback = name
		}
	}
}

// WithLogger sets the logger passed to every action.
func WithLogger(log *slog.Logger) Option {
	return func(rt *Router) {
		rt.logger = log
	}
}
