package dispatch

import (
	"fmt"

	"github.com/dmitrymomot/dispatch/core/container"
	"github.com/dmitrymomot/dispatch/core/resolver"
	"github.com/dmitrymomot/dispatch/core/router"
)

// Config holds the environment driven application settings.
// Load it with config.Load.
type Config struct {
	RoutesFile           string   `env:"DISPATCH_ROUTES_FILE,required"`
	Fallback             string   `env:"DISPATCH_FALLBACK"`
	RootNamespace        []string `env:"DISPATCH_ROOT_NAMESPACE" envSeparator:"."`
	ControllerSuffix     string   `env:"DISPATCH_CONTROLLER_SUFFIX" envDefault:"Controller"`
	MethodOverrideHeader string   `env:"DISPATCH_METHOD_OVERRIDE_HEADER" envDefault:"X-HTTP-Method-Override"`
	MethodOverrideField  string   `env:"DISPATCH_METHOD_OVERRIDE_FIELD" envDefault:"_method"`
	ControllerAttribute  string   `env:"DISPATCH_CONTROLLER_ATTRIBUTE" envDefault:"controller"`
	RolesAttribute       string   `env:"DISPATCH_ROLES_ATTRIBUTE" envDefault:"permittedRoles"`
}

// NewFromConfig loads the route table named by cfg and builds an
// application around it. opts are applied after the config derived options.
func NewFromConfig(cfg Config, c container.Container, opts ...Option) (*Application, error) {
	table, err := router.LoadTable(cfg.RoutesFile)
	if err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}

	rt, err := router.NewFromTable(table,
		router.WithResolver(resolver.Resolver{
			RootNamespace: cfg.RootNamespace,
			Suffix:        cfg.ControllerSuffix,
		}),
		router.WithFallback(cfg.Fallback),
	)
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	base := []Option{
		WithControllerAttribute(cfg.ControllerAttribute),
		WithPermittedRolesAttribute(cfg.RolesAttribute),
		WithMethodOverride(cfg.MethodOverrideHeader, cfg.MethodOverrideField),
	}
	return New(c, rt, append(base, opts...)...)
}
