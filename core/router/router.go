package router

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/dmitrymomot/dispatch/core/action"
	"github.com/dmitrymomot/dispatch/core/container"
	"github.com/dmitrymomot/dispatch/core/controller"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/resolver"
)

const (
	// DefaultFallback is the route dispatched when nothing matches.
	DefaultFallback = "error.notFound"

	// LoggerName is the container entry consulted for a *slog.Logger when
	// the router has no logger of its own.
	LoggerName = "logger"
)

// RouteMatch is the outcome of matching a request against the route map.
type RouteMatch struct {
	Route          string
	Handler        string
	Params         map[string]string
	Middleware     map[string]bool
	PermittedRoles []string
}

type route struct {
	name      string
	handler   string
	path      string
	methods   methodTyp
	overrides map[string]bool
	roles     []string
	routable  bool
	identity  resolver.Identity
	pattern   *pattern
}

// Router matches requests to named routes and builds dispatch actions.
// It is immutable once New returns and safe for concurrent use.
type Router struct {
	spec     action.Spec
	resolver resolver.Resolver
	fallback string
	logger   *slog.Logger

	routes  []*route
	byName  map[string]*route
	static  map[string][]*route
	dynamic []*route
}

// New builds a router from the middleware spec and a route map configured by
// configure. Invalid names, methods, patterns and route identifiers are
// reported here.
func New(spec action.Spec, configure func(m *Map), opts ...Option) (*Router, error) {
	rt := &Router{
		spec:     spec,
		fallback: DefaultFallback,
		byName:   make(map[string]*route),
		static:   make(map[string][]*route),
	}
	for _, opt := range opts {
		opt(rt)
	}

	m := newMap()
	if configure != nil {
		configure(m)
	}

	for _, def := range *m.routes {
		if err := rt.add(def); err != nil {
			return nil, err
		}
	}
	return rt, nil
}

func (rt *Router) add(def *Route) error {
	if def.name == "" {
		return ErrEmptyRouteName
	}
	if _, ok := rt.byName[def.name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRoute, def.name)
	}

	methods, ok := parseMethods(def.methods)
	if !ok {
		return fmt.Errorf("%w: route %q has methods %v", ErrInvalidMethod, def.name, def.methods)
	}

	handlerID := def.handler
	if handlerID == "" {
		handlerID = def.name
	}
	id, err := rt.resolver.Resolve(handlerID)
	if err != nil {
		return fmt.Errorf("route %q: %w", def.name, err)
	}

	r := &route{
		name:      def.name,
		handler:   handlerID,
		path:      def.path,
		methods:   methods,
		overrides: def.overrides,
		roles:     def.roles,
		routable:  def.routable,
		identity:  id,
	}

	if r.routable {
		p, err := compilePattern(def.path)
		if err != nil {
			return fmt.Errorf("route %q: %w", def.name, err)
		}
		r.pattern = p
		if p.isStatic() {
			rt.static[p.raw] = append(rt.static[p.raw], r)
		} else {
			rt.dynamic = append(rt.dynamic, r)
		}
	}

	rt.routes = append(rt.routes, r)
	rt.byName[r.name] = r
	return nil
}

// Spec returns the middleware spec.
func (rt *Router) Spec() action.Spec { return rt.spec }

// Fallback returns the fallback route name.
func (rt *Router) Fallback() string { return rt.fallback }

// Route returns the named route.
func (rt *Router) Route(name string) (RouteInfo, bool) {
	r, ok := rt.byName[name]
	if !ok {
		return RouteInfo{}, false
	}
	return r.info(), true
}

// Routes returns every route in registration order.
func (rt *Router) Routes() []RouteInfo {
	infos := make([]RouteInfo, len(rt.routes))
	for i, r := range rt.routes {
		infos[i] = r.info()
	}
	return infos
}

// Match finds the route for method and path. Static paths take precedence
// over parameterized ones; otherwise routes are tried in registration order.
func (rt *Router) Match(method, path string) (RouteMatch, bool) {
	m, ok := methodMap[method]
	if !ok {
		return RouteMatch{}, false
	}
	if path == "" {
		path = "/"
	}

	for _, r := range rt.static[path] {
		if r.methods&m != 0 {
			return r.match(nil), true
		}
	}
	for _, r := range rt.dynamic {
		if r.methods&m == 0 {
			continue
		}
		if params, ok := r.pattern.match(path); ok {
			return r.match(params), true
		}
	}
	return RouteMatch{}, false
}

// MatchName returns the match for a route addressed by name, with no params.
func (rt *Router) MatchName(name string) (RouteMatch, error) {
	r, ok := rt.byName[name]
	if !ok {
		return RouteMatch{}, fmt.Errorf("%w: %q", ErrRouteNotFound, name)
	}
	return r.match(nil), nil
}

// CreateAction matches r, falling back to the fallback route, and builds
// the dispatch action from the container.
func (rt *Router) CreateAction(c container.Container, r *http.Request) (*action.Action, error) {
	path := r.URL.Path
	if r.URL.RawPath != "" {
		path = r.URL.RawPath
	}

	match, ok := rt.Match(r.Method, path)
	if !ok {
		var err error
		match, err = rt.MatchName(rt.fallback)
		if err != nil {
			return nil, fmt.Errorf("fallback: %w", err)
		}
	}
	return rt.ActionFor(c, match)
}

// ActionFor builds the dispatch action for a match.
func (rt *Router) ActionFor(c container.Container, match RouteMatch) (*action.Action, error) {
	r, ok := rt.byName[match.Route]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRouteNotFound, match.Route)
	}

	ctrl, err := rt.controller(c, r.identity)
	if err != nil {
		return nil, err
	}
	mws, err := rt.middlewares(c, match.Middleware)
	if err != nil {
		return nil, err
	}

	a, err := action.New(r.identity, ctrl, mws,
		action.WithParams(match.Params),
		action.WithPermittedRoles(match.PermittedRoles),
		action.WithLogger(rt.loggerFor(c)),
	)
	if err != nil {
		return nil, fmt.Errorf("route %q: %w", r.name, err)
	}
	return a, nil
}

// Verify builds an action for every route and checks the fallback route,
// so configuration mistakes surface at startup rather than on first request.
// All failures are returned joined.
func (rt *Router) Verify(c container.Container) error {
	var errs []error
	if _, ok := rt.byName[rt.fallback]; !ok {
		errs = append(errs, fmt.Errorf("fallback: %w: %q", ErrRouteNotFound, rt.fallback))
	}
	for _, r := range rt.routes {
		if _, err := rt.ActionFor(c, r.match(nil)); err != nil {
			errs = append(errs, err)
		}
		for id := range r.overrides {
			if !rt.spec.Has(id) {
				rt.loggerFor(c).Warn("middleware override ignored",
					logger.Route(r.name),
					logger.Middleware(id),
				)
			}
		}
	}
	return errors.Join(errs...)
}

func (rt *Router) controller(c container.Container, id resolver.Identity) (controller.Controller, error) {
	v, err := c.Get(id.Name())
	if err != nil {
		return nil, fmt.Errorf("controller %s: %w", id.Name(), err)
	}
	ctrl, ok := v.(controller.Controller)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrInvalidController, id.Name(), v)
	}
	return ctrl, nil
}

func (rt *Router) middlewares(c container.Container, overrides map[string]bool) ([]handler.Middleware, error) {
	ids := action.Merge(rt.spec, overrides)
	mws := make([]handler.Middleware, 0, len(ids))
	for _, id := range ids {
		v, err := c.Get(id)
		if err != nil {
			return nil, fmt.Errorf("middleware %s: %w", id, err)
		}
		mw, ok := v.(handler.Middleware)
		if !ok {
			return nil, fmt.Errorf("%w: %s is %T", ErrInvalidMiddleware, id, v)
		}
		mws = append(mws, mw)
	}
	return mws, nil
}

func (rt *Router) loggerFor(c container.Container) *slog.Logger {
	if rt.logger != nil {
		return rt.logger
	}
	if c != nil && c.Has(LoggerName) {
		if v, err := c.Get(LoggerName); err == nil {
			if log, ok := v.(*slog.Logger); ok && log != nil {
				return log
			}
		}
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (r *route) match(params map[string]string) RouteMatch {
	return RouteMatch{
		Route:          r.name,
		Handler:        r.handler,
		Params:         params,
		Middleware:     maps.Clone(r.overrides),
		PermittedRoles: slices.Clone(r.roles),
	}
}

func (r *route) info() RouteInfo {
	return RouteInfo{
		Name:           r.name,
		Handler:        r.handler,
		Path:           r.path,
		Methods:        r.methods.names(),
		Middleware:     maps.Clone(r.overrides),
		PermittedRoles: slices.Clone(r.roles),
		Routable:       r.routable,
	}
}
