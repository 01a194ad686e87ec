package router

import (
	"maps"
	"net/http"
	"slices"
)

// Route is a route under construction. Its modifiers return the route so
// calls can be chained:
//
//	m.Post("authentication.signIn", "/sign-in").
//		Middleware(map[string]bool{"auth": false, "rateLimit": true})
type Route struct {
	name      string
	handler   string
	path      string
	methods   []string
	overrides map[string]bool
	roles     []string
	routable  bool
}

// Middleware sets per-route overrides of the default middleware flags.
// Entries are added to any overrides inherited from the enclosing map.
// Overrides only switch middlewares on or off; the order always comes from
// the middleware spec.
func (r *Route) Middleware(overrides map[string]bool) *Route {
	if r.overrides == nil {
		r.overrides = make(map[string]bool, len(overrides))
	}
	maps.Copy(r.overrides, overrides)
	return r
}

// PermittedRoles sets the roles allowed to access the route.
// nil removes any restriction; an empty slice makes the route inaccessible
// to everyone. Enforcement is left to middleware.
func (r *Route) PermittedRoles(roles []string) *Route {
	r.roles = slices.Clone(roles)
	return r
}

// Routable controls whether the route takes part in matching. A
// non-routable route can still be dispatched by name, e.g. as the fallback.
func (r *Route) Routable(routable bool) *Route {
	r.routable = routable
	return r
}

// Handler overrides the route identifier used to resolve the controller.
// It defaults to the route name.
func (r *Route) Handler(id string) *Route {
	r.handler = id
	return r
}

// Map collects route definitions. Defaults set on a map apply to routes
// added to it afterwards, and to groups attached to it.
type Map struct {
	routes     *[]*Route
	namePrefix string
	pathPrefix string
	overrides  map[string]bool
	roles      []string
}

func newMap() *Map {
	return &Map{routes: new([]*Route)}
}

// Get adds a GET route.
func (m *Map) Get(name, path string) *Route { return m.Route(name, path, http.MethodGet) }

// Post adds a POST route.
func (m *Map) Post(name, path string) *Route { return m.Route(name, path, http.MethodPost) }

// Put adds a PUT route.
func (m *Map) Put(name, path string) *Route { return m.Route(name, path, http.MethodPut) }

// Patch adds a PATCH route.
func (m *Map) Patch(name, path string) *Route { return m.Route(name, path, http.MethodPatch) }

// Delete adds a DELETE route.
func (m *Map) Delete(name, path string) *Route { return m.Route(name, path, http.MethodDelete) }

// Head adds a HEAD route.
func (m *Map) Head(name, path string) *Route { return m.Route(name, path, http.MethodHead) }

// Options adds an OPTIONS route.
func (m *Map) Options(name, path string) *Route { return m.Route(name, path, http.MethodOptions) }

// Route adds a route for the given methods. No methods means any method.
func (m *Map) Route(name, path string, methods ...string) *Route {
	r := &Route{
		name:      m.namePrefix + name,
		path:      m.pathPrefix + path,
		methods:   slices.Clone(methods),
		overrides: maps.Clone(m.overrides),
		roles:     slices.Clone(m.roles),
		routable:  true,
	}
	*m.routes = append(*m.routes, r)
	return r
}

// Attach adds a group whose route names and paths are prefixed.
// Defaults set inside fn stay scoped to the group.
//
//	m.Attach("admin.", "/admin", func(m *router.Map) {
//		m.PermittedRoles([]string{"admin"})
//		m.Get("dashboard.index", "")
//	})
func (m *Map) Attach(namePrefix, pathPrefix string, fn func(m *Map)) {
	fn(&Map{
		routes:     m.routes,
		namePrefix: m.namePrefix + namePrefix,
		pathPrefix: m.pathPrefix + pathPrefix,
		overrides:  maps.Clone(m.overrides),
		roles:      slices.Clone(m.roles),
	})
}

// PermittedRoles sets the default permitted roles for routes added afterwards.
func (m *Map) PermittedRoles(roles []string) *Map {
	m.roles = slices.Clone(roles)
	return m
}

// Middleware adds default middleware overrides for routes added afterwards.
func (m *Map) Middleware(overrides map[string]bool) *Map {
	if m.overrides == nil {
		m.overrides = make(map[string]bool, len(overrides))
	}
	maps.Copy(m.overrides, overrides)
	return m
}

// RouteInfo is a read-only snapshot of a configured route.
type RouteInfo struct {
	Name           string
	Handler        string
	Path           string
	Methods        []string
	Middleware     map[string]bool
	PermittedRoles []string
	Routable       bool
}
