// Package router maps named routes to requests and turns a match into a
// dispatch action.
//
// Routes are declared on a Map. The route name doubles as the route
// identifier that names the controller and entry point, so
// "admin.dashboard.inviteUser" dispatches to Admin.DashboardController's
// inviteUser entry point:
//
//	spec := action.MustSpec(
//		action.Entry{ID: "errors", Enabled: true},
//		action.Entry{ID: "auth", Enabled: true},
//		action.Entry{ID: "rateLimit", Enabled: false},
//	)
//
//	rt, err := router.New(spec, func(m *router.Map) {
//		m.Get("dog.show", "/dog/{id:[0-9]+}")
//		m.Post("authentication.signIn", "/sign-in").
//			Middleware(map[string]bool{"auth": false, "rateLimit": true})
//
//		m.Attach("admin.", "/admin", func(m *router.Map) {
//			m.PermittedRoles([]string{"admin"})
//			m.Get("dashboard.index", "")
//			m.Post("dashboard.inviteUser", "/invite-user")
//		})
//
//		m.Get("error.notFound", "").Routable(false)
//	}, router.WithResolver(resolver.Resolver{RootNamespace: []string{"App"}}))
//
// # Path Patterns
//
// Patterns are split on '/'. Each segment is one of:
//
//   - static text: /dog/new
//   - a parameter: /dog/{name}
//   - a constrained parameter: /dog/{id:[0-9]+}
//   - a trailing catch-all: /files/*
//
// Static paths win over parameterized ones; parameterized routes are tried
// in registration order. When nothing matches, the fallback route
// (DefaultFallback unless WithFallback is given) is dispatched.
//
// # Building Actions
//
// CreateAction resolves the controller and the enabled middlewares by name
// from a container.Container and returns a ready action.Action. Verify does
// the same for every route and is meant to run at startup.
//
// # Route Tables
//
// Routes and middleware specs can also be read from YAML with LoadTable and
// turned into a router with NewFromTable.
package router
