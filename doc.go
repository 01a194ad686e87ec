// Package dispatch turns an HTTP request into a controller entry point call
// wrapped in an onion of middlewares.
//
// A router.Router maps the request to a named route. The route name is also
// the route identifier: "admin.dashboard.inviteUser" dispatches to the
// inviteUser entry point of the Admin.DashboardController instance held by
// the container. Default middlewares come from an action.Spec and each
// route may switch individual ones on or off.
//
//	c := container.New().
//		Set("auth", authMiddleware).
//		Set("DogController", dogs)
//
//	rt, err := router.New(action.MustSpec(action.Entry{ID: "auth", Enabled: true}),
//		func(m *router.Map) {
//			m.Get("dog.show", "/dog/{id:[0-9]+}")
//			m.Get("error.notFound", "").Routable(false)
//		})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	app, err := dispatch.New(c, rt, dispatch.WithLogger(slog.Default()))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := app.Verify(); err != nil {
//		log.Fatal(err)
//	}
//
//	http.ListenAndServe(":8080", app)
//
// # Request Metadata
//
// Before the chain runs the application attaches the controller instance and
// the route's permitted roles to the request. Read them with
// handler.Attribute and handler.Roles. A nil roles slice means the route is
// unrestricted and an empty one means nobody is permitted. Enforcing roles is
// left to middlewares.
//
// # Method Override
//
// The effective method is taken from the X-HTTP-Method-Override header, then
// from the _method field of form bodies, then from the request itself. It is
// uppercased before matching. Use WithMethodOverride to rename or disable
// either source.
//
// # Errors
//
// Handle returns chain errors unchanged. ServeHTTP passes them to the error
// handler. The default one renders errors that carry a 4xx or 5xx status
// code, such as Error values, and answers everything else with 500.
// ErrInvariantViolation always becomes a 500 and is logged.
package dispatch
