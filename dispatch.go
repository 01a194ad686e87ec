package dispatch

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/dispatch/core/container"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/router"
)

const (
	// DefaultControllerAttribute is the request attribute holding the
	// resolved controller.
	DefaultControllerAttribute = "controller"
	// DefaultPermittedRolesAttribute is the request attribute holding the
	// route's permitted roles.
	DefaultPermittedRolesAttribute = "permittedRoles"
	// DefaultMethodOverrideHeader is consulted first when normalizing the method.
	DefaultMethodOverrideHeader = "X-HTTP-Method-Override"
	// DefaultMethodOverrideField is the form field consulted when the header is absent.
	DefaultMethodOverrideField = "_method"
)

// Application is the request entry point. It normalizes the method, asks
// the router for an action, attaches the controller and permitted roles to
// the request and runs the action. It performs no role checks.
type Application struct {
	container container.Container
	router    *router.Router

	controllerAttribute string
	rolesAttribute      string
	overrideHeader      string
	overrideField       string

	errorHandler handler.ErrorHandler
	logger       *slog.Logger
}

// New creates an application dispatching through rt with instances from c.
func New(c container.Container, rt *router.Router, opts ...Option) (*Application, error) {
	if c == nil {
		return nil, ErrNilContainer
	}
	if rt == nil {
		return nil, ErrNilRouter
	}

	app := &Application{
		container:           c,
		router:              rt,
		controllerAttribute: DefaultControllerAttribute,
		rolesAttribute:      DefaultPermittedRolesAttribute,
		overrideHeader:      DefaultMethodOverrideHeader,
		overrideField:       DefaultMethodOverrideField,
		logger:              slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.errorHandler == nil {
		app.errorHandler = defaultErrorHandler(app.logger)
	}
	return app, nil
}

// Router returns the application's router.
func (app *Application) Router() *router.Router { return app.router }

// Verify checks every route against the container. See router.Router.Verify.
func (app *Application) Verify() error {
	return app.router.Verify(app.container)
}

// Handle dispatches r and returns the response produced by a middleware or
// the entry point. Errors from the chain are returned unchanged.
func (app *Application) Handle(r *http.Request) (handler.Response, error) {
	_, resp, err := app.handle(r)
	return resp, err
}

// handle also returns the request the chain saw, with the normalized method
// and the controller and roles attributes, so rendering observes the same.
func (app *Application) handle(r *http.Request) (*http.Request, handler.Response, error) {
	r = app.normalizeMethod(r)

	a, err := app.router.CreateAction(app.container, r)
	if err != nil {
		return r, nil, err
	}

	r = handler.WithAttribute(r, app.controllerAttribute, a.Controller())
	r = handler.WithAttribute(r, app.rolesAttribute, a.PermittedRoles())

	resp, err := a.Handle(r)
	return r, resp, err
}

// ServeHTTP implements http.Handler.
func (app *Application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := handler.NewResponseWriter(w)

	r, resp, err := app.handle(r)
	if err != nil {
		app.errorHandler(ww, r, err)
		return
	}
	if resp == nil {
		if !ww.Written() {
			ww.WriteHeader(http.StatusNoContent)
		}
		return
	}
	if err := resp(ww, r); err != nil {
		app.errorHandler(ww, r, err)
	}
}

// normalizeMethod returns a shallow copy of r carrying the effective method:
// the override header, then the override form field, then r.Method,
// uppercased. r itself is returned when nothing changes.
func (app *Application) normalizeMethod(r *http.Request) *http.Request {
	method := r.Method
	if v := r.Header.Get(app.overrideHeader); app.overrideHeader != "" && v != "" {
		method = v
	} else if app.overrideField != "" && hasFormBody(r) {
		if v := r.PostFormValue(app.overrideField); v != "" {
			method = v
		}
	}

	method = strings.ToUpper(method)
	if method == r.Method {
		return r
	}

	r2 := new(http.Request)
	*r2 = *r
	r2.Method = method
	return r2
}

// hasFormBody reports whether reading a form field could succeed without
// consuming a body that something else expects to parse.
func hasFormBody(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return r.PostForm != nil
	}
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}
