package dispatch_test

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/dispatch"
	"github.com/dmitrymomot/dispatch/core/action"
	"github.com/dmitrymomot/dispatch/core/binder"
	"github.com/dmitrymomot/dispatch/core/container"
	"github.com/dmitrymomot/dispatch/core/controller"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/router"
)

var middlewareIDs = []string{"A", "B", "C"}

// markCalled flags the request so entry points can report which
// middlewares ran.
func markCalled(id string) handler.Middleware {
	return handler.MiddlewareFunc(func(r *http.Request, next handler.Handler) (handler.Response, error) {
		return next.Handle(handler.WithAttribute(r, id+" called", true))
	})
}

// reportEntryPoint writes the entry point name, the middlewares that ran and
// the permitted roles seen on the request.
func reportEntryPoint(name string) controller.EntryPoint {
	return controller.EntryPoint{
		Params: []binder.Param{binder.Request("request")},
		Invoke: func(args binder.Args) (handler.Response, error) {
			r := args.Request(0)

			var called []string
			for _, id := range middlewareIDs {
				if handler.Attribute(r, id+" called") == true {
					called = append(called, id)
				}
			}

			roles := "missing"
			if rs, ok := handler.Roles(r, dispatch.DefaultPermittedRolesAttribute); ok {
				roles = "unrestricted"
				if rs != nil {
					roles = "[" + strings.Join(rs, ",") + "]"
				}
			}

			return func(w http.ResponseWriter, _ *http.Request) error {
				_, err := fmt.Fprintf(w, "%s middlewares=[%s] roles=%s", name, strings.Join(called, ","), roles)
				return err
			}, nil
		},
	}
}

type reportController struct {
	table controller.Table
}

func (c *reportController) EntryPoints() controller.Table { return c.table }

func newReportController(name string, entryPoints ...string) *reportController {
	c := &reportController{table: controller.Table{}}
	for _, ep := range entryPoints {
		c.table[ep] = reportEntryPoint(name + "::" + ep)
	}
	return c
}

type dogController struct{}

func (dogController) EntryPoints() controller.Table {
	return controller.Table{
		"show": {
			Params: []binder.Param{binder.Request("request"), binder.Int("id")},
			Invoke: func(args binder.Args) (handler.Response, error) {
				id := args.Int(1)
				return func(w http.ResponseWriter, r *http.Request) error {
					_, err := fmt.Fprintf(w, "called with id %d", id)
					return err
				}, nil
			},
		},
		"edit": {
			Params: []binder.Param{binder.Int("id")},
			Invoke: func(binder.Args) (handler.Response, error) {
				return func(w http.ResponseWriter, _ *http.Request) error {
					_, err := w.Write([]byte("unreachable"))
					return err
				}, nil
			},
		},
		"update": {
			Params: []binder.Param{binder.String("id")},
			Invoke: func(args binder.Args) (handler.Response, error) {
				id, _ := args.String(0)
				return func(w http.ResponseWriter, r *http.Request) error {
					_, err := fmt.Fprintf(w, "%s dog %s", r.Method, id)
					return err
				}, nil
			},
		},
		"rename": {
			Invoke: func(binder.Args) (handler.Response, error) {
				return func(w http.ResponseWriter, r *http.Request) error {
					roles, ok := handler.Roles(r, dispatch.DefaultPermittedRolesAttribute)
					_, isDog := handler.Attribute(r, dispatch.DefaultControllerAttribute).(dogController)
					_, err := fmt.Fprintf(w, "%s roles=%v attached=%t dog=%t", r.Method, roles, ok, isDog)
					return err
				}, nil
			},
		},
		"forbidden": {
			Invoke: func(binder.Args) (handler.Response, error) {
				return nil, dispatch.ErrForbidden.WithMessage("dogs only")
			},
		},
	}
}

func testSpec() action.Spec {
	return action.MustSpec(
		action.Entry{ID: "A", Enabled: true},
		action.Entry{ID: "B", Enabled: false},
		action.Entry{ID: "C", Enabled: true},
	)
}

func configureRoutes(m *router.Map) {
	m.Get("home.index", "/")
	m.Get("dog.show", "/dog/{id:[0-9]+}")
	m.Get("dog.edit", "/dog/{name}/edit")
	m.Put("dog.update", "/dog/{id}")
	m.Put("dog.rename", "/dog/{id}/name").PermittedRoles([]string{"owner"})
	m.Get("dog.forbidden", "/dog/forbidden")

	m.Attach("admin.", "/admin", func(m *router.Map) {
		m.PermittedRoles([]string{"admin"})

		m.Get("dashboard.index", "")
		m.Post("dashboard.inviteUser", "/invite-user")
	})

	m.Get("vault.open", "/vault").PermittedRoles([]string{})

	m.Get("authentication.index", "/sign-in").
		Middleware(map[string]bool{"A": false, "B": true})
	m.Post("authentication.signIn", "/sign-in").
		Middleware(map[string]bool{"A": false, "B": true})

	m.Get("error.notFound", "").
		Routable(false).
		Middleware(map[string]bool{"A": false})
}

func testContainer() *container.Registry {
	return container.New().
		Set("A", markCalled("A")).
		Set("B", markCalled("B")).
		Set("C", markCalled("C")).
		Set("HomeController", newReportController("HomeController", "index")).
		Set("DogController", dogController{}).
		Set("Admin.DashboardController", newReportController("Admin.DashboardController", "index", "inviteUser")).
		Set("VaultController", newReportController("VaultController", "open")).
		Set("AuthenticationController", newReportController("AuthenticationController", "index", "signIn")).
		Set("ErrorController", newReportController("ErrorController", "notFound"))
}
