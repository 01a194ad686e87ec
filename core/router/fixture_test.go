package router_test

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/dispatch/core/action"
	"github.com/dmitrymomot/dispatch/core/binder"
	"github.com/dmitrymomot/dispatch/core/container"
	"github.com/dmitrymomot/dispatch/core/controller"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/router"
)

type namedController struct {
	name  string
	table controller.Table
}

func (c *namedController) EntryPoints() controller.Table { return c.table }

func newController(name string, entryPoints ...string) *namedController {
	c := &namedController{name: name, table: controller.Table{}}
	for _, ep := range entryPoints {
		c.table[ep] = controller.EntryPoint{
			Invoke: func(binder.Args) (handler.Response, error) {
				return func(w http.ResponseWriter, r *http.Request) error {
					_, err := fmt.Fprintf(w, "%s::%s", name, ep)
					return err
				}, nil
			},
		}
	}
	return c
}

func passThrough(id string) handler.Middleware {
	return handler.MiddlewareFunc(func(r *http.Request, next handler.Handler) (handler.Response, error) {
		return next.Handle(handler.WithAttribute(r, id+" called", true))
	})
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
	m.Get("dog.create", "/dog/new")
	m.Post("dog.store", "/dog/new")

	m.Attach("admin.", "/admin", func(m *router.Map) {
		m.PermittedRoles([]string{"admin"})

		m.Get("dashboard.index", "")
		m.Post("dashboard.inviteUser", "/invite-user")
	})

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
		Set("A", passThrough("A")).
		Set("B", passThrough("B")).
		Set("C", passThrough("C")).
		Set("HomeController", newController("HomeController", "index")).
		Set("DogController", newController("DogController", "show", "create", "store")).
		Set("Admin.DashboardController", newController("Admin.DashboardController", "index", "inviteUser")).
		Set("AuthenticationController", newController("AuthenticationController", "index", "signIn")).
		Set("ErrorController", newController("ErrorController", "notFound"))
}

func recordOrder(id string, order *[]string) handler.Middleware {
	return handler.MiddlewareFunc(func(r *http.Request, next handler.Handler) (handler.Response, error) {
		*order = append(*order, id)
		return next.Handle(r)
	})
}
