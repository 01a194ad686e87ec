package router_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/action"
	"github.com/dmitrymomot/dispatch/core/container"
	"github.com/dmitrymomot/dispatch/core/resolver"
	"github.com/dmitrymomot/dispatch/core/router"
)

func newTestRouter(t *testing.T, opts ...router.Option) *router.Router {
	t.Helper()
	rt, err := router.New(testSpec(), configureRoutes, opts...)
	require.NoError(t, err)
	return rt
}

func render(t *testing.T, a *action.Action, r *http.Request) string {
	t.Helper()
	resp, err := a.Handle(r)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	require.NoError(t, resp(rec, r))
	return rec.Body.String()
}

func TestRouterRouteInfo(t *testing.T) {
	t.Parallel()

	rt := newTestRouter(t)

	create, ok := rt.Route("dog.create")
	require.True(t, ok)
	assert.Equal(t, "dog.create", create.Handler)
	assert.Equal(t, "/dog/new", create.Path)
	assert.Empty(t, create.Middleware)
	assert.Nil(t, create.PermittedRoles)
	assert.Equal(t, []string{http.MethodGet}, create.Methods)
	assert.True(t, create.Routable)

	invite, ok := rt.Route("admin.dashboard.inviteUser")
	require.True(t, ok)
	assert.Equal(t, "/admin/invite-user", invite.Path)
	assert.Equal(t, []string{"admin"}, invite.PermittedRoles)
	assert.Equal(t, []string{http.MethodPost}, invite.Methods)

	signIn, ok := rt.Route("authentication.signIn")
	require.True(t, ok)
	assert.Equal(t, map[string]bool{"A": false, "B": true}, signIn.Middleware)
	assert.Nil(t, signIn.PermittedRoles)

	notFound, ok := rt.Route("error.notFound")
	require.True(t, ok)
	assert.False(t, notFound.Routable)

	_, ok = rt.Route("missing")
	assert.False(t, ok)

	assert.Len(t, rt.Routes(), 9)
	assert.Equal(t, router.DefaultFallback, rt.Fallback())
}

func TestRouterInfoIsACopy(t *testing.T) {
	t.Parallel()

	rt := newTestRouter(t)

	info, _ := rt.Route("admin.dashboard.index")
	info.PermittedRoles[0] = "guest"

	again, _ := rt.Route("admin.dashboard.index")
	assert.Equal(t, []string{"admin"}, again.PermittedRoles)
}

func TestRouterMatch(t *testing.T) {
	t.Parallel()

	rt := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		route  string
		params map[string]string
	}{
		{http.MethodGet, "/", "home.index", nil},
		{http.MethodGet, "/dog/30", "dog.show", map[string]string{"id": "30"}},
		{http.MethodGet, "/dog/new", "dog.create", nil},
		{http.MethodPost, "/dog/new", "dog.store", nil},
		{http.MethodGet, "/admin", "admin.dashboard.index", nil},
		{http.MethodPost, "/admin/invite-user", "admin.dashboard.inviteUser", nil},
		{http.MethodGet, "/sign-in", "authentication.index", nil},
		{http.MethodPost, "/sign-in", "authentication.signIn", nil},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()

			m, ok := rt.Match(tt.method, tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.route, m.Route)
			assert.Equal(t, tt.params, m.Params)
		})
	}
}

func TestRouterMatchMisses(t *testing.T) {
	t.Parallel()

	rt := newTestRouter(t)

	for _, c := range []struct{ method, path string }{
		{http.MethodGet, "/dog/abc"},
		{http.MethodGet, "/dog/30/"},
		{http.MethodGet, "/dog"},
		{http.MethodDelete, "/dog/new"},
		{http.MethodGet, "/admin/invite-user"},
		{"BREW", "/"},
		{http.MethodGet, "/nope"},
	} {
		_, ok := rt.Match(c.method, c.path)
		assert.False(t, ok, "%s %s", c.method, c.path)
	}
}

func TestRouterMatchCarriesRouteData(t *testing.T) {
	t.Parallel()

	rt := newTestRouter(t)

	m, ok := rt.Match(http.MethodPost, "/sign-in")
	require.True(t, ok)
	assert.Equal(t, map[string]bool{"A": false, "B": true}, m.Middleware)
	assert.Nil(t, m.PermittedRoles)

	m, ok = rt.Match(http.MethodGet, "/admin")
	require.True(t, ok)
	assert.Equal(t, []string{"admin"}, m.PermittedRoles)
}

func TestRouterPatterns(t *testing.T) {
	t.Parallel()

	rt, err := router.New(action.Spec{}, func(m *router.Map) {
		m.Get("file.show", "/files/*")
		m.Get("user.show", "/users/{name}")
		m.Get("post.show", "/users/{name}/posts/{slug:[a-z-]+}")
		m.Route("any.ping", "/ping")
	})
	require.NoError(t, err)

	m, ok := rt.Match(http.MethodGet, "/files/a/b/c.txt")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"*": "a/b/c.txt"}, m.Params)

	m, ok = rt.Match(http.MethodGet, "/users/rex/posts/first-walk")
	require.True(t, ok)
	assert.Equal(t, "post.show", m.Route)
	assert.Equal(t, map[string]string{"name": "rex", "slug": "first-walk"}, m.Params)

	_, ok = rt.Match(http.MethodGet, "/users/rex/posts/Nope")
	assert.False(t, ok)

	_, ok = rt.Match(http.MethodGet, "/users/")
	assert.False(t, ok, "params never match empty segments")

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		m, ok = rt.Match(method, "/ping")
		require.True(t, ok, method)
		assert.Equal(t, "any.ping", m.Route)
	}
}

func TestRouterNewErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		configure func(m *router.Map)
		err       error
	}{
		{"duplicate name", func(m *router.Map) {
			m.Get("dog.show", "/a")
			m.Get("dog.show", "/b")
		}, router.ErrDuplicateRoute},
		{"empty name", func(m *router.Map) { m.Get("", "/") }, router.ErrEmptyRouteName},
		{"bad method", func(m *router.Map) { m.Route("dog.show", "/", "BREW") }, router.ErrInvalidMethod},
		{"relative path", func(m *router.Map) { m.Get("dog.show", "dog") }, router.ErrInvalidPattern},
		{"bad regexp", func(m *router.Map) { m.Get("dog.show", "/{id:[0-9}") }, router.ErrInvalidRegexp},
		{"wildcard not last", func(m *router.Map) { m.Get("dog.show", "/*/x") }, router.ErrWildcardPosition},
		{"duplicate param", func(m *router.Map) { m.Get("dog.show", "/{id}/{id}") }, router.ErrDuplicateParam},
		{"mixed segment", func(m *router.Map) { m.Get("dog.show", "/dog-{id}") }, router.ErrInvalidPattern},
		{"single segment identifier", func(m *router.Map) { m.Get("dog", "/dog") }, resolver.ErrInvalidRouteIdentifier},
		{"bad handler override", func(m *router.Map) { m.Get("dog.show", "/dog").Handler("dog") }, resolver.ErrInvalidRouteIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := router.New(testSpec(), tt.configure)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRouterNonRoutablePathIsNotCompiled(t *testing.T) {
	t.Parallel()

	_, err := router.New(testSpec(), func(m *router.Map) {
		m.Get("error.notFound", "not-a-path").Routable(false)
	})
	assert.NoError(t, err)
}

func TestRouterGroupScope(t *testing.T) {
	t.Parallel()

	rt, err := router.New(testSpec(), func(m *router.Map) {
		m.Attach("admin.", "/admin", func(m *router.Map) {
			m.PermittedRoles([]string{"admin"}).Middleware(map[string]bool{"B": true})
			m.Get("dashboard.index", "")

			m.Attach("users.", "/users", func(m *router.Map) {
				m.Get("list.index", "")
				m.Get("secret.index", "/secret").PermittedRoles([]string{})
			})
		})
		m.Get("home.index", "/")
	})
	require.NoError(t, err)

	nested, ok := rt.Route("admin.users.list.index")
	require.True(t, ok)
	assert.Equal(t, "/admin/users", nested.Path)
	assert.Equal(t, []string{"admin"}, nested.PermittedRoles)
	assert.Equal(t, map[string]bool{"B": true}, nested.Middleware)

	secret, ok := rt.Route("admin.users.secret.index")
	require.True(t, ok)
	require.NotNil(t, secret.PermittedRoles)
	assert.Empty(t, secret.PermittedRoles)

	home, ok := rt.Route("home.index")
	require.True(t, ok)
	assert.Nil(t, home.PermittedRoles, "group defaults must not leak")
	assert.Nil(t, home.Middleware)
}

func TestRouterCreateAction(t *testing.T) {
	t.Parallel()

	rt := newTestRouter(t)
	c := testContainer()

	r := httptest.NewRequest(http.MethodGet, "/dog/new", nil)
	a, err := rt.CreateAction(c, r)
	require.NoError(t, err)

	dog, _ := c.Get("DogController")
	assert.Same(t, dog, a.Controller())
	assert.Nil(t, a.PermittedRoles())
	assert.Equal(t, "create", a.Identity().EntryPoint)
	assert.Equal(t, "DogController::create", render(t, a, r))
}

func TestRouterCreateActionFallback(t *testing.T) {
	t.Parallel()

	rt := newTestRouter(t)

	r := httptest.NewRequest(http.MethodGet, "/does/not/exist", nil)
	a, err := rt.CreateAction(testContainer(), r)
	require.NoError(t, err)
	assert.Equal(t, "ErrorController::notFound", a.Identity().String())
	assert.Equal(t, "ErrorController::notFound", render(t, a, r))
}

func TestRouterCreateActionMissingFallback(t *testing.T) {
	t.Parallel()

	rt := newTestRouter(t, router.WithFallback("error.gone"))

	_, err := rt.CreateAction(testContainer(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.ErrorIs(t, err, router.ErrRouteNotFound)
}

func TestRouterCreateActionResolutionErrors(t *testing.T) {
	t.Parallel()

	rt := newTestRouter(t)
	r := httptest.NewRequest(http.MethodGet, "/dog/1", nil)

	t.Run("missing controller", func(t *testing.T) {
		t.Parallel()
		_, err := rt.CreateAction(container.New().Set("A", passThrough("A")).Set("C", passThrough("C")), r)
		assert.ErrorIs(t, err, container.ErrDependencyNotFound)
	})

	t.Run("missing middleware", func(t *testing.T) {
		t.Parallel()
		_, err := rt.CreateAction(container.New().Set("DogController", newController("DogController", "show")).Set("A", passThrough("A")), r)
		assert.ErrorIs(t, err, container.ErrDependencyNotFound)
	})

	t.Run("not a controller", func(t *testing.T) {
		t.Parallel()
		c := testContainer().Set("DogController", "nope")
		_, err := rt.CreateAction(c, r)
		assert.ErrorIs(t, err, router.ErrInvalidController)
	})

	t.Run("not a middleware", func(t *testing.T) {
		t.Parallel()
		c := testContainer().Set("C", 42)
		_, err := rt.CreateAction(c, r)
		assert.ErrorIs(t, err, router.ErrInvalidMiddleware)
	})

	t.Run("unknown entry point", func(t *testing.T) {
		t.Parallel()
		c := testContainer().Set("DogController", newController("DogController", "index"))
		_, err := rt.CreateAction(c, r)
		assert.ErrorIs(t, err, action.ErrUnknownEntryPoint)
	})
}

func TestRouterCreateActionMiddlewareOrder(t *testing.T) {
	t.Parallel()

	rt := newTestRouter(t)
	c := testContainer()

	var order []string
	for _, id := range []string{"A", "B", "C"} {
		c.Set(id, recordOrder(id, &order))
	}

	r := httptest.NewRequest(http.MethodPost, "/sign-in", nil)
	a, err := rt.CreateAction(c, r)
	require.NoError(t, err)
	_, err = a.Handle(r)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "C"}, order)
}

func TestRouterLoggerFromContainer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := testContainer().Set(router.LoggerName, slog.New(slog.NewTextHandler(&buf, nil)))

	rt := newTestRouter(t)
	r := httptest.NewRequest(http.MethodGet, "/dog/30", nil)
	a, err := rt.CreateAction(c, r)
	require.NoError(t, err)
	render(t, a, r)

	assert.Contains(t, buf.String(), "controller=DogController")
	assert.Contains(t, buf.String(), "entry_point=show")
}

func TestRouterVerify(t *testing.T) {
	t.Parallel()

	rt := newTestRouter(t)
	assert.NoError(t, rt.Verify(testContainer()))

	c := testContainer().Set("DogController", newController("DogController", "show"))
	err := rt.Verify(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, action.ErrUnknownEntryPoint)
	assert.Contains(t, err.Error(), "dog.create")
	assert.Contains(t, err.Error(), "dog.store")

	missingFallback := newTestRouter(t, router.WithFallback("error.gone"))
	assert.ErrorIs(t, missingFallback.Verify(testContainer()), router.ErrRouteNotFound)
}
