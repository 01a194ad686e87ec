package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/resolver"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		namespace  []string
		impl       string
		entryPoint string
		full       string
	}{
		{"two segments", "dog.show", nil, "DogController", "show", "DogController"},
		{"three segments", "admin.dashboard.inviteUser", []string{"Admin"}, "DashboardController", "inviteUser", "Admin.DashboardController"},
		{"deep", "a.b.user.edit", []string{"A", "B"}, "UserController", "edit", "A.B.UserController"},
		{"keeps inner case", "userManagement.index", nil, "UserManagementController", "index", "UserManagementController"},
		{"already capitalized", "Dog.show", nil, "DogController", "show", "DogController"},
		{"no word breaks", "user-profile.show", nil, "User-profileController", "show", "User-profileController"},
		{"non ascii", "élan.show", nil, "ÉlanController", "show", "ÉlanController"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := resolver.Resolve(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.namespace, id.Namespace)
			assert.Equal(t, tt.impl, id.Implementation)
			assert.Equal(t, tt.entryPoint, id.EntryPoint)
			assert.Equal(t, tt.full, id.Name())
		})
	}
}

func TestResolveRootNamespaceAndSuffix(t *testing.T) {
	t.Parallel()

	res := resolver.Resolver{RootNamespace: []string{"App", "Controller"}, Suffix: "Handler"}

	id, err := res.Resolve("dog.show")
	require.NoError(t, err)
	assert.Equal(t, "App.Controller.DogHandler", id.Name())
	assert.Equal(t, "App.Controller.DogHandler::show", id.String())

	id, err = res.Resolve("admin.userManagement.index")
	require.NoError(t, err)
	assert.Equal(t, []string{"App", "Controller", "Admin"}, id.Namespace)
	assert.Equal(t, "App.Controller.Admin.UserManagementHandler", id.Name())
	assert.Equal(t, "index", id.EntryPoint)
}

func TestResolveDoesNotAliasRootNamespace(t *testing.T) {
	t.Parallel()

	root := make([]string, 1, 4)
	root[0] = "App"
	res := resolver.Resolver{RootNamespace: root}

	a, err := res.Resolve("x.y.show")
	require.NoError(t, err)
	b, err := res.Resolve("z.y.show")
	require.NoError(t, err)

	assert.Equal(t, []string{"App", "X"}, a.Namespace)
	assert.Equal(t, []string{"App", "Z"}, b.Namespace)
}

func TestResolveInvalid(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"", "dog", "dog.", ".show", "admin..show"} {
		_, err := resolver.Resolve(id)
		assert.ErrorIs(t, err, resolver.ErrInvalidRouteIdentifier, "id %q", id)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	a, err := resolver.Resolve("admin.dashboard.index")
	require.NoError(t, err)
	b, err := resolver.Resolve("admin.dashboard.index")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
