// Package resolver maps dot-separated route identifiers to handler identities
// by naming convention.
//
// The last segment names the entry point, the second-to-last segment
// (capitalized, plus a suffix) names the implementation, and every earlier
// segment (capitalized) extends the namespace:
//
//	dog.show                    -> DogController, show
//	admin.dashboard.inviteUser  -> Admin.DashboardController, inviteUser
//	a.b.user.edit               -> A.B.UserController, edit
package resolver

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultSuffix is appended to the implementation segment.
const DefaultSuffix = "Controller"

// ErrInvalidRouteIdentifier is returned for identifiers with fewer than two
// segments or with empty segments.
var ErrInvalidRouteIdentifier = errors.New("invalid route identifier")

// Identity names the implementation and entry point a route dispatches to.
type Identity struct {
	Namespace      []string
	Implementation string
	EntryPoint     string
}

// Name returns the namespace-qualified implementation name, e.g.
// "Admin.DashboardController". It is the name used for container lookups.
func (id Identity) Name() string {
	if len(id.Namespace) == 0 {
		return id.Implementation
	}
	return strings.Join(id.Namespace, ".") + "." + id.Implementation
}

// String returns "Name::entryPoint".
func (id Identity) String() string {
	return id.Name() + "::" + id.EntryPoint
}

// Resolver resolves route identifiers under a root namespace.
// The zero value resolves with no root namespace and DefaultSuffix.
type Resolver struct {
	RootNamespace []string
	Suffix        string
}

// Resolve resolves id with the zero Resolver.
func Resolve(id string) (Identity, error) {
	return Resolver{}.Resolve(id)
}

// Resolve derives the handler identity for a route identifier.
func (res Resolver) Resolve(id string) (Identity, error) {
	segments := strings.Split(id, ".")
	n := len(segments)
	if n < 2 {
		return Identity{}, fmt.Errorf("%w: %q has %d segment(s)", ErrInvalidRouteIdentifier, id, n)
	}
	for _, s := range segments {
		if s == "" {
			return Identity{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalidRouteIdentifier, id)
		}
	}

	suffix := res.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}

	var namespace []string
	if len(res.RootNamespace) > 0 || n > 2 {
		namespace = make([]string, 0, len(res.RootNamespace)+n-2)
		namespace = append(namespace, res.RootNamespace...)
		for _, s := range segments[:n-2] {
			namespace = append(namespace, ucfirst(s))
		}
	}

	return Identity{
		Namespace:      namespace,
		Implementation: ucfirst(segments[n-2]) + suffix,
		EntryPoint:     segments[n-1],
	}, nil
}

// ucfirst title-cases the first rune only; the rest keeps its case, so
// word breaks inside a segment ("user-profile") are not capitalized.
func ucfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	// Casers hold state and must not be shared between goroutines.
	return cases.Title(language.Und, cases.NoLower).String(s[:size]) + s[size:]
}
