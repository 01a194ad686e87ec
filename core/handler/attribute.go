package handler

import (
	"context"
	"net/http"
)

// attributeKey namespaces request attributes inside the request context.
type attributeKey string

// WithAttribute returns a shallow copy of r carrying the named attribute.
// The original request is left untouched, so outer layers keep observing
// the values they saw before an inner layer rewrote them.
func WithAttribute(r *http.Request, name string, value any) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), attributeKey(name), value))
}

// Attribute returns the named attribute, or nil when it was never set.
func Attribute(r *http.Request, name string) any {
	return r.Context().Value(attributeKey(name))
}

// Roles reads a permitted-roles attribute.
//
// A nil slice with ok == true means the route has no role restriction.
// A non-nil empty slice means no role can access the route.
// ok is false when the attribute was never attached.
func Roles(r *http.Request, name string) (roles []string, ok bool) {
	roles, ok = r.Context().Value(attributeKey(name)).([]string)
	return roles, ok
}
