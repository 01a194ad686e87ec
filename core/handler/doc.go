// Package handler defines the request processing abstractions shared by the
// dispatch pipeline: deferred responses, handlers, middlewares and
// copy-on-write request attributes.
//
// # Core Types
//
//	// Response renders an HTTP response once the chain has finished.
//	type Response func(w http.ResponseWriter, r *http.Request) error
//
//	// Handler produces a response for a request.
//	type Handler interface {
//		Handle(r *http.Request) (Response, error)
//	}
//
//	// Middleware wraps the next handler in the chain.
//	type Middleware interface {
//		Process(r *http.Request, next Handler) (Response, error)
//	}
//
// Function adapters (HandlerFunc, MiddlewareFunc) follow the net/http
// convention.
//
// # Writing Middleware
//
// A middleware observes the request before calling next and the response
// after next returns. It may also return without calling next:
//
//	auth := handler.MiddlewareFunc(func(r *http.Request, next handler.Handler) (handler.Response, error) {
//		if r.Header.Get("Authorization") == "" {
//			return func(w http.ResponseWriter, r *http.Request) error {
//				w.WriteHeader(http.StatusUnauthorized)
//				return nil
//			}, nil
//		}
//		return next.Handle(r)
//	})
//
// # Request Attributes
//
// Attributes are stored in the request context. WithAttribute returns a new
// request and never mutates the one it was given:
//
//	r2 := handler.WithAttribute(r, "tenant", tenant)
//	handler.Attribute(r2, "tenant") // tenant
//	handler.Attribute(r, "tenant")  // nil
//
// Permitted roles keep "no restriction" (nil) and "nobody" (empty slice)
// apart:
//
//	roles, ok := handler.Roles(r, "permittedRoles")
//	switch {
//	case !ok:          // not attached
//	case roles == nil: // anyone
//	case len(roles) == 0: // forbidden
//	}
package handler
