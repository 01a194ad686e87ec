package binder

import "net/http"

// Args holds bound arguments in declaration order.
// Missing string parameters are stored as nil.
type Args []any

// Value returns the i-th argument.
func (a Args) Value(i int) any {
	if i < 0 || i >= len(a) {
		return nil
	}
	return a[i]
}

// Request returns the i-th argument as a request, or nil.
func (a Args) Request(i int) *http.Request {
	r, _ := a.Value(i).(*http.Request)
	return r
}

// String returns the i-th argument as a string.
// ok is false when the route parameter was missing.
func (a Args) String(i int) (s string, ok bool) {
	s, ok = a.Value(i).(string)
	return s, ok
}

// Int returns the i-th argument as an integer.
func (a Args) Int(i int) int {
	n, _ := a.Value(i).(int)
	return n
}
