// Package controller describes handler implementations through statically
// declared entry-point tables.
//
// A controller lists each entry point once, with its ordered parameters and
// a function that receives the bound arguments:
//
//	func (c *DogController) EntryPoints() controller.Table {
//		return controller.Table{
//			"show": {
//				Params: []binder.Param{binder.Request("request"), binder.Int("id")},
//				Invoke: func(args binder.Args) (handler.Response, error) {
//					return c.Show(args.Request(0), args.Int(1))
//				},
//			},
//		}
//	}
package controller

import (
	"slices"

	"github.com/dmitrymomot/dispatch/core/binder"
	"github.com/dmitrymomot/dispatch/core/handler"
)

// Controller is implemented by every dispatch target.
type Controller interface {
	EntryPoints() Table
}

// EntryPoint is the static descriptor of one callable operation.
type EntryPoint struct {
	Params []binder.Param
	Invoke func(args binder.Args) (handler.Response, error)
}

// Table maps entry point names to descriptors.
type Table map[string]EntryPoint

// Lookup returns the named entry point.
func (t Table) Lookup(name string) (EntryPoint, bool) {
	ep, ok := t[name]
	return ep, ok
}

// Names returns the entry point names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
