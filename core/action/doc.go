// Package action assembles and runs the dispatch chain for one request.
//
// Middleware configuration is an immutable Spec, declared once in
// outer-to-inner order with a default on/off flag per id. Routes may only flip
// flags; Merge keeps spec order:
//
//	spec := action.MustSpec(
//		action.Entry{ID: "A", Enabled: true},
//		action.Entry{ID: "B", Enabled: false},
//		action.Entry{ID: "C", Enabled: true},
//	)
//	action.Merge(spec, map[string]bool{"A": false, "B": true}) // [B C]
//
// An Action holds the resolved middlewares and entry point. Each middleware
// receives a continuation that points at the next index of an immutable
// slice; the last continuation binds the route parameters and invokes the
// entry point. Calling order equals configuration order:
//
//	m1 enters -> m2 enters -> handler -> m2 returns -> m1 returns
//
// Actions are single-use. A second Handle returns ErrActionConsumed.
package action
