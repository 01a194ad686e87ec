// Package binder binds captured route parameters and the live request to an
// entry point's statically declared parameter list.
//
// Parameters are declared once, next to the entry point:
//
//	params := []binder.Param{
//		binder.Request("request"),
//		binder.Int("id"),
//	}
//
//	args, err := binder.Bind(params, map[string]string{"id": "50"}, r)
//	// args.Request(0) == r, args.Int(1) == 50
//
// Binding rules by type:
//
//   - TypeUntyped, TypeString: the route parameter, or nil when missing
//   - TypeRequest: the request
//   - TypeInt: strconv.Atoi of the route parameter; failure is ErrInvariantViolation
//   - anything else: ErrUnsupportedParameterType
//
// Validate performs the type check up front so misdeclared entry points fail
// when an action is built rather than when it runs.
package binder
