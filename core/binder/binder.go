package binder

import (
	"fmt"
	"net/http"
	"strconv"
)

// ParamType tags the semantic type of an entry point parameter.
type ParamType string

const (
	// TypeUntyped binds the raw route parameter, or nil when missing.
	TypeUntyped ParamType = ""
	// TypeRequest binds the live *http.Request.
	TypeRequest ParamType = "request"
	// TypeString binds the route parameter as is, or nil when missing.
	TypeString ParamType = "string"
	// TypeInt binds the route parameter parsed as a base-10 integer.
	TypeInt ParamType = "int"
)

// Param declares one entry point parameter.
type Param struct {
	Name string
	Type ParamType
}

// Untyped declares a parameter bound to the raw route parameter.
func Untyped(name string) Param { return Param{Name: name, Type: TypeUntyped} }

// Request declares a parameter bound to the request.
func Request(name string) Param { return Param{Name: name, Type: TypeRequest} }

// String declares a string parameter.
func String(name string) Param { return Param{Name: name, Type: TypeString} }

// Int declares an integer parameter.
func Int(name string) Param { return Param{Name: name, Type: TypeInt} }

// Validate reports the first parameter whose type cannot be bound.
func Validate(params []Param) error {
	for i, p := range params {
		switch p.Type {
		case TypeUntyped, TypeRequest, TypeString, TypeInt:
		default:
			return fmt.Errorf("%w: parameter %d %q has type %q", ErrUnsupportedParameterType, i, p.Name, p.Type)
		}
	}
	return nil
}

// Bind produces the argument list for params in declaration order.
//
// Integer parameters are plain base-10 with an optional sign. Leading zeros
// are accepted ("007" binds 7) and surrounding whitespace is not.
// Integer parameters must parse: the path matcher is expected to constrain
// them to digits, so a failure is reported as ErrInvariantViolation and never
// replaced by a default.
func Bind(params []Param, routeParams map[string]string, r *http.Request) (Args, error) {
	args := make(Args, len(params))
	for i, p := range params {
		raw, ok := routeParams[p.Name]

		switch p.Type {
		case TypeUntyped, TypeString:
			if ok {
				args[i] = raw
			}
		case TypeRequest:
			args[i] = r
		case TypeInt:
			if !ok {
				return nil, fmt.Errorf("%w: integer parameter %q is missing from the route parameters", ErrInvariantViolation, p.Name)
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: integer parameter %q got %q: %w", ErrInvariantViolation, p.Name, raw, err)
			}
			args[i] = n
		default:
			return nil, fmt.Errorf("%w: parameter %d %q has type %q", ErrUnsupportedParameterType, i, p.Name, p.Type)
		}
	}
	return args, nil
}
