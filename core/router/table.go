package router

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/dispatch/core/action"
)

// Table is a declarative route configuration, usually read from YAML:
//
//	fallback: error.notFound
//	middlewares:
//	  - {id: requestID, enabled: true}
//	  - {id: auth, enabled: true}
//	routes:
//	  - {name: dog.show, path: "/dog/{id:[0-9]+}", methods: [GET]}
//	  - name: authentication.signIn
//	    path: /sign-in
//	    methods: [POST]
//	    middleware: {auth: false}
//	  - {name: error.notFound, methods: [GET], routable: false}
//	groups:
//	  - name_prefix: admin.
//	    path_prefix: /admin
//	    permitted_roles: [admin]
//	    routes:
//	      - {name: dashboard.index, path: "", methods: [GET]}
//
// permitted_roles keeps absent (no restriction) and [] (nobody) distinct.
type Table struct {
	Fallback    string         `yaml:"fallback"`
	Middlewares []action.Entry `yaml:"middlewares" validate:"dive"`
	Routes      []TableRoute   `yaml:"routes" validate:"dive"`
	Groups      []TableGroup   `yaml:"groups" validate:"dive"`
}

// TableRoute declares one route.
type TableRoute struct {
	Name           string          `yaml:"name" validate:"required"`
	Path           string          `yaml:"path"`
	Methods        []string        `yaml:"methods" validate:"required,min=1,dive,oneof=GET HEAD POST PUT PATCH DELETE OPTIONS CONNECT TRACE"`
	Handler        string          `yaml:"handler"`
	Middleware     map[string]bool `yaml:"middleware"`
	PermittedRoles *[]string       `yaml:"permitted_roles"`
	Routable       *bool           `yaml:"routable"`
}

// TableGroup declares routes sharing name and path prefixes and defaults.
type TableGroup struct {
	NamePrefix     string          `yaml:"name_prefix"`
	PathPrefix     string          `yaml:"path_prefix"`
	Middleware     map[string]bool `yaml:"middleware"`
	PermittedRoles *[]string       `yaml:"permitted_roles"`
	Routes         []TableRoute    `yaml:"routes" validate:"required,min=1,dive"`
}

var tableValidator = validator.New(validator.WithRequiredStructEnabled())

// LoadTable reads and validates a YAML route table file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidTable, path, err)
	}
	return ParseTable(data)
}

// ParseTable decodes and validates a YAML route table. Unknown keys are rejected.
func ParseTable(data []byte) (*Table, error) {
	t := &Table{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parse: %w", ErrInvalidTable, err)
	}

	t.normalize()
	if err := tableValidator.Struct(t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	return t, nil
}

func (t *Table) normalize() {
	upper := func(routes []TableRoute) {
		for i := range routes {
			for j, m := range routes[i].Methods {
				routes[i].Methods[j] = strings.ToUpper(m)
			}
		}
	}
	upper(t.Routes)
	for i := range t.Groups {
		upper(t.Groups[i].Routes)
	}
}

// Spec builds the middleware spec declared by the table.
func (t *Table) Spec() (action.Spec, error) {
	return action.NewSpec(t.Middlewares...)
}

// Options returns the router options declared by the table.
func (t *Table) Options() []Option {
	if t.Fallback == "" {
		return nil
	}
	return []Option{WithFallback(t.Fallback)}
}

// Configure adds the table's routes to m.
func (t *Table) Configure(m *Map) {
	for _, r := range t.Routes {
		r.addTo(m)
	}
	for _, g := range t.Groups {
		m.Attach(g.NamePrefix, g.PathPrefix, func(m *Map) {
			if g.PermittedRoles != nil {
				m.PermittedRoles(*g.PermittedRoles)
			}
			if len(g.Middleware) > 0 {
				m.Middleware(g.Middleware)
			}
			for _, r := range g.Routes {
				r.addTo(m)
			}
		})
	}
}

func (tr TableRoute) addTo(m *Map) {
	r := m.Route(tr.Name, tr.Path, tr.Methods...)
	if tr.Handler != "" {
		r.Handler(tr.Handler)
	}
	if len(tr.Middleware) > 0 {
		r.Middleware(tr.Middleware)
	}
	if tr.PermittedRoles != nil {
		r.PermittedRoles(*tr.PermittedRoles)
	}
	if tr.Routable != nil {
		r.Routable(*tr.Routable)
	}
}

// NewFromTable builds a router from a table. opts are applied after the
// table's own options.
func NewFromTable(t *Table, opts ...Option) (*Router, error) {
	spec, err := t.Spec()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	return New(spec, t.Configure, append(t.Options(), opts...)...)
}
