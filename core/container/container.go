// Package container provides the name-based dependency lookup used to obtain
// controller and middleware instances.
//
// Registry is a small, concurrency-safe implementation:
//
//	c := container.New()
//	c.Set("logger", slog.Default())
//	c.Provide("DogController", func(c container.Container) (any, error) {
//		return &DogController{}, nil
//	})
//
//	dog, err := c.Get("DogController") // provider runs once, result is memoized
package container

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrDependencyNotFound is returned when a name cannot be resolved.
	ErrDependencyNotFound = errors.New("dependency not found")
	// ErrCircularDependency is returned when a provider needs, directly or
	// through other providers, the instance it is building.
	ErrCircularDependency = errors.New("circular dependency")
)

// Container resolves instances by name.
// Get must return an error wrapping ErrDependencyNotFound for unknown names.
type Container interface {
	Get(name string) (any, error)
	Has(name string) bool
}

// Provider builds an instance on first lookup. c resolves further
// dependencies and reports cycles instead of blocking on them.
type Provider func(c Container) (any, error)

type entry struct {
	once     sync.Once
	provider Provider
	instance any
	err      error
}

// Registry is a memoizing Container.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Set registers a ready instance under name, replacing any previous entry.
func (c *Registry) Set(name string, instance any) *Registry {
	e := &entry{instance: instance}
	e.once.Do(func() {})

	c.mu.Lock()
	c.entries[name] = e
	c.mu.Unlock()
	return c
}

// Provide registers a lazily built instance under name.
// The provider runs at most once; its result or error is memoized.
func (c *Registry) Provide(name string, p Provider) *Registry {
	c.mu.Lock()
	c.entries[name] = &entry{provider: p}
	c.mu.Unlock()
	return c
}

// Has reports whether name is registered.
func (c *Registry) Has(name string) bool {
	c.mu.RLock()
	_, ok := c.entries[name]
	c.mu.RUnlock()
	return ok
}

// Get resolves name.
func (c *Registry) Get(name string) (any, error) {
	return c.get(name, nil)
}

func (c *Registry) get(name string, chain []string) (any, error) {
	c.mu.RLock()
	e, ok := c.entries[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDependencyNotFound, name)
	}

	e.once.Do(func() {
		if e.provider == nil {
			e.err = fmt.Errorf("%w: %q has no provider", ErrDependencyNotFound, name)
			return
		}
		scope := resolution{Registry: c, chain: append(slices.Clone(chain), name)}
		e.instance, e.err = e.provider(scope)
		if e.err != nil {
			e.err = fmt.Errorf("resolve %q: %w", name, e.err)
		}
	})
	return e.instance, e.err
}

// resolution is the Container handed to providers. It remembers the names
// being built so a cycle fails instead of waiting on its own sync.Once.
type resolution struct {
	*Registry
	chain []string
}

func (r resolution) Get(name string) (any, error) {
	if slices.Contains(r.chain, name) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrCircularDependency, strings.Join(r.chain, " -> "), name)
	}
	return r.get(name, r.chain)
}

// Names returns registered names in sorted order.
func (c *Registry) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	c.mu.RUnlock()
	slices.Sort(names)
	return names
}
