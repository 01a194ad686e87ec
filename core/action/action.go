package action

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"sync/atomic"

	"github.com/dmitrymomot/dispatch/core/binder"
	"github.com/dmitrymomot/dispatch/core/controller"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/resolver"
)

// Action is a single-use dispatch chain: an immutable middleware list
// around one resolved entry point.
type Action struct {
	identity    resolver.Identity
	controller  controller.Controller
	entryPoint  controller.EntryPoint
	middlewares []handler.Middleware
	params      map[string]string
	roles       []string
	logger      *slog.Logger
	consumed    atomic.Bool
}

// New builds an action. Every configuration problem is reported here, before
// any middleware can run.
func New(id resolver.Identity, ctrl controller.Controller, middlewares []handler.Middleware, opts ...Option) (*Action, error) {
	if ctrl == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilController, id.Name())
	}

	ep, ok := ctrl.EntryPoints().Lookup(id.EntryPoint)
	if !ok || ep.Invoke == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntryPoint, id)
	}
	if err := binder.Validate(ep.Params); err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}

	for i, mw := range middlewares {
		if mw == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilMiddleware, i)
		}
	}

	a := &Action{
		identity:    id,
		controller:  ctrl,
		entryPoint:  ep,
		middlewares: slices.Clone(middlewares),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Identity returns the resolved handler identity.
func (a *Action) Identity() resolver.Identity { return a.identity }

// Controller returns the resolved controller instance.
func (a *Action) Controller() controller.Controller { return a.controller }

// PermittedRoles returns the permitted roles, preserving nil versus empty.
func (a *Action) PermittedRoles() []string { return a.roles }

// Params returns the captured route parameters.
func (a *Action) Params() map[string]string { return a.params }

// Handle runs the chain. It may be called only once.
func (a *Action) Handle(r *http.Request) (handler.Response, error) {
	if a.consumed.Swap(true) {
		return nil, fmt.Errorf("%w: %s", ErrActionConsumed, a.identity)
	}
	return link{action: a}.Handle(r)
}

// link is the continuation handed to the middleware at index.
// Advancing is index+1; past the end it invokes the entry point.
type link struct {
	action *Action
	index  int
}

func (l link) Handle(r *http.Request) (handler.Response, error) {
	a := l.action
	if l.index < len(a.middlewares) {
		return a.middlewares[l.index].Process(r, link{action: a, index: l.index + 1})
	}
	return a.invoke(r)
}

func (a *Action) invoke(r *http.Request) (handler.Response, error) {
	a.logger.InfoContext(r.Context(), "dispatching",
		logger.Controller(a.identity.Name()),
		logger.EntryPoint(a.identity.EntryPoint),
	)

	args, err := binder.Bind(a.entryPoint.Params, a.params, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.identity, err)
	}
	return a.entryPoint.Invoke(args)
}
