package registry

import (
	"context"
	"fmt"

	"github.com/vk/synergrid/internal/ctxlog"
)

// Factory is the interface a compiled-in module package implements to make
// itself resolvable by name.
type Factory interface {
	// Name returns the module name this factory resolves.
	Name() string

	// New constructs a fresh handle for the module.
	New(ctx context.Context) (any, error)

	// Refresh rebuilds the handle, releasing whatever the old one held.
	Refresh(ctx context.Context, handle any) (any, error)
}

// TableResolver is the built-in Resolver: a lookup table of compiled-in
// module factories keyed by name. It stands in for dynamic loading the same
// way a plugin table would.
type TableResolver struct {
	factories map[string]Factory
}

// NewTableResolver builds a resolver over the given factories.
func NewTableResolver(factories ...Factory) *TableResolver {
	t := &TableResolver{factories: make(map[string]Factory, len(factories))}
	for _, f := range factories {
		t.RegisterFactory(f)
	}
	return t
}

// RegisterFactory adds a factory to the table. Registering the same name
// twice is a programmer error.
func (t *TableResolver) RegisterFactory(f Factory) {
	if _, exists := t.factories[f.Name()]; exists {
		panic(fmt.Sprintf("module factory with name '%s' already registered", f.Name()))
	}
	t.factories[f.Name()] = f
}

// Resolve implements Resolver.
func (t *TableResolver) Resolve(ctx context.Context, name string) (any, error) {
	f, ok := t.factories[name]
	if !ok {
		return nil, fmt.Errorf("no factory registered for module %q", name)
	}
	ctxlog.FromContext(ctx).Debug("Resolving module via factory table.", "name", name)
	return f.New(ctx)
}

// Refresh implements Resolver.
func (t *TableResolver) Refresh(ctx context.Context, name string, handle any) (any, error) {
	f, ok := t.factories[name]
	if !ok {
		return nil, fmt.Errorf("no factory registered for module %q", name)
	}
	ctxlog.FromContext(ctx).Debug("Refreshing module via factory table.", "name", name)
	return f.Refresh(ctx, handle)
}
