package registry

import "context"

// DefaultModuleNames is the ordered set of modules loaded when no
// configuration overrides it.
var DefaultModuleNames = []string{"perception", "reasoning", "memory"}

// Resolver turns module names into opaque handles. It is the only contract
// the registry has with the outside world: resolve a name, or re-resolve a
// handle that was produced earlier (picking up whatever changed underneath).
type Resolver interface {
	// Resolve produces a handle for the named module. A nil handle with a
	// nil error is treated by the registry as "module unavailable".
	Resolve(ctx context.Context, name string) (any, error)

	// Refresh re-resolves an existing handle in place and returns the
	// replacement. Implementations may return the same handle if nothing
	// changed.
	Refresh(ctx context.Context, name string, handle any) (any, error)
}

// Registry holds the loaded module handles for a single application
// instance. It is not safe for concurrent use; the caller is expected to
// drive loads and reloads strictly sequentially.
type Registry struct {
	resolver Resolver
	names    []string
	modules  map[string]any
}

// New creates a registry over the given resolver and ordered module names.
// The name order is fixed for the registry's lifetime and determines load
// order. With no names, DefaultModuleNames is used.
func New(resolver Resolver, names ...string) *Registry {
	if len(names) == 0 {
		names = DefaultModuleNames
	}
	fixed := make([]string, len(names))
	copy(fixed, names)
	return &Registry{
		resolver: resolver,
		names:    fixed,
		modules:  make(map[string]any),
	}
}

// Names returns the configured load order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Handle returns the stored handle for a name, if it has been loaded.
func (r *Registry) Handle(name string) (any, bool) {
	h, ok := r.modules[name]
	return h, ok
}

// Modules returns a snapshot copy of the current name to handle mapping.
func (r *Registry) Modules() map[string]any {
	out := make(map[string]any, len(r.modules))
	for name, h := range r.modules {
		out[name] = h
	}
	return out
}
