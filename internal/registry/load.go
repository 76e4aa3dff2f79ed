package registry

import (
	"context"
	"fmt"

	"github.com/vk/synergrid/internal/ctxlog"
)

// LoadAll resolves every configured module name in order and records the
// resulting handles. On success it returns a snapshot of the full name to
// handle mapping.
//
// The first failure aborts the remaining names and is reported as a single
// *BatchLoadError wrapping the per-name cause. Handles resolved before the
// failure stay recorded, so a failed batch leaves the registry holding
// exactly the prefix that succeeded.
func (r *Registry) LoadAll(ctx context.Context) (map[string]any, error) {
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.names {
		logger.Info("Processing module.", "name", name)

		handle, err := r.resolver.Resolve(ctx, name)
		if err != nil {
			logger.Error("Failed to resolve module.", "name", name, "error", err)
			return nil, &BatchLoadError{Err: &ImportError{Name: name, Err: err}}
		}
		if handle == nil {
			logger.Error("Module resolved to an empty handle.", "name", name)
			return nil, &BatchLoadError{Err: &UnavailableError{Name: name}}
		}

		r.modules[name] = handle
		logger.Info("Module loaded successfully.", "name", name)
	}

	return r.Modules(), nil
}

// Reload re-resolves the handle of an already-loaded module in place.
// Reloading a name that was never loaded fails with ErrNotLoaded and leaves
// the registry untouched. A failed re-resolution keeps the previous handle
// but is still reported as a *ReloadError.
func (r *Registry) Reload(ctx context.Context, name string) error {
	logger := ctxlog.FromContext(ctx)

	handle, ok := r.modules[name]
	if !ok {
		return fmt.Errorf("module %q: %w", name, ErrNotLoaded)
	}

	logger.Info("Reloading module.", "name", name)
	fresh, err := r.resolver.Refresh(ctx, name, handle)
	if err != nil {
		logger.Error("Failed to reload module.", "name", name, "error", err)
		return &ReloadError{Name: name, Err: err}
	}
	if fresh == nil {
		logger.Error("Module reload produced an empty handle.", "name", name)
		return &ReloadError{Name: name, Err: &UnavailableError{Name: name}}
	}

	r.modules[name] = fresh
	return nil
}
