// Package memory provides the recall store module: a small key-value unit
// other modules can stash observations in, with binary snapshots so a reload
// carries remembered facts across unit generations.
package memory

import (
	"context"
	"fmt"

	"github.com/vk/synergrid/internal/ctxlog"
	"github.com/vk/synergrid/internal/registry"
)

var _ registry.Factory = (*Module)(nil)

// Module implements the registry.Factory interface for this package.
type Module struct {
	// Capacity bounds the number of stored facts. Zero means unbounded.
	Capacity int
}

// Name returns the module name this factory resolves.
func (m *Module) Name() string { return "memory" }

// New constructs a fresh, empty recall unit.
func (m *Module) New(ctx context.Context) (any, error) {
	ctxlog.FromContext(ctx).Debug("Creating memory unit.", "capacity", m.Capacity)
	return NewUnit(m.Capacity), nil
}

// Refresh rebuilds the unit, carrying remembered facts over through a
// snapshot so a reload does not amnesia the store.
func (m *Module) Refresh(ctx context.Context, handle any) (any, error) {
	old, ok := handle.(*Unit)
	if !ok {
		return nil, fmt.Errorf("memory: cannot refresh handle of type %T", handle)
	}

	snapshot, err := old.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("memory: failed to snapshot old unit: %w", err)
	}

	fresh := NewUnit(m.Capacity)
	if err := fresh.Restore(snapshot); err != nil {
		return nil, fmt.Errorf("memory: failed to restore snapshot: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Memory unit refreshed.", "facts", fresh.Len())
	return fresh, nil
}
