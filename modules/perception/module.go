// Package perception provides the sensing module: a unit that observes
// filesystem paths for changes and, optionally, subscribes to a remote
// percept feed over socket.io. Everything it notices is surfaced as Events
// on a single channel.
package perception

import (
	"context"
	"fmt"

	"github.com/vk/synergrid/internal/ctxlog"
	"github.com/vk/synergrid/internal/registry"
)

var _ registry.Factory = (*Module)(nil)

// Module implements the registry.Factory interface for this package.
type Module struct {
	// FeedURL, when set, configures a remote percept feed. The feed is only
	// dialed on demand, never during resolution.
	FeedURL string

	// FeedNamespace selects the socket.io namespace of the feed.
	FeedNamespace string

	// WatchPaths are observed for filesystem changes from the moment the
	// unit is created.
	WatchPaths []string
}

// Name returns the module name this factory resolves.
func (m *Module) Name() string { return "perception" }

// New constructs a fresh sensing unit.
func (m *Module) New(ctx context.Context) (any, error) {
	ctxlog.FromContext(ctx).Debug("Creating perception unit.", "watch_paths", m.WatchPaths, "feed_url", m.FeedURL)
	return NewUnit(ctx, m.FeedURL, m.FeedNamespace, m.WatchPaths)
}

// Refresh tears the old unit down and builds a replacement with the same
// configuration, releasing the old watcher and any live feed connection.
func (m *Module) Refresh(ctx context.Context, handle any) (any, error) {
	old, ok := handle.(*Unit)
	if !ok {
		return nil, fmt.Errorf("perception: cannot refresh handle of type %T", handle)
	}
	if err := old.Close(); err != nil {
		return nil, fmt.Errorf("perception: failed to close old unit: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Perception unit refreshed.")
	return NewUnit(ctx, m.FeedURL, m.FeedNamespace, m.WatchPaths)
}
