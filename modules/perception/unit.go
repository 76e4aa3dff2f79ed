package perception

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/vk/synergrid/internal/ctxlog"
)

// ErrNoFeed is returned by ConnectFeed when the unit was built without a
// feed URL.
var ErrNoFeed = errors.New("perception unit has no feed configured")

// Event is a single observation, from the filesystem or the remote feed.
type Event struct {
	Source  string // "filesystem" or "feed"
	Subject string // path or payload
	Op      string // operation for filesystem events, event name for feed events
	At      time.Time
}

// Unit is the sensing handle. Filesystem observation starts immediately; the
// remote feed, if configured, is dialed explicitly via ConnectFeed.
type Unit struct {
	logger    *slog.Logger
	watcher   *fsnotify.Watcher
	feed      *Feed
	events    chan Event
	closeOnce sync.Once
	closeErr  error
}

// NewUnit creates a unit watching the given paths. A non-empty feedURL
// configures (but does not dial) the remote feed.
func NewUnit(ctx context.Context, feedURL, feedNamespace string, watchPaths []string) (*Unit, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	u := &Unit{
		logger:  ctxlog.FromContext(ctx).With("module", "perception"),
		watcher: watcher,
		events:  make(chan Event, 64),
	}
	if feedURL != "" {
		u.feed = NewFeed(feedURL, feedNamespace)
	}

	for _, path := range watchPaths {
		if err := watcher.Add(path); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go u.forward()
	return u, nil
}

// forward pumps watcher notifications onto the unit's event channel until
// the watcher is closed. Events are dropped when the channel is full rather
// than blocking the watcher.
func (u *Unit) forward() {
	for {
		select {
		case ev, ok := <-u.watcher.Events:
			if !ok {
				close(u.events)
				return
			}
			u.deliver(Event{Source: "filesystem", Subject: ev.Name, Op: ev.Op.String(), At: time.Now()})
		case err, ok := <-u.watcher.Errors:
			if !ok {
				close(u.events)
				return
			}
			u.logger.Error("Watcher reported an error.", "error", err)
		}
	}
}

func (u *Unit) deliver(ev Event) {
	select {
	case u.events <- ev:
	default:
		u.logger.Warn("Event channel full, dropping observation.", "subject", ev.Subject)
	}
}

// Observe adds a filesystem path to the watch set.
func (u *Unit) Observe(path string) error {
	return u.watcher.Add(path)
}

// Events returns the unit's observation channel. The channel is closed when
// the unit is.
func (u *Unit) Events() <-chan Event {
	return u.events
}

// ConnectFeed dials the configured remote feed and delivers its percepts
// onto the event channel.
func (u *Unit) ConnectFeed(ctx context.Context) error {
	if u.feed == nil {
		return ErrNoFeed
	}
	return u.feed.Dial(ctx, u.deliver)
}

// Close releases the watcher and disconnects the feed. Safe to call more
// than once.
func (u *Unit) Close() error {
	u.closeOnce.Do(func() {
		if u.feed != nil {
			u.feed.Close()
		}
		u.closeErr = u.watcher.Close()
	})
	return u.closeErr
}
