package perception

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/synergrid/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// dialTimeout bounds how long Dial waits for the initial connection.
const dialTimeout = 15 * time.Second

// perceptEvent is the socket.io event name remote feeds publish on.
const perceptEvent = "percept"

// Feed is a remote percept source over socket.io. It holds configuration
// from construction and a live socket only after a successful Dial.
type Feed struct {
	url       string
	namespace string
	io        *socket.Socket
}

// NewFeed configures a feed without connecting to it.
func NewFeed(rawURL, namespace string) *Feed {
	return &Feed{url: rawURL, namespace: namespace}
}

// URL returns the configured feed endpoint.
func (f *Feed) URL() string { return f.url }

// Dial connects to the feed and delivers every percept through the given
// callback. It blocks until the connection is established, the context is
// cancelled, or the dial times out.
func (f *Feed) Dial(ctx context.Context, deliver func(Event)) error {
	logger := ctxlog.FromContext(ctx).With("feed", f.url)
	logger.Info("Connecting to percept feed...")

	parsedURL, err := url.Parse(f.url)
	if err != nil {
		return fmt.Errorf("failed to parse feed URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(f.namespace, opts)

	connectChan := make(chan error, 1)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Feed connected.", "sid", io.Id())
		connectChan <- nil
	})

	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err, _ := errs[0].(error)
		if err == nil {
			err = fmt.Errorf("connect_error: %v", errs[0])
		}
		connectChan <- err
	})

	io.On(types.EventName(perceptEvent), func(data ...any) {
		var payload any
		if len(data) > 0 {
			payload = data[0]
		}
		deliver(Event{Source: "feed", Subject: fmt.Sprint(payload), Op: perceptEvent, At: time.Now()})
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return fmt.Errorf("feed connection failed: %w", err)
		}
		f.io = io
		return nil
	case <-ctx.Done():
		io.Disconnect()
		return fmt.Errorf("context cancelled while connecting to feed: %w", ctx.Err())
	case <-time.After(dialTimeout):
		io.Disconnect()
		return fmt.Errorf("timed out after %s waiting for feed connection", dialTimeout)
	}
}

// Close disconnects the feed if it was ever dialed.
func (f *Feed) Close() {
	if f.io != nil {
		f.io.Disconnect()
		f.io = nil
	}
}
