package handlers

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todotags/internal/app/feed"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// Reasons reported in the final event of a stream.
const (
	endSessionEnded = "session_ended"
	endShutdown     = "server_shutdown"
)

// streamContext derives a context that is cancelled when the request ends,
// the session is signed out or expires, or the registry shuts down. reason
// reports which of the latter two happened, or "" for neither.
func (reg *StreamRegistry) streamContext(parent context.Context, auth ports.AuthService, s *user.Session) (ctx context.Context, reason func() string, stop func()) {
	ctx, cancel := context.WithCancel(parent)
	var why atomic.Value
	why.Store("")
	end := func(r string) {
		why.CompareAndSwap("", r)
		cancel()
	}
	unwatch := auth.WatchSession(s, func() { end(endSessionEnded) })
	stopAfter := context.AfterFunc(reg.ctx, func() { end(endShutdown) })
	return ctx, func() string { return why.Load().(string) }, func() {
		stopAfter()
		unwatch()
		cancel()
	}
}

// streamEntry is one open live feed.
type streamEntry struct {
	userID string
	feed   *feed.Feed
}

// StreamRegistry tracks the open streams. Live feeds are indexed so their
// filter can be changed from a separate request; Shutdown ends every stream.
type StreamRegistry struct {
	ctx      context.Context
	shutdown context.CancelFunc

	mu    sync.Mutex
	feeds map[string]streamEntry
}

// NewStreamRegistry returns an empty registry.
func NewStreamRegistry() *StreamRegistry {
	ctx, cancel := context.WithCancel(context.Background())
	return &StreamRegistry{ctx: ctx, shutdown: cancel, feeds: make(map[string]streamEntry)}
}

// Shutdown ends all open and future streams. Register it with the HTTP
// server so graceful shutdown does not wait on long-lived connections.
func (reg *StreamRegistry) Shutdown() {
	reg.shutdown()
}

func (reg *StreamRegistry) add(userID string, f *feed.Feed) string {
	id := uuid.NewString()
	reg.mu.Lock()
	reg.feeds[id] = streamEntry{userID: userID, feed: f}
	reg.mu.Unlock()
	return id
}

func (reg *StreamRegistry) remove(id string) {
	reg.mu.Lock()
	delete(reg.feeds, id)
	reg.mu.Unlock()
}

// lookup returns the feed only if it belongs to userID.
func (reg *StreamRegistry) lookup(userID, id string) (*feed.Feed, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	e, ok := reg.feeds[id]
	if !ok || e.userID != userID {
		return nil, false
	}
	return e.feed, true
}

// Draining reports whether Shutdown has been called.
func (reg *StreamRegistry) Draining() bool {
	return reg.ctx.Err() != nil
}

// Len returns the number of open feeds.
func (reg *StreamRegistry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.feeds)
}
