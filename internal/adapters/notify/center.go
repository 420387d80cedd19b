// Package notify keeps each user's short-lived feedback notices in memory
// and pushes the active list to live subscribers.
package notify

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todotags/internal/adapters/store/changefeed"
	"github.com/jsamuelsen11/todotags/internal/domain/notice"
	"github.com/jsamuelsen11/todotags/internal/platform/telemetry"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Notifier            = (*Center)(nil)
	_ ports.NotificationService = (*Center)(nil)
)

// Center is the per-user notice feed. A notice is removed when its duration
// elapses or it is dismissed, whichever comes first.
type Center struct {
	duration time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.Mutex
	feeds  map[string][]notice.Notice
	timers map[string]*time.Timer

	hub *changefeed.Hub[[]notice.Notice]
}

// New creates a Center. A zero duration falls back to notice.DefaultDuration.
// If metrics is nil, metric recording is skipped.
func New(duration time.Duration, logger *slog.Logger, metrics *telemetry.Metrics) *Center {
	if duration <= 0 {
		duration = notice.DefaultDuration
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Center{
		duration: duration,
		logger:   logger,
		now:      time.Now,
		feeds:    make(map[string][]notice.Notice),
		timers:   make(map[string]*time.Timer),
		hub:      changefeed.NewHub[[]notice.Notice]("notices", logger, metrics),
	}
}

// Notify appends n to the user's feed. ID, CreatedAt and a missing Duration
// are filled in; the stored notice is returned.
func (c *Center) Notify(ctx context.Context, userID string, n notice.Notice) notice.Notice {
	n.ID = uuid.NewString()
	n.CreatedAt = c.now()
	if n.Duration <= 0 {
		n.Duration = c.duration
	}

	c.mu.Lock()
	c.feeds[userID] = append(c.feeds[userID], n)
	id := n.ID
	c.timers[id] = time.AfterFunc(n.Duration, func() {
		c.expire(userID, id)
	})
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "notice published",
		slog.String("user_id", userID),
		slog.String("notice_id", n.ID),
		slog.String("level", string(n.Level)),
	)

	c.hub.Publish(ctx, userID)
	return n
}

// ListNotices returns a copy of the user's active notices, oldest first.
func (c *Center) ListNotices(_ context.Context, userID string) []notice.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := slices.Clone(c.feeds[userID])
	if out == nil {
		out = []notice.Notice{}
	}
	return out
}

// DismissNotice removes one notice before it expires.
func (c *Center) DismissNotice(ctx context.Context, userID, id string) bool {
	if !c.remove(userID, id) {
		return false
	}
	c.hub.Publish(ctx, userID)
	return true
}

// Clear removes every notice of the user.
func (c *Center) Clear(ctx context.Context, userID string) {
	c.mu.Lock()
	feed := c.feeds[userID]
	for _, n := range feed {
		if t, ok := c.timers[n.ID]; ok {
			t.Stop()
			delete(c.timers, n.ID)
		}
	}
	delete(c.feeds, userID)
	c.mu.Unlock()

	if len(feed) > 0 {
		c.hub.Publish(ctx, userID)
	}
}

// SubscribeNotices delivers the active list now and after every change.
func (c *Center) SubscribeNotices(ctx context.Context, userID string, onChange func([]notice.Notice)) (ports.Unsubscribe, error) {
	load := func(ctx context.Context) ([]notice.Notice, error) {
		return c.ListNotices(ctx, userID), nil
	}
	unsub, err := c.hub.Subscribe(ctx, userID, load, onChange)
	if err != nil {
		return nil, err
	}
	return ports.Unsubscribe(unsub), nil
}

// Close stops pending expiry timers and ends every subscription.
func (c *Center) Close() {
	c.mu.Lock()
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.mu.Unlock()

	c.hub.Close()
}

func (c *Center) expire(userID, id string) {
	if c.remove(userID, id) {
		c.hub.Publish(context.Background(), userID)
	}
}

func (c *Center) remove(userID, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}

	feed := c.feeds[userID]
	i := slices.IndexFunc(feed, func(n notice.Notice) bool { return n.ID == id })
	if i < 0 {
		return false
	}
	feed = slices.Delete(feed, i, i+1)
	if len(feed) == 0 {
		delete(c.feeds, userID)
	} else {
		c.feeds[userID] = feed
	}
	return true
}
