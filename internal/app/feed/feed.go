// Package feed combines a user's todo and tag subscriptions into one live
// view with a switchable tag filter.
//
// A Feed holds two store subscriptions: the user's tags, and the user's
// todos narrowed by the current filter. Every delivery produces a Snapshot
// of both. Switching the filter tears down the todo subscription before
// opening the next one; deliveries still in flight from the old one are
// dropped by generation, so the consumer never sees stale results. When a
// tag that is part of the filter disappears, the filter narrows to the tags
// that remain, and an empty filter means all todos.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// ErrClosed is returned by Start and SetFilter on a closed feed.
var ErrClosed = domain.NewError(domain.KindUnavailable, "feed closed")

// Tracker records analytics events. *app.Feedback satisfies it.
type Tracker interface {
	Track(ctx context.Context, userID, name string, props map[string]any)
}

// Snapshot is one consistent view of the feed.
type Snapshot struct {
	Todos []todo.Todo
	Tags  []tag.Tag
	// TagIDs is the active filter; empty means unfiltered.
	TagIDs []string
	// Generation increases on every filter change.
	Generation uint64
}

// Feed is a live, filterable view of one session's todos and tags.
type Feed struct {
	todos   ports.TodoService
	tags    ports.TagService
	tracker Tracker
	logger  *slog.Logger
	sess    *user.Session

	// subMu serializes subscription changes.
	subMu sync.Mutex
	// emitMu serializes snapshot assembly and delivery.
	emitMu sync.Mutex

	mu         sync.Mutex
	ctx        context.Context
	emit       func(Snapshot)
	filter     []string
	gen        uint64
	todoSnap   []todo.Todo
	tagSnap    []tag.Tag
	haveTodos  bool
	haveTags   bool
	unsubTodos ports.Unsubscribe
	unsubTags  ports.Unsubscribe
	started    bool
	closed     bool
}

// New creates a feed for sess. A nil logger discards output.
func New(todos ports.TodoService, tags ports.TagService, tracker Tracker, sess *user.Session, logger *slog.Logger) *Feed {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Feed{
		todos:   todos,
		tags:    tags,
		tracker: tracker,
		logger:  logger,
		sess:    sess,
	}
}

// Start opens the subscriptions with an initial filter and begins calling
// emit. emit runs on subscription goroutines, one call at a time, and must
// not call SetFilter or Close. Cancelling ctx ends both subscriptions. After
// an error the caller still closes the feed.
func (f *Feed) Start(ctx context.Context, tagIDs []string, emit func(Snapshot)) error {
	f.subMu.Lock()
	defer f.subMu.Unlock()

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	if f.started {
		f.mu.Unlock()
		return errors.New("feed already started")
	}
	ids := todo.NormalizeTagIDs(tagIDs)
	f.started = true
	f.ctx = ctx
	f.emit = emit
	f.filter = ids
	f.mu.Unlock()

	unsubTags, err := f.tags.SubscribeTags(ctx, f.sess, f.onTags)
	if err != nil {
		return err
	}
	if !f.adopt(&f.unsubTags, unsubTags) {
		return ErrClosed
	}

	return f.resubscribe(ids)
}

// SetFilter switches the todo subscription to tagIDs. IDs of tags the feed
// has not seen are dropped. An empty set clears the filter.
func (f *Feed) SetFilter(ctx context.Context, tagIDs []string) error {
	f.subMu.Lock()
	defer f.subMu.Unlock()

	f.mu.Lock()
	if f.closed || !f.started {
		f.mu.Unlock()
		return ErrClosed
	}
	ids := todo.NormalizeTagIDs(tagIDs)
	if f.haveTags {
		ids = knownOnly(ids, f.tagSnap)
	}
	f.mu.Unlock()

	if err := f.resubscribe(ids); err != nil {
		return err
	}

	if len(ids) > 0 {
		f.tracker.Track(ctx, f.sess.User.ID, ports.EventFilterApplied, map[string]any{"tag_count": len(ids)})
	} else {
		f.tracker.Track(ctx, f.sess.User.ID, ports.EventFilterCleared, nil)
	}
	return nil
}

// Filter returns the active tag filter.
func (f *Feed) Filter() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.filter)
}

// Close ends both subscriptions. No emit starts after Close returns. It must
// not be called from emit.
func (f *Feed) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	unsubTodos, unsubTags := f.unsubTodos, f.unsubTags
	f.unsubTodos, f.unsubTags = nil, nil
	f.mu.Unlock()

	if unsubTodos != nil {
		unsubTodos()
	}
	if unsubTags != nil {
		unsubTags()
	}
}

// resubscribe replaces the todo subscription. Callers hold subMu.
func (f *Feed) resubscribe(ids []string) error {
	f.mu.Lock()
	old := f.unsubTodos
	f.unsubTodos = nil
	f.gen++
	gen := f.gen
	f.filter = ids
	f.haveTodos = false
	f.todoSnap = nil
	ctx := f.ctx
	f.mu.Unlock()

	if old != nil {
		old()
	}

	unsub, err := f.todos.SubscribeTodos(ctx, f.sess, ids, func(todos []todo.Todo) {
		f.onTodos(gen, todos)
	})
	if err != nil {
		f.logger.ErrorContext(ctx, "failed to subscribe to todos",
			slog.String("operation", "Resubscribe"),
			slog.Int("tag_count", len(ids)),
			slog.Any("error", err),
		)
		return err
	}
	if !f.adopt(&f.unsubTodos, unsub) {
		return ErrClosed
	}

	f.logger.DebugContext(ctx, "feed filter set",
		slog.Int("tag_count", len(ids)),
		slog.Uint64("generation", gen),
	)
	return nil
}

// adopt stores unsub in slot unless the feed closed meanwhile, in which case
// it ends the subscription and reports false.
func (f *Feed) adopt(slot *ports.Unsubscribe, unsub ports.Unsubscribe) bool {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		unsub()
		return false
	}
	*slot = unsub
	f.mu.Unlock()
	return true
}

func (f *Feed) onTodos(gen uint64, todos []todo.Todo) {
	f.emitMu.Lock()
	defer f.emitMu.Unlock()

	f.mu.Lock()
	if f.closed || gen != f.gen {
		f.mu.Unlock()
		return
	}
	f.todoSnap = todos
	f.haveTodos = true
	snap, ok := f.snapshotLocked()
	emit := f.emit
	f.mu.Unlock()

	if ok {
		emit(snap)
	}
}

func (f *Feed) onTags(tags []tag.Tag) {
	if f.applyTags(tags) {
		return
	}

	// A filtered tag is gone: narrow the filter. The new todo subscription
	// emits the next snapshot.
	f.subMu.Lock()
	defer f.subMu.Unlock()

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	ids := knownOnly(f.filter, f.tagSnap)
	unchanged := len(ids) == len(f.filter)
	ctx := f.ctx
	f.mu.Unlock()
	if unchanged {
		return
	}

	f.logger.InfoContext(ctx, "feed filter narrowed after tag removal",
		slog.String("user_id", f.sess.User.ID),
		slog.Int("tag_count", len(ids)),
	)
	if err := f.resubscribe(ids); err != nil && !errors.Is(err, ErrClosed) {
		f.logger.WarnContext(ctx, "failed to narrow feed filter", slog.Any("error", err))
	}
}

// applyTags records the tag snapshot and emits. It reports false when the
// filter references a tag that no longer exists.
func (f *Feed) applyTags(tags []tag.Tag) bool {
	f.emitMu.Lock()
	defer f.emitMu.Unlock()

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return true
	}
	f.tagSnap = tags
	f.haveTags = true
	if len(knownOnly(f.filter, tags)) != len(f.filter) {
		f.mu.Unlock()
		return false
	}
	snap, ok := f.snapshotLocked()
	emit := f.emit
	f.mu.Unlock()

	if ok {
		emit(snap)
	}
	return true
}

func (f *Feed) snapshotLocked() (Snapshot, bool) {
	if !f.haveTodos || !f.haveTags {
		return Snapshot{}, false
	}
	return Snapshot{
		Todos:      slices.Clone(f.todoSnap),
		Tags:       slices.Clone(f.tagSnap),
		TagIDs:     slices.Clone(f.filter),
		Generation: f.gen,
	}, true
}

func knownOnly(ids []string, tags []tag.Tag) []string {
	known := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		known[t.ID] = struct{}{}
	}
	kept := (todo.Filter{TagIDs: ids}).Retain(func(id string) bool {
		_, ok := known[id]
		return ok
	})
	return kept.TagIDs
}
