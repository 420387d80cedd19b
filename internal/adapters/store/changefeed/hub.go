// Package changefeed turns store mutations into live snapshot deliveries.
//
// Store adapters own one Hub per collection. A subscriber registers a loader
// (which re-reads its query) and a callback; after every Publish for the
// subscriber's key the hub re-runs the loader on the subscription's own
// goroutine and hands the fresh snapshot to the callback:
//
//	unsub, err := hub.Subscribe(ctx, userID, loadTodos, onChange)
//	...
//	hub.Publish(ctx, userID) // after a write
//	...
//	unsub()
//
// Deliveries for one subscription are sequential and follow publish order.
// Unsubscribe waits for an in-flight callback to return and guarantees that
// no callback starts afterwards, so it must not be called from inside the
// subscription's own callback.
package changefeed

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todotags/internal/platform/telemetry"
)

// Loader re-reads the subscription's query.
type Loader[T any] func(ctx context.Context) (T, error)

// Hub fans out change notifications, keyed by owner, to live subscriptions.
type Hub[T any] struct {
	name    string
	logger  *slog.Logger
	metrics *telemetry.Metrics

	mu     sync.Mutex
	subs   map[string]map[uint64]*subscription[T]
	nextID uint64
	closed bool
}

// NewHub creates a hub. The name labels logs and the active-subscription
// gauge. If metrics is nil, metric recording is skipped.
func NewHub[T any](name string, logger *slog.Logger, metrics *telemetry.Metrics) *Hub[T] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub[T]{
		name:    name,
		logger:  logger,
		metrics: metrics,
		subs:    make(map[string]map[uint64]*subscription[T]),
	}
}

// Subscribe registers the subscription and then runs load once
// synchronously; a failure is returned and the registration is undone. On
// success the initial snapshot is delivered to onChange from the
// subscription goroutine, followed by one delivery per Publish for key,
// including any Publish that arrived while the initial load was running.
// Cancelling ctx ends the subscription.
func (h *Hub[T]) Subscribe(ctx context.Context, key string, load Loader[T], onChange func(T)) (func(), error) {
	subCtx, cancel := context.WithCancel(ctx)
	s := &subscription[T]{
		hub:      h,
		key:      key,
		load:     load,
		onChange: onChange,
		ctx:      subCtx,
		cancel:   cancel,
		wake:     make(chan struct{}, 1),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		cancel()
		return nil, ErrClosed
	}
	h.nextID++
	s.id = h.nextID
	if h.subs[key] == nil {
		h.subs[key] = make(map[uint64]*subscription[T])
	}
	h.subs[key][s.id] = s
	h.mu.Unlock()
	h.recordActive(ctx, 1)

	// Publishes from here on are counted in s.pending and replayed after the
	// initial delivery.
	initial, err := load(ctx)
	if err == nil && subCtx.Err() != nil {
		err = ctx.Err()
		if err == nil {
			err = ErrClosed
		}
	}
	if err != nil {
		cancel()
		h.remove(s)
		return nil, err
	}

	go s.run(initial)

	return s.unsubscribe, nil
}

// Publish schedules one reload and delivery for every subscription of key.
// It never blocks on subscriber callbacks.
func (h *Hub[T]) Publish(_ context.Context, key string) {
	h.mu.Lock()
	targets := make([]*subscription[T], 0, len(h.subs[key]))
	for _, s := range h.subs[key] {
		targets = append(targets, s)
	}
	h.mu.Unlock()

	for _, s := range targets {
		s.notify()
	}
}

// Close ends every subscription and rejects new ones.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	h.closed = true
	all := make([]*subscription[T], 0)
	for _, byID := range h.subs {
		for _, s := range byID {
			all = append(all, s)
		}
	}
	h.mu.Unlock()

	for _, s := range all {
		s.unsubscribe()
	}
}

// Len returns the number of live subscriptions for key.
func (h *Hub[T]) Len(key string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[key])
}

func (h *Hub[T]) remove(s *subscription[T]) {
	h.mu.Lock()
	byID, ok := h.subs[s.key]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, ok := byID[s.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(byID, s.id)
	if len(byID) == 0 {
		delete(h.subs, s.key)
	}
	h.mu.Unlock()

	h.recordActive(context.Background(), -1)
}

func (h *Hub[T]) recordActive(ctx context.Context, delta int64) {
	if h.metrics == nil || h.metrics.StoreSubscriptionsActive == nil {
		return
	}
	h.metrics.StoreSubscriptionsActive.Add(ctx, delta,
		metric.WithAttributes(telemetry.AttrCollection.String(h.name)),
	)
}

type subscription[T any] struct {
	hub      *Hub[T]
	id       uint64
	key      string
	load     Loader[T]
	onChange func(T)

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	pending int
	wake    chan struct{}

	// cbMu is held for the duration of every callback.
	cbMu sync.Mutex
	once sync.Once
}

func (s *subscription[T]) notify() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscription[T]) takePending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == 0 {
		return false
	}
	s.pending--
	return true
}

func (s *subscription[T]) run(initial T) {
	defer s.hub.remove(s)

	if !s.deliver(initial) {
		return
	}

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.wake:
		}

		for s.takePending() {
			snapshot, err := s.load(s.ctx)
			if err != nil {
				if s.ctx.Err() != nil {
					return
				}
				s.hub.logger.WarnContext(s.ctx, "failed to reload subscription snapshot",
					slog.String("operation", "changefeed.reload"),
					slog.String("collection", s.hub.name),
					slog.String("key", s.key),
					slog.Any("error", err),
				)
				continue
			}
			if !s.deliver(snapshot) {
				return
			}
		}
	}
}

// deliver invokes the callback unless the subscription has ended.
func (s *subscription[T]) deliver(snapshot T) bool {
	s.cbMu.Lock()
	defer s.cbMu.Unlock()

	if s.ctx.Err() != nil {
		return false
	}
	s.onChange(snapshot)
	return true
}

func (s *subscription[T]) unsubscribe() {
	s.once.Do(func() {
		s.cancel()
		// Wait out an in-flight callback; later ones see the cancelled ctx.
		s.cbMu.Lock()
		defer s.cbMu.Unlock()
		s.hub.remove(s)
	})
}
