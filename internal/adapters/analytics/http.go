package analytics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/todotags/internal/platform/httpclient"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// DefaultQueueSize bounds the HTTP sink's queue when none is configured.
const DefaultQueueSize = 256

// Payload types posted to the collector.
const (
	payloadTrack    = "track"
	payloadIdentify = "identify"
)

// payload is the JSON document posted for one event.
type payload struct {
	Type       string         `json:"type"`
	Name       string         `json:"name,omitempty"`
	UserID     string         `json:"user_id,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Time       time.Time      `json:"time"`
}

type queued struct {
	ctx  context.Context
	body payload
}

// HTTPSink posts events as JSON to a collector through the instrumented
// HTTP client. Events are queued and sent by one background worker; when the
// queue is full the event is dropped with a warning.
type HTTPSink struct {
	client *httpclient.Client
	logger *slog.Logger
	now    func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan queued
	done   chan struct{}
}

// NewHTTPSink starts the worker. The client's base URL is the collector
// endpoint. A queueSize below one uses DefaultQueueSize.
func NewHTTPSink(client *httpclient.Client, queueSize int, logger *slog.Logger) *HTTPSink {
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &HTTPSink{
		client: client,
		logger: logger.With(slog.String("component", "analytics")),
		now:    time.Now,
		queue:  make(chan queued, queueSize),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

// Track queues the event.
func (s *HTTPSink) Track(ctx context.Context, e ports.AnalyticsEvent) {
	at := e.Time
	if at.IsZero() {
		at = s.now()
	}
	s.enqueue(ctx, payload{
		Type:       payloadTrack,
		Name:       e.Name,
		UserID:     e.UserID,
		Properties: copyProps(e.Properties),
		Time:       at.UTC(),
	})
}

// Identify queues the user properties.
func (s *HTTPSink) Identify(ctx context.Context, userID string, props map[string]any) {
	s.enqueue(ctx, payload{
		Type:       payloadIdentify,
		UserID:     userID,
		Properties: copyProps(props),
		Time:       s.now().UTC(),
	})
}

// Name identifies the sink in readiness checks.
func (s *HTTPSink) Name() string { return "analytics" }

// HealthCheck reports the collector's circuit breaker state.
func (s *HTTPSink) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}

// Close stops accepting events and waits until the queue has been sent or
// ctx is done. It is safe to call more than once.
func (s *HTTPSink) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.Join(errors.New("analytics queue not drained"), ctx.Err())
	}
}

func (s *HTTPSink) enqueue(ctx context.Context, body payload) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return
	}

	select {
	case s.queue <- queued{ctx: context.WithoutCancel(ctx), body: body}:
	default:
		s.logger.WarnContext(ctx, "analytics queue full, dropping event",
			slog.String("type", body.Type),
			slog.String("event", body.Name),
		)
	}
}

func (s *HTTPSink) run() {
	defer close(s.done)
	for q := range s.queue {
		s.send(q.ctx, q.body)
	}
}

func (s *HTTPSink) send(ctx context.Context, body payload) {
	req, err := s.client.NewRequest(ctx, http.MethodPost, "", body)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to build analytics request", slog.Any("error", err))
		return
	}

	resp, err := s.client.Do(ctx, req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to send analytics event",
			slog.String("event", body.Name),
			slog.Any("error", err),
		)
		return
	}
	if resp.StatusCode >= http.StatusBadRequest {
		s.logger.WarnContext(ctx, "analytics collector rejected event",
			slog.String("event", body.Name),
			slog.Int("status", resp.StatusCode),
		)
	}
}
