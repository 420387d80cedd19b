package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Server-sent event names.
const (
	eventReady    = "ready"
	eventSnapshot = "snapshot"
	eventNotices  = "notices"
	eventEnd      = "end"
)

const defaultHeartbeat = 15 * time.Second

// endReason is the payload of the final event when the session ends.
type endReason struct {
	Reason string `json:"reason"`
}

// eventStream writes server-sent events to a response.
type eventStream struct {
	mu sync.Mutex
	w  http.ResponseWriter
	rc *http.ResponseController
}

// openEventStream sends the stream headers. The server write timeout is
// lifted for the connection; the heartbeat keeps intermediaries from idling it out.
func openEventStream(w http.ResponseWriter) (*eventStream, error) {
	rc := http.NewResponseController(w)
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return nil, fmt.Errorf("clearing write deadline: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	s := &eventStream{w: w, rc: rc}
	if err := s.flush(); err != nil {
		return nil, err
	}
	return s, nil
}

// send writes one named event with a JSON payload.
func (s *eventStream) send(event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return s.flush()
}

// ping writes a comment line.
func (s *eventStream) ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprint(s.w, ": ping\n\n"); err != nil {
		return err
	}
	return s.flush()
}

func (s *eventStream) flush() error {
	if err := s.rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return err
	}
	return nil
}

// latest is a one-slot mailbox that keeps only the newest value. Offers never
// block, so subscription callbacks can hand over updates without waiting on
// the network.
type latest[T any] struct {
	ch chan T
}

func newLatest[T any]() *latest[T] {
	return &latest[T]{ch: make(chan T, 1)}
}

// offer replaces any pending value with v. Callers must not offer concurrently.
func (l *latest[T]) offer(v T) {
	select {
	case l.ch <- v:
		return
	default:
	}
	select {
	case <-l.ch:
	default:
	}
	select {
	case l.ch <- v:
	default:
	}
}

// pump forwards values from updates as events until ctx is done or a write
// fails, pinging every heartbeat in between.
func pump[T any](ctx context.Context, s *eventStream, heartbeat time.Duration, updates *latest[T], event string, render func(T) any) error {
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.ping(); err != nil {
				return err
			}
		case v := <-updates.ch:
			if err := s.send(event, render(v)); err != nil {
				return err
			}
		}
	}
}
