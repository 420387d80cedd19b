// Package memory implements the todo and tag store ports in process memory.
// It is the default driver for local development and the reference
// behaviour the SQLite adapter is tested against.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todotags/internal/adapters/store/changefeed"
	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/platform/telemetry"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.TagStore      = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store keeps todos and tags in maps guarded by one RWMutex. Live
// subscriptions are served by one change-feed hub per collection, keyed by
// user ID.
type Store struct {
	mu    sync.RWMutex
	todos map[string]todo.Todo
	tags  map[string]tag.Tag

	todoHub *changefeed.Hub[[]todo.Todo]
	tagHub  *changefeed.Hub[[]tag.Tag]
}

// New creates an empty store. If metrics is nil, metric recording is skipped.
func New(logger *slog.Logger, metrics *telemetry.Metrics) *Store {
	return &Store{
		todos:   make(map[string]todo.Todo),
		tags:    make(map[string]tag.Tag),
		todoHub: changefeed.NewHub[[]todo.Todo]("todos", logger, metrics),
		tagHub:  changefeed.NewHub[[]tag.Tag]("tags", logger, metrics),
	}
}

// Name identifies the store in readiness results.
func (s *Store) Name() string { return "store" }

// HealthCheck always succeeds.
func (s *Store) HealthCheck(context.Context) error { return nil }

// Close ends every live subscription.
func (s *Store) Close() error {
	s.todoHub.Close()
	s.tagHub.Close()
	return nil
}

// CreateTodo assigns an ID and stores t.
func (s *Store) CreateTodo(ctx context.Context, t todo.Todo) (*todo.Todo, error) {
	t = t.Clone()
	t.ID = uuid.NewString()

	s.mu.Lock()
	s.todos[t.ID] = t
	s.mu.Unlock()

	s.todoHub.Publish(ctx, t.UserID)

	out := t.Clone()
	return &out, nil
}

// GetTodo returns a todo by ID.
func (s *Store) GetTodo(_ context.Context, id string) (*todo.Todo, error) {
	s.mu.RLock()
	t, ok := s.todos[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}
	out := t.Clone()
	return &out, nil
}

// UpdateTodo replaces the stored todo with t.
func (s *Store) UpdateTodo(ctx context.Context, t todo.Todo) (*todo.Todo, error) {
	t = t.Clone()

	s.mu.Lock()
	prev, ok := s.todos[t.ID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("todo %s: %w", t.ID, domain.ErrNotFound)
	}
	s.todos[t.ID] = t
	s.mu.Unlock()

	s.todoHub.Publish(ctx, t.UserID)
	if prev.UserID != t.UserID {
		s.todoHub.Publish(ctx, prev.UserID)
	}

	out := t.Clone()
	return &out, nil
}

// DeleteTodo removes a todo by ID.
func (s *Store) DeleteTodo(ctx context.Context, id string) error {
	s.mu.Lock()
	t, ok := s.todos[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}
	delete(s.todos, id)
	s.mu.Unlock()

	s.todoHub.Publish(ctx, t.UserID)
	return nil
}

// QueryTodos returns the todos matching filter, newest first.
func (s *Store) QueryTodos(_ context.Context, filter todo.Filter) ([]todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]todo.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		all = append(all, t)
	}
	return todo.Select(all, filter.Normalized()), nil
}

// BatchUpdateTodoTags applies every update under one lock, so subscribers
// observe the batch as a single change.
func (s *Store) BatchUpdateTodoTags(ctx context.Context, userID string, updates []ports.TodoTagsUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	s.mu.Lock()
	for _, u := range updates {
		t, ok := s.todos[u.TodoID]
		if !ok || t.UserID != userID {
			continue
		}
		t.TagIDs = todo.NormalizeTagIDs(u.TagIDs)
		s.todos[u.TodoID] = t
	}
	s.mu.Unlock()

	s.todoHub.Publish(ctx, userID)
	return nil
}

// SubscribeTodos streams the filtered, ordered todo list.
func (s *Store) SubscribeTodos(
	ctx context.Context,
	filter todo.Filter,
	onChange func([]todo.Todo),
) (ports.Unsubscribe, error) {
	f := filter.Normalized()
	unsub, err := s.todoHub.Subscribe(ctx, f.UserID, func(ctx context.Context) ([]todo.Todo, error) {
		return s.QueryTodos(ctx, f)
	}, onChange)
	if err != nil {
		return nil, err
	}
	return ports.Unsubscribe(unsub), nil
}

// CreateTag assigns an ID and stores t. A second tag with the same name for
// the same user is rejected with domain.KindAlreadyExists.
func (s *Store) CreateTag(ctx context.Context, t tag.Tag) (*tag.Tag, error) {
	t.ID = uuid.NewString()

	s.mu.Lock()
	if s.nameTakenLocked(t) {
		s.mu.Unlock()
		return nil, domain.NewError(domain.KindAlreadyExists, "tag name already exists")
	}
	s.tags[t.ID] = t
	s.mu.Unlock()

	s.tagHub.Publish(ctx, t.UserID)
	return &t, nil
}

// GetTag returns a tag by ID.
func (s *Store) GetTag(_ context.Context, id string) (*tag.Tag, error) {
	s.mu.RLock()
	t, ok := s.tags[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("tag %s: %w", id, domain.ErrNotFound)
	}
	return &t, nil
}

// UpdateTag replaces the stored tag with t.
func (s *Store) UpdateTag(ctx context.Context, t tag.Tag) (*tag.Tag, error) {
	s.mu.Lock()
	if _, ok := s.tags[t.ID]; !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("tag %s: %w", t.ID, domain.ErrNotFound)
	}
	if s.nameTakenLocked(t) {
		s.mu.Unlock()
		return nil, domain.NewError(domain.KindAlreadyExists, "tag name already exists")
	}
	s.tags[t.ID] = t
	s.mu.Unlock()

	s.tagHub.Publish(ctx, t.UserID)
	return &t, nil
}

// DeleteTag removes a tag by ID.
func (s *Store) DeleteTag(ctx context.Context, id string) error {
	s.mu.Lock()
	t, ok := s.tags[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("tag %s: %w", id, domain.ErrNotFound)
	}
	delete(s.tags, id)
	s.mu.Unlock()

	s.tagHub.Publish(ctx, t.UserID)
	return nil
}

// FindTagsByName returns the user's tags named exactly name.
func (s *Store) FindTagsByName(_ context.Context, userID, name string) ([]tag.Tag, error) {
	name = tag.NormalizeName(name)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]tag.Tag, 0, 1)
	for _, t := range s.tags {
		if t.UserID == userID && t.Name == name {
			out = append(out, t)
		}
	}
	tag.SortOldestFirst(out)
	return out, nil
}

// ListTags returns the user's tags, oldest first.
func (s *Store) ListTags(_ context.Context, userID string) ([]tag.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]tag.Tag, 0)
	for _, t := range s.tags {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	tag.SortOldestFirst(out)
	return out, nil
}

// SubscribeTags streams the user's tags, oldest first.
func (s *Store) SubscribeTags(
	ctx context.Context,
	userID string,
	onChange func([]tag.Tag),
) (ports.Unsubscribe, error) {
	unsub, err := s.tagHub.Subscribe(ctx, userID, func(ctx context.Context) ([]tag.Tag, error) {
		return s.ListTags(ctx, userID)
	}, onChange)
	if err != nil {
		return nil, err
	}
	return ports.Unsubscribe(unsub), nil
}

// nameTakenLocked reports whether another tag of t's user already has t's
// name. The caller holds s.mu.
func (s *Store) nameTakenLocked(t tag.Tag) bool {
	for id, other := range s.tags {
		if id != t.ID && other.UserID == t.UserID && other.Name == t.Name {
			return true
		}
	}
	return false
}
