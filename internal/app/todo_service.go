// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/todotags/internal/app/fanout"
	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// tagLookupWorkers bounds concurrent tag lookups when validating references.
const tagLookupWorkers = 4

// TodoService implements ports.TodoService on top of the todo and tag
// stores. Every operation is scoped to the session's user; mutations report
// their outcome through Feedback.
type TodoService struct {
	todos    ports.TodoStore
	tags     ports.TagStore
	feedback *Feedback
	logger   *slog.Logger
	now      func() time.Time
}

// NewTodoService creates a TodoService. A nil logger discards output.
func NewTodoService(todos ports.TodoStore, tags ports.TagStore, feedback *Feedback, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		todos:    todos,
		tags:     tags,
		feedback: feedback,
		logger:   logger,
		now:      time.Now,
	}
}

// ListTodos returns the user's todos carrying any of tagIDs, newest first.
func (s *TodoService) ListTodos(ctx context.Context, sess *user.Session, tagIDs []string) ([]todo.Todo, error) {
	if err := requireSession(sess); err != nil {
		return nil, s.feedback.Normalize(ctx, err)
	}

	todos, err := s.todos.QueryTodos(ctx, filterFor(sess, tagIDs))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.Any("error", err),
		)
		return nil, s.feedback.Normalize(ctx, err)
	}
	return todos, nil
}

// GetTodo returns one of the user's todos.
func (s *TodoService) GetTodo(ctx context.Context, sess *user.Session, id string) (*todo.Todo, error) {
	if err := requireSession(sess); err != nil {
		return nil, s.feedback.Normalize(ctx, err)
	}

	t, err := s.owned(ctx, sess, id)
	if err != nil {
		return nil, s.feedback.Normalize(ctx, err)
	}
	return t, nil
}

// CreateTodo validates the draft and its tag references, then stores it.
func (s *TodoService) CreateTodo(ctx context.Context, sess *user.Session, d todo.Draft) (*todo.Todo, error) {
	if err := requireSession(sess); err != nil {
		return nil, s.feedback.Normalize(ctx, err)
	}
	userID := sess.User.ID

	if err := d.Validate(); err != nil {
		return nil, s.feedback.Fail(ctx, userID, "CreateTodo", err)
	}
	if err := s.checkTagRefs(ctx, userID, d.TagIDs); err != nil {
		return nil, s.feedback.Fail(ctx, userID, "CreateTodo", err)
	}

	created, err := s.todos.CreateTodo(ctx, todo.New(userID, d, s.now().UTC()))
	if err != nil {
		return nil, s.feedback.Fail(ctx, userID, "CreateTodo", err)
	}

	s.logger.InfoContext(ctx, "todo created", slog.String("todo_id", created.ID))
	s.feedback.Success(ctx, userID, MsgTodoCreated)
	s.feedback.Track(ctx, userID, ports.EventTodoCreated, map[string]any{"has_tags": len(created.TagIDs) > 0})
	return created, nil
}

// UpdateTodo applies a partial update to one of the user's todos.
func (s *TodoService) UpdateTodo(ctx context.Context, sess *user.Session, id string, p todo.Patch) (*todo.Todo, error) {
	if err := requireSession(sess); err != nil {
		return nil, s.feedback.Normalize(ctx, err)
	}
	userID := sess.User.ID

	if err := p.Validate(); err != nil {
		return nil, s.feedback.Fail(ctx, userID, "UpdateTodo", err)
	}

	current, err := s.owned(ctx, sess, id)
	if err != nil {
		return nil, s.feedback.Fail(ctx, userID, "UpdateTodo", err)
	}
	if p.TagIDs != nil {
		if err := s.checkTagRefs(ctx, userID, *p.TagIDs); err != nil {
			return nil, s.feedback.Fail(ctx, userID, "UpdateTodo", err)
		}
	}

	p.Apply(current, s.now().UTC())
	updated, err := s.todos.UpdateTodo(ctx, *current)
	if err != nil {
		return nil, s.feedback.Fail(ctx, userID, "UpdateTodo", err)
	}

	s.feedback.Success(ctx, userID, MsgTodoUpdated)
	s.feedback.Track(ctx, userID, ports.EventTodoUpdated, map[string]any{"has_tags": len(updated.TagIDs) > 0})
	return updated, nil
}

// ToggleTodo sets the completed flag of one of the user's todos.
func (s *TodoService) ToggleTodo(ctx context.Context, sess *user.Session, id string, completed bool) (*todo.Todo, error) {
	if err := requireSession(sess); err != nil {
		return nil, s.feedback.Normalize(ctx, err)
	}
	userID := sess.User.ID

	current, err := s.owned(ctx, sess, id)
	if err != nil {
		return nil, s.feedback.Fail(ctx, userID, "ToggleTodo", err)
	}

	p := todo.Patch{Completed: &completed}
	p.Apply(current, s.now().UTC())
	updated, err := s.todos.UpdateTodo(ctx, *current)
	if err != nil {
		return nil, s.feedback.Fail(ctx, userID, "ToggleTodo", err)
	}

	props := map[string]any{"has_tags": len(updated.TagIDs) > 0}
	if completed {
		s.feedback.Success(ctx, userID, MsgTodoCompleted)
		s.feedback.Track(ctx, userID, ports.EventTodoCompleted, props)
	} else {
		s.feedback.Success(ctx, userID, MsgTodoUncompleted)
		s.feedback.Track(ctx, userID, ports.EventTodoUpdated, props)
	}
	return updated, nil
}

// DeleteTodo removes one of the user's todos.
func (s *TodoService) DeleteTodo(ctx context.Context, sess *user.Session, id string) error {
	if err := requireSession(sess); err != nil {
		return s.feedback.Normalize(ctx, err)
	}
	userID := sess.User.ID

	if _, err := s.owned(ctx, sess, id); err != nil {
		return s.feedback.Fail(ctx, userID, "DeleteTodo", err)
	}
	if err := s.todos.DeleteTodo(ctx, id); err != nil {
		return s.feedback.Fail(ctx, userID, "DeleteTodo", err)
	}

	s.logger.InfoContext(ctx, "todo deleted", slog.String("todo_id", id))
	s.feedback.Success(ctx, userID, MsgTodoDeleted)
	s.feedback.Track(ctx, userID, ports.EventTodoDeleted, nil)
	return nil
}

// SubscribeTodos streams the user's todos matching tagIDs.
func (s *TodoService) SubscribeTodos(ctx context.Context, sess *user.Session, tagIDs []string, onChange func([]todo.Todo)) (ports.Unsubscribe, error) {
	if err := requireSession(sess); err != nil {
		return nil, s.feedback.Normalize(ctx, err)
	}

	unsub, err := s.todos.SubscribeTodos(ctx, filterFor(sess, tagIDs), onChange)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to subscribe to todos",
			slog.String("operation", "SubscribeTodos"),
			slog.Any("error", err),
		)
		return nil, s.feedback.Normalize(ctx, err)
	}
	return unsub, nil
}

// owned loads a todo and hides other users' todos behind not-found.
func (s *TodoService) owned(ctx context.Context, sess *user.Session, id string) (*todo.Todo, error) {
	t, err := s.todos.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != sess.User.ID {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

// checkTagRefs verifies that every referenced tag exists and belongs to
// userID. Missing tags yield a validation error on tag_ids.
func (s *TodoService) checkTagRefs(ctx context.Context, userID string, tagIDs []string) error {
	ids := todo.NormalizeTagIDs(tagIDs)
	return fanout.Each(ctx, tagLookupWorkers, ids, func(ctx context.Context, id string) error {
		t, err := s.tags.GetTag(ctx, id)
		if errors.Is(err, domain.ErrNotFound) || (err == nil && t.UserID != userID) {
			return &domain.ValidationError{Fields: map[string]string{"tag_ids": domain.MsgUnknownTag}}
		}
		return err
	})
}

func filterFor(sess *user.Session, tagIDs []string) todo.Filter {
	return todo.Filter{UserID: sess.User.ID, TagIDs: todo.NormalizeTagIDs(tagIDs)}
}

func requireSession(sess *user.Session) error {
	if sess == nil || sess.User.ID == "" {
		return domain.NewError(domain.KindUnauthenticated, "no active session")
	}
	return nil
}
