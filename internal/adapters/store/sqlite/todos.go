package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

const todoColumns = `id, user_id, title, description, completed, tag_ids, created_at, updated_at`

type todoRow struct {
	ID          string `db:"id"`
	UserID      string `db:"user_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Completed   bool   `db:"completed"`
	TagIDs      string `db:"tag_ids"`
	CreatedAt   int64  `db:"created_at"`
	UpdatedAt   int64  `db:"updated_at"`
}

func (r *todoRow) toDomain() (todo.Todo, error) {
	ids := []string{}
	if err := json.Unmarshal([]byte(r.TagIDs), &ids); err != nil {
		return todo.Todo{}, fmt.Errorf("decoding tag_ids for todo %s: %w", r.ID, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return todo.Todo{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		TagIDs:      ids,
		CreatedAt:   fromNanos(r.CreatedAt),
		UpdatedAt:   fromNanos(r.UpdatedAt),
	}, nil
}

func encodeTagIDs(ids []string) (string, error) {
	b, err := json.Marshal(todo.NormalizeTagIDs(ids))
	if err != nil {
		return "", fmt.Errorf("encoding tag_ids: %w", err)
	}
	return string(b), nil
}

// CreateTodo assigns an ID and inserts t.
func (s *Store) CreateTodo(ctx context.Context, t todo.Todo) (_ *todo.Todo, err error) {
	ctx, end := s.startSpan(ctx, "CreateTodo")
	defer end(&err)

	t = t.Clone()
	t.ID = uuid.NewString()

	tagIDs, err := encodeTagIDs(t.TagIDs)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO todos (`+todoColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, t.Description, t.Completed, tagIDs,
		toNanos(t.CreatedAt), toNanos(t.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting todo: %w", translate(err))
	}

	s.todoHub.Publish(ctx, t.UserID)
	return &t, nil
}

// GetTodo returns a todo by ID.
func (s *Store) GetTodo(ctx context.Context, id string) (_ *todo.Todo, err error) {
	ctx, end := s.startSpan(ctx, "GetTodo")
	defer end(&err)

	var row todoRow
	err = s.db.GetContext(ctx, &row, `SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("selecting todo %s: %w", id, translate(err))
	}

	t, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTodo overwrites the stored todo with t.
func (s *Store) UpdateTodo(ctx context.Context, t todo.Todo) (_ *todo.Todo, err error) {
	ctx, end := s.startSpan(ctx, "UpdateTodo")
	defer end(&err)

	t = t.Clone()
	tagIDs, err := encodeTagIDs(t.TagIDs)
	if err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE todos
		 SET user_id = ?, title = ?, description = ?, completed = ?, tag_ids = ?, created_at = ?, updated_at = ?
		 WHERE id = ?`,
		t.UserID, t.Title, t.Description, t.Completed, tagIDs,
		toNanos(t.CreatedAt), toNanos(t.UpdatedAt), t.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating todo %s: %w", t.ID, translate(err))
	}
	if err := expectOneRow(res, "todo", t.ID); err != nil {
		return nil, err
	}

	s.todoHub.Publish(ctx, t.UserID)
	return &t, nil
}

// DeleteTodo removes a todo by ID.
func (s *Store) DeleteTodo(ctx context.Context, id string) (err error) {
	ctx, end := s.startSpan(ctx, "DeleteTodo")
	defer end(&err)

	var userID string
	err = s.db.GetContext(ctx, &userID, `DELETE FROM todos WHERE id = ? RETURNING user_id`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("deleting todo %s: %w", id, translate(err))
	}

	s.todoHub.Publish(ctx, userID)
	return nil
}

// QueryTodos returns the todos matching filter, newest first. A tag filter
// selects todos whose tag_ids array shares at least one element with it.
func (s *Store) QueryTodos(ctx context.Context, filter todo.Filter) (_ []todo.Todo, err error) {
	ctx, end := s.startSpan(ctx, "QueryTodos")
	defer end(&err)

	f := filter.Normalized()

	query := `SELECT ` + todoColumns + ` FROM todos WHERE user_id = ?`
	args := []any{f.UserID}
	if f.IsTagFiltered() {
		query += ` AND EXISTS (SELECT 1 FROM json_each(todos.tag_ids) WHERE json_each.value IN (?))`
		args = append(args, f.TagIDs)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	query, args, err = sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("expanding todo query: %w", err)
	}

	var rows []todoRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("querying todos: %w", translate(err))
	}

	out := make([]todo.Todo, 0, len(rows))
	for i := range rows {
		t, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// BatchUpdateTodoTags applies every update in one transaction. Rows of other
// users and missing rows are skipped; updated_at is not touched.
func (s *Store) BatchUpdateTodoTags(ctx context.Context, userID string, updates []ports.TodoTagsUpdate) (err error) {
	ctx, end := s.startSpan(ctx, "BatchUpdateTodoTags")
	defer end(&err)

	if len(updates) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", translate(err))
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PreparexContext(ctx, `UPDATE todos SET tag_ids = ? WHERE id = ? AND user_id = ?`)
	if err != nil {
		return fmt.Errorf("preparing tag batch statement: %w", translate(err))
	}
	defer func() { _ = stmt.Close() }()

	for _, u := range updates {
		tagIDs, err := encodeTagIDs(u.TagIDs)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, tagIDs, u.TodoID, userID); err != nil {
			return fmt.Errorf("updating tags of todo %s: %w", u.TodoID, translate(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing tag batch: %w", translate(err))
	}

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

func expectOneRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected for %s %s: %w", entity, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
