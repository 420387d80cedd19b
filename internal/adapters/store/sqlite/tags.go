package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

const tagColumns = `id, user_id, name, color, created_at, updated_at`

type tagRow struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	Name      string `db:"name"`
	Color     string `db:"color"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

func (r *tagRow) toDomain() tag.Tag {
	return tag.Tag{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Color:     tag.Color(r.Color),
		CreatedAt: fromNanos(r.CreatedAt),
		UpdatedAt: fromNanos(r.UpdatedAt),
	}
}

func tagsFromRows(rows []tagRow) []tag.Tag {
	out := make([]tag.Tag, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out
}

// CreateTag assigns an ID and inserts t. The (user_id, name) unique index
// rejects a duplicate with domain.KindAlreadyExists.
func (s *Store) CreateTag(ctx context.Context, t tag.Tag) (_ *tag.Tag, err error) {
	ctx, end := s.startSpan(ctx, "CreateTag")
	defer end(&err)

	t.ID = uuid.NewString()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tags (`+tagColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Name, string(t.Color), toNanos(t.CreatedAt), toNanos(t.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting tag: %w", translate(err))
	}

	s.tagHub.Publish(ctx, t.UserID)
	return &t, nil
}

// GetTag returns a tag by ID.
func (s *Store) GetTag(ctx context.Context, id string) (_ *tag.Tag, err error) {
	ctx, end := s.startSpan(ctx, "GetTag")
	defer end(&err)

	var row tagRow
	err = s.db.GetContext(ctx, &row, `SELECT `+tagColumns+` FROM tags WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tag %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("selecting tag %s: %w", id, translate(err))
	}

	t := row.toDomain()
	return &t, nil
}

// UpdateTag overwrites the stored tag with t.
func (s *Store) UpdateTag(ctx context.Context, t tag.Tag) (_ *tag.Tag, err error) {
	ctx, end := s.startSpan(ctx, "UpdateTag")
	defer end(&err)

	res, err := s.db.ExecContext(ctx,
		`UPDATE tags SET user_id = ?, name = ?, color = ?, created_at = ?, updated_at = ? WHERE id = ?`,
		t.UserID, t.Name, string(t.Color), toNanos(t.CreatedAt), toNanos(t.UpdatedAt), t.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating tag %s: %w", t.ID, translate(err))
	}
	if err := expectOneRow(res, "tag", t.ID); err != nil {
		return nil, err
	}

	s.tagHub.Publish(ctx, t.UserID)
	return &t, nil
}

// DeleteTag removes a tag by ID.
func (s *Store) DeleteTag(ctx context.Context, id string) (err error) {
	ctx, end := s.startSpan(ctx, "DeleteTag")
	defer end(&err)

	var userID string
	err = s.db.GetContext(ctx, &userID, `DELETE FROM tags WHERE id = ? RETURNING user_id`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("tag %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("deleting tag %s: %w", id, translate(err))
	}

	s.tagHub.Publish(ctx, userID)
	return nil
}

// FindTagsByName returns the user's tags named exactly name.
func (s *Store) FindTagsByName(ctx context.Context, userID, name string) (_ []tag.Tag, err error) {
	ctx, end := s.startSpan(ctx, "FindTagsByName")
	defer end(&err)

	var rows []tagRow
	err = s.db.SelectContext(ctx, &rows,
		`SELECT `+tagColumns+` FROM tags WHERE user_id = ? AND name = ? ORDER BY created_at, id`,
		userID, tag.NormalizeName(name),
	)
	if err != nil {
		return nil, fmt.Errorf("finding tags by name: %w", translate(err))
	}
	return tagsFromRows(rows), nil
}

// ListTags returns the user's tags, oldest first.
func (s *Store) ListTags(ctx context.Context, userID string) (_ []tag.Tag, err error) {
	ctx, end := s.startSpan(ctx, "ListTags")
	defer end(&err)

	var rows []tagRow
	err = s.db.SelectContext(ctx, &rows,
		`SELECT `+tagColumns+` FROM tags WHERE user_id = ? ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", translate(err))
	}
	return tagsFromRows(rows), nil
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
