package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// Compile-time check that TagService implements ports.TagService.
var _ ports.TagService = (*TagService)(nil)

// TagService implements ports.TagService. It enforces per-user name
// uniqueness and strips a deleted tag from every todo that referenced it.
type TagService struct {
	tags     ports.TagStore
	todos    ports.TodoStore
	feedback *Feedback
	logger   *slog.Logger
	now      func() time.Time
}

// NewTagService creates a TagService. A nil logger discards output.
func NewTagService(tags ports.TagStore, todos ports.TodoStore, feedback *Feedback, logger *slog.Logger) *TagService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TagService{
		tags:     tags,
		todos:    todos,
		feedback: feedback,
		logger:   logger,
		now:      time.Now,
	}
}

// ListTags returns the user's tags, oldest first.
func (s *TagService) ListTags(ctx context.Context, sess *user.Session) ([]tag.Tag, error) {
	if err := requireSession(sess); err != nil {
		return nil, s.feedback.Normalize(ctx, err)
	}

	tags, err := s.tags.ListTags(ctx, sess.User.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tags",
			slog.String("operation", "ListTags"),
			slog.Any("error", err),
		)
		return nil, s.feedback.Normalize(ctx, err)
	}
	return tags, nil
}

// GetTag returns one of the user's tags.
func (s *TagService) GetTag(ctx context.Context, sess *user.Session, id string) (*tag.Tag, error) {
	if err := requireSession(sess); err != nil {
		return nil, s.feedback.Normalize(ctx, err)
	}

	t, err := s.owned(ctx, sess, id)
	if err != nil {
		return nil, s.feedback.Normalize(ctx, err)
	}
	return t, nil
}

// CreateTag validates the draft, rejects a name the user already uses, and
// stores the tag.
func (s *TagService) CreateTag(ctx context.Context, sess *user.Session, d tag.Draft) (*tag.Tag, error) {
	if err := requireSession(sess); err != nil {
		return nil, s.feedback.Normalize(ctx, err)
	}
	userID := sess.User.ID

	if err := d.Validate(); err != nil {
		return nil, s.feedback.Fail(ctx, userID, "CreateTag", err)
	}

	t := tag.New(userID, d, s.now().UTC())
	if err := s.checkUniqueName(ctx, userID, t.Name, ""); err != nil {
		return nil, s.feedback.Fail(ctx, userID, "CreateTag", err)
	}

	created, err := s.tags.CreateTag(ctx, t)
	if err != nil {
		return nil, s.feedback.Fail(ctx, userID, "CreateTag", duplicateFromConflict(err))
	}

	s.logger.InfoContext(ctx, "tag created", slog.String("tag_id", created.ID))
	s.feedback.Success(ctx, userID, MsgTagCreated)
	s.feedback.Track(ctx, userID, ports.EventTagCreated, map[string]any{"color": string(created.Color)})
	return created, nil
}

// UpdateTag applies a partial update. Renaming to a name held by another of
// the user's tags fails with a duplicate-name error.
func (s *TagService) UpdateTag(ctx context.Context, sess *user.Session, id string, p tag.Patch) (*tag.Tag, error) {
	if err := requireSession(sess); err != nil {
		return nil, s.feedback.Normalize(ctx, err)
	}
	userID := sess.User.ID

	if err := p.Validate(); err != nil {
		return nil, s.feedback.Fail(ctx, userID, "UpdateTag", err)
	}

	current, err := s.owned(ctx, sess, id)
	if err != nil {
		return nil, s.feedback.Fail(ctx, userID, "UpdateTag", err)
	}
	if p.Name != nil {
		if err := s.checkUniqueName(ctx, userID, tag.NormalizeName(*p.Name), id); err != nil {
			return nil, s.feedback.Fail(ctx, userID, "UpdateTag", err)
		}
	}

	p.Apply(current, s.now().UTC())
	updated, err := s.tags.UpdateTag(ctx, *current)
	if err != nil {
		return nil, s.feedback.Fail(ctx, userID, "UpdateTag", duplicateFromConflict(err))
	}

	s.feedback.Success(ctx, userID, MsgTagUpdated)
	s.feedback.Track(ctx, userID, ports.EventTagUpdated, map[string]any{"color": string(updated.Color)})
	return updated, nil
}

// DeleteTag removes the tag and then strips its ID from every todo carrying
// it. The tag stays deleted when the cascade fails; the failure is reported
// and the remaining references dangle until the todos are next edited.
func (s *TagService) DeleteTag(ctx context.Context, sess *user.Session, id string) error {
	if err := requireSession(sess); err != nil {
		return s.feedback.Normalize(ctx, err)
	}
	userID := sess.User.ID

	if _, err := s.owned(ctx, sess, id); err != nil {
		return s.feedback.Fail(ctx, userID, "DeleteTag", err)
	}
	if err := s.tags.DeleteTag(ctx, id); err != nil {
		return s.feedback.Fail(ctx, userID, "DeleteTag", err)
	}

	stripped, err := s.cascade(ctx, userID, id)
	if err != nil {
		return s.feedback.Fail(ctx, userID, "DeleteTag", err)
	}

	s.logger.InfoContext(ctx, "tag deleted",
		slog.String("tag_id", id),
		slog.Int("todos_updated", stripped),
	)
	s.feedback.Success(ctx, userID, MsgTagDeleted)
	s.feedback.Track(ctx, userID, ports.EventTagDeleted, map[string]any{"todos_updated": stripped})
	return nil
}

// SubscribeTags streams the user's tags.
func (s *TagService) SubscribeTags(ctx context.Context, sess *user.Session, onChange func([]tag.Tag)) (ports.Unsubscribe, error) {
	if err := requireSession(sess); err != nil {
		return nil, s.feedback.Normalize(ctx, err)
	}

	unsub, err := s.tags.SubscribeTags(ctx, sess.User.ID, onChange)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to subscribe to tags",
			slog.String("operation", "SubscribeTags"),
			slog.Any("error", err),
		)
		return nil, s.feedback.Normalize(ctx, err)
	}
	return unsub, nil
}

// cascade removes tagID from the user's todos in one batch and returns how
// many todos changed.
func (s *TagService) cascade(ctx context.Context, userID, tagID string) (int, error) {
	affected, err := s.todos.QueryTodos(ctx, todo.Filter{UserID: userID, TagIDs: []string{tagID}})
	if err != nil {
		return 0, fmt.Errorf("querying todos tagged %s: %w", tagID, err)
	}
	if len(affected) == 0 {
		return 0, nil
	}

	updates := make([]ports.TodoTagsUpdate, 0, len(affected))
	for _, t := range affected {
		kept := make([]string, 0, len(t.TagIDs))
		for _, ref := range t.TagIDs {
			if ref != tagID {
				kept = append(kept, ref)
			}
		}
		updates = append(updates, ports.TodoTagsUpdate{TodoID: t.ID, TagIDs: kept})
	}

	if err := s.todos.BatchUpdateTodoTags(ctx, userID, updates); err != nil {
		return 0, fmt.Errorf("stripping tag %s from %d todos: %w", tagID, len(updates), err)
	}
	return len(updates), nil
}

// checkUniqueName fails when another of the user's tags (other than selfID)
// already uses name.
func (s *TagService) checkUniqueName(ctx context.Context, userID, name, selfID string) error {
	matches, err := s.tags.FindTagsByName(ctx, userID, name)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if m.ID != selfID {
			return domain.NewError(domain.KindDuplicateName, fmt.Sprintf("tag %q already exists", name))
		}
	}
	return nil
}

func (s *TagService) owned(ctx context.Context, sess *user.Session, id string) (*tag.Tag, error) {
	t, err := s.tags.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != sess.User.ID {
		return nil, fmt.Errorf("tag %s: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

// duplicateFromConflict reports a store uniqueness violation as a duplicate
// name.
func duplicateFromConflict(err error) error {
	if domain.KindOf(err) == domain.KindAlreadyExists {
		return domain.WrapError(domain.KindDuplicateName, err)
	}
	return err
}
