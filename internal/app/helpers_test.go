package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todotags/internal/domain/notice"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
	"github.com/jsamuelsen11/todotags/internal/platform/i18n"
	"github.com/jsamuelsen11/todotags/internal/ports"
	"github.com/jsamuelsen11/todotags/mocks"
)

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// harness wires the services to mocked ports and a real Japanese catalog.
type harness struct {
	todos    *mocks.MockTodoStore
	tags     *mocks.MockTagStore
	identity *mocks.MockIdentityProvider
	notifier *mocks.MockNotifier
	sink     *mocks.MockAnalyticsSink
	feedback *Feedback
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	translator, err := i18n.New("ja")
	if err != nil {
		t.Fatalf("i18n.New() error = %v", err)
	}

	h := &harness{
		todos:    mocks.NewMockTodoStore(t),
		tags:     mocks.NewMockTagStore(t),
		identity: mocks.NewMockIdentityProvider(t),
		notifier: mocks.NewMockNotifier(t),
		sink:     mocks.NewMockAnalyticsSink(t),
	}
	h.feedback = NewFeedback(h.notifier, h.sink, translator, discardLogger())
	h.feedback.now = func() time.Time { return fixedNow }
	return h
}

func (h *harness) todoService() *TodoService {
	svc := NewTodoService(h.todos, h.tags, h.feedback, discardLogger())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func (h *harness) tagService() *TagService {
	svc := NewTagService(h.tags, h.todos, h.feedback, discardLogger())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// expectNotice expects exactly one notice with the given level and text.
func (h *harness) expectNotice(userID string, level notice.Level, msg string) {
	h.notifier.EXPECT().
		Notify(mock.Anything, userID, mock.MatchedBy(func(n notice.Notice) bool {
			return n.Level == level && n.Message == msg
		})).
		Return(notice.Notice{}).
		Once()
}

// expectTrack expects one analytics event named name and returns a pointer
// that receives its properties.
func (h *harness) expectTrack(name string) *map[string]any {
	props := new(map[string]any)
	h.sink.EXPECT().
		Track(mock.Anything, mock.MatchedBy(func(e ports.AnalyticsEvent) bool {
			return e.Name == name
		})).
		Run(func(_ context.Context, e ports.AnalyticsEvent) { *props = e.Properties }).
		Return().
		Once()
	return props
}

func testSession(userID string) *user.Session {
	return &user.Session{
		ID:        "sess-" + userID,
		User:      user.User{ID: userID, Email: userID + "@example.com"},
		Token:     "token",
		Method:    user.MethodPassword,
		IssuedAt:  fixedNow,
		ExpiresAt: fixedNow.Add(time.Hour),
	}
}

func ownedTodo(id, userID string, tagIDs ...string) *todo.Todo {
	return &todo.Todo{
		ID:        id,
		UserID:    userID,
		Title:     "Buy groceries",
		TagIDs:    tagIDs,
		CreatedAt: fixedNow.Add(-time.Hour),
		UpdatedAt: fixedNow.Add(-time.Hour),
	}
}

func ownedTag(id, userID, name string) *tag.Tag {
	return &tag.Tag{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Color:     tag.DefaultColor,
		CreatedAt: fixedNow.Add(-time.Hour),
		UpdatedAt: fixedNow.Add(-time.Hour),
	}
}

func ptr[T any](v T) *T { return &v }
