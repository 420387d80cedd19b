package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/todotags/internal/domain/notice"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
)

// Unsubscribe ends a live subscription. It is idempotent, and no callback
// starts after it returns.
type Unsubscribe func()

// TodoTagsUpdate replaces the tag IDs of one todo inside a batch.
type TodoTagsUpdate struct {
	TodoID string
	TagIDs []string
}

// TodoStore is the persistence port for todos. Implemented by the store
// adapters; called by the application layer. Every method is scoped by the
// caller to a single user.
type TodoStore interface {
	// CreateTodo persists t, assigning its ID, and returns the stored entity.
	CreateTodo(ctx context.Context, t todo.Todo) (*todo.Todo, error)

	// GetTodo returns a todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id string) (*todo.Todo, error)

	// UpdateTodo overwrites the stored todo with t (matched by t.ID).
	// Returns domain.ErrNotFound if the todo does not exist.
	UpdateTodo(ctx context.Context, t todo.Todo) (*todo.Todo, error)

	// DeleteTodo removes a todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id string) error

	// QueryTodos returns the todos matching filter, newest first.
	QueryTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// BatchUpdateTodoTags applies all updates atomically. UpdatedAt is left
	// untouched. Todos that no longer exist are skipped.
	BatchUpdateTodoTags(ctx context.Context, userID string, updates []TodoTagsUpdate) error

	// SubscribeTodos delivers the full ordered result set for filter to
	// onChange: once on subscribe and again after every mutation of the
	// user's todos. Deliveries for one subscription are sequential.
	SubscribeTodos(ctx context.Context, filter todo.Filter, onChange func([]todo.Todo)) (Unsubscribe, error)
}

// TagStore is the persistence port for tags.
type TagStore interface {
	// CreateTag persists t, assigning its ID, and returns the stored entity.
	CreateTag(ctx context.Context, t tag.Tag) (*tag.Tag, error)

	// GetTag returns a tag by ID.
	// Returns domain.ErrNotFound if the tag does not exist.
	GetTag(ctx context.Context, id string) (*tag.Tag, error)

	// UpdateTag overwrites the stored tag with t (matched by t.ID).
	// Returns domain.ErrNotFound if the tag does not exist.
	UpdateTag(ctx context.Context, t tag.Tag) (*tag.Tag, error)

	// DeleteTag removes a tag by ID. It does not touch todos.
	// Returns domain.ErrNotFound if the tag does not exist.
	DeleteTag(ctx context.Context, id string) error

	// FindTagsByName returns the user's tags whose name equals name exactly.
	FindTagsByName(ctx context.Context, userID, name string) ([]tag.Tag, error)

	// ListTags returns the user's tags, oldest first.
	ListTags(ctx context.Context, userID string) ([]tag.Tag, error)

	// SubscribeTags follows the same delivery contract as SubscribeTodos.
	SubscribeTags(ctx context.Context, userID string, onChange func([]tag.Tag)) (Unsubscribe, error)
}

// IdentityProvider authenticates users against an external account system.
// Errors are normalized to *domain.Error with an "auth/" kind.
type IdentityProvider interface {
	// SignUp creates an account and returns the signed-in user.
	SignUp(ctx context.Context, creds user.Credentials) (*user.User, error)

	// SignIn verifies email and password.
	SignIn(ctx context.Context, creds user.Credentials) (*user.User, error)

	// SignInWithProvider exchanges a federated ID token (e.g. Google) for a
	// user, creating the account on first use.
	SignInWithProvider(ctx context.Context, providerID, idToken string) (*user.User, error)
}

// Analytics event names.
const (
	EventLogin         = "login"
	EventSignUp        = "sign_up"
	EventLogout        = "logout"
	EventTodoCreated   = "todo_created"
	EventTodoUpdated   = "todo_updated"
	EventTodoDeleted   = "todo_deleted"
	EventTodoCompleted = "todo_completed"
	EventTagCreated    = "tag_created"
	EventTagUpdated    = "tag_updated"
	EventTagDeleted    = "tag_deleted"
	EventFilterApplied = "filter_applied"
	EventFilterCleared = "filter_cleared"
	EventException     = "exception"
)

// AnalyticsEvent is one usage event.
type AnalyticsEvent struct {
	Name       string
	UserID     string
	Properties map[string]any
	Time       time.Time
}

// AnalyticsSink records usage events. Implementations must not block the
// caller on network I/O and never report failures to it.
type AnalyticsSink interface {
	// Track records an event.
	Track(ctx context.Context, event AnalyticsEvent)

	// Identify associates properties with a user.
	Identify(ctx context.Context, userID string, props map[string]any)
}

// Notifier publishes feedback notices to a user's notification feed.
type Notifier interface {
	// Notify appends n to the user's feed and returns the stored notice.
	Notify(ctx context.Context, userID string, n notice.Notice) notice.Notice
}
