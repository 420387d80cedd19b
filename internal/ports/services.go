package ports

import (
	"context"

	"github.com/jsamuelsen11/todotags/internal/domain/notice"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
)

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method acts on behalf of the session's user; mutations publish a
// notice and an analytics event, and failures come back as *domain.Error.
type TodoService interface {
	// ListTodos returns the user's todos matching tagIDs (any-match; empty
	// means all), newest first.
	ListTodos(ctx context.Context, s *user.Session, tagIDs []string) ([]todo.Todo, error)

	// GetTodo returns one of the user's todos.
	// Returns domain.ErrNotFound if it does not exist or belongs to someone else.
	GetTodo(ctx context.Context, s *user.Session, id string) (*todo.Todo, error)

	// CreateTodo validates and stores a new todo.
	// Returns domain.ErrValidation if the draft fails validation.
	CreateTodo(ctx context.Context, s *user.Session, d todo.Draft) (*todo.Todo, error)

	// UpdateTodo applies a partial update.
	UpdateTodo(ctx context.Context, s *user.Session, id string, p todo.Patch) (*todo.Todo, error)

	// ToggleTodo sets the completed flag.
	ToggleTodo(ctx context.Context, s *user.Session, id string, completed bool) (*todo.Todo, error)

	// DeleteTodo removes a todo.
	DeleteTodo(ctx context.Context, s *user.Session, id string) error

	// SubscribeTodos streams the filtered list; see TodoStore.SubscribeTodos.
	SubscribeTodos(ctx context.Context, s *user.Session, tagIDs []string, onChange func([]todo.Todo)) (Unsubscribe, error)
}

// TagService defines the service port for tag operations.
type TagService interface {
	// ListTags returns the user's tags, oldest first.
	ListTags(ctx context.Context, s *user.Session) ([]tag.Tag, error)

	// GetTag returns one of the user's tags.
	GetTag(ctx context.Context, s *user.Session, id string) (*tag.Tag, error)

	// CreateTag validates, checks name uniqueness, and stores a tag.
	// Returns a domain.KindDuplicateName error when the name is taken.
	CreateTag(ctx context.Context, s *user.Session, d tag.Draft) (*tag.Tag, error)

	// UpdateTag applies a partial update, rechecking name uniqueness.
	UpdateTag(ctx context.Context, s *user.Session, id string, p tag.Patch) (*tag.Tag, error)

	// DeleteTag removes a tag and strips its ID from every todo of the user.
	DeleteTag(ctx context.Context, s *user.Session, id string) error

	// SubscribeTags streams the user's tags; see TagStore.SubscribeTags.
	SubscribeTags(ctx context.Context, s *user.Session, onChange func([]tag.Tag)) (Unsubscribe, error)
}

// AuthService defines the service port for authentication and sessions.
type AuthService interface {
	// SignUp creates an account and opens a session.
	SignUp(ctx context.Context, creds user.Credentials) (*user.Session, error)

	// SignIn opens a session for an existing account.
	SignIn(ctx context.Context, creds user.Credentials) (*user.Session, error)

	// SignInWithProvider opens a session from a federated ID token.
	SignInWithProvider(ctx context.Context, providerID, idToken string) (*user.Session, error)

	// SignOut revokes the session.
	SignOut(ctx context.Context, s *user.Session) error

	// Authenticate resolves a bearer token to its live session.
	// Returns a domain.KindUnauthenticated error for missing, invalid,
	// expired, or revoked tokens.
	Authenticate(ctx context.Context, token string) (*user.Session, error)

	// WatchSession calls fn once when the session ends (sign-out or
	// expiry). The returned Unsubscribe cancels the watch.
	WatchSession(s *user.Session, fn func()) Unsubscribe
}

// NotificationService exposes a user's notification feed to handlers.
type NotificationService interface {
	// ListNotices returns the user's active notices, oldest first.
	ListNotices(ctx context.Context, userID string) []notice.Notice

	// DismissNotice removes one notice. It reports whether the notice existed.
	DismissNotice(ctx context.Context, userID, id string) bool

	// SubscribeNotices pushes the full active list on subscribe and after
	// every change.
	SubscribeNotices(ctx context.Context, userID string, onChange func([]notice.Notice)) (Unsubscribe, error)
}
