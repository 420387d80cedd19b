// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todotags/internal/app/feed"
	"github.com/jsamuelsen11/todotags/internal/domain/notice"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	TagIDs      []string `json:"tagIds"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// ToTodoResponse converts a domain Todo to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	tagIDs := t.TagIDs
	if tagIDs == nil {
		tagIDs = []string{}
	}
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		TagIDs:      tagIDs,
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}

// TodoListResponse represents a list of todos in HTTP responses.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
}

// ToTodoListResponse converts domain todos to a list response.
func ToTodoListResponse(todos []todo.Todo) TodoListResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return TodoListResponse{Todos: items, Count: len(items)}
}

// TagResponse represents a single tag in HTTP responses.
type TagResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToTagResponse converts a domain Tag to an HTTP response DTO.
func ToTagResponse(t *tag.Tag) TagResponse {
	return TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     string(t.Color),
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}
}

// TagListResponse represents a list of tags in HTTP responses.
type TagListResponse struct {
	Tags  []TagResponse `json:"tags"`
	Count int           `json:"count"`
}

// ToTagListResponse converts domain tags to a list response.
func ToTagListResponse(tags []tag.Tag) TagListResponse {
	items := make([]TagResponse, len(tags))
	for i := range tags {
		items[i] = ToTagResponse(&tags[i])
	}
	return TagListResponse{Tags: items, Count: len(items)}
}

// PaletteResponse lists the colors a tag may use.
type PaletteResponse struct {
	Colors  []string `json:"colors"`
	Default string   `json:"default"`
}

// ToPaletteResponse renders the tag palette.
func ToPaletteResponse() PaletteResponse {
	colors := make([]string, len(tag.Palette))
	for i, c := range tag.Palette {
		colors[i] = string(c)
	}
	return PaletteResponse{Colors: colors, Default: string(tag.DefaultColor)}
}

// UserResponse represents the signed-in user.
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		CreatedAt:   formatTime(u.CreatedAt),
	}
}

// SessionResponse carries a bearer token and its user.
type SessionResponse struct {
	Token     string       `json:"token"`
	Method    string       `json:"method"`
	ExpiresAt string       `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ToSessionResponse converts a domain Session to an HTTP response DTO.
func ToSessionResponse(s *user.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		Method:    s.Method,
		ExpiresAt: formatTime(s.ExpiresAt),
		User:      ToUserResponse(&s.User),
	}
}

// NoticeResponse represents one notification.
type NoticeResponse struct {
	ID         string `json:"id"`
	Level      string `json:"level"`
	Message    string `json:"message"`
	DurationMs int64  `json:"durationMs"`
	CreatedAt  string `json:"createdAt"`
}

// NoticeListResponse represents the active notifications.
type NoticeListResponse struct {
	Notices []NoticeResponse `json:"notices"`
	Count   int              `json:"count"`
}

// ToNoticeListResponse converts domain notices to a list response.
func ToNoticeListResponse(notices []notice.Notice) NoticeListResponse {
	items := make([]NoticeResponse, len(notices))
	for i, n := range notices {
		items[i] = NoticeResponse{
			ID:         n.ID,
			Level:      string(n.Level),
			Message:    n.Message,
			DurationMs: n.Duration.Milliseconds(),
			CreatedAt:  formatTime(n.CreatedAt),
		}
	}
	return NoticeListResponse{Notices: items, Count: len(items)}
}

// FeedSnapshotResponse is one live feed event.
type FeedSnapshotResponse struct {
	Todos      []TodoResponse `json:"todos"`
	Tags       []TagResponse  `json:"tags"`
	TagIDs     []string       `json:"tagIds"`
	Generation uint64         `json:"generation"`
}

// ToFeedSnapshotResponse converts a feed snapshot to an HTTP response DTO.
func ToFeedSnapshotResponse(s feed.Snapshot) FeedSnapshotResponse {
	tagIDs := s.TagIDs
	if tagIDs == nil {
		tagIDs = []string{}
	}
	return FeedSnapshotResponse{
		Todos:      ToTodoListResponse(s.Todos).Todos,
		Tags:       ToTagListResponse(s.Tags).Tags,
		TagIDs:     tagIDs,
		Generation: s.Generation,
	}
}

// StreamReadyResponse is the first event of a live feed stream.
type StreamReadyResponse struct {
	StreamID string `json:"streamId"`
}

// FilterResponse reports a live feed's effective tag filter.
type FilterResponse struct {
	TagIDs []string `json:"tagIds"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
