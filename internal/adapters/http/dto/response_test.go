package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todotags/internal/app/feed"
	"github.com/jsamuelsen11/todotags/internal/domain/notice"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          "t1",
		UserID:      "u1",
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		TagIDs:      []string{"g1"},
		CreatedAt:   testTime,
		UpdatedAt:   testTime.Add(time.Nanosecond),
	}
}

func TestToTodoResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		todo   todo.Todo
		verify func(t *testing.T, got dto.TodoResponse)
	}{
		{
			name: "maps all fields",
			todo: validTodo(),
			verify: func(t *testing.T, got dto.TodoResponse) {
				t.Helper()
				if got.ID != "t1" || got.Title != "Buy groceries" || got.Description != "Milk, eggs, bread" {
					t.Errorf("ToTodoResponse() = %+v", got)
				}
				if len(got.TagIDs) != 1 || got.TagIDs[0] != "g1" {
					t.Errorf("TagIDs = %v, want [g1]", got.TagIDs)
				}
			},
		},
		{
			name: "timestamps keep nanoseconds",
			todo: validTodo(),
			verify: func(t *testing.T, got dto.TodoResponse) {
				t.Helper()
				if got.UpdatedAt != "2026-02-12T15:04:05.000000001Z" {
					t.Errorf("UpdatedAt = %q", got.UpdatedAt)
				}
			},
		},
		{
			name: "nil tags render as empty array",
			todo: func() todo.Todo {
				td := validTodo()
				td.TagIDs = nil
				return td
			}(),
			verify: func(t *testing.T, got dto.TodoResponse) {
				t.Helper()
				b, err := json.Marshal(got)
				if err != nil {
					t.Fatalf("Marshal() error = %v", err)
				}
				if !strings.Contains(string(b), `"tagIds":[]`) {
					t.Errorf("JSON = %s, want tagIds as []", b)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.verify(t, dto.ToTodoResponse(&tt.todo))
		})
	}
}

func TestToTodoListResponse_Empty(t *testing.T) {
	t.Parallel()

	got := dto.ToTodoListResponse(nil)
	if got.Count != 0 || got.Todos == nil {
		t.Errorf("ToTodoListResponse(nil) = %+v, want empty non-nil list", got)
	}
}

func TestToTagListResponse(t *testing.T) {
	t.Parallel()

	tags := []tag.Tag{
		{ID: "g1", Name: "home", Color: "#22C55E", CreatedAt: testTime, UpdatedAt: testTime},
		{ID: "g2", Name: "work", Color: tag.DefaultColor, CreatedAt: testTime, UpdatedAt: testTime},
	}
	got := dto.ToTagListResponse(tags)
	if got.Count != 2 {
		t.Fatalf("Count = %d, want 2", got.Count)
	}
	if got.Tags[0].Color != "#22C55E" || got.Tags[1].Name != "work" {
		t.Errorf("Tags = %+v", got.Tags)
	}
}

func TestToPaletteResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToPaletteResponse()
	if len(got.Colors) != len(tag.Palette) {
		t.Errorf("len(Colors) = %d, want %d", len(got.Colors), len(tag.Palette))
	}
	if got.Default != string(tag.DefaultColor) {
		t.Errorf("Default = %q, want %q", got.Default, tag.DefaultColor)
	}
}

func TestToSessionResponse(t *testing.T) {
	t.Parallel()

	s := &user.Session{
		Token:     "tok",
		Method:    user.MethodGoogle,
		ExpiresAt: testTime,
		User:      user.User{ID: "u1", Email: "ada@example.com", DisplayName: "Ada", CreatedAt: testTime},
	}
	got := dto.ToSessionResponse(s)
	if got.Token != "tok" || got.Method != "google" || got.User.DisplayName != "Ada" {
		t.Errorf("ToSessionResponse() = %+v", got)
	}
	if got.ExpiresAt != "2026-02-12T15:04:05Z" {
		t.Errorf("ExpiresAt = %q", got.ExpiresAt)
	}
}

func TestToNoticeListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToNoticeListResponse([]notice.Notice{
		{ID: "n1", Level: notice.LevelSuccess, Message: "ok", Duration: 5 * time.Second, CreatedAt: testTime},
	})
	if got.Count != 1 {
		t.Fatalf("Count = %d, want 1", got.Count)
	}
	if got.Notices[0].DurationMs != 5000 || got.Notices[0].Level != "success" {
		t.Errorf("Notices[0] = %+v", got.Notices[0])
	}
}

func TestToFeedSnapshotResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToFeedSnapshotResponse(feed.Snapshot{
		Todos:      []todo.Todo{validTodo()},
		Generation: 3,
	})
	if len(got.Todos) != 1 || got.Tags == nil || got.TagIDs == nil {
		t.Errorf("ToFeedSnapshotResponse() = %+v, want non-nil collections", got)
	}
	if got.Generation != 3 {
		t.Errorf("Generation = %d, want 3", got.Generation)
	}
}
