package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
)

const testUpdatedValue = "Updated"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func testSession() *user.Session {
	return &user.Session{
		ID: "sess-1",
		User: user.User{
			ID:        "user-1",
			Email:     "alice@example.com",
			CreatedAt: testTime,
		},
		Token:     "token-1",
		Method:    user.MethodPassword,
		IssuedAt:  testTime,
		ExpiresAt: testTime.Add(24 * time.Hour),
	}
}

// authed attaches s to the request the way the auth middleware does.
func authed(r *http.Request, s *user.Session) *http.Request {
	return r.WithContext(middleware.WithSession(r.Context(), s))
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          "todo-1",
		UserID:      "user-1",
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		TagIDs:      []string{"tag-1"},
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func validTag() tag.Tag {
	return tag.Tag{
		ID:        "tag-1",
		UserID:    "user-1",
		Name:      "work",
		Color:     tag.DefaultColor,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
