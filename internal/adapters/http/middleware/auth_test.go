package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
	"github.com/jsamuelsen11/todotags/mocks"
)

func sessionEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			t.Error("SessionFromContext() ok = false inside authenticated handler")
			return
		}
		_, _ = w.Write([]byte(s.User.ID))
	})
}

func TestAuth_ValidBearerToken(t *testing.T) {
	t.Parallel()

	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Authenticate(mock.Anything, "good-token").
		Return(&user.Session{ID: "s1", User: user.User{ID: "u1"}}, nil)

	handler := middleware.Auth(auth, nil)(sessionEcho(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody)
	req.Header.Set("Authorization", "Bearer good-token")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "u1" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "u1")
	}
}

func TestAuth_QueryTokenOnGetOnly(t *testing.T) {
	t.Parallel()

	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Authenticate(mock.Anything, "stream-token").
		Return(&user.Session{ID: "s1", User: user.User{ID: "u1"}}, nil).Once()

	handler := middleware.Auth(auth, nil)(sessionEcho(t))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/todos/stream?access_token=stream-token", http.NoBody))
	if rec.Code != http.StatusOK {
		t.Errorf("GET status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/todos?access_token=stream-token", http.NoBody))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("POST status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuth_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			auth := mocks.NewMockAuthService(t)
			handler := middleware.Auth(auth, nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Error("handler should not run")
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("missing WWW-Authenticate header")
			}
		})
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Authenticate(mock.Anything, "revoked").
		Return(nil, &domain.Error{Kind: domain.KindUnauthenticated, Message: "ログインしてください"})

	handler := middleware.Auth(auth, nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not run")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody)
	req.Header.Set("Authorization", "Bearer revoked")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["detail"] != "ログインしてください" || body["kind"] != "unauthenticated" {
		t.Errorf("body = %v", body)
	}
}
