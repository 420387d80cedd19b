package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/todotags/internal/adapters/http"
	"github.com/jsamuelsen11/todotags/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todotags/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
	"github.com/jsamuelsen11/todotags/mocks"
)

type routerDeps struct {
	auth     *mocks.MockAuthService
	todos    *mocks.MockTodoService
	tags     *mocks.MockTagService
	notices  *mocks.MockNotificationService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, *routerDeps) {
	t.Helper()
	d := &routerDeps{
		auth:     mocks.NewMockAuthService(t),
		todos:    mocks.NewMockTodoService(t),
		tags:     mocks.NewMockTagService(t),
		notices:  mocks.NewMockNotificationService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}

	streams := handlers.NewStreamRegistry()
	h := adapthttp.Handlers{
		Auth:  handlers.NewAuthHandler(d.auth, nil),
		Todos: handlers.NewTodoHandler(d.todos, nil),
		Tags:  handlers.NewTagHandler(d.tags, nil),
		Feed: handlers.NewFeedHandler(handlers.FeedHandlerConfig{
			Todos:   d.todos,
			Tags:    d.tags,
			Auth:    d.auth,
			Streams: streams,
		}),
		Notifications: handlers.NewNotificationHandler(d.notices, d.auth, streams, 0, nil),
		Health:        handlers.NewHealthHandler(d.registry, nil),
	}
	cfg := adapthttp.RouterConfig{
		Authenticate: middleware.Auth(d.auth, nil),
		Timeout:      middleware.Timeout(time.Second, nil),
	}

	return adapthttp.NewRouter(h, cfg, middlewares...), d
}

func testSession() *user.Session {
	return &user.Session{ID: "sess-1", User: user.User{ID: "user-1", Email: "alice@example.com"}, Token: "tok"}
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/auth/signup"},
		{http.MethodPost, "/api/v1/auth/signin"},
		{http.MethodPost, "/api/v1/auth/signin/{provider}"},
		{http.MethodPost, "/api/v1/auth/signout"},
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/todos"},
		{http.MethodPost, "/api/v1/todos"},
		{http.MethodGet, "/api/v1/todos/{id}"},
		{http.MethodPatch, "/api/v1/todos/{id}"},
		{http.MethodDelete, "/api/v1/todos/{id}"},
		{http.MethodPost, "/api/v1/todos/{id}/toggle"},
		{http.MethodGet, "/api/v1/todos/stream"},
		{http.MethodPut, "/api/v1/todos/stream/{streamID}/filter"},
		{http.MethodGet, "/api/v1/tags"},
		{http.MethodPost, "/api/v1/tags"},
		{http.MethodGet, "/api/v1/tags/palette"},
		{http.MethodGet, "/api/v1/tags/{id}"},
		{http.MethodPatch, "/api/v1/tags/{id}"},
		{http.MethodDelete, "/api/v1/tags/{id}"},
		{http.MethodGet, "/api/v1/notifications"},
		{http.MethodDelete, "/api/v1/notifications/{id}"},
		{http.MethodGet, "/api/v1/notifications/stream"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, d := newTestRouter(t, testMW)
	d.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/v1/todos", "/api/v1/tags", "/api/v1/auth/me", "/api/v1/todos/stream"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s status = %d, want %d", path, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestRouter_SignUpIsAnonymous(t *testing.T) {
	t.Parallel()

	router, d := newTestRouter(t)
	d.auth.EXPECT().SignUp(mock.Anything, mock.Anything).
		Return(nil, domain.NewError(domain.KindEmailInUse, "This email address is already in use"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup",
		strings.NewReader(`{"email":"alice@example.com","password":"secret1"}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestRouter_IntegrationListTodos(t *testing.T) {
	t.Parallel()

	router, d := newTestRouter(t)
	s := testSession()

	d.auth.EXPECT().Authenticate(mock.Anything, "tok").Return(s, nil)
	d.todos.EXPECT().ListTodos(mock.Anything, s, []string{"a", "b"}).Return([]todo.Todo{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos?tags=a,b", nil)
	req.Header.Set("Authorization", "Bearer tok")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_PaletteIsNotAnID(t *testing.T) {
	t.Parallel()

	router, d := newTestRouter(t)
	d.auth.EXPECT().Authenticate(mock.Anything, "tok").Return(testSession(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tags/palette", nil)
	req.Header.Set("Authorization", "Bearer tok")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/tags", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
