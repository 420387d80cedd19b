// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todotags/internal/adapters/http/middleware"
)

// Handlers groups the route handlers served by the router.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Todos         *handlers.TodoHandler
	Tags          *handlers.TagHandler
	Feed          *handlers.FeedHandler
	Notifications *handlers.NotificationHandler
	Health        *handlers.HealthHandler
}

// RouterConfig holds the route-group middleware. Authenticate guards every
// route except health and sign-up/sign-in. Timeout wraps the non-streaming
// API routes; nil disables it.
type RouterConfig struct {
	Authenticate func(http.Handler) http.Handler
	Timeout      func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, cfg RouterConfig, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	timeout := middleware.Chain(cfg.Timeout)

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Anonymous auth endpoints.
		r.Group(func(r chi.Router) {
			r.Use(timeout)
			r.Post("/auth/signup", h.Auth.SignUp)
			r.Post("/auth/signin", h.Auth.SignIn)
			r.Post("/auth/signin/{provider}", h.Auth.SignInWithProvider)
		})

		r.Group(func(r chi.Router) {
			r.Use(cfg.Authenticate)

			// Streams stay open past the request timeout.
			r.Get("/todos/stream", h.Feed.Stream)
			r.Get("/notifications/stream", h.Notifications.Stream)

			r.Group(func(r chi.Router) {
				r.Use(timeout)

				r.Post("/auth/signout", h.Auth.SignOut)
				r.Get("/auth/me", h.Auth.Me)

				r.Get("/todos", h.Todos.ListTodos)
				r.Post("/todos", h.Todos.CreateTodo)
				r.Get("/todos/{id}", h.Todos.GetTodo)
				r.Patch("/todos/{id}", h.Todos.UpdateTodo)
				r.Delete("/todos/{id}", h.Todos.DeleteTodo)
				r.Post("/todos/{id}/toggle", h.Todos.ToggleTodo)
				r.Put("/todos/stream/{streamID}/filter", h.Feed.SetFilter)

				r.Get("/tags", h.Tags.ListTags)
				r.Post("/tags", h.Tags.CreateTag)
				r.Get("/tags/palette", h.Tags.Palette)
				r.Get("/tags/{id}", h.Tags.GetTag)
				r.Patch("/tags/{id}", h.Tags.UpdateTag)
				r.Delete("/tags/{id}", h.Tags.DeleteTag)

				r.Get("/notifications", h.Notifications.ListNotices)
				r.Delete("/notifications/{id}", h.Notifications.DismissNotice)
			})
		})
	})

	return r
}
