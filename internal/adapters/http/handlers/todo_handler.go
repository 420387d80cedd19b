package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// TodoHandler handles HTTP requests for todo CRUD operations.
type TodoHandler struct {
	todos ports.TodoService
	loc   dto.Localizer
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(todos ports.TodoService, loc dto.Localizer) *TodoHandler {
	return &TodoHandler{todos: todos, loc: loc}
}

// ListTodos handles GET /api/v1/todos. The optional tags query parameter is a
// comma-separated list of tag IDs; a todo matches if it carries any of them.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	todos, err := h.todos.ListTodos(r.Context(), s, dto.ParseTagIDs(r.URL.Query().Get("tags")))
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(todos))
}

// CreateTodo handles POST /api/v1/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req, h.loc) {
		return
	}

	created, err := h.todos.CreateTodo(r.Context(), s, req.Draft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created))
}

// GetTodo handles GET /api/v1/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	t, err := h.todos.GetTodo(r.Context(), s, chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t))
}

// UpdateTodo handles PATCH /api/v1/todos/{id}.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req, h.loc) {
		return
	}

	updated, err := h.todos.UpdateTodo(r.Context(), s, chi.URLParam(r, "id"), req.Patch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// ToggleTodo handles POST /api/v1/todos/{id}/toggle.
func (h *TodoHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	var req dto.ToggleTodoRequest
	if !decodeAndValidate(w, r, &req, h.loc) {
		return
	}

	updated, err := h.todos.ToggleTodo(r.Context(), s, chi.URLParam(r, "id"), *req.Completed)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// DeleteTodo handles DELETE /api/v1/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	if err := h.todos.DeleteTodo(r.Context(), s, chi.URLParam(r, "id")); err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
