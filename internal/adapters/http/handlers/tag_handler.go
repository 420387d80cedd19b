package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// TagHandler handles HTTP requests for tag CRUD operations.
type TagHandler struct {
	tags ports.TagService
	loc  dto.Localizer
}

// NewTagHandler creates a new TagHandler with the given service port.
func NewTagHandler(tags ports.TagService, loc dto.Localizer) *TagHandler {
	return &TagHandler{tags: tags, loc: loc}
}

// ListTags handles GET /api/v1/tags.
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	tags, err := h.tags.ListTags(r.Context(), s)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTagListResponse(tags))
}

// Palette handles GET /api/v1/tags/palette.
func (h *TagHandler) Palette(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToPaletteResponse())
}

// CreateTag handles POST /api/v1/tags.
func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	var req dto.CreateTagRequest
	if !decodeAndValidate(w, r, &req, h.loc) {
		return
	}

	created, err := h.tags.CreateTag(r.Context(), s, req.Draft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTagResponse(created))
}

// GetTag handles GET /api/v1/tags/{id}.
func (h *TagHandler) GetTag(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	t, err := h.tags.GetTag(r.Context(), s, chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTagResponse(t))
}

// UpdateTag handles PATCH /api/v1/tags/{id}.
func (h *TagHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	var req dto.UpdateTagRequest
	if !decodeAndValidate(w, r, &req, h.loc) {
		return
	}

	updated, err := h.tags.UpdateTag(r.Context(), s, chi.URLParam(r, "id"), req.Patch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTagResponse(updated))
}

// DeleteTag handles DELETE /api/v1/tags/{id}. Todos carrying the tag lose it.
func (h *TagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	if err := h.tags.DeleteTag(r.Context(), s, chi.URLParam(r, "id")); err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
