package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// AuthHandler handles HTTP requests for accounts and sessions.
type AuthHandler struct {
	auth ports.AuthService
	loc  dto.Localizer
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(auth ports.AuthService, loc dto.Localizer) *AuthHandler {
	return &AuthHandler{auth: auth, loc: loc}
}

// SignUp handles POST /api/v1/auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpRequest
	if !decodeAndValidate(w, r, &req, h.loc) {
		return
	}

	s, err := h.auth.SignUp(r.Context(), req.Credentials())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToSessionResponse(s))
}

// SignIn handles POST /api/v1/auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if !decodeAndValidate(w, r, &req, h.loc) {
		return
	}

	s, err := h.auth.SignIn(r.Context(), req.Credentials())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(s))
}

// SignInWithProvider handles POST /api/v1/auth/signin/{provider}.
func (h *AuthHandler) SignInWithProvider(w http.ResponseWriter, r *http.Request) {
	var req dto.ProviderSignInRequest
	if !decodeAndValidate(w, r, &req, h.loc) {
		return
	}

	s, err := h.auth.SignInWithProvider(r.Context(), chi.URLParam(r, "provider"), req.IDToken)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(s))
}

// SignOut handles POST /api/v1/auth/signout.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	if err := h.auth.SignOut(r.Context(), s); err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(&s.User))
}
