package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todotags/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any, loc dto.Localizer) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": dto.MsgMalformedJSON},
		}, loc)
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T, loc dto.Localizer) bool {
	if !decodeJSONBody(w, r, dst, loc) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err, loc)
		return false
	}
	return true
}

// requireSession returns the session placed in the context by the auth
// middleware. Without one it writes a 401 response and returns false.
func requireSession(w http.ResponseWriter, r *http.Request, loc dto.Localizer) (*user.Session, bool) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		dto.WriteErrorResponse(w, r, domain.ErrUnauthenticated, loc)
		return nil, false
	}
	return s, true
}
