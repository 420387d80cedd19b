package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/todotags/internal/app"
	"github.com/jsamuelsen11/todotags/internal/domain"
)

// Localizer formats a catalog key in the language carried by ctx.
type Localizer interface {
	Sprintf(ctx context.Context, key string, args ...any) string
}

// ErrorResponse represents an RFC 9457 Problem Details response. Kind is an
// extension member carrying the domain error kind; Detail is localized.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Kind     string        `json:"kind"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI
// and to pick the language. A nil loc leaves messages untranslated.
func NewErrorResponse(r *http.Request, err error, loc Localizer) ErrorResponse {
	ctx := r.Context()
	kind := domain.KindOf(err)
	status := KindToStatus(kind)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Kind:     string(kind),
		Detail:   detailFor(ctx, err, kind, loc),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(ctx, verr.Fields, loc)
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error. It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error, loc Localizer) {
	resp := NewErrorResponse(r, err, loc)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// KindToStatus maps an error kind to its HTTP status code.
func KindToStatus(kind domain.Kind) int {
	switch kind {
	case domain.KindInvalidArgument, domain.KindWeakPassword, domain.KindInvalidEmail:
		return http.StatusBadRequest
	case domain.KindUnauthenticated, domain.KindUserNotFound, domain.KindWrongPassword:
		return http.StatusUnauthorized
	case domain.KindPermissionDenied:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindAlreadyExists, domain.KindDuplicateName, domain.KindEmailInUse:
		return http.StatusConflict
	case domain.KindTooManyRequests, domain.KindResourceExhausted:
		return http.StatusTooManyRequests
	case domain.KindUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// detailFor prefers the message of a normalized *domain.Error and falls back
// to the catalog text for kind.
func detailFor(ctx context.Context, err error, kind domain.Kind, loc Localizer) string {
	var derr *domain.Error
	if errors.As(err, &derr) && derr.Message != "" && derr.Kind == kind {
		return derr.Message
	}
	return translate(ctx, loc, app.KindMessage(kind))
}

func translate(ctx context.Context, loc Localizer, key string) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(ctx, key)
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(ctx context.Context, fields map[string]string, loc Localizer) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		location := "body"
		if field != "body" {
			location += "." + field
		}
		details = append(details, ErrorDetail{
			Location: location,
			Message:  translate(ctx, loc, msg),
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
