package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrUnavailable     = errors.New("unavailable")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrExhausted       = errors.New("resource exhausted")
)

// Field-level validation messages. They double as catalog keys, so keep them
// stable.
const (
	MsgRequired     = "is required"
	MsgTooLong      = "is too long"
	MsgTooMany      = "has too many entries"
	MsgInvalidColor = "is not a palette color"
	MsgUnknownTag   = "references an unknown tag"
	MsgNoChanges    = "must contain at least one field"
	MsgInvalidEmail = "is not a valid email address"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Kind classifies every failure the service surfaces to users. The set is
// closed: identity provider kinds carry the "auth/" prefix, backend kinds
// mirror the data store's status codes, and the remaining kinds are raised
// locally before any store call.
type Kind string

// Identity provider kinds.
const (
	KindUserNotFound    Kind = "auth/user-not-found"
	KindWrongPassword   Kind = "auth/wrong-password"
	KindEmailInUse      Kind = "auth/email-already-in-use"
	KindWeakPassword    Kind = "auth/weak-password"
	KindInvalidEmail    Kind = "auth/invalid-email"
	KindTooManyRequests Kind = "auth/too-many-requests"
	KindAuthUnknown     Kind = "auth/unknown"
)

// Backend kinds.
const (
	KindPermissionDenied  Kind = "permission-denied"
	KindNotFound          Kind = "not-found"
	KindAlreadyExists     Kind = "already-exists"
	KindResourceExhausted Kind = "resource-exhausted"
	KindUnavailable       Kind = "unavailable"
	KindUnknown           Kind = "unknown"
)

// Local kinds.
const (
	KindInvalidArgument Kind = "invalid-argument"
	KindDuplicateName   Kind = "duplicate-name"
	KindUnauthenticated Kind = "unauthenticated"
)

// IsAuth reports whether the kind originates from the identity provider.
func (k Kind) IsAuth() bool {
	return strings.HasPrefix(string(k), "auth/")
}

// Retryable reports whether an operation failing with this kind may succeed
// when attempted again unchanged.
func (k Kind) Retryable() bool {
	switch k {
	case KindUnavailable, KindResourceExhausted:
		return true
	default:
		return false
	}
}

// sentinel returns the package-level sentinel that errors of this kind match
// with errors.Is, or nil for the unknown kinds.
func (k Kind) sentinel() error {
	switch k {
	case KindInvalidArgument, KindWeakPassword, KindInvalidEmail:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	case KindAlreadyExists, KindDuplicateName, KindEmailInUse:
		return ErrConflict
	case KindPermissionDenied:
		return ErrForbidden
	case KindUnavailable:
		return ErrUnavailable
	case KindUnauthenticated, KindUserNotFound, KindWrongPassword:
		return ErrUnauthenticated
	case KindResourceExhausted, KindTooManyRequests:
		return ErrExhausted
	default:
		return nil
	}
}

// Error is the normalized failure type returned by application services.
// Message holds the user-facing text (localized by the application layer);
// Cause keeps the original error for logging and errors.As.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// NewError creates an Error of the given kind with a message and no cause.
func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// WrapError creates an Error of the given kind around cause.
func WrapError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind's sentinel and the cause, so errors.Is works
// against sentinels and errors.As reaches wrapped vendor or validation errors.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// KindOf classifies err. A wrapped *Error reports its own kind; bare
// sentinels and context errors map to the closest kind. Nil yields "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	switch {
	case errors.Is(err, ErrValidation):
		return KindInvalidArgument
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindAlreadyExists
	case errors.Is(err, ErrForbidden):
		return KindPermissionDenied
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrExhausted):
		return KindResourceExhausted
	case errors.Is(err, ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return KindUnavailable
	default:
		return KindUnknown
	}
}
