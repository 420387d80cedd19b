// Package user holds the authenticated user, sign-in credentials, and the
// session that scopes every data operation.
package user

import (
	"net/mail"
	"strings"
	"time"

	"github.com/jsamuelsen11/todotags/internal/domain"
)

// User is the identity provider's account, normalized. CreatedAt is the
// account creation time and UpdatedAt the last sign-in time.
type User struct {
	ID          string
	Email       string
	DisplayName string
	PhotoURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Credentials are the email/password pair for sign-up and sign-in.
// DisplayName is only used on sign-up.
type Credentials struct {
	Email       string
	Password    string
	DisplayName string
}

// Validate checks presence and email shape. Password strength is the
// identity provider's decision.
func (c *Credentials) Validate() error {
	fields := make(map[string]string)

	email := strings.TrimSpace(c.Email)
	switch {
	case email == "":
		fields["email"] = domain.MsgRequired
	case !isEmail(email):
		fields["email"] = domain.MsgInvalidEmail
	}
	if c.Password == "" {
		fields["password"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// Session binds an authenticated user to a bearer token until ExpiresAt or
// sign-out, whichever comes first.
type Session struct {
	ID        string
	User      User
	Token     string
	Method    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Sign-in methods, reported to analytics.
const (
	MethodPassword = "password"
	MethodGoogle   = "google"
)
