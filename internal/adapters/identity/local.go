// Package identity implements an in-process identity provider for local
// development and tests. Accounts live in memory, passwords are bcrypt
// hashes, and federated sign-in accepts HS256 ID tokens signed with a
// per-provider secret.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.IdentityProvider = (*Local)(nil)
	_ ports.HealthChecker    = (*Local)(nil)
)

// Defaults for Options.
const (
	DefaultMinPasswordLength = 6
	defaultFailureBurst      = 5
	defaultFailureRefill     = time.Minute
)

// Options configures a Local provider.
type Options struct {
	// MinPasswordLength is the shortest accepted password, in characters.
	MinPasswordLength int

	// FederatedSecrets maps provider IDs (e.g. "google") to the HMAC secret
	// that signs that provider's ID tokens.
	FederatedSecrets map[string]string

	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int

	// FailureBurst wrong passwords per email are tolerated before sign-in is
	// throttled; one more is allowed every FailureRefill.
	FailureBurst  int
	FailureRefill time.Duration

	Now    func() time.Time
	Logger *slog.Logger
}

type account struct {
	user user.User
	hash []byte // nil for federated-only accounts

	// failures is created on the first wrong password.
	failures *rate.Limiter
}

// Local is the in-memory identity provider.
type Local struct {
	opts   Options
	logger *slog.Logger

	mu       sync.Mutex
	accounts map[string]*account // by lowercased email
}

// NewLocal creates an empty provider.
func NewLocal(opts Options) *Local {
	if opts.MinPasswordLength < 1 {
		opts.MinPasswordLength = DefaultMinPasswordLength
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.FailureBurst < 1 {
		opts.FailureBurst = defaultFailureBurst
	}
	if opts.FailureRefill <= 0 {
		opts.FailureRefill = defaultFailureRefill
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Local{
		opts:     opts,
		logger:   logger,
		accounts: make(map[string]*account),
	}
}

// Name identifies the provider in readiness results.
func (p *Local) Name() string { return "identity" }

// HealthCheck always succeeds.
func (p *Local) HealthCheck(context.Context) error { return nil }

// SignUp creates an email/password account.
func (p *Local) SignUp(ctx context.Context, creds user.Credentials) (*user.User, error) {
	email, err := normalizeEmail(creds.Email)
	if err != nil {
		return nil, err
	}
	if len([]rune(creds.Password)) < p.opts.MinPasswordLength {
		return nil, domain.NewError(domain.KindWeakPassword,
			fmt.Sprintf("password must be at least %d characters", p.opts.MinPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), p.opts.BcryptCost)
	if err != nil {
		// Passwords over 72 bytes are rejected by bcrypt.
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.WrapError(domain.KindWeakPassword, err)
		}
		return nil, domain.WrapError(domain.KindAuthUnknown, fmt.Errorf("hashing password: %w", err))
	}

	now := p.now()

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.accounts[email]; ok {
		return nil, domain.NewError(domain.KindEmailInUse, "email already registered")
	}
	acct := &account{
		user: user.User{
			ID:          uuid.NewString(),
			Email:       strings.TrimSpace(creds.Email),
			DisplayName: strings.TrimSpace(creds.DisplayName),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		hash: hash,
	}
	p.accounts[email] = acct

	p.logger.InfoContext(ctx, "account created",
		slog.String("operation", "Local.SignUp"),
		slog.String("user_id", acct.user.ID),
	)

	u := acct.user
	return &u, nil
}

// SignIn verifies an email/password pair. Repeated wrong passwords for one
// email are throttled with auth/too-many-requests.
func (p *Local) SignIn(ctx context.Context, creds user.Credentials) (*user.User, error) {
	email, err := normalizeEmail(creds.Email)
	if err != nil {
		return nil, err
	}

	now := p.opts.Now()

	p.mu.Lock()
	acct, ok := p.accounts[email]
	var (
		hash    []byte
		limiter *rate.Limiter
	)
	if ok {
		hash = acct.hash
		limiter = acct.failures
	}
	p.mu.Unlock()

	if !ok {
		return nil, domain.NewError(domain.KindUserNotFound, "no account for email")
	}
	if limiter != nil && limiter.TokensAt(now) < 1 {
		return nil, domain.NewError(domain.KindTooManyRequests, "too many failed sign-in attempts")
	}

	if hash == nil || bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)) != nil {
		p.recordFailure(acct, now)
		p.logger.WarnContext(ctx, "wrong password",
			slog.String("operation", "Local.SignIn"),
			slog.String("user_id", acct.user.ID),
		)
		return nil, domain.NewError(domain.KindWrongPassword, "password does not match")
	}

	return p.touch(email), nil
}

// federatedClaims are the ID token claims the local provider reads.
type federatedClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// SignInWithProvider verifies an HS256 ID token signed with the provider's
// configured secret and signs in the account for its email, creating it on
// first use.
func (p *Local) SignInWithProvider(ctx context.Context, providerID, idToken string) (*user.User, error) {
	secret, ok := p.opts.FederatedSecrets[providerID]
	if !ok || secret == "" {
		return nil, domain.NewError(domain.KindAuthUnknown, "unsupported identity provider "+providerID)
	}

	var claims federatedClaims
	_, err := jwt.ParseWithClaims(idToken, &claims,
		func(*jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.opts.Now),
	)
	if err != nil {
		return nil, domain.WrapError(domain.KindAuthUnknown, fmt.Errorf("verifying %s id token: %w", providerID, err))
	}

	email, err := normalizeEmail(claims.Email)
	if err != nil {
		return nil, err
	}

	now := p.now()

	p.mu.Lock()
	acct, exists := p.accounts[email]
	if !exists {
		acct = &account{user: user.User{
			ID:          uuid.NewString(),
			Email:       strings.TrimSpace(claims.Email),
			DisplayName: claims.Name,
			PhotoURL:    claims.Picture,
			CreatedAt:   now,
		}}
		p.accounts[email] = acct
	}
	if acct.user.DisplayName == "" {
		acct.user.DisplayName = claims.Name
	}
	if acct.user.PhotoURL == "" {
		acct.user.PhotoURL = claims.Picture
	}
	acct.user.UpdatedAt = now
	u := acct.user
	p.mu.Unlock()

	p.logger.InfoContext(ctx, "federated sign-in",
		slog.String("operation", "Local.SignInWithProvider"),
		slog.String("provider", providerID),
		slog.String("user_id", u.ID),
		slog.Bool("created", !exists),
	)

	return &u, nil
}

func (p *Local) touch(email string) *user.User {
	p.mu.Lock()
	defer p.mu.Unlock()

	acct := p.accounts[email]
	acct.user.UpdatedAt = p.now()
	u := acct.user
	return &u
}

func (p *Local) recordFailure(acct *account, now time.Time) {
	p.mu.Lock()
	if acct.failures == nil {
		acct.failures = rate.NewLimiter(rate.Every(p.opts.FailureRefill), p.opts.FailureBurst)
	}
	limiter := acct.failures
	p.mu.Unlock()

	limiter.AllowN(now, 1)
}

func (p *Local) now() time.Time {
	return p.opts.Now().UTC()
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", domain.NewError(domain.KindInvalidEmail, "invalid email address")
	}
	return email, nil
}
