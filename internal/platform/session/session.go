// Package session issues and verifies the bearer tokens that carry a signed-in
// user between requests. Tokens are HS256 JWTs whose jti is the session ID;
// sign-out revokes the jti until the token would have expired anyway.
//
// Watchers registered on a session are called once when it ends, by
// revocation or expiry, so long-lived streams can close themselves.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
)

const minSecretLength = 32

// Config configures a Manager.
type Config struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

type claims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	DisplayName string `json:"name,omitempty"`
	PhotoURL    string `json:"picture,omitempty"`
	Method      string `json:"amr"`
	CreatedAt   int64  `json:"created_at"`
}

// Manager issues, verifies, and revokes sessions. It is safe for concurrent
// use.
type Manager struct {
	cfg Config

	mu       sync.Mutex
	revoked  map[string]time.Time
	watchers map[string]map[uint64]*watcher
	nextID   uint64
}

type watcher struct {
	once  sync.Once
	fn    func()
	timer *time.Timer
}

func (w *watcher) fire() {
	w.once.Do(func() {
		w.timer.Stop()
		w.fn()
	})
}

// NewManager validates cfg and returns a Manager.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Secret) < minSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d bytes", minSecretLength)
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Manager{
		cfg:      cfg,
		revoked:  make(map[string]time.Time),
		watchers: make(map[string]map[uint64]*watcher),
	}, nil
}

// Issue opens a session for u signed in by method.
func (m *Manager) Issue(u user.User, method string) (*user.Session, error) {
	now := m.cfg.Now().UTC().Truncate(time.Second)
	expires := now.Add(m.cfg.TTL)
	id := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Issuer,
			Subject:   u.ID,
			ID:        id,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Method:      method,
		CreatedAt:   u.CreatedAt.Unix(),
	})

	signed, err := token.SignedString(m.cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}

	u.UpdatedAt = now
	return &user.Session{
		ID:        id,
		User:      u,
		Token:     signed,
		Method:    method,
		IssuedAt:  now,
		ExpiresAt: expires,
	}, nil
}

// Verify parses token and returns its session. Invalid, expired, and
// revoked tokens yield a domain.KindUnauthenticated error.
func (m *Manager) Verify(token string) (*user.Session, error) {
	if token == "" {
		return nil, domain.NewError(domain.KindUnauthenticated, "missing session token")
	}

	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return m.cfg.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.cfg.Now),
	)
	if err != nil {
		return nil, domain.WrapError(domain.KindUnauthenticated, err)
	}
	if c.ID == "" || c.Subject == "" {
		return nil, domain.NewError(domain.KindUnauthenticated, "session token lacks jti or sub")
	}
	if m.isRevoked(c.ID) {
		return nil, domain.NewError(domain.KindUnauthenticated, "session revoked")
	}

	issued := c.IssuedAt.Time.UTC()
	return &user.Session{
		ID: c.ID,
		User: user.User{
			ID:          c.Subject,
			Email:       c.Email,
			DisplayName: c.DisplayName,
			PhotoURL:    c.PhotoURL,
			CreatedAt:   time.Unix(c.CreatedAt, 0).UTC(),
			UpdatedAt:   issued,
		},
		Token:     token,
		Method:    c.Method,
		IssuedAt:  issued,
		ExpiresAt: c.ExpiresAt.Time.UTC(),
	}, nil
}

// Revoke ends s. Later Verify calls for its token fail and its watchers run.
// Revoking twice is a no-op.
func (m *Manager) Revoke(s *user.Session) {
	now := m.cfg.Now()

	m.mu.Lock()
	if _, ok := m.revoked[s.ID]; ok {
		m.mu.Unlock()
		return
	}
	m.revoked[s.ID] = s.ExpiresAt
	for id, exp := range m.revoked {
		if now.After(exp) {
			delete(m.revoked, id)
		}
	}
	ws := m.watchers[s.ID]
	delete(m.watchers, s.ID)
	m.mu.Unlock()

	for _, w := range ws {
		w.fire()
	}
}

// Watch calls fn once when s is revoked or expires. The returned func
// cancels the watch; fn may already be running when it returns.
func (m *Manager) Watch(s *user.Session, fn func()) func() {
	w := &watcher{fn: fn}

	m.mu.Lock()
	if _, ok := m.revoked[s.ID]; ok {
		m.mu.Unlock()
		go fn()
		return func() {}
	}
	m.nextID++
	id := m.nextID
	if m.watchers[s.ID] == nil {
		m.watchers[s.ID] = make(map[uint64]*watcher)
	}
	m.watchers[s.ID][id] = w
	w.timer = time.AfterFunc(s.ExpiresAt.Sub(m.cfg.Now()), func() {
		m.forget(s.ID, id)
		w.fire()
	})
	m.mu.Unlock()

	return func() {
		w.timer.Stop()
		m.forget(s.ID, id)
	}
}

// Watching returns the number of active watchers for a session.
func (m *Manager) Watching(sessionID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.watchers[sessionID])
}

func (m *Manager) forget(sessionID string, id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.watchers[sessionID], id)
	if len(m.watchers[sessionID]) == 0 {
		delete(m.watchers, sessionID)
	}
}

func (m *Manager) isRevoked(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[id]
	return ok
}
