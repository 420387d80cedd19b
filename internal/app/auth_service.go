package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// SessionManager issues and ends sessions. *session.Manager satisfies it.
type SessionManager interface {
	Issue(u user.User, method string) (*user.Session, error)
	Verify(token string) (*user.Session, error)
	Revoke(s *user.Session)
	Watch(s *user.Session, fn func()) func()
}

// AuthService implements ports.AuthService by pairing an identity provider
// with a session manager.
type AuthService struct {
	identity ports.IdentityProvider
	sessions SessionManager
	feedback *Feedback
	logger   *slog.Logger
}

// NewAuthService creates an AuthService. A nil logger discards output.
func NewAuthService(identity ports.IdentityProvider, sessions SessionManager, feedback *Feedback, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthService{
		identity: identity,
		sessions: sessions,
		feedback: feedback,
		logger:   logger,
	}
}

// SignUp registers an account and signs it in.
func (s *AuthService) SignUp(ctx context.Context, creds user.Credentials) (*user.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, s.feedback.Fail(ctx, "", "SignUp", err)
	}

	u, err := s.identity.SignUp(ctx, creds)
	if err != nil {
		return nil, s.feedback.Fail(ctx, "", "SignUp", err)
	}

	sess, err := s.open(ctx, u, user.MethodPassword, "SignUp")
	if err != nil {
		return nil, err
	}

	s.feedback.Success(ctx, u.ID, MsgAccountCreated)
	s.feedback.Track(ctx, u.ID, ports.EventSignUp, map[string]any{"method": user.MethodPassword})
	s.feedback.Identify(ctx, u.ID, map[string]any{
		"email":       u.Email,
		"signup_date": u.CreatedAt.Format("2006-01-02"),
	})
	return sess, nil
}

// SignIn verifies email and password and opens a session.
func (s *AuthService) SignIn(ctx context.Context, creds user.Credentials) (*user.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, s.feedback.Fail(ctx, "", "SignIn", err)
	}

	u, err := s.identity.SignIn(ctx, creds)
	if err != nil {
		return nil, s.feedback.Fail(ctx, "", "SignIn", err)
	}

	sess, err := s.open(ctx, u, user.MethodPassword, "SignIn")
	if err != nil {
		return nil, err
	}

	s.feedback.Success(ctx, u.ID, MsgSignedIn)
	s.feedback.Track(ctx, u.ID, ports.EventLogin, map[string]any{"method": user.MethodPassword})
	s.feedback.Identify(ctx, u.ID, map[string]any{"email": u.Email})
	return sess, nil
}

// SignInWithProvider exchanges a federated ID token for a session.
func (s *AuthService) SignInWithProvider(ctx context.Context, providerID, idToken string) (*user.Session, error) {
	providerID = strings.ToLower(strings.TrimSpace(providerID))
	fields := make(map[string]string)
	if providerID == "" {
		fields["provider"] = domain.MsgRequired
	}
	if strings.TrimSpace(idToken) == "" {
		fields["id_token"] = domain.MsgRequired
	}
	if len(fields) > 0 {
		return nil, s.feedback.Fail(ctx, "", "SignInWithProvider", &domain.ValidationError{Fields: fields})
	}

	u, err := s.identity.SignInWithProvider(ctx, providerID, idToken)
	if err != nil {
		return nil, s.feedback.Fail(ctx, "", "SignInWithProvider", err)
	}

	sess, err := s.open(ctx, u, providerID, "SignInWithProvider")
	if err != nil {
		return nil, err
	}

	s.feedback.Success(ctx, u.ID, MsgSignedInProvider, providerLabel(providerID))
	s.feedback.Track(ctx, u.ID, ports.EventLogin, map[string]any{"method": providerID})
	s.feedback.Identify(ctx, u.ID, map[string]any{"email": u.Email})
	return sess, nil
}

// SignOut ends the session. Streams watching it close.
func (s *AuthService) SignOut(ctx context.Context, sess *user.Session) error {
	if err := requireSession(sess); err != nil {
		return s.feedback.Normalize(ctx, err)
	}

	s.sessions.Revoke(sess)
	s.logger.InfoContext(ctx, "signed out", slog.String("session_id", sess.ID))
	s.feedback.Info(ctx, sess.User.ID, MsgSignedOut)
	s.feedback.Track(ctx, sess.User.ID, ports.EventLogout, nil)
	return nil
}

// Authenticate resolves a bearer token to its session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*user.Session, error) {
	sess, err := s.sessions.Verify(token)
	if err != nil {
		s.logger.DebugContext(ctx, "token rejected", slog.Any("error", err))
		return nil, s.feedback.Normalize(ctx, err)
	}
	return sess, nil
}

// WatchSession calls fn once when sess ends.
func (s *AuthService) WatchSession(sess *user.Session, fn func()) ports.Unsubscribe {
	return s.sessions.Watch(sess, fn)
}

func (s *AuthService) open(ctx context.Context, u *user.User, method, operation string) (*user.Session, error) {
	sess, err := s.sessions.Issue(*u, method)
	if err != nil {
		return nil, s.feedback.Fail(ctx, u.ID, operation, domain.WrapError(domain.KindAuthUnknown, err))
	}
	s.logger.InfoContext(ctx, "session opened",
		slog.String("operation", operation),
		slog.String("user_id", u.ID),
		slog.String("method", method),
	)
	return sess, nil
}
