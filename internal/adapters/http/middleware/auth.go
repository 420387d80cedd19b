package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
	"github.com/jsamuelsen11/todotags/internal/platform/logging"
)

// queryAccessToken carries the bearer token for clients that cannot set
// headers, such as browser EventSource streams. It is honored on GET only.
const queryAccessToken = "access_token"

var errMissingToken = domain.WrapError(domain.KindUnauthenticated, errors.New("missing bearer token"))

// sessionKey is the context key for the authenticated session.
type sessionKey struct{}

// WithSession returns a new context carrying s.
func WithSession(ctx context.Context, s *user.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored by Auth, if any.
func SessionFromContext(ctx context.Context) (*user.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*user.Session)
	return s, ok && s != nil
}

// Authenticator resolves a bearer token to a session. ports.AuthService
// satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*user.Session, error)
}

// Auth returns middleware that requires a valid bearer token. The session is
// stored in the request context and the request logger gains a user_id
// attribute. Failures get a 401 problem response localized through loc.
func Auth(auth Authenticator, loc dto.Localizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="todotags"`)
				dto.WriteErrorResponse(w, r, errMissingToken, loc)
				return
			}

			s, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="todotags", error="invalid_token"`)
				dto.WriteErrorResponse(w, r, err, loc)
				return
			}

			ctx := WithSession(r.Context(), s)
			ctx = logging.WithUser(ctx, s.User.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if r.Method == http.MethodGet {
		return r.URL.Query().Get(queryAccessToken)
	}
	return ""
}
