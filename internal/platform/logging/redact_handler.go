package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"

	"github.com/jsamuelsen11/todotags/internal/domain/user"
)

// SensitiveHeaders is the canonical set of HTTP header names (lowercase) that
// carry credentials. The HTTP middleware's RedactHeaders uses the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// sensitiveFields are attribute keys and struct field names whose values are
// always masked. Struct fields match by their Go name.
var sensitiveFields = []string{
	"password", "Password",
	"token", "Token",
	"id_token", "idToken", "IDToken",
	"access_token", "refresh_token", "refreshToken",
	"session_token", "session_secret", "SessionSecret",
	"secret", "api_key", "APIKey",
}

// sensitivePrefixes catch variations such as "secret_key" or "api_key_v2".
var sensitivePrefixes = []string{"secret_", "api_key"}

var (
	// bearerPattern matches "Bearer <token>" in free-form values.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// jwtPattern matches raw JWTs, session tokens included. Each segment needs
	// at least 10 characters so version strings are left alone.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// apiKeyInlinePattern matches "api_key=<value>" and "apikey:<value>".
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

	// accessTokenQueryPattern matches the stream token query parameter in
	// logged URLs.
	accessTokenQueryPattern = regexp.MustCompile(`(?i)access_token=[^&\s"]+`)
)

// newRedactAttr returns a masq ReplaceAttr function for slog.HandlerOptions.
// Sign-up credentials are masked whole wherever they are logged.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+5)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}

	opts = append(opts,
		masq.WithType[user.Credentials](),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
		masq.WithRegex(accessTokenQueryPattern),
	)

	return masq.New(opts...)
}
