package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/todotags/internal/platform/logging"
)

const redacted = "[REDACTED]"

// sensitiveParams are query parameters that carry credentials. Event-stream
// clients pass the session token as access_token.
var sensitiveParams = map[string]bool{
	queryAccessToken: true,
	"key":            true,
}

// RedactHeaders converts an http.Header map into a slice of slog.Attr values
// suitable for structured logging. Headers whose lowercase name appears in
// logging.SensitiveHeaders are replaced with "[REDACTED]"; all others are included
// as-is. Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
		} else {
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}

// RedactURL returns u as a string with credential query parameters masked.
func RedactURL(u *url.URL) string {
	if u.RawQuery == "" {
		return u.String()
	}
	q := u.Query()
	changed := false
	for key := range q {
		if sensitiveParams[strings.ToLower(key)] {
			q.Set(key, redacted)
			changed = true
		}
	}
	if !changed {
		return u.String()
	}
	c := *u
	c.RawQuery = q.Encode()
	return c.String()
}
