// Package acl implements the Anti-Corruption Layer between the remote
// identity REST API and the domain. DTOs and translators live in the
// identity subpackage; error mapping and the request lifecycle live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todotags/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorEnvelope is the identity API's error body:
//
//	{"error": {"code": 400, "message": "EMAIL_EXISTS"}}
//
// The message may carry a suffix after the code, e.g.
// "WEAK_PASSWORD : Password should be at least 6 characters".
type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// errorCodes maps identity API error codes to domain kinds.
var errorCodes = map[string]domain.Kind{
	"EMAIL_NOT_FOUND":             domain.KindUserNotFound,
	"USER_NOT_FOUND":              domain.KindUserNotFound,
	"INVALID_PASSWORD":            domain.KindWrongPassword,
	"INVALID_LOGIN_CREDENTIALS":   domain.KindWrongPassword,
	"EMAIL_EXISTS":                domain.KindEmailInUse,
	"WEAK_PASSWORD":               domain.KindWeakPassword,
	"INVALID_EMAIL":               domain.KindInvalidEmail,
	"MISSING_EMAIL":               domain.KindInvalidEmail,
	"TOO_MANY_ATTEMPTS_TRY_LATER": domain.KindTooManyRequests,
	"QUOTA_EXCEEDED":              domain.KindTooManyRequests,
}

// TranslateHTTPError maps an identity API error response to a *domain.Error.
// A known error code decides the kind; otherwise the status code does.
func TranslateHTTPError(resp *http.Response) error {
	code := parseErrorCode(resp)
	cause := fmt.Errorf("identity api: status %d: %s", resp.StatusCode, orStatusText(code, resp.StatusCode))

	if kind, ok := errorCodes[code]; ok {
		return domain.WrapError(kind, cause)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return domain.WrapError(domain.KindTooManyRequests, cause)
	case resp.StatusCode >= http.StatusInternalServerError:
		return domain.WrapError(domain.KindUnavailable, cause)
	default:
		return domain.WrapError(domain.KindAuthUnknown, cause)
	}
}

// parseErrorCode reads the error envelope and returns the bare error code,
// or "" when the body is missing or not an envelope.
func parseErrorCode(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}

	code, _, _ := strings.Cut(env.Error.Message, " ")
	return strings.TrimSpace(code)
}

func orStatusText(code string, status int) string {
	if code != "" {
		return code
	}
	return http.StatusText(status)
}
