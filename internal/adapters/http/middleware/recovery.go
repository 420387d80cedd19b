package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todotags/internal/domain"
)

// errInternalServer is the generic error returned to clients when a panic is
// recovered. The actual panic value and stack trace are logged but never
// exposed in the HTTP response.
var errInternalServer = domain.WrapError(domain.KindUnknown, errors.New("internal server error"))

// Recovery returns middleware that recovers from panics in downstream handlers.
// When a panic occurs the middleware logs the error with the full stack trace
// and returns an RFC 9457 500 response. If the response headers have already
// been written, as on an open event stream, only the log entry is emitted.
// The response detail is localized through loc.
func Recovery(logger *slog.Logger, loc dto.Localizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				if v := recover(); v != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.String("panic", fmt.Sprint(v)),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("route", routePattern(r)),
						slog.Bool("stream", rw.stream),
					)

					// An open event stream cannot switch to a problem response.
					if !rw.headerWritten {
						dto.WriteErrorResponse(rw, r, errInternalServer, loc)
					}
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
