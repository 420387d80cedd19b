// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The global chain processes requests in this order:
//
//	Recovery → RequestID → CorrelationID → Locale → OpenTelemetry → Logging → Handler
//
// Route groups add Auth and, for non-streaming routes, Timeout. Each
// middleware is a func(http.Handler) http.Handler and can be composed using
// the Chain helper.
package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// responseWriter wraps http.ResponseWriter to capture the status code, bytes
// written, and whether the response is an event stream. It is used by
// recovery, otel, and logging middleware.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
	stream        bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader captures the status code and delegates to the underlying writer.
// Only the first call takes effect; subsequent calls are ignored.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.stream = strings.HasPrefix(rw.Header().Get("Content-Type"), "text/event-stream")
	rw.ResponseWriter.WriteHeader(code)
}

// Write delegates to the underlying writer, triggering an implicit 200 OK if
// WriteHeader has not been called.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap returns the underlying http.ResponseWriter so that
// http.ResponseController (used by the event streams to flush and lift the
// write deadline) works through the wrapper.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// routePattern returns the matched chi route, or "" before routing or for
// unmatched paths. Global middleware must call it after next.ServeHTTP.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
