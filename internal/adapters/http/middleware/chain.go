package middleware

import "net/http"

// Chain composes middleware into one. The first argument is outermost, so
//
//	Chain(Auth, Timeout)(handler)
//
// equals Auth(Timeout(handler)). Nil entries are skipped, which lets callers
// pass optional middleware straight from configuration; Chain() with no
// usable entries returns the handler unchanged.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			if middlewares[i] == nil {
				continue
			}
			handler = middlewares[i](handler)
		}
		return handler
	}
}
