package middleware

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/jsamuelsen11/todotags/internal/platform/i18n"
)

// LanguageResolver picks a supported language. *i18n.Translator satisfies it.
type LanguageResolver interface {
	Resolve(lang, acceptLanguage string) language.Tag
}

// Locale returns middleware that resolves the response language from the
// lang query parameter, then Accept-Language, then the default, and stores
// it in the request context for message formatting.
func Locale(resolver LanguageResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := resolver.Resolve(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
			w.Header().Set("Content-Language", tag.String())
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(i18n.WithLanguage(r.Context(), tag)))
		})
	}
}
