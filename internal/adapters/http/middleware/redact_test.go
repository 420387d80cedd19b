package middleware_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    map[string]string
	}{
		{
			name:    "authorization",
			headers: http.Header{"Authorization": {"Bearer secret-token"}},
			want:    map[string]string{"Authorization": redactedValue},
		},
		{
			name:    "api key",
			headers: http.Header{"X-Api-Key": {"my-api-key-value"}},
			want:    map[string]string{"X-Api-Key": redactedValue},
		},
		{
			name:    "cookie",
			headers: http.Header{"Cookie": {"session=abc"}},
			want:    map[string]string{"Cookie": redactedValue},
		},
		{
			name:    "language passes through",
			headers: http.Header{"Accept-Language": {"ja", "en;q=0.5"}},
			want:    map[string]string{"Accept-Language": "ja,en;q=0.5"},
		},
		{
			name: "mixed",
			headers: http.Header{
				"Authorization": {"Bearer tok"},
				"Content-Type":  {"application/json"},
			},
			want: map[string]string{"Authorization": redactedValue, "Content-Type": "application/json"},
		},
		{
			name:    "empty",
			headers: http.Header{},
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(tt.headers)
			if len(attrs) != len(tt.want) {
				t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(tt.want))
			}
			for _, a := range attrs {
				if got := a.Value.String(); got != tt.want[a.Key] {
					t.Errorf("%s = %q, want %q", a.Key, got, tt.want[a.Key])
				}
			}
		})
	}
}

func TestRedactURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no query", "/api/v1/todos", "/api/v1/todos"},
		{"harmless query", "/api/v1/todos?tags=a,b", "/api/v1/todos?tags=a,b"},
		{"access token", "/api/v1/todos/stream?access_token=secret&tags=a", "/api/v1/todos/stream?access_token=%5BREDACTED%5D&tags=a"},
		{"api key", "/v1/accounts:signUp?key=abc", "/v1/accounts:signUp?key=%5BREDACTED%5D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := url.Parse(tt.raw)
			if err != nil {
				t.Fatalf("url.Parse: %v", err)
			}
			if got := middleware.RedactURL(u); got != tt.want {
				t.Errorf("RedactURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
