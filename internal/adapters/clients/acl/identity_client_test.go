package acl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
	"github.com/jsamuelsen11/todotags/internal/platform/config"
	"github.com/jsamuelsen11/todotags/internal/platform/httpclient"
)

const testAPIKey = "test-key"

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "identity-toolkit", nil, nil)
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func writeAPIError(t *testing.T, w http.ResponseWriter, message string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": 400, "message": message},
	})
}

// fakeIdentityAPI records the paths it was called with and serves canned
// responses keyed by path.
type fakeIdentityAPI struct {
	t        *testing.T
	mu       sync.Mutex
	calls    []string
	bodies   map[string]map[string]any
	handlers map[string]func(w http.ResponseWriter, body map[string]any)
}

func newFakeIdentityAPI(t *testing.T) *fakeIdentityAPI {
	return &fakeIdentityAPI{
		t:        t,
		bodies:   make(map[string]map[string]any),
		handlers: make(map[string]func(http.ResponseWriter, map[string]any)),
	}
}

func (f *fakeIdentityAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("key") != testAPIKey {
		writeAPIError(f.t, w, "API_KEY_INVALID")
		return
	}
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.calls = append(f.calls, r.URL.Path)
	f.bodies[r.URL.Path] = body
	h := f.handlers[r.URL.Path]
	f.mu.Unlock()

	if h == nil {
		http.NotFound(w, r)
		return
	}
	h(w, body)
}

func (f *fakeIdentityAPI) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeIdentityAPI) body(path string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[path]
}

func (f *fakeIdentityAPI) lookupOK() {
	f.handlers[pathLookup] = func(w http.ResponseWriter, _ map[string]any) {
		writeJSON(f.t, w, map[string]any{"users": []map[string]any{{
			"localId":     "uid-1",
			"email":       "alice@example.com",
			"displayName": "Alice",
			"createdAt":   "1700000000000",
			"lastLoginAt": "1700000100000",
		}}})
	}
}

func newIdentityClient(t *testing.T, api *fakeIdentityAPI) *IdentityClient {
	t.Helper()

	ts := httptest.NewServer(api)
	t.Cleanup(ts.Close)
	return NewIdentityClient(newTestClient(t, ts.URL), testAPIKey, nil)
}

func TestIdentityClient_SignIn(t *testing.T) {
	t.Parallel()

	api := newFakeIdentityAPI(t)
	api.handlers[pathSignInPassword] = func(w http.ResponseWriter, _ map[string]any) {
		writeJSON(t, w, map[string]any{"localId": "uid-1", "email": "alice@example.com", "idToken": "id-token"})
	}
	api.lookupOK()
	c := newIdentityClient(t, api)

	got, err := c.SignIn(context.Background(), user.Credentials{Email: " alice@example.com ", Password: "secret1"})
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	if got.ID != "uid-1" || got.DisplayName != "Alice" {
		t.Errorf("SignIn() = %+v, want uid-1/Alice", got)
	}
	if !got.CreatedAt.Equal(time.UnixMilli(1700000000000).UTC()) {
		t.Errorf("CreatedAt = %v, want account createdAt", got.CreatedAt)
	}

	sent := api.body(pathSignInPassword)
	if sent["email"] != "alice@example.com" || sent["password"] != "secret1" || sent["returnSecureToken"] != true {
		t.Errorf("signIn body = %v", sent)
	}
	if api.body(pathLookup)["idToken"] != "id-token" {
		t.Errorf("lookup body = %v, want idToken", api.body(pathLookup))
	}
}

func TestIdentityClient_SignUp_SetsDisplayName(t *testing.T) {
	t.Parallel()

	api := newFakeIdentityAPI(t)
	api.handlers[pathSignUp] = func(w http.ResponseWriter, _ map[string]any) {
		writeJSON(t, w, map[string]any{"localId": "uid-1", "email": "alice@example.com", "idToken": "id-token"})
	}
	api.handlers[pathUpdate] = func(w http.ResponseWriter, _ map[string]any) {
		writeJSON(t, w, map[string]any{"localId": "uid-1"})
	}
	api.lookupOK()
	c := newIdentityClient(t, api)

	_, err := c.SignUp(context.Background(), user.Credentials{
		Email: "alice@example.com", Password: "secret1", DisplayName: "Alice",
	})
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	want := []string{pathSignUp, pathUpdate, pathLookup}
	got := api.called()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if api.body(pathUpdate)["displayName"] != "Alice" {
		t.Errorf("update body = %v, want displayName", api.body(pathUpdate))
	}
}

func TestIdentityClient_SignUp_WithoutDisplayNameSkipsUpdate(t *testing.T) {
	t.Parallel()

	api := newFakeIdentityAPI(t)
	api.handlers[pathSignUp] = func(w http.ResponseWriter, _ map[string]any) {
		writeJSON(t, w, map[string]any{"localId": "uid-1", "idToken": "id-token"})
	}
	api.lookupOK()
	c := newIdentityClient(t, api)

	if _, err := c.SignUp(context.Background(), user.Credentials{Email: "a@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	for _, p := range api.called() {
		if p == pathUpdate {
			t.Error("accounts:update called without a display name")
		}
	}
}

func TestIdentityClient_ErrorKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		wantKind domain.Kind
		wantIs   error
	}{
		{"user not found", "EMAIL_NOT_FOUND", domain.KindUserNotFound, domain.ErrUnauthenticated},
		{"wrong password", "INVALID_PASSWORD", domain.KindWrongPassword, domain.ErrUnauthenticated},
		{"throttled", "TOO_MANY_ATTEMPTS_TRY_LATER", domain.KindTooManyRequests, domain.ErrExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newFakeIdentityAPI(t)
			api.handlers[pathSignInPassword] = func(w http.ResponseWriter, _ map[string]any) {
				writeAPIError(t, w, tt.code)
			}
			c := newIdentityClient(t, api)

			_, err := c.SignIn(context.Background(), user.Credentials{Email: "a@example.com", Password: "x"})
			if domain.KindOf(err) != tt.wantKind {
				t.Errorf("SignIn() kind = %q, want %q (err %v)", domain.KindOf(err), tt.wantKind, err)
			}
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("errors.Is(err, %v) = false", tt.wantIs)
			}
		})
	}
}

func TestIdentityClient_SignInWithProvider(t *testing.T) {
	t.Parallel()

	api := newFakeIdentityAPI(t)
	api.handlers[pathSignInIdp] = func(w http.ResponseWriter, _ map[string]any) {
		writeJSON(t, w, map[string]any{"localId": "uid-1", "email": "alice@example.com", "idToken": "id-token"})
	}
	api.lookupOK()
	c := newIdentityClient(t, api)

	got, err := c.SignInWithProvider(context.Background(), user.MethodGoogle, "google-token")
	if err != nil {
		t.Fatalf("SignInWithProvider() error = %v", err)
	}
	if got.ID != "uid-1" {
		t.Errorf("ID = %q, want uid-1", got.ID)
	}

	postBody, _ := api.body(pathSignInIdp)["postBody"].(string)
	if postBody != "id_token=google-token&providerId=google.com" {
		t.Errorf("postBody = %q", postBody)
	}
}

func TestIdentityClient_UnsupportedProvider(t *testing.T) {
	t.Parallel()

	api := newFakeIdentityAPI(t)
	c := newIdentityClient(t, api)

	_, err := c.SignInWithProvider(context.Background(), "myspace", "tok")
	if domain.KindOf(err) != domain.KindAuthUnknown {
		t.Errorf("kind = %q, want auth/unknown", domain.KindOf(err))
	}
	if len(api.called()) != 0 {
		t.Errorf("calls = %v, want none", api.called())
	}
}

func TestIdentityClient_LookupFailureFallsBack(t *testing.T) {
	t.Parallel()

	api := newFakeIdentityAPI(t)
	api.handlers[pathSignInPassword] = func(w http.ResponseWriter, _ map[string]any) {
		writeJSON(t, w, map[string]any{"localId": "uid-1", "email": "alice@example.com", "displayName": "A", "idToken": "t"})
	}
	c := newIdentityClient(t, api)

	got, err := c.SignIn(context.Background(), user.Credentials{Email: "alice@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if got.ID != "uid-1" || got.DisplayName != "A" {
		t.Errorf("SignIn() = %+v, want auth response fields", got)
	}
}

func TestIdentityClient_Unreachable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := NewIdentityClient(newTestClient(t, url), testAPIKey, nil)
	_, err := c.SignIn(context.Background(), user.Credentials{Email: "a@example.com", Password: "x"})
	if domain.KindOf(err) != domain.KindUnavailable {
		t.Errorf("kind = %q, want unavailable (err %v)", domain.KindOf(err), err)
	}
}

func TestIdentityClient_HealthCheck(t *testing.T) {
	t.Parallel()

	c := NewIdentityClient(newTestClient(t, "http://127.0.0.1:1"), testAPIKey, nil)
	if c.Name() != "identity-toolkit" {
		t.Errorf("Name() = %q, want identity-toolkit", c.Name())
	}
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil while breaker is closed", err)
	}
}
