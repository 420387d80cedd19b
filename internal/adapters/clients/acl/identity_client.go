package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jsamuelsen11/todotags/internal/adapters/clients/acl/identity"
	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
	"github.com/jsamuelsen11/todotags/internal/platform/httpclient"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.IdentityProvider = (*IdentityClient)(nil)
	_ ports.HealthChecker    = (*IdentityClient)(nil)
)

// Identity API endpoints, relative to the client's base URL.
const (
	pathSignUp         = "/v1/accounts:signUp"
	pathSignInPassword = "/v1/accounts:signInWithPassword"
	pathSignInIdp      = "/v1/accounts:signInWithIdp"
	pathUpdate         = "/v1/accounts:update"
	pathLookup         = "/v1/accounts:lookup"
)

// IdentityClient is the outbound adapter for the remote identity REST API.
// It implements [ports.IdentityProvider].
//
// Requests are authenticated with the project API key as the "key" query
// parameter. Every successful sign-in is followed by an accounts:lookup so
// the returned user carries its creation and last sign-in times. Error codes
// in the API's error envelope are mapped to auth kinds by
// [TranslateHTTPError].
type IdentityClient struct {
	req    *Requester
	apiKey string
	client *httpclient.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewIdentityClient creates an IdentityClient that sends requests through
// the given [httpclient.Client], whose base URL points at the identity API
// root (e.g. "https://identitytoolkit.googleapis.com").
func NewIdentityClient(client *httpclient.Client, apiKey string, logger *slog.Logger) *IdentityClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &IdentityClient{
		req:    NewRequester(client, logger),
		apiKey: apiKey,
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// SignUp creates an email/password account. A non-empty DisplayName is set
// with a follow-up accounts:update call.
func (c *IdentityClient) SignUp(ctx context.Context, creds user.Credentials) (*user.User, error) {
	var auth identity.AuthResponseDTO
	body := identity.PasswordRequestDTO{
		Email:             strings.TrimSpace(creds.Email),
		Password:          creds.Password,
		ReturnSecureToken: true,
	}
	if err := c.req.Do(ctx, http.MethodPost, c.path(pathSignUp), http.StatusOK, body, &auth); err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(creds.DisplayName); name != "" {
		update := identity.UpdateRequestDTO{IDToken: auth.IDToken, DisplayName: name}
		if err := c.req.Do(ctx, http.MethodPost, c.path(pathUpdate), http.StatusOK, update, nil); err != nil {
			return nil, err
		}
		auth.DisplayName = name
	}

	return c.lookup(ctx, &auth)
}

// SignIn verifies an email/password pair.
func (c *IdentityClient) SignIn(ctx context.Context, creds user.Credentials) (*user.User, error) {
	var auth identity.AuthResponseDTO
	body := identity.PasswordRequestDTO{
		Email:             strings.TrimSpace(creds.Email),
		Password:          creds.Password,
		ReturnSecureToken: true,
	}
	if err := c.req.Do(ctx, http.MethodPost, c.path(pathSignInPassword), http.StatusOK, body, &auth); err != nil {
		return nil, err
	}
	return c.lookup(ctx, &auth)
}

// SignInWithProvider exchanges a federated ID token through
// accounts:signInWithIdp, which creates the account on first use.
func (c *IdentityClient) SignInWithProvider(ctx context.Context, providerID, idToken string) (*user.User, error) {
	remoteID, ok := identity.ProviderID(providerID)
	if !ok {
		return nil, domain.NewError(domain.KindAuthUnknown, "unsupported identity provider "+providerID)
	}

	var auth identity.AuthResponseDTO
	body := identity.ToIdpRequest(remoteID, idToken)
	if err := c.req.Do(ctx, http.MethodPost, c.path(pathSignInIdp), http.StatusOK, body, &auth); err != nil {
		return nil, err
	}
	return c.lookup(ctx, &auth)
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name of the underlying
// [httpclient.Client].
func (c *IdentityClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the identity API's availability from the circuit
// breaker state; no network call is made.
func (c *IdentityClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}

// lookup fetches the account behind auth.IDToken. A failed lookup is logged
// and the user is built from the auth response alone.
func (c *IdentityClient) lookup(ctx context.Context, auth *identity.AuthResponseDTO) (*user.User, error) {
	var resp identity.LookupResponseDTO
	err := c.req.Do(ctx, http.MethodPost, c.path(pathLookup), http.StatusOK,
		identity.LookupRequestDTO{IDToken: auth.IDToken}, &resp)

	var account *identity.AccountDTO
	switch {
	case err != nil:
		c.logger.WarnContext(ctx, "account lookup failed",
			slog.String("operation", "IdentityClient.lookup"),
			slog.String("user_id", auth.LocalID),
			slog.Any("error", err),
		)
	case len(resp.Users) > 0:
		account = &resp.Users[0]
	}

	u := identity.ToDomainUser(auth, account, c.now().UTC())
	return &u, nil
}

func (c *IdentityClient) path(p string) string {
	return p + "?key=" + url.QueryEscape(c.apiKey)
}
