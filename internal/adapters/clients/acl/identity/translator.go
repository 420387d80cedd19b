package identity

import (
	"net/url"
	"strconv"
	"time"

	"github.com/jsamuelsen11/todotags/internal/domain/user"
)

// providerHosts maps our provider IDs to the identity API's provider IDs.
var providerHosts = map[string]string{
	user.MethodGoogle: "google.com",
}

// ProviderID returns the identity API provider ID for ours, and whether the
// provider is supported.
func ProviderID(provider string) (string, bool) {
	id, ok := providerHosts[provider]
	return id, ok
}

// ToIdpRequest builds the accounts:signInWithIdp body for a federated ID
// token.
func ToIdpRequest(providerID, idToken string) IdpRequestDTO {
	form := url.Values{}
	form.Set("id_token", idToken)
	form.Set("providerId", providerID)
	return IdpRequestDTO{
		PostBody:            form.Encode(),
		RequestURI:          "http://localhost",
		ReturnSecureToken:   true,
		ReturnIdpCredential: true,
	}
}

// ToDomainUser merges the auth response with the looked-up account. The
// account, when present, wins for profile fields. CreatedAt and UpdatedAt
// come from the account's createdAt and lastLoginAt; a missing lastLoginAt
// falls back to now.
func ToDomainUser(auth *AuthResponseDTO, account *AccountDTO, now time.Time) user.User {
	u := user.User{
		ID:          auth.LocalID,
		Email:       auth.Email,
		DisplayName: auth.DisplayName,
		PhotoURL:    auth.PhotoURL,
		UpdatedAt:   now,
	}
	if account == nil {
		return u
	}

	if account.LocalID != "" {
		u.ID = account.LocalID
	}
	if account.Email != "" {
		u.Email = account.Email
	}
	if account.DisplayName != "" {
		u.DisplayName = account.DisplayName
	}
	if account.PhotoURL != "" {
		u.PhotoURL = account.PhotoURL
	}
	if t, ok := parseMillis(account.CreatedAt); ok {
		u.CreatedAt = t
	}
	if t, ok := parseMillis(account.LastLoginAt); ok {
		u.UpdatedAt = t
	}
	return u
}

func parseMillis(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}
