package identity

import (
	"net/url"
	"testing"
	"time"
)

func TestProviderID(t *testing.T) {
	t.Parallel()

	if got, ok := ProviderID("google"); !ok || got != "google.com" {
		t.Errorf("ProviderID(google) = %q, %v, want google.com, true", got, ok)
	}
	if _, ok := ProviderID("myspace"); ok {
		t.Error("ProviderID(myspace) ok = true, want false")
	}
}

func TestToIdpRequest(t *testing.T) {
	t.Parallel()

	got := ToIdpRequest("google.com", "tok&en")

	form, err := url.ParseQuery(got.PostBody)
	if err != nil {
		t.Fatalf("ParseQuery(PostBody) error = %v", err)
	}
	if form.Get("id_token") != "tok&en" || form.Get("providerId") != "google.com" {
		t.Errorf("PostBody = %q, want id_token and providerId", got.PostBody)
	}
	if !got.ReturnSecureToken || !got.ReturnIdpCredential {
		t.Errorf("flags = %+v, want both true", got)
	}
}

func TestToDomainUser(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	auth := &AuthResponseDTO{LocalID: "uid", Email: "a@example.com", DisplayName: "A"}

	tests := []struct {
		name        string
		account     *AccountDTO
		wantName    string
		wantCreated time.Time
		wantUpdated time.Time
	}{
		{
			name:        "auth response only",
			wantName:    "A",
			wantUpdated: now,
		},
		{
			name: "account overrides profile and timestamps",
			account: &AccountDTO{
				DisplayName: "Alice",
				CreatedAt:   "1700000000000",
				LastLoginAt: "1700000100000",
			},
			wantName:    "Alice",
			wantCreated: time.UnixMilli(1700000000000).UTC(),
			wantUpdated: time.UnixMilli(1700000100000).UTC(),
		},
		{
			name:        "malformed timestamps are ignored",
			account:     &AccountDTO{CreatedAt: "yesterday"},
			wantName:    "A",
			wantUpdated: now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ToDomainUser(auth, tt.account, now)
			if got.ID != "uid" || got.Email != "a@example.com" {
				t.Errorf("identity = %q/%q, want uid/a@example.com", got.ID, got.Email)
			}
			if got.DisplayName != tt.wantName {
				t.Errorf("DisplayName = %q, want %q", got.DisplayName, tt.wantName)
			}
			if !got.CreatedAt.Equal(tt.wantCreated) {
				t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, tt.wantCreated)
			}
			if !got.UpdatedAt.Equal(tt.wantUpdated) {
				t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, tt.wantUpdated)
			}
		})
	}
}
