// Package identity implements the Anti-Corruption Layer translators for the
// remote identity API's account resources.
package identity

// PasswordRequestDTO is the body of accounts:signUp and
// accounts:signInWithPassword.
type PasswordRequestDTO struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// IdpRequestDTO is the body of accounts:signInWithIdp. PostBody carries the
// federated credential form-encoded (id_token and providerId).
type IdpRequestDTO struct {
	PostBody            string `json:"postBody"`
	RequestURI          string `json:"requestUri"`
	ReturnSecureToken   bool   `json:"returnSecureToken"`
	ReturnIdpCredential bool   `json:"returnIdpCredential"`
}

// UpdateRequestDTO is the body of accounts:update.
type UpdateRequestDTO struct {
	IDToken           string `json:"idToken"`
	DisplayName       string `json:"displayName,omitempty"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// LookupRequestDTO is the body of accounts:lookup.
type LookupRequestDTO struct {
	IDToken string `json:"idToken"`
}

// AuthResponseDTO is the common part of the sign-up and sign-in responses.
type AuthResponseDTO struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
	IDToken     string `json:"idToken"`
}

// AccountDTO is one entry of the accounts:lookup response. Timestamps are
// epoch milliseconds encoded as strings.
type AccountDTO struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
	CreatedAt   string `json:"createdAt"`
	LastLoginAt string `json:"lastLoginAt"`
}

// LookupResponseDTO is the accounts:lookup response.
type LookupResponseDTO struct {
	Users []AccountDTO `json:"users"`
}
