// Package interfaces defines the contracts between the ZenMoney client layers
package interfaces

// CredentialProvider is the read-only capability handed to the transport
// client. The token is opaque: no parsing, no expiry validation.
type CredentialProvider interface {
	// Token returns the stored bearer token, or "" when logged out.
	Token() string
}

// CredentialStore persists the single bearer-token slot across runs.
// Written only by the login flow, cleared only by logout.
type CredentialStore interface {
	CredentialProvider

	// SetToken stores the bearer token.
	SetToken(token string) error

	// ClearToken removes the stored token.
	ClearToken() error
}
