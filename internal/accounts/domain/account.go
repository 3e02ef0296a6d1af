package domain

import "time"

// Kind distinguishes how an account authenticates.
type Kind string

const (
	// KindPassword accounts registered with an email and password.
	KindPassword Kind = "password"
	// KindSocial accounts created through an identity provider.
	KindSocial Kind = "social"
)

// Provider identifies the social identity provider an account came from.
type Provider string

const (
	ProviderNone     Provider = ""
	ProviderGoogle   Provider = "google"
	ProviderFacebook Provider = "facebook"
)

// Account is a registered user identity. Exactly one of PasswordHash or
// Provider is meaningful: password accounts carry a hash and no provider,
// social accounts carry a provider and an empty hash.
type Account struct {
	ID           string
	Name         string
	Email        string // stored lowercased and trimmed
	PasswordHash string
	Kind         Kind
	Provider     Provider
	ProviderID   string
	Verified     bool
	CreatedAt    time.Time
	LastLogin    *time.Time

	// Pending password reset challenge, nil when no reset is in flight.
	ResetCode        *string
	ResetCodeExpires *time.Time
}

// HasPassword reports whether the account can be authenticated with a
// password. Social accounts never can, regardless of stored fields.
func (a *Account) HasPassword() bool {
	return a.Kind == KindPassword && a.PasswordHash != ""
}

// HasActiveReset reports whether a reset challenge has been issued and not
// yet consumed. Expiry is checked separately by the caller.
func (a *Account) HasActiveReset() bool {
	return a.ResetCode != nil && a.ResetCodeExpires != nil
}
