// Package oauth exchanges authorization codes with social identity
// providers and normalizes the profiles they return.
package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"

	"github.com/sundialhq/sundial/internal/accounts/domain"
)

var ErrNoEmail = errors.New("oauth: provider returned no email")

// Identity is a normalized social profile. Email is always present, the
// exchange fails with ErrNoEmail otherwise.
type Identity struct {
	Provider   domain.Provider
	ProviderID string
	Email      string
	Name       string
}

// Provider drives one social login flow end to end.
type Provider interface {
	// Name is the path segment the provider is mounted under.
	Name() domain.Provider

	// AuthCodeURL builds the provider consent URL carrying the state value.
	AuthCodeURL(state string) string

	// Exchange swaps the authorization code for the user's identity.
	Exchange(ctx context.Context, code string) (Identity, error)
}

// NewState returns a random value binding the consent redirect to the
// callback, stored client-side in a cookie.
func NewState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
