package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sundialhq/sundial/internal/accounts/domain"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const defaultGoogleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Google implements the Provider interface using Google's OAuth2 endpoints.
type Google struct {
	cfg         oauth2.Config
	userInfoURL string
}

// NewGoogle builds a Google provider. The redirect URL must match one of the
// authorized redirect URIs configured in the Google console.
func NewGoogle(clientID, clientSecret, redirectURL string) *Google {
	return &Google{
		cfg: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL: defaultGoogleUserInfoURL,
	}
}

func (g *Google) Name() domain.Provider { return domain.ProviderGoogle }

func (g *Google) AuthCodeURL(state string) string {
	return g.cfg.AuthCodeURL(state)
}

func (g *Google) Exchange(ctx context.Context, code string) (Identity, error) {
	token, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return Identity{}, fmt.Errorf("oauth: google code exchange: %w", err)
	}

	// cfg.Client attaches the bearer token and refreshes it if needed.
	resp, err := g.cfg.Client(ctx, token).Get(g.userInfoURL)
	if err != nil {
		return Identity{}, fmt.Errorf("oauth: google userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("oauth: google userinfo returned status %d", resp.StatusCode)
	}

	var profile struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Identity{}, fmt.Errorf("oauth: decode google profile: %w", err)
	}

	if profile.Email == "" {
		return Identity{}, ErrNoEmail
	}

	return Identity{
		Provider:   domain.ProviderGoogle,
		ProviderID: profile.ID,
		Email:      profile.Email,
		Name:       profile.Name,
	}, nil
}
