package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sundialhq/sundial/internal/accounts/domain"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

const defaultFacebookProfileURL = "https://graph.facebook.com/me?fields=id,name,email"

// Facebook implements the Provider interface using the Facebook Graph API.
type Facebook struct {
	cfg        oauth2.Config
	profileURL string
}

func NewFacebook(appID, appSecret, redirectURL string) *Facebook {
	return &Facebook{
		cfg: oauth2.Config{
			ClientID:     appID,
			ClientSecret: appSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     facebook.Endpoint,
		},
		profileURL: defaultFacebookProfileURL,
	}
}

func (f *Facebook) Name() domain.Provider { return domain.ProviderFacebook }

func (f *Facebook) AuthCodeURL(state string) string {
	return f.cfg.AuthCodeURL(state)
}

func (f *Facebook) Exchange(ctx context.Context, code string) (Identity, error) {
	token, err := f.cfg.Exchange(ctx, code)
	if err != nil {
		return Identity{}, fmt.Errorf("oauth: facebook code exchange: %w", err)
	}

	resp, err := f.cfg.Client(ctx, token).Get(f.profileURL)
	if err != nil {
		return Identity{}, fmt.Errorf("oauth: facebook profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("oauth: facebook profile returned status %d", resp.StatusCode)
	}

	var profile struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Identity{}, fmt.Errorf("oauth: decode facebook profile: %w", err)
	}

	// Facebook omits the email for accounts registered with a phone number.
	if profile.Email == "" {
		return Identity{}, ErrNoEmail
	}

	return Identity{
		Provider:   domain.ProviderFacebook,
		ProviderID: profile.ID,
		Email:      profile.Email,
		Name:       profile.Name,
	}, nil
}
