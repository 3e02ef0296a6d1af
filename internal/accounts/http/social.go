package http

import (
	"net/http"
	"net/url"

	"github.com/sundialhq/sundial/internal/accounts/domain"
	"github.com/sundialhq/sundial/internal/accounts/oauth"
	"github.com/sundialhq/sundial/internal/accounts/service"
	"github.com/sundialhq/sundial/pkg/accountsdk"
	"github.com/sundialhq/sundial/pkg/slogx"
)

const stateCookieName = "oauthstate"

// SocialHandler runs the browser-redirect social login flow for every
// configured provider.
type SocialHandler struct {
	AccountService *service.AccountService

	// Providers maps the path segment to its implementation. A provider
	// missing here is simply not configured.
	Providers map[domain.Provider]oauth.Provider

	// FrontendURL is where the callback sends the user, with either
	// ?token=… or ?error=oauth_failed appended.
	FrontendURL string
}

func (h *SocialHandler) provider(w http.ResponseWriter, r *http.Request) (oauth.Provider, bool) {
	name := domain.Provider(r.PathValue("provider"))
	p, ok := h.Providers[name]
	if !ok {
		(&accountsdk.APIError{
			StatusCode:  http.StatusServiceUnavailable,
			Code:        "provider_not_configured",
			Description: string(name) + " login is not configured",
		}).WriteError(w)
		return nil, false
	}
	return p, true
}

// HandleBegin starts the consent flow.
//
//	@Summary		Begin social login
//	@Description	Sets a state cookie and redirects the browser to the provider's
//	@Description	consent page.
//	@Tags			SocialLogin
//	@Param			provider	path	string	true	"Identity provider"	Enums(google, facebook)
//	@Success		302			"Redirect to the provider"
//	@Failure		503			{object}	accountsdk.ErrorResponse	"Provider not configured"
//	@Router			/v1/auth/{provider}/login [get].
func (h *SocialHandler) HandleBegin(w http.ResponseWriter, r *http.Request) {
	p, ok := h.provider(w, r)
	if !ok {
		return
	}

	state := oauth.NewState()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, p.AuthCodeURL(state), http.StatusFound)
}

// HandleCallback finishes the flow. Every failure past the state check lands
// the user back on the frontend with error=oauth_failed, never on a bare
// JSON error page.
//
//	@Summary		Social login callback
//	@Description	Exchanges the authorization code, signs the user in (creating the
//	@Description	account on first login) and redirects to the frontend with the token.
//	@Tags			SocialLogin
//	@Param			provider	path	string	true	"Identity provider"	Enums(google, facebook)
//	@Param			code		query	string	true	"Authorization code"
//	@Param			state		query	string	true	"State from the login redirect"
//	@Success		302			"Redirect to the frontend"
//	@Failure		503			{object}	accountsdk.ErrorResponse	"Provider not configured"
//	@Router			/v1/auth/{provider}/callback [get].
func (h *SocialHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := h.provider(w, r)
	if !ok {
		return
	}

	// Clear the state cookie regardless of outcome.
	http.SetCookie(w, &http.Cookie{Name: stateCookieName, Path: "/", MaxAge: -1})

	cookie, err := r.Cookie(stateCookieName)
	if err != nil || cookie.Value == "" || r.URL.Query().Get("state") != cookie.Value {
		log.Warn("oauth state mismatch", "provider", string(p.Name()))
		h.redirectError(w, r)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		h.redirectError(w, r)
		return
	}

	ident, err := p.Exchange(ctx, code)
	if err != nil {
		log.Warn("oauth exchange failed", "provider", string(p.Name()), "err", err)
		h.redirectError(w, r)
		return
	}

	res, err := h.AccountService.SocialAuthenticate(ctx, ident)
	if err != nil {
		log.Error("social authentication failed", "provider", string(p.Name()), "err", err)
		h.redirectError(w, r)
		return
	}

	http.Redirect(w, r,
		h.FrontendURL+"/auth/callback?token="+url.QueryEscape(res.Token),
		http.StatusFound)
}

func (h *SocialHandler) redirectError(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.FrontendURL+"/auth/callback?error=oauth_failed", http.StatusFound)
}
