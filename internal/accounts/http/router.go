package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sundialhq/sundial/internal/accounts/domain"
	"github.com/sundialhq/sundial/internal/accounts/oauth"
	"github.com/sundialhq/sundial/internal/accounts/service"
	"github.com/sundialhq/sundial/internal/accounts/store"
	"github.com/sundialhq/sundial/pkg/httpx"
	"github.com/sundialhq/sundial/pkg/jwtx"
	"github.com/sundialhq/sundial/pkg/slogx"

	_ "github.com/sundialhq/sundial/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AccountService *service.AccountService
	Providers      map[domain.Provider]oauth.Provider
	FrontendURL    string
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	corsOrigins []string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(corsOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerSocial()
	r.registerPasswordReset()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Sundial Accounts Service API
//	@version		0.1.0
//	@description	User account service providing registration, email/password and
//	@description	social login, bearer-token sessions and an email-code password
//	@description	reset flow. Tokens are signed with HS256.
//
//	@contact.name				Sundial Team
//	@contact.url				https://github.com/sundialhq/sundial
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	// POST /register - moderate rate limit (account creation)
	registerHandler := &RegisterHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /login - strict rate limit (brute force prevention)
	loginHandler := &LoginHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /me - authenticated read, lenient limit keyed by account
	profileHandler := &ProfileHandler{AccountService: r.AccountService}
	r.Mux.Handle("GET /v1/me",
		httpx.Chain(profileHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSocial() {
	socialHandler := &SocialHandler{
		AccountService: r.AccountService,
		Providers:      r.Providers,
		FrontendURL:    r.FrontendURL,
	}

	r.Mux.Handle("GET /v1/auth/{provider}/login",
		httpx.Chain(http.HandlerFunc(socialHandler.HandleBegin),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/auth/{provider}/callback",
		httpx.Chain(http.HandlerFunc(socialHandler.HandleCallback),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPasswordReset() {
	resetHandler := &ResetHandler{AccountService: r.AccountService}

	// All three steps take credentials-adjacent input, all strict.
	r.Mux.Handle("POST /v1/password-reset/request",
		httpx.Chain(http.HandlerFunc(resetHandler.HandleRequest),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/password-reset/verify",
		httpx.Chain(http.HandlerFunc(resetHandler.HandleVerify),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/password-reset/complete",
		httpx.Chain(http.HandlerFunc(resetHandler.HandleComplete),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
