package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sundialhq/sundial/internal/accounts/domain"
	httpapi "github.com/sundialhq/sundial/internal/accounts/http"
	"github.com/sundialhq/sundial/internal/accounts/mail"
	"github.com/sundialhq/sundial/internal/accounts/oauth"
	"github.com/sundialhq/sundial/internal/accounts/service"
	"github.com/sundialhq/sundial/internal/accounts/store"
	"github.com/sundialhq/sundial/internal/accounts/store/drivers/mongo"
	"github.com/sundialhq/sundial/internal/accounts/store/drivers/sqlite"
	"github.com/sundialhq/sundial/pkg/cryptox"
	"github.com/sundialhq/sundial/pkg/jwtx"
	"github.com/sundialhq/sundial/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the accounts service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	codec  *jwtx.HS256
	mailer mail.Sender

	// Services
	tokenService   *service.TokenService
	accountService *service.AccountService
	welcomeService *service.WelcomeService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "accounts-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("ACCOUNTS_JWT_SECRET is required")
	}

	codec, err := jwtx.NewHS256([]byte(cfg.JWTSecret), cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}
	app.codec = codec

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initStore(); err != nil {
		return nil, err
	}

	if err := app.initMailer(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("accounts service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"store", app.cfg.StoreDriver,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down accounts service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close the account store
	if err := app.db.Close(ctx); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("accounts service stopped")
	return nil
}

// initStore opens the account store named by the configured driver and, for
// SQLite, applies migrations.
func (app *Application) initStore() error {
	switch app.cfg.StoreDriver {
	case "sqlite":
		host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(host)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close(context.Background())
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}
		app.db = db
		app.logger.Info("database migrations applied successfully")

	case "mongo":
		if app.cfg.MongoURI == "" {
			return fmt.Errorf("ACCOUNTS_MONGO_URI is required for the mongo driver")
		}
		db, err := mongo.NewStore(context.Background(), app.cfg.MongoURI, app.cfg.MongoDatabase)
		if err != nil {
			return fmt.Errorf("failed to connect to mongodb: %w", err)
		}
		app.db = db

	default:
		return fmt.Errorf("unknown store driver %q", app.cfg.StoreDriver)
	}

	return nil
}

// initMailer selects the reset email backend.
func (app *Application) initMailer() error {
	switch app.cfg.MailBackend {
	case "console":
		app.mailer = &mail.Console{}

	case "sendgrid":
		if app.cfg.SendGridAPIKey == "" {
			return fmt.Errorf("SENDGRID_API_KEY is required for the sendgrid backend")
		}
		app.mailer = &mail.SendGrid{
			APIKey: app.cfg.SendGridAPIKey,
			From:   app.cfg.FromEmail,
		}

	default:
		return fmt.Errorf("unknown mail backend %q", app.cfg.MailBackend)
	}

	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.tokenService = service.NewTokenService(app.codec, app.cfg.TokenTTL, app.cfg.Issuer)

	app.welcomeService = &service.WelcomeService{
		URL:    app.cfg.WelcomeServiceURL,
		Client: &http.Client{Timeout: app.cfg.WelcomeServiceTimeout},
	}

	app.accountService = service.NewAccountService(
		app.db,
		app.tokenService,
		app.mailer,
		app.welcomeService,
	)
	app.accountService.ResetTTL = app.cfg.ResetCodeTTL
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.codec,
		BuildVersion,
		app.db,
		app.cfg.CORSAllowOrigins,
		app.logger,
	)

	// Wire services to router
	router.AccountService = app.accountService
	router.Providers = app.socialProviders()
	router.FrontendURL = app.cfg.FrontendURL
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// socialProviders builds the provider map from whatever credentials are
// present. A provider with missing credentials simply stays unregistered and
// its routes answer 503.
func (app *Application) socialProviders() map[domain.Provider]oauth.Provider {
	providers := make(map[domain.Provider]oauth.Provider)

	if app.cfg.GoogleClientID != "" && app.cfg.GoogleClientSecret != "" {
		providers[domain.ProviderGoogle] = oauth.NewGoogle(
			app.cfg.GoogleClientID,
			app.cfg.GoogleClientSecret,
			app.cfg.GoogleRedirectURI,
		)
		app.logger.Info("google login enabled")
	}

	if app.cfg.FacebookAppID != "" && app.cfg.FacebookAppSecret != "" {
		providers[domain.ProviderFacebook] = oauth.NewFacebook(
			app.cfg.FacebookAppID,
			app.cfg.FacebookAppSecret,
			app.cfg.FacebookRedirectURI,
		)
		app.logger.Info("facebook login enabled")
	}

	return providers
}
