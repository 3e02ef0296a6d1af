package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	JWTSecret string        // Required: HS256 signing secret for access tokens
	Issuer    string        // Optional: issuer claim for tokens (default: sundial-accounts)
	TokenTTL  time.Duration // Optional: access token lifetime (default: 24h)

	StoreDriver   string // Optional: account store driver (sqlite, mongo) (default: sqlite)
	DatabaseFile  string // Optional: path to SQLite database file (default: ./accounts.db)
	MongoURI      string // Required for mongo driver: connection string
	MongoDatabase string // Optional: mongo database name (default: accounts)

	PepperFile   string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	ResetCodeTTL time.Duration // Optional: password reset code lifetime (default: 15m)

	MailBackend    string // Optional: reset email backend (console, sendgrid) (default: console)
	SendGridAPIKey string // Required for sendgrid backend
	FromEmail      string // Optional: sender address for reset emails (default: noreply@example.com)

	WelcomeServiceURL     string        // Optional: companion welcome-message service, blank disables it
	WelcomeServiceTimeout time.Duration // Optional: welcome service request timeout (default: 5s)

	GoogleClientID      string // Optional: Google OAuth credentials, blank disables Google login
	GoogleClientSecret  string
	GoogleRedirectURI   string
	FacebookAppID       string // Optional: Facebook OAuth credentials, blank disables Facebook login
	FacebookAppSecret   string
	FacebookRedirectURI string

	FrontendURL      string   // Optional: where social callbacks redirect (default: http://localhost:3000)
	CORSAllowOrigins []string // Optional: allowed CORS origins (default: *)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		JWTSecret: os.Getenv("ACCOUNTS_JWT_SECRET"),
		Issuer:    getEnvOrDefault("ACCOUNTS_ISSUER", "sundial-accounts"),
		TokenTTL:  getEnvDurationOrDefault("ACCOUNTS_TOKEN_TTL", 24*time.Hour),

		StoreDriver:   getEnvOrDefault("ACCOUNTS_STORE_DRIVER", "sqlite"),
		DatabaseFile:  getEnvOrDefault("ACCOUNTS_DATABASE_FILE", "accounts.db"),
		MongoURI:      os.Getenv("ACCOUNTS_MONGO_URI"),
		MongoDatabase: getEnvOrDefault("ACCOUNTS_MONGO_DATABASE", "accounts"),

		PepperFile:   getEnvOrDefault("ACCOUNTS_PEPPER_FILE", "pepper"),
		ResetCodeTTL: getEnvDurationOrDefault("ACCOUNTS_RESET_CODE_TTL", 15*time.Minute),

		MailBackend:    getEnvOrDefault("MAIL_BACKEND", "console"),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		FromEmail:      getEnvOrDefault("FROM_EMAIL", "noreply@example.com"),

		WelcomeServiceURL:     os.Getenv("WELCOME_SERVICE_URL"),
		WelcomeServiceTimeout: getEnvDurationOrDefault("WELCOME_SERVICE_TIMEOUT", 5*time.Second),

		GoogleClientID:      os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:  os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:   os.Getenv("GOOGLE_REDIRECT_URI"),
		FacebookAppID:       os.Getenv("FACEBOOK_APP_ID"),
		FacebookAppSecret:   os.Getenv("FACEBOOK_APP_SECRET"),
		FacebookRedirectURI: os.Getenv("FACEBOOK_REDIRECT_URI"),

		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	cfg.CORSAllowOrigins = splitOrigins(getEnvOrDefault("CORS_ALLOW_ORIGINS", "*"))

	return cfg
}

func splitOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Duration strings first (e.g. "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
