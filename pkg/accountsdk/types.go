package accountsdk

import "time"

// Account is the public view of an account returned by the API.
type Account struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	SocialProvider string     `json:"social_provider,omitempty"`
	IsVerified     bool       `json:"is_verified"`
	CreatedAt      time.Time  `json:"created_at"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
}

// RegisterRequest creates a password account.
type RegisterRequest struct {
	Name     string `json:"name" example:"Jane Smith"`
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"Abcd1234"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	WelcomeMessage string `json:"welcome_message"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"Abcd1234"`
}

// LoginResponse carries the bearer token on success.
type LoginResponse struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        Account `json:"user"`
}

// PasswordResetRequest starts the reset flow.
type PasswordResetRequest struct {
	Email string `json:"email" example:"jane@example.com"`
}

// PasswordResetVerify checks a reset code without consuming it.
type PasswordResetVerify struct {
	Email string `json:"email" example:"jane@example.com"`
	Code  string `json:"code" example:"123456"`
}

// PasswordResetComplete sets the new password.
type PasswordResetComplete struct {
	Email       string `json:"email" example:"jane@example.com"`
	Code        string `json:"code" example:"123456"`
	NewPassword string `json:"new_password" example:"Wxyz9876"`
}

// PasswordResetResponse is returned by all three reset steps.
type PasswordResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ErrorResponse documents the error envelope for swagger. At runtime errors
// are written through APIError.
type ErrorResponse struct {
	Error            string `json:"error" example:"invalid_credentials"`
	ErrorDescription string `json:"error_description" example:"invalid email or password"`
}
