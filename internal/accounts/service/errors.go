package service

import "errors"

// Sentinel errors returned by the services. The HTTP layer maps each one to
// a status code and machine-readable error string, so adding a new failure
// mode means adding a sentinel here and one case in the handler.
var (
	ErrEmailTaken          = errors.New("service: email already registered")
	ErrInvalidCredentials  = errors.New("service: invalid email or password")
	ErrSocialLoginRequired = errors.New("service: account uses social login")
	ErrUserNotFound        = errors.New("service: user not found")
	ErrNoActiveReset       = errors.New("service: no reset code issued")
	ErrInvalidCode         = errors.New("service: invalid reset code")
	ErrCodeExpired         = errors.New("service: reset code expired")
	ErrNotificationFailed  = errors.New("service: failed to send reset code")
	ErrInvalidToken        = errors.New("service: invalid token")
)
