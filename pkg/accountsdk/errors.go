package accountsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sundialhq/sundial/pkg/httpx"
)

// Machine-readable error codes shared by the server and this SDK.
const (
	ErrorCodeInvalidRequest      = "invalid_request"
	ErrorCodeEmailTaken          = "email_taken"
	ErrorCodeInvalidCredentials  = "invalid_credentials"
	ErrorCodeSocialLoginRequired = "social_login_required"
	ErrorCodeUserNotFound        = "user_not_found"
	ErrorCodeNoActiveReset       = "no_active_reset"
	ErrorCodeInvalidCode         = "invalid_code"
	ErrorCodeCodeExpired         = "code_expired"
	ErrorCodeNotificationFailed  = "notification_failed"
	ErrorCodeInvalidToken        = "invalid_token"
	ErrorCodeStoreUnavailable    = "store_unavailable"
	ErrorCodeRateLimitExceeded   = "rate_limit_exceeded"
	ErrorCodeServerError         = "server_error"
)

// APIError is the error envelope every non-2xx response carries. It is used
// by the server to write responses and by the SDK to surface them, so both
// sides agree on the wire shape by construction.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "email_taken")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// WithDescription returns a copy carrying a more specific description.
func (e *APIError) WithDescription(desc string) *APIError {
	return &APIError{StatusCode: e.StatusCode, Code: e.Code, Description: desc}
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrEmailTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeEmailTaken,
		Description: "email already registered",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid email or password",
	}

	ErrSocialLoginRequired = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeSocialLoginRequired,
		Description: "this account uses social login, sign in with your provider",
	}

	ErrUserNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeUserNotFound,
		Description: "user not found",
	}

	ErrNoActiveReset = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeNoActiveReset,
		Description: "no reset code found, request a new one",
	}

	ErrInvalidCode = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidCode,
		Description: "invalid reset code",
	}

	ErrCodeExpired = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeCodeExpired,
		Description: "reset code has expired, request a new one",
	}

	ErrNotificationFailed = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeNotificationFailed,
		Description: "failed to send reset code",
	}

	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the bearer token is missing, expired or invalid",
	}

	ErrStoreUnavailable = &APIError{
		StatusCode:  http.StatusServiceUnavailable,
		Code:        ErrorCodeStoreUnavailable,
		Description: "the account store is unavailable",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("unexpected status %d", resp.StatusCode),
	}
}
