package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sundialhq/sundial/internal/accounts/domain"
	"github.com/sundialhq/sundial/internal/accounts/service"
	"github.com/sundialhq/sundial/pkg/accountsdk"
	"github.com/sundialhq/sundial/pkg/slogx"
)

// decodeBody parses the JSON request body. On failure it writes the error
// response itself and reports false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		accountsdk.ErrInvalidRequest.WithDescription("request body must be valid JSON").WriteError(w)
		return false
	}
	return true
}

// writeServiceError maps service sentinels onto API errors. Anything
// unrecognized is a store or transport failure and comes back as 503.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		accountsdk.ErrEmailTaken.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		accountsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrSocialLoginRequired):
		accountsdk.ErrSocialLoginRequired.WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		accountsdk.ErrUserNotFound.WriteError(w)
	case errors.Is(err, service.ErrNoActiveReset):
		accountsdk.ErrNoActiveReset.WriteError(w)
	case errors.Is(err, service.ErrInvalidCode):
		accountsdk.ErrInvalidCode.WriteError(w)
	case errors.Is(err, service.ErrCodeExpired):
		accountsdk.ErrCodeExpired.WriteError(w)
	case errors.Is(err, service.ErrNotificationFailed):
		accountsdk.ErrNotificationFailed.WriteError(w)
	case errors.Is(err, service.ErrInvalidToken):
		accountsdk.ErrInvalidToken.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		accountsdk.ErrStoreUnavailable.WriteError(w)
	}
}

// publicAccount strips internal fields from an account for API responses.
func publicAccount(a domain.Account) accountsdk.Account {
	return accountsdk.Account{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		SocialProvider: string(a.Provider),
		IsVerified:     a.Verified,
		CreatedAt:      a.CreatedAt,
		LastLogin:      a.LastLogin,
	}
}
