package http

import (
	"net/http"

	"github.com/sundialhq/sundial/internal/accounts/service"
	"github.com/sundialhq/sundial/pkg/accountsdk"
	"github.com/sundialhq/sundial/pkg/httpx"
	"github.com/sundialhq/sundial/pkg/slogx"
)

type ProfileHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP returns the authenticated account's profile.
//
//	@Summary		Get current account
//	@Description	Returns the profile of the account the bearer token belongs to.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.Account
//	@Failure		401	{object}	accountsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	accountsdk.ErrorResponse	"Account no longer exists"
//	@Router			/v1/me [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := httpx.AccountIDFromContext(ctx)
	if !ok {
		accountsdk.ErrInvalidToken.WriteError(w)
		return
	}

	acc, err := h.AccountService.AccountByID(ctx, accountID)
	if err != nil {
		slogx.FromContext(ctx).Warn("failed to load account", "account_id", accountID, "err", err)
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, publicAccount(acc))
}
