package http

import (
	"net/http"

	"github.com/sundialhq/sundial/internal/accounts/service"
	"github.com/sundialhq/sundial/pkg/accountsdk"
	"github.com/sundialhq/sundial/pkg/httpx"
)

// ResetHandler serves the three-step password reset flow.
type ResetHandler struct {
	AccountService *service.AccountService
}

// HandleRequest starts the flow by emailing a reset code.
//
//	@Summary		Request a password reset code
//	@Description	Sends a 6-digit code to the account's email. Unknown emails succeed
//	@Description	silently so the endpoint cannot be used to probe for accounts.
//	@Tags			PasswordReset
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.PasswordResetRequest	true	"Account email"
//	@Success		200		{object}	accountsdk.PasswordResetResponse
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Social login account"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Email delivery failed"
//	@Router			/v1/password-reset/request [post].
func (h *ResetHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.PasswordResetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validateEmail(req.Email); err != nil {
		accountsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	if err := h.AccountService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.PasswordResetResponse{
		Success: true,
		Message: "If the email exists, a reset code has been sent",
	})
}

// HandleVerify checks a code without consuming it.
//
//	@Summary		Verify a reset code
//	@Description	Confirms the code is valid and unexpired so clients can gate the
//	@Description	new-password form. The code stays usable afterwards.
//	@Tags			PasswordReset
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.PasswordResetVerify	true	"Email and code"
//	@Success		200		{object}	accountsdk.PasswordResetResponse
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Missing, wrong or expired code"
//	@Failure		404		{object}	accountsdk.ErrorResponse	"User not found"
//	@Router			/v1/password-reset/verify [post].
func (h *ResetHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.PasswordResetVerify
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validateEmail(req.Email); err != nil {
		accountsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	if err := validateResetCode(req.Code); err != nil {
		accountsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	if err := h.AccountService.VerifyResetCode(r.Context(), req.Email, req.Code); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.PasswordResetResponse{
		Success: true,
		Message: "Reset code verified successfully",
	})
}

// HandleComplete sets the new password.
//
//	@Summary		Complete a password reset
//	@Description	Re-validates the code, replaces the password and consumes the code.
//	@Tags			PasswordReset
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.PasswordResetComplete	true	"Email, code and new password"
//	@Success		200		{object}	accountsdk.PasswordResetResponse
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Missing, wrong or expired code, or weak password"
//	@Failure		404		{object}	accountsdk.ErrorResponse	"User not found"
//	@Router			/v1/password-reset/complete [post].
func (h *ResetHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.PasswordResetComplete
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validateEmail(req.Email); err != nil {
		accountsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	if err := validateResetCode(req.Code); err != nil {
		accountsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	if err := validatePassword(req.NewPassword); err != nil {
		accountsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	if err := h.AccountService.CompletePasswordReset(r.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.PasswordResetResponse{
		Success: true,
		Message: "Password reset successfully",
	})
}
