package http

import (
	"net/http"

	"github.com/sundialhq/sundial/internal/accounts/service"
	"github.com/sundialhq/sundial/pkg/accountsdk"
	"github.com/sundialhq/sundial/pkg/httpx"
)

type RegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP handles user registration.
//
//	@Summary		Register a new account
//	@Description	Creates a password account. The welcome message is fetched from the
//	@Description	companion welcome service and falls back to a default greeting.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	accountsdk.RegisterResponse
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Validation failure"
//	@Failure		409		{object}	accountsdk.ErrorResponse	"Email already registered"
//	@Failure		429		{object}	accountsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validateName(req.Name); err != nil {
		accountsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	if err := validateEmail(req.Email); err != nil {
		accountsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	if err := validatePassword(req.Password); err != nil {
		accountsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	res, err := h.AccountService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.RegisterResponse{
		Success:        true,
		Message:        "User registered successfully",
		WelcomeMessage: res.WelcomeMessage,
	})
}
