package http

import (
	"net/http"

	"github.com/sundialhq/sundial/internal/accounts/service"
	"github.com/sundialhq/sundial/pkg/accountsdk"
	"github.com/sundialhq/sundial/pkg/httpx"
)

type LoginHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP handles password login.
//
//	@Summary		Login with email and password
//	@Description	Returns a bearer token on success and stamps the account's last login.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	accountsdk.LoginResponse
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Social login account"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"Invalid credentials"
//	@Failure		429		{object}	accountsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validateEmail(req.Email); err != nil {
		accountsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	if req.Password == "" {
		accountsdk.ErrInvalidRequest.WithDescription("password is required").WriteError(w)
		return
	}

	res, err := h.AccountService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.LoginResponse{
		Success:     true,
		Message:     "Login successful",
		AccessToken: res.Token,
		TokenType:   "bearer",
		User:        publicAccount(res.Account),
	})
}
