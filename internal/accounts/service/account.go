package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sundialhq/sundial/internal/accounts/domain"
	"github.com/sundialhq/sundial/internal/accounts/mail"
	"github.com/sundialhq/sundial/internal/accounts/oauth"
	"github.com/sundialhq/sundial/internal/accounts/store"
	"github.com/sundialhq/sundial/pkg/cryptox"
	"github.com/sundialhq/sundial/pkg/slogx"
)

const (
	resetCodeLength = 6

	// DefaultResetTTL is how long a reset code stays valid.
	DefaultResetTTL = 15 * time.Minute
)

// AccountService implements registration, login and the password reset flow
// on top of the store. It owns email normalization: every email is lowercased
// and trimmed before it touches the store.
type AccountService struct {
	Store    store.Store
	Tokens   *TokenService
	Mailer   mail.Sender
	Welcome  *WelcomeService
	ResetTTL time.Duration
}

func NewAccountService(st store.Store, tokens *TokenService, mailer mail.Sender, welcome *WelcomeService) *AccountService {
	return &AccountService{
		Store:    st,
		Tokens:   tokens,
		Mailer:   mailer,
		Welcome:  welcome,
		ResetTTL: DefaultResetTTL,
	}
}

// NormalizeEmail canonicalizes an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterResult is what a successful registration hands back to the caller.
type RegisterResult struct {
	AccountID      string
	WelcomeMessage string
}

// Register creates a password account. The welcome message comes from the
// companion welcome service and falls back to a static greeting, a welcome
// outage never fails a registration.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (RegisterResult, error) {
	email = NormalizeEmail(email)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.Store.Accounts().Insert(ctx, domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Kind:         domain.KindPassword,
		Verified:     false,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return RegisterResult{}, ErrEmailTaken
		}
		return RegisterResult{}, err
	}

	slogx.FromContext(ctx).Info("account registered", "account_id", id)

	return RegisterResult{
		AccountID:      id,
		WelcomeMessage: s.Welcome.Message(ctx),
	}, nil
}

// LoginResult carries the bearer token and the account it belongs to.
type LoginResult struct {
	Token   string
	Account domain.Account
}

// Login authenticates a password account. Unknown emails and wrong passwords
// are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = NormalizeEmail(email)

	acc, err := s.Store.Accounts().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if !acc.HasPassword() {
		return LoginResult{}, ErrSocialLoginRequired
	}

	if err := cryptox.VerifyPassword(password, acc.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	now := time.Now().UTC()
	if err := s.Store.Accounts().SetLastLogin(ctx, acc.ID, now); err != nil {
		return LoginResult{}, err
	}
	acc.LastLogin = &now

	token, err := s.Tokens.Issue(acc.ID, acc.Email)
	if err != nil {
		return LoginResult{}, err
	}

	slogx.FromContext(ctx).Info("login succeeded", "account_id", acc.ID)

	return LoginResult{Token: token, Account: acc}, nil
}

// SocialAuthenticate logs a social identity in, creating the account on
// first sight. Identities are keyed by email, so a returning user keeps the
// same account even if the provider differs from last time.
func (s *AccountService) SocialAuthenticate(ctx context.Context, ident oauth.Identity) (LoginResult, error) {
	email := NormalizeEmail(ident.Email)
	now := time.Now().UTC()

	acc, err := s.Store.Accounts().GetByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.Store.Accounts().SetLastLogin(ctx, acc.ID, now); err != nil {
			return LoginResult{}, err
		}
		acc.LastLogin = &now

	case errors.Is(err, store.ErrNotFound):
		name := ident.Name
		if name == "" {
			name = strings.SplitN(email, "@", 2)[0]
		}

		// The provider has already verified the email for us.
		fresh := domain.Account{
			Name:       name,
			Email:      email,
			Kind:       domain.KindSocial,
			Provider:   ident.Provider,
			ProviderID: ident.ProviderID,
			Verified:   true,
			CreatedAt:  now,
			LastLogin:  &now,
		}

		id, insErr := s.Store.Accounts().Insert(ctx, fresh)
		if insErr != nil {
			if !errors.Is(insErr, store.ErrAlreadyExists) {
				return LoginResult{}, insErr
			}
			// Lost a race against a concurrent first login, treat as login.
			if acc, err = s.Store.Accounts().GetByEmail(ctx, email); err != nil {
				return LoginResult{}, err
			}
			if err := s.Store.Accounts().SetLastLogin(ctx, acc.ID, now); err != nil {
				return LoginResult{}, err
			}
			acc.LastLogin = &now
			break
		}

		fresh.ID = id
		acc = fresh
		slogx.FromContext(ctx).Info("social account created",
			"account_id", id, "provider", string(ident.Provider))

	default:
		return LoginResult{}, err
	}

	token, err := s.Tokens.Issue(acc.ID, acc.Email)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, Account: acc}, nil
}

// RequestPasswordReset issues a reset code and emails it. An unknown email
// succeeds silently so the endpoint cannot be used to enumerate accounts.
func (s *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	email = NormalizeEmail(email)

	acc, err := s.Store.Accounts().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	if acc.Kind == domain.KindSocial {
		return ErrSocialLoginRequired
	}

	code, err := cryptox.GenerateNumericCode(resetCodeLength)
	if err != nil {
		return err
	}

	ttl := s.ResetTTL
	if ttl <= 0 {
		ttl = DefaultResetTTL
	}

	// A new request replaces any previous code.
	expires := time.Now().UTC().Add(ttl)
	if err := s.Store.Accounts().SetResetCode(ctx, acc.ID, code, expires); err != nil {
		return err
	}

	if err := s.Mailer.SendResetCode(ctx, acc.Email, code); err != nil {
		slogx.FromContext(ctx).Error("reset code delivery failed", "err", err)
		return ErrNotificationFailed
	}

	return nil
}

// VerifyResetCode checks a code without consuming it, so clients can gate
// the new-password form before submitting.
func (s *AccountService) VerifyResetCode(ctx context.Context, email, code string) error {
	_, err := s.checkResetCode(ctx, email, code)
	return err
}

// CompletePasswordReset swaps the password after re-validating the code.
// The stored code is cleared in the same write as the hash, a code is
// single use.
func (s *AccountService) CompletePasswordReset(ctx context.Context, email, code, newPassword string) error {
	acc, err := s.checkResetCode(ctx, email, code)
	if err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.Store.Accounts().SetPassword(ctx, acc.ID, hash); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password reset completed", "account_id", acc.ID)
	return nil
}

// checkResetCode validates the challenge. The failure order is fixed:
// unknown account, then missing challenge, then wrong code, then expiry.
func (s *AccountService) checkResetCode(ctx context.Context, email, code string) (domain.Account, error) {
	email = NormalizeEmail(email)

	acc, err := s.Store.Accounts().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrUserNotFound
		}
		return domain.Account{}, err
	}

	if !acc.HasActiveReset() {
		return domain.Account{}, ErrNoActiveReset
	}

	if subtle.ConstantTimeCompare([]byte(*acc.ResetCode), []byte(code)) != 1 {
		return domain.Account{}, ErrInvalidCode
	}

	if time.Now().UTC().After(*acc.ResetCodeExpires) {
		return domain.Account{}, ErrCodeExpired
	}

	return acc, nil
}

// AccountByID fetches an account for the profile endpoint.
func (s *AccountService) AccountByID(ctx context.Context, id string) (domain.Account, error) {
	acc, err := s.Store.Accounts().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrUserNotFound
		}
		return domain.Account{}, err
	}
	return acc, nil
}
