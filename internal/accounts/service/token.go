package service

import (
	"time"

	"github.com/sundialhq/sundial/pkg/jwtx"
)

// Subject is the authenticated identity extracted from a bearer token.
type Subject struct {
	AccountID string
	Email     string
}

// TokenService issues and validates the service's bearer tokens.
type TokenService struct {
	Codec *jwtx.HS256
	TTL   time.Duration

	// Issuer is stamped into and required of every token.
	Issuer string
}

func NewTokenService(codec *jwtx.HS256, ttl time.Duration, issuer string) *TokenService {
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}
	return &TokenService{Codec: codec, TTL: ttl, Issuer: issuer}
}

// Issue mints a signed bearer token for the account.
func (s *TokenService) Issue(accountID, email string) (string, error) {
	claims := jwtx.NewClaims(accountID, email, s.TTL, s.Issuer, time.Now().UTC())
	return s.Codec.Sign(claims)
}

// Validate checks the token signature and claims. All failure modes collapse
// into ErrInvalidToken, callers have no business distinguishing them.
func (s *TokenService) Validate(token string) (Subject, error) {
	claims, err := s.Codec.Verify(token)
	if err != nil {
		return Subject{}, ErrInvalidToken
	}
	return Subject{AccountID: claims.Subject, Email: claims.Email}, nil
}
