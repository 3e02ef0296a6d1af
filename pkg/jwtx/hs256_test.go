package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *HS256 {
	t.Helper()
	codec, err := NewHS256([]byte("test-secret-at-least-32-bytes-long"), "accounts-test")
	require.NoError(t, err)
	return codec
}

func TestHS256RoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	claims := NewClaims("acc_123", "user@example.com", time.Hour, "accounts-test", time.Now())
	token, err := codec.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(token, ".")), "compact JWT has three segments")

	got, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "acc_123", got.Subject)
	require.Equal(t, "user@example.com", got.Email)
	require.Equal(t, "accounts-test", got.Issuer)
	require.NotEmpty(t, got.ID, "jti should be populated")
}

func TestHS256EmptySecret(t *testing.T) {
	_, err := NewHS256(nil, "accounts-test")
	require.Error(t, err)
}

func TestHS256Expired(t *testing.T) {
	codec := newTestCodec(t)

	// Issued two hours ago with a one hour TTL, so already expired.
	claims := NewClaims("acc_123", "user@example.com", time.Hour, "accounts-test", time.Now().Add(-2*time.Hour))
	token, err := codec.Sign(claims)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256TamperedSignature(t *testing.T) {
	codec := newTestCodec(t)

	claims := NewClaims("acc_123", "user@example.com", time.Hour, "accounts-test", time.Now())
	token, err := codec.Sign(claims)
	require.NoError(t, err)

	// Flip the last character of the signature segment.
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	_, err = codec.Verify(tampered)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256WrongSecret(t *testing.T) {
	codec := newTestCodec(t)
	other, err := NewHS256([]byte("a-completely-different-shared-key"), "accounts-test")
	require.NoError(t, err)

	token, err := other.Sign(NewClaims("acc_123", "user@example.com", time.Hour, "accounts-test", time.Now()))
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256Malformed(t *testing.T) {
	codec := newTestCodec(t)

	for _, token := range []string{
		"",
		"not-a-jwt",
		"only.two",
		"a.b.c.d",
		"!!!.???.###",
	} {
		_, err := codec.Verify(token)
		require.ErrorIs(t, err, ErrMalformed, "token %q", token)
	}
}

func TestHS256IssuerMismatch(t *testing.T) {
	codec := newTestCodec(t)

	claims := NewClaims("acc_123", "user@example.com", time.Hour, "someone-else", time.Now())
	token, err := codec.Sign(claims)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}
