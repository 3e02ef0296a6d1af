package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/sundialhq/sundial/internal/accounts/domain"
	"github.com/sundialhq/sundial/internal/accounts/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	return s
}

func TestAccountsInsertAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Accounts().Insert(ctx, domain.Account{
		Name:         "Jane Smith",
		Email:        "jane@example.com",
		PasswordHash: "$argon2id$...",
		Kind:         domain.KindPassword,
		Verified:     false,
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	byID, err := s.Accounts().GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", byID.Email)
	require.Equal(t, domain.KindPassword, byID.Kind)
	require.True(t, byID.HasPassword())
	require.Nil(t, byID.LastLogin)
	require.Nil(t, byID.ResetCode)

	byEmail, err := s.Accounts().GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, id, byEmail.ID)
}

func TestAccountsDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	acc := domain.Account{
		Name:      "Jane Smith",
		Email:     "jane@example.com",
		Kind:      domain.KindPassword,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.Accounts().Insert(ctx, acc)
	require.NoError(t, err)

	_, err = s.Accounts().Insert(ctx, acc)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestAccountsNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Accounts().GetByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Accounts().GetByID(ctx, "does-not-exist")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.Accounts().SetLastLogin(ctx, "does-not-exist", time.Now())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAccountsSetLastLogin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Accounts().Insert(ctx, domain.Account{
		Name:      "Jane Smith",
		Email:     "jane@example.com",
		Kind:      domain.KindPassword,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	at := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, s.Accounts().SetLastLogin(ctx, id, at))

	got, err := s.Accounts().GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	require.True(t, got.LastLogin.Equal(at))
}

func TestAccountsResetCodeLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Accounts().Insert(ctx, domain.Account{
		Name:         "Jane Smith",
		Email:        "jane@example.com",
		PasswordHash: "old-hash",
		Kind:         domain.KindPassword,
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)

	expires := time.Now().UTC().Add(15 * time.Minute).Truncate(time.Millisecond)
	require.NoError(t, s.Accounts().SetResetCode(ctx, id, "123456", expires))

	got, err := s.Accounts().GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.ResetCode)
	require.Equal(t, "123456", *got.ResetCode)
	require.NotNil(t, got.ResetCodeExpires)
	require.True(t, got.ResetCodeExpires.Equal(expires))
	require.True(t, got.HasActiveReset())

	// Replacing the password clears the pending challenge in the same write.
	require.NoError(t, s.Accounts().SetPassword(ctx, id, "new-hash"))

	got, err = s.Accounts().GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)
	require.Nil(t, got.ResetCode)
	require.Nil(t, got.ResetCodeExpires)
}

func TestAccountsSocialInsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	id, err := s.Accounts().Insert(ctx, domain.Account{
		Name:       "Social User",
		Email:      "social@example.com",
		Kind:       domain.KindSocial,
		Provider:   domain.ProviderGoogle,
		ProviderID: "google-sub-123",
		Verified:   true,
		CreatedAt:  now,
		LastLogin:  &now,
	})
	require.NoError(t, err)

	got, err := s.Accounts().GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.KindSocial, got.Kind)
	require.Equal(t, domain.ProviderGoogle, got.Provider)
	require.Equal(t, "google-sub-123", got.ProviderID)
	require.True(t, got.Verified)
	require.False(t, got.HasPassword())
	require.NotNil(t, got.LastLogin)
}
