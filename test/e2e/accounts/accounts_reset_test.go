package accounts_test

import (
	"context"
	"testing"

	"github.com/sundialhq/sundial/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

// The console mail backend keeps the real codes out of reach, so these tests
// cover the request step and the error mapping of the verify step.

func TestPasswordResetRequest(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)
	ctx := context.Background()

	registerTestUser(t, client)

	resp, err := client.RequestPasswordReset(ctx, accountsdk.PasswordResetRequest{
		Email: testUserEmail,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
}

func TestPasswordResetUnknownEmailSilent(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)

	// Unknown emails succeed so the endpoint cannot enumerate accounts.
	resp, err := client.RequestPasswordReset(context.Background(), accountsdk.PasswordResetRequest{
		Email: "ghost@example.com",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
}

func TestPasswordResetVerifyErrors(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)
	ctx := context.Background()

	registerTestUser(t, client)

	// Verify is explicit about unknown accounts, unlike the request step.
	_, err := client.VerifyResetCode(ctx, accountsdk.PasswordResetVerify{
		Email: "ghost@example.com",
		Code:  "123456",
	})
	requireAPIError(t, err, "user_not_found")

	// No code has been requested yet.
	_, err = client.VerifyResetCode(ctx, accountsdk.PasswordResetVerify{
		Email: testUserEmail,
		Code:  "123456",
	})
	requireAPIError(t, err, "no_active_reset")

	_, err = client.RequestPasswordReset(ctx, accountsdk.PasswordResetRequest{
		Email: testUserEmail,
	})
	require.NoError(t, err)

	// A code exists now, but a guessed one will not match. A collision with
	// the real code is a one in a million flake.
	_, err = client.VerifyResetCode(ctx, accountsdk.PasswordResetVerify{
		Email: testUserEmail,
		Code:  "000000",
	})
	requireAPIError(t, err, "invalid_code")

	// Malformed codes never reach the store.
	_, err = client.VerifyResetCode(ctx, accountsdk.PasswordResetVerify{
		Email: testUserEmail,
		Code:  "12345",
	})
	requireAPIError(t, err, "invalid_request")
}
