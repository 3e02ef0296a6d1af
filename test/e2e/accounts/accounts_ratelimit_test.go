package accounts_test

import (
	"context"
	"testing"

	"github.com/sundialhq/sundial/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

// TestLoginRateLimit verifies the strict limit on the login endpoint with the
// production defaults (5 requests per minute).
func TestLoginRateLimit(t *testing.T) {
	baseURL, cleanup := setupAccountsContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)
	ctx := context.Background()

	limited := false
	for i := 0; i < 10; i++ {
		_, err := client.Login(ctx, accountsdk.LoginRequest{
			Email:    "ghost@example.com",
			Password: "Wrong1234",
		})
		require.Error(t, err)

		if apiErr, ok := err.(*accountsdk.APIError); ok && apiErr.Code == "rate_limit_exceeded" {
			limited = true
			break
		}
	}

	require.True(t, limited, "Login should be rate limited within 10 attempts")
}
