package accounts_test

import (
	"context"
	"testing"

	"github.com/sundialhq/sundial/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)
	ctx := context.Background()

	livez, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", livez.Status)
	require.NotEmpty(t, livez.Version)
	require.Nil(t, livez.Checks, "Liveness does not inspect dependencies")

	readyz, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", readyz.Status)
	require.NotNil(t, readyz.Checks)
	require.Equal(t, "ok", readyz.Checks.Database)
}
