package accounts_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/sundialhq/sundial/pkg/accountsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for accounts service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "sundial-accounts-test:latest"

	testJWTSecret = "e2e-test-secret-with-enough-entropy-0001"

	testUserName     = "Jane Smith"
	testUserEmail    = "jane@example.com"
	testUserPassword = "Abcd1234"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Accounts Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Accounts Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/accounts/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupAccountsContainer starts the accounts service in a container and
// returns the base URL. Rate limits are relaxed so test bursts do not trip
// the production defaults.
func setupAccountsContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"ACCOUNTS_JWT_SECRET":    testJWTSecret,
			"ACCOUNTS_ISSUER":        "sundial-accounts-e2e",
			"ACCOUNTS_STORE_DRIVER":  "sqlite",
			"ACCOUNTS_DATABASE_FILE": "/accounts.db",
			"ACCOUNTS_PEPPER_FILE":   "/pepper",
			"MAIL_BACKEND":           "console",
			"ENV":                    "test",
			"LOG_LEVEL":              "info",
			"LOG_FORMAT":             "json",
			// Increase rate limits for E2E tests to prevent test failures
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupAccountsContainerWithDefaultRateLimits starts the accounts service
// with the production rate limits. Only the rate limiting tests want this.
func setupAccountsContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"ACCOUNTS_JWT_SECRET":    testJWTSecret,
			"ACCOUNTS_ISSUER":        "sundial-accounts-e2e",
			"ACCOUNTS_STORE_DRIVER":  "sqlite",
			"ACCOUNTS_DATABASE_FILE": "/accounts.db",
			"ACCOUNTS_PEPPER_FILE":   "/pepper",
			"MAIL_BACKEND":           "console",
			"ENV":                    "test",
			"LOG_LEVEL":              "info",
			"LOG_FORMAT":             "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerTestUser creates the default test account.
func registerTestUser(t *testing.T, client *accountsdk.Client) {
	t.Helper()

	resp, err := client.Register(context.Background(), accountsdk.RegisterRequest{
		Name:     testUserName,
		Email:    testUserEmail,
		Password: testUserPassword,
	})
	require.NoError(t, err, "Registration should succeed")
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.WelcomeMessage, "Welcome message should fall back to the default")
}

// loginTestUser logs the default test account in and returns the bearer token.
func loginTestUser(t *testing.T, client *accountsdk.Client) string {
	t.Helper()

	resp, err := client.Login(context.Background(), accountsdk.LoginRequest{
		Email:    testUserEmail,
		Password: testUserPassword,
	})
	require.NoError(t, err, "Login should succeed")
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "bearer", resp.TokenType)

	return resp.AccessToken
}

// requireAPIError asserts that err is an *accountsdk.APIError carrying the
// given code.
func requireAPIError(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*accountsdk.APIError)
	require.True(t, ok, "error should be an APIError, got: %v", err)
	require.Equal(t, code, apiErr.Code)
}
