package mail

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendGridSendResetCode(t *testing.T) {
	var (
		gotAuth string
		gotBody sgMessage
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := &SendGrid{
		APIKey:  "sg-test-key",
		From:    "noreply@example.com",
		BaseURL: srv.URL,
		Client:  srv.Client(),
	}

	err := s.SendResetCode(context.Background(), "jane@example.com", "123456")
	require.NoError(t, err)

	require.Equal(t, "Bearer sg-test-key", gotAuth)
	require.Equal(t, "noreply@example.com", gotBody.From.Email)
	require.Len(t, gotBody.Personalizations, 1)
	require.Equal(t, "jane@example.com", gotBody.Personalizations[0].To[0].Email)
	require.Contains(t, gotBody.Content[0].Value, "123456")
}

func TestSendGridSendResetCodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := &SendGrid{
		APIKey:  "bad-key",
		From:    "noreply@example.com",
		BaseURL: srv.URL,
		Client:  srv.Client(),
	}

	err := s.SendResetCode(context.Background(), "jane@example.com", "123456")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 401")
}

func TestConsoleSendResetCode(t *testing.T) {
	require.NoError(t, Console{}.SendResetCode(context.Background(), "jane@example.com", "123456"))
}
