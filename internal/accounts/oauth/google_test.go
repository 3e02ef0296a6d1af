package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sundialhq/sundial/internal/accounts/domain"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newFakeGoogle(t *testing.T, userinfo string, status int) *Google {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "good-code", r.FormValue("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fake-access","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer fake-access", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(userinfo))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &Google{
		cfg: oauth2.Config{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURL:  "http://localhost/callback",
			Endpoint: oauth2.Endpoint{
				AuthURL:  srv.URL + "/auth",
				TokenURL: srv.URL + "/token",
			},
		},
		userInfoURL: srv.URL + "/userinfo",
	}
}

func TestGoogleExchange(t *testing.T) {
	g := newFakeGoogle(t,
		`{"id":"google-sub-1","email":"jane@example.com","name":"Jane Smith"}`,
		http.StatusOK)

	id, err := g.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	require.Equal(t, domain.ProviderGoogle, id.Provider)
	require.Equal(t, "google-sub-1", id.ProviderID)
	require.Equal(t, "jane@example.com", id.Email)
	require.Equal(t, "Jane Smith", id.Name)
}

func TestGoogleExchangeNoEmail(t *testing.T) {
	g := newFakeGoogle(t, `{"id":"google-sub-1","name":"Jane Smith"}`, http.StatusOK)

	_, err := g.Exchange(context.Background(), "good-code")
	require.ErrorIs(t, err, ErrNoEmail)
}

func TestGoogleExchangeProfileError(t *testing.T) {
	g := newFakeGoogle(t, `{"error":"nope"}`, http.StatusForbidden)

	_, err := g.Exchange(context.Background(), "good-code")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 403")
}

func TestGoogleAuthCodeURL(t *testing.T) {
	g := NewGoogle("client-id", "secret", "http://localhost/callback")
	u := g.AuthCodeURL("state-abc")
	require.True(t, strings.Contains(u, "state=state-abc"))
	require.True(t, strings.Contains(u, "client_id=client-id"))
}

func TestNewStateUnique(t *testing.T) {
	require.NotEqual(t, NewState(), NewState())
}
