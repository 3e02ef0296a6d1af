package slogx

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, parseLevel(tc.in), "level %q", tc.in)
	}
}

func TestFromContextFallback(t *testing.T) {
	// A bare context yields the process default, never nil.
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithContext(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))
}

func TestHTTPMiddlewarePropagatesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("X-Request-ID", "req-abc-123")
	rec := httptest.NewRecorder()

	HTTPMiddleware(logger)(inner).ServeHTTP(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)

	out := buf.String()
	// Both the handler's line and the access log carry the request ID.
	require.Contains(t, out, "inside handler")
	require.Contains(t, out, "http_request")
	require.Contains(t, out, `"req_id":"req-abc-123"`)
	require.Contains(t, out, `"status":418`)
}
