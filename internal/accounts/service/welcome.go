package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sundialhq/sundial/pkg/slogx"
)

// DefaultWelcomeMessage is returned when the welcome service is absent or
// unreachable. Registration never fails because of it.
const DefaultWelcomeMessage = "Welcome to our platform!"

// WelcomeService fetches the greeting shown after registration from a
// companion service. A failed lookup falls back to the default greeting.
type WelcomeService struct {
	// URL of the welcome endpoint. Empty disables the lookup entirely.
	URL string

	// Client defaults to a 5 second timeout client when nil.
	Client *http.Client
}

func (s *WelcomeService) Message(ctx context.Context) string {
	if s == nil || s.URL == "" {
		return DefaultWelcomeMessage
	}

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return DefaultWelcomeMessage
	}

	resp, err := client.Do(req)
	if err != nil {
		slogx.FromContext(ctx).Warn("welcome service unreachable", "err", err)
		return DefaultWelcomeMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return DefaultWelcomeMessage
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return DefaultWelcomeMessage
	}
	return body.Message
}
