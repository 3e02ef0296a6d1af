package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultSendGridURL = "https://api.sendgrid.com/v3/mail/send"

// SendGrid sends reset codes through the SendGrid v3 mail API.
type SendGrid struct {
	APIKey string
	From   string

	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string

	// Client defaults to a 10 second timeout client when nil.
	Client *http.Client
}

type sgAddress struct {
	Email string `json:"email"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgMessage struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

func (s *SendGrid) SendResetCode(ctx context.Context, to, code string) error {
	msg := sgMessage{
		Personalizations: []sgPersonalization{{To: []sgAddress{{Email: to}}}},
		From:             sgAddress{Email: s.From},
		Subject:          "Password Reset Code",
		Content: []sgContent{{
			Type:  "text/html",
			Value: resetBody(code),
		}},
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("mail: marshal message: %w", err)
	}

	url := s.BaseURL
	if url == "" {
		url = defaultSendGridURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("mail: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("mail: send: %w", err)
	}
	defer resp.Body.Close()

	// SendGrid returns 202 on acceptance.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mail: sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

func resetBody(code string) string {
	return fmt.Sprintf(`<html><body>
<h2>Password Reset Request</h2>
<p>Your password reset code is:</p>
<h1 style="color: #3B4CB8; letter-spacing: 5px;">%s</h1>
<p>This code will expire in 15 minutes.</p>
<p>If you didn't request this, please ignore this email.</p>
</body></html>`, code)
}
