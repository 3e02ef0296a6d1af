// Package mail delivers reset codes to account holders. The console sender
// keeps local development free of external services.
package mail

import (
	"context"
	"log/slog"

	"github.com/sundialhq/sundial/pkg/slogx"
)

// Sender delivers a password reset code to a recipient.
type Sender interface {
	SendResetCode(ctx context.Context, to, code string) error
}

// Console logs the code instead of sending anything. Development only.
type Console struct{}

func (Console) SendResetCode(ctx context.Context, to, code string) error {
	slogx.FromContext(ctx).Info("password reset code issued",
		slog.String("to", to),
		slog.String("code", code),
	)
	return nil
}
