package store

import (
	"context"
	"errors"
	"time"

	"github.com/sundialhq/sundial/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (mongo, sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable even while accounts is the only collection today.
type Store interface {
	Accounts() Accounts

	// Close releases any underlying resources.
	Close(ctx context.Context) error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Accounts interface {
	// GetByID returns an account by id.
	GetByID(ctx context.Context, id string) (domain.Account, error)

	// GetByEmail returns an account by email. Callers must pass the email
	// already normalized (lowercased, trimmed); drivers do exact matching.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// Insert stores a new account and returns the driver-assigned id.
	// A duplicate email yields ErrAlreadyExists.
	Insert(ctx context.Context, a domain.Account) (string, error)

	// SetLastLogin stamps the account's last successful authentication.
	SetLastLogin(ctx context.Context, id string, at time.Time) error

	// SetResetCode attaches a pending reset challenge to the account,
	// replacing any previous one.
	SetResetCode(ctx context.Context, id string, code string, expires time.Time) error

	// SetPassword replaces the password hash and clears any pending reset
	// challenge in the same write.
	SetPassword(ctx context.Context, id string, hash string) error
}
