package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sundialhq/sundial/internal/accounts/domain"
	"github.com/sundialhq/sundial/internal/accounts/store"
	"github.com/sundialhq/sundial/pkg/idx"
)

type accountsRepo struct {
	db *sql.DB
}

const accountColumns = `id, name, email, password_hash, kind, social_provider,
	social_provider_id, is_verified, created_at, last_login, reset_code,
	reset_code_expires`

func (r *accountsRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return scanAccount(row)
}

func (r *accountsRepo) Insert(ctx context.Context, a domain.Account) (string, error) {
	id := idx.New().String()

	var lastLogin sql.NullString
	if a.LastLogin != nil {
		lastLogin = sql.NullString{String: formatTime(*a.LastLogin), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (
			id, name, email, password_hash, kind, social_provider,
			social_provider_id, is_verified, created_at, last_login
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, a.Name, a.Email, a.PasswordHash, string(a.Kind), string(a.Provider),
		a.ProviderID, a.Verified, formatTime(a.CreatedAt), lastLogin,
	)
	if err != nil {
		return "", mapConstraint(err)
	}
	return id, nil
}

func (r *accountsRepo) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.exec(ctx,
		`UPDATE accounts SET last_login = ? WHERE id = ?`,
		formatTime(at), id)
}

func (r *accountsRepo) SetResetCode(ctx context.Context, id string, code string, expires time.Time) error {
	return r.exec(ctx,
		`UPDATE accounts SET reset_code = ?, reset_code_expires = ? WHERE id = ?`,
		code, formatTime(expires), id)
}

func (r *accountsRepo) SetPassword(ctx context.Context, id string, hash string) error {
	return r.exec(ctx, `
		UPDATE accounts
		SET password_hash = ?, reset_code = NULL, reset_code_expires = NULL
		WHERE id = ?`,
		hash, id)
}

// exec runs an UPDATE and maps "no rows touched" onto ErrNotFound so the
// service layer never has to care which driver is underneath.
func (r *accountsRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var (
		a          domain.Account
		kind       string
		provider   string
		createdAt  string
		lastLogin  sql.NullString
		resetCode  sql.NullString
		resetUntil sql.NullString
	)

	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &kind, &provider,
		&a.ProviderID, &a.Verified, &createdAt, &lastLogin, &resetCode,
		&resetUntil,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}

	a.Kind = domain.Kind(kind)
	a.Provider = domain.Provider(provider)

	if a.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return domain.Account{}, err
	}
	if a.LastLogin, err = mapNullTimePtr(lastLogin); err != nil {
		return domain.Account{}, err
	}
	a.ResetCode = mapNullStringPtr(resetCode)
	if a.ResetCodeExpires, err = mapNullTimePtr(resetUntil); err != nil {
		return domain.Account{}, err
	}

	return a, nil
}
