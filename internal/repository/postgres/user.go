package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/account-service/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// uniqueViolation is the postgres SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// publicColumns never include credential material.
const publicColumns = `id, email, name, is_admin, gender, birthday, country, city, address, phone, skills,
	two_factor_enabled, COALESCE(two_factor_method, ''), two_factor_last_used,
	notification_settings, created_at, updated_at`

const secretColumns = `password_hash, COALESCE(two_factor_secret, ''), two_factor_backup_codes`

func selectColumns(includeSecret bool) string {
	if includeSecret {
		return publicColumns + ", " + secretColumns
	}
	return publicColumns
}

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID, opts model.FindOptions) (model.Identity, error) {
	query := `SELECT ` + selectColumns(opts.IncludeSecret) + ` FROM users WHERE id = $1`

	user, err := scanIdentity(r.db.QueryRow(ctx, query, id), opts.IncludeSecret)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Identity{}, model.ErrNotFound
		}
		return model.Identity{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string, opts model.FindOptions) (model.Identity, error) {
	query := `SELECT ` + selectColumns(opts.IncludeSecret) + ` FROM users WHERE LOWER(email) = $1`

	user, err := scanIdentity(r.db.QueryRow(ctx, query, model.NormalizeEmail(email)), opts.IncludeSecret)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Identity{}, model.ErrNotFound
		}
		return model.Identity{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) List(ctx context.Context, opts model.ListOptions) ([]model.Identity, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := `SELECT ` + publicColumns + ` FROM users ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.Identity, 0, opts.Limit)
	for rows.Next() {
		user, err := scanIdentity(rows, false)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, total, nil
}

// Save inserts or updates the identity. Credential columns are written only
// when user.Secret is set; otherwise the row must already exist.
func (r *UserRepository) Save(ctx context.Context, user model.Identity) (model.Identity, error) {
	user.Email = model.NormalizeEmail(user.Email)

	var row pgx.Row
	if user.Secret != nil {
		row = r.db.QueryRow(ctx, upsertQuery, upsertArgs(user)...)
	} else {
		row = r.db.QueryRow(ctx, updateProfileQuery, append(profileArgs(user), user.UpdatedAt)...)
	}

	saved, err := scanIdentity(row, false)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return model.Identity{}, model.ErrNotFound
		case isUniqueViolation(err):
			return model.Identity{}, model.ErrDuplicateEmail
		}
		return model.Identity{}, fmt.Errorf("failed to save user: %w", err)
	}

	return saved, nil
}

// UpdatePassword writes the credential columns only, so concurrent profile
// edits are kept.
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx, updatePasswordQuery, id, hash, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

const updatePasswordQuery = `UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`

const upsertQuery = `
	INSERT INTO users (id, email, name, is_admin, gender, birthday, country, city, address, phone, skills,
		two_factor_enabled, two_factor_method, two_factor_last_used, notification_settings, created_at, updated_at,
		password_hash, two_factor_secret, two_factor_backup_codes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	ON CONFLICT (id) DO UPDATE SET
		email = EXCLUDED.email,
		name = EXCLUDED.name,
		is_admin = EXCLUDED.is_admin,
		gender = EXCLUDED.gender,
		birthday = EXCLUDED.birthday,
		country = EXCLUDED.country,
		city = EXCLUDED.city,
		address = EXCLUDED.address,
		phone = EXCLUDED.phone,
		skills = EXCLUDED.skills,
		two_factor_enabled = EXCLUDED.two_factor_enabled,
		two_factor_method = EXCLUDED.two_factor_method,
		two_factor_last_used = EXCLUDED.two_factor_last_used,
		notification_settings = EXCLUDED.notification_settings,
		updated_at = EXCLUDED.updated_at,
		password_hash = EXCLUDED.password_hash,
		two_factor_secret = EXCLUDED.two_factor_secret,
		two_factor_backup_codes = EXCLUDED.two_factor_backup_codes
	RETURNING ` + publicColumns

const updateProfileQuery = `
	UPDATE users SET
		email = $2, name = $3, is_admin = $4, gender = $5, birthday = $6, country = $7, city = $8,
		address = $9, phone = $10, skills = $11, two_factor_enabled = $12, two_factor_method = $13,
		two_factor_last_used = $14, notification_settings = $15, updated_at = $16
	WHERE id = $1
	RETURNING ` + publicColumns

func profileArgs(u model.Identity) []any {
	return []any{
		u.ID, u.Email, u.Name, u.IsAdmin, string(u.Gender), u.Birthday,
		u.Location.Country, u.Location.City, u.Location.Address, u.Phone, nonNil(u.Skills),
		u.TwoFactor.Enabled, nullString(string(u.TwoFactor.Method)), u.TwoFactor.LastUsed,
		u.Notifications,
	}
}

func upsertArgs(u model.Identity) []any {
	return append(profileArgs(u),
		u.CreatedAt, u.UpdatedAt,
		u.Secret.PasswordHash, nullString(u.Secret.TwoFactorSecret), nonNil(u.Secret.BackupCodes),
	)
}

func scanIdentity(row pgx.Row, includeSecret bool) (model.Identity, error) {
	var (
		u      model.Identity
		gender string
		method string
	)
	dest := []any{
		&u.ID, &u.Email, &u.Name, &u.IsAdmin, &gender, &u.Birthday,
		&u.Location.Country, &u.Location.City, &u.Location.Address, &u.Phone, &u.Skills,
		&u.TwoFactor.Enabled, &method, &u.TwoFactor.LastUsed,
		&u.Notifications, &u.CreatedAt, &u.UpdatedAt,
	}

	var secret model.Secret
	if includeSecret {
		dest = append(dest, &secret.PasswordHash, &secret.TwoFactorSecret, &secret.BackupCodes)
	}

	if err := row.Scan(dest...); err != nil {
		return model.Identity{}, err
	}

	u.Gender = model.Gender(gender)
	u.TwoFactor.Method = model.TwoFactorMethod(method)
	if includeSecret {
		u.Secret = &secret
	}

	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
