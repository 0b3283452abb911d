// Package repository persists admin accounts and password reset tokens.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"booking_admin_backend/platform/apperr"
)

const adminColumns = "id, email, name, role, password_hash, created_at"

// Repo implements Repository with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new auth repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

// GetByEmail looks an admin up by email, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (Admin, error) {
	query := fmt.Sprintf("SELECT %s FROM admins WHERE LOWER(email) = LOWER($1)", adminColumns)

	var a Admin
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&a.ID, &a.Email, &a.Name, &a.Role, &a.PasswordHash, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Admin{}, apperr.NotFound("admin not found")
	}
	if err != nil {
		return Admin{}, fmt.Errorf("get admin by email: %w", err)
	}
	return a, nil
}

// GetByID looks an admin up by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Admin, error) {
	query := fmt.Sprintf("SELECT %s FROM admins WHERE id = $1", adminColumns)

	var a Admin
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Email, &a.Name, &a.Role, &a.PasswordHash, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Admin{}, apperr.NotFound("admin not found")
	}
	if err != nil {
		return Admin{}, fmt.Errorf("get admin by id: %w", err)
	}
	return a, nil
}

// UpdatePassword replaces the stored bcrypt hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE admins SET password_hash = $1, updated_at = NOW() WHERE id = $2",
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("admin not found")
	}
	return nil
}

// CreateResetToken stores a hashed reset token with its expiry.
func (r *Repo) CreateResetToken(ctx context.Context, adminID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	_, err := r.pool.Exec(ctx,
		"INSERT INTO password_reset_tokens (admin_id, token_hash, expires_at) VALUES ($1, $2, $3)",
		adminID, tokenHash, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("create reset token: %w", err)
	}
	return nil
}

// GetResetToken loads an unused reset token by hash.
func (r *Repo) GetResetToken(ctx context.Context, tokenHash string) (ResetToken, error) {
	var t ResetToken
	err := r.pool.QueryRow(ctx,
		"SELECT admin_id, token_hash, expires_at FROM password_reset_tokens WHERE token_hash = $1 AND used_at IS NULL",
		tokenHash,
	).Scan(&t.AdminID, &t.TokenHash, &t.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ResetToken{}, apperr.NotFound("reset token not found")
	}
	if err != nil {
		return ResetToken{}, fmt.Errorf("get reset token: %w", err)
	}
	return t, nil
}

// ConsumeResetToken marks a reset token as used so it cannot be
// replayed.
func (r *Repo) ConsumeResetToken(ctx context.Context, tokenHash string) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE password_reset_tokens SET used_at = NOW() WHERE token_hash = $1",
		tokenHash,
	)
	if err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}
	return nil
}
