package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Admin is a row in the admins table.
type Admin struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}

// ResetToken is a stored password reset token. Only the SHA-256 hash
// of the token ever reaches the database.
type ResetToken struct {
	AdminID   uuid.UUID
	TokenHash string
	ExpiresAt time.Time
}

// AdminReader provides admin lookups.
type AdminReader interface {
	GetByEmail(ctx context.Context, email string) (Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (Admin, error)
}

// AdminWriter mutates admin credentials and reset tokens.
type AdminWriter interface {
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	CreateResetToken(ctx context.Context, adminID uuid.UUID, tokenHash string, expiresAt time.Time) error
	GetResetToken(ctx context.Context, tokenHash string) (ResetToken, error)
	ConsumeResetToken(ctx context.Context, tokenHash string) error
}

// Repository is the full auth persistence contract.
type Repository interface {
	AdminReader
	AdminWriter
}
