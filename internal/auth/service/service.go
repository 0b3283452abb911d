// Package service implements admin authentication: bcrypt credential
// checks, JWT access token issuance and the password reset flow.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"booking_admin_backend/internal/auth/repository"
	"booking_admin_backend/internal/auth/token"
	"booking_admin_backend/platform/apperr"
	"booking_admin_backend/platform/config"
	"booking_admin_backend/platform/events"
	"booking_admin_backend/platform/logger"
)

const (
	accessTokenType = "access"
	resetTokenBytes = 32
)

// Service provides authentication operations for admin accounts.
type Service struct {
	repo repository.Repository
	cfg  config.AuthServiceConfig
	bus  events.Bus
	log  *logger.Logger
}

// New creates a new auth service.
func New(repo repository.Repository, cfg config.AuthServiceConfig, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, bus: bus, log: log}
}

// LoginResult carries the issued token and the authenticated admin.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Admin       repository.Admin
}

// Login checks credentials and issues a signed access token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		s.log.AuthEvent("login", email, false, "unknown email")
		return LoginResult{}, apperr.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.log.AuthEvent("login", email, false, "wrong password")
		return LoginResult{}, apperr.Unauthorized("invalid credentials")
	}

	expiresAt := time.Now().Add(s.cfg.GetAccessTokenTTL())
	signed, err := s.signAccessToken(admin, expiresAt)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign access token: %w", err)
	}

	s.log.AuthEvent("login", email, true, "")
	return LoginResult{AccessToken: signed, ExpiresAt: expiresAt, Admin: admin}, nil
}

// Profile returns the admin behind an authenticated request.
func (s *Service) Profile(ctx context.Context, id uuid.UUID) (repository.Admin, error) {
	return s.repo.GetByID(ctx, id)
}

// ForgotPassword starts the reset flow. It always succeeds from the
// caller's perspective so the endpoint does not leak which emails have
// accounts.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) && appErr.Kind == apperr.KindNotFound {
			s.log.AuthEvent("forgot_password", email, false, "unknown email")
			return nil
		}
		return err
	}

	rawToken, err := token.GenerateRandomToken(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	expiresAt := time.Now().Add(s.cfg.GetResetTokenTTL())
	if err := s.repo.CreateResetToken(ctx, admin.ID, token.HashSHA256(rawToken), expiresAt); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.PasswordResetRequested{
		Email:    admin.Email,
		Token:    rawToken,
		ResetURL: fmt.Sprintf("%s/reset-password?token=%s", s.cfg.GetAppBaseURL(), rawToken),
	})
	s.log.AuthEvent("forgot_password", email, true, "")
	return nil
}

// ResetPassword exchanges a valid reset token for a new password and
// burns the token.
func (s *Service) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	hash := token.HashSHA256(rawToken)

	stored, err := s.repo.GetResetToken(ctx, hash)
	if err != nil {
		return apperr.Unauthorized("invalid or expired reset token")
	}
	if time.Now().After(stored.ExpiresAt) {
		return apperr.Unauthorized("invalid or expired reset token")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, stored.AdminID, string(passwordHash)); err != nil {
		return err
	}
	if err := s.repo.ConsumeResetToken(ctx, hash); err != nil {
		s.log.Error("failed to consume reset token", "error", err)
	}

	s.log.AuthEvent("reset_password", "", true, "")
	return nil
}

// ChangePassword rotates the password of a logged-in admin after
// re-checking the current one.
func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)); err != nil {
		s.log.AuthEvent("change_password", admin.Email, false, "wrong current password")
		return apperr.Unauthorized("current password is incorrect")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, id, string(passwordHash)); err != nil {
		return err
	}

	s.log.AuthEvent("change_password", admin.Email, true, "")
	return nil
}

func (s *Service) signAccessToken(admin repository.Admin, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   admin.ID.String(),
		"email": admin.Email,
		"role":  admin.Role,
		"type":  accessTokenType,
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
