package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"booking_admin_backend/internal/auth/repository"
	"booking_admin_backend/internal/auth/token"
	"booking_admin_backend/platform/apperr"
	"booking_admin_backend/platform/events"
	"booking_admin_backend/platform/logger"
)

const testSecret = "test-secret"

type fakeRepo struct {
	admins map[string]repository.Admin
	tokens map[string]repository.ResetToken

	updatedPasswords map[uuid.UUID]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		admins:           map[string]repository.Admin{},
		tokens:           map[string]repository.ResetToken{},
		updatedPasswords: map[uuid.UUID]string{},
	}
}

func (f *fakeRepo) addAdmin(email, password string) repository.Admin {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	admin := repository.Admin{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Test Admin",
		Role:         "admin",
		PasswordHash: string(hash),
	}
	f.admins[email] = admin
	return admin
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (repository.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return repository.Admin{}, apperr.NotFound("admin not found")
	}
	return admin, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Admin, error) {
	for _, admin := range f.admins {
		if admin.ID == id {
			if hash, ok := f.updatedPasswords[id]; ok {
				admin.PasswordHash = hash
			}
			return admin, nil
		}
	}
	return repository.Admin{}, apperr.NotFound("admin not found")
}

func (f *fakeRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	f.updatedPasswords[id] = passwordHash
	return nil
}

func (f *fakeRepo) CreateResetToken(_ context.Context, adminID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	f.tokens[tokenHash] = repository.ResetToken{AdminID: adminID, TokenHash: tokenHash, ExpiresAt: expiresAt}
	return nil
}

func (f *fakeRepo) GetResetToken(_ context.Context, tokenHash string) (repository.ResetToken, error) {
	t, ok := f.tokens[tokenHash]
	if !ok {
		return repository.ResetToken{}, apperr.NotFound("reset token not found")
	}
	return t, nil
}

func (f *fakeRepo) ConsumeResetToken(_ context.Context, tokenHash string) error {
	delete(f.tokens, tokenHash)
	return nil
}

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

type testConfig struct{}

func (testConfig) GetJWTAccessSecret() string       { return testSecret }
func (testConfig) GetAccessTokenTTL() time.Duration { return time.Hour }
func (testConfig) GetResetTokenTTL() time.Duration  { return 30 * time.Minute }
func (testConfig) GetAppBaseURL() string            { return "https://admin.example.com" }

func newTestService() (*Service, *fakeRepo, *recordingBus) {
	repo := newFakeRepo()
	bus := &recordingBus{}
	return New(repo, testConfig{}, bus, logger.New("test")), repo, bus
}

func TestLoginIssuesAccessTokenWithExpectedClaims(t *testing.T) {
	svc, repo, _ := newTestService()
	admin := repo.addAdmin("admin@example.com", "correct horse battery")

	result, err := svc.Login(context.Background(), "admin@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := jwt.Parse(result.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not validate: %v", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != admin.ID.String() {
		t.Fatalf("expected sub %q, got %v", admin.ID, claims["sub"])
	}
	if claims["email"] != "admin@example.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
	if claims["type"] != "access" {
		t.Fatalf("expected access token type, got %v", claims["type"])
	}
	if claims["role"] != "admin" {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.addAdmin("admin@example.com", "correct horse battery")

	_, err := svc.Login(context.Background(), "admin@example.com", "wrong password")
	if apperr.GetKind(err) != apperr.KindUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginRejectsUnknownEmailWithSameError(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever password")
	if apperr.GetKind(err) != apperr.KindUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if err.Error() != "invalid credentials" {
		t.Fatalf("error must not reveal whether the account exists, got %q", err.Error())
	}
}

func TestForgotPasswordStoresHashAndPublishesEvent(t *testing.T) {
	svc, repo, bus := newTestService()
	admin := repo.addAdmin("admin@example.com", "correct horse battery")

	if err := svc.ForgotPassword(context.Background(), "admin@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected one published event, got %d", len(bus.published))
	}
	evt, ok := bus.published[0].(events.PasswordResetRequested)
	if !ok {
		t.Fatalf("unexpected event type %T", bus.published[0])
	}
	if evt.Email != "admin@example.com" {
		t.Fatalf("unexpected event email %q", evt.Email)
	}

	// Only the hash is stored; the raw token travels in the event.
	if _, ok := repo.tokens[evt.Token]; ok {
		t.Fatal("raw token must not be stored")
	}
	stored, ok := repo.tokens[token.HashSHA256(evt.Token)]
	if !ok {
		t.Fatal("expected hashed token in the store")
	}
	if stored.AdminID != admin.ID {
		t.Fatalf("token bound to wrong admin: %v", stored.AdminID)
	}
}

func TestForgotPasswordHidesUnknownEmails(t *testing.T) {
	svc, repo, bus := newTestService()

	if err := svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
	if len(bus.published) != 0 {
		t.Fatalf("expected no events, got %d", len(bus.published))
	}
	if len(repo.tokens) != 0 {
		t.Fatalf("expected no stored tokens, got %d", len(repo.tokens))
	}
}

func TestResetPasswordUpdatesHashAndBurnsToken(t *testing.T) {
	svc, repo, bus := newTestService()
	admin := repo.addAdmin("admin@example.com", "old password here")

	if err := svc.ForgotPassword(context.Background(), "admin@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rawToken := bus.published[0].(events.PasswordResetRequested).Token

	if err := svc.ResetPassword(context.Background(), rawToken, "brand new password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newHash := repo.updatedPasswords[admin.ID]
	if err := bcrypt.CompareHashAndPassword([]byte(newHash), []byte("brand new password")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}

	err := svc.ResetPassword(context.Background(), rawToken, "yet another password")
	if apperr.GetKind(err) != apperr.KindUnauthorized {
		t.Fatalf("expected replay to be rejected, got %v", err)
	}
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	svc, repo, _ := newTestService()
	admin := repo.addAdmin("admin@example.com", "old password here")

	raw := "expired-token"
	repo.tokens[token.HashSHA256(raw)] = repository.ResetToken{
		AdminID:   admin.ID,
		TokenHash: token.HashSHA256(raw),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	err := svc.ResetPassword(context.Background(), raw, "brand new password")
	if apperr.GetKind(err) != apperr.KindUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if len(repo.updatedPasswords) != 0 {
		t.Fatal("password must not change on an expired token")
	}
}

func TestChangePasswordRequiresCurrentPassword(t *testing.T) {
	svc, repo, _ := newTestService()
	admin := repo.addAdmin("admin@example.com", "current password")

	err := svc.ChangePassword(context.Background(), admin.ID, "not the password", "brand new password")
	if apperr.GetKind(err) != apperr.KindUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), admin.ID, "current password", "brand new password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	newHash := repo.updatedPasswords[admin.ID]
	if err := bcrypt.CompareHashAndPassword([]byte(newHash), []byte("brand new password")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}
