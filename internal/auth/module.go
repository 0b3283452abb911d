// Package auth provides the auth bounded context module: admin login,
// token verification and the password reset flow.
package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"booking_admin_backend/internal/auth/handler"
	"booking_admin_backend/internal/auth/repository"
	"booking_admin_backend/internal/auth/service"
	apphttp "booking_admin_backend/internal/http"
	"booking_admin_backend/platform/config"
	"booking_admin_backend/platform/events"
	"booking_admin_backend/platform/logger"
)

// Module is the auth bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and wires the auth module.
func NewModule(pool *pgxpool.Pool, cfg config.AuthServiceConfig, bus events.Bus, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, bus, log)

	return &Module{handler: handler.New(svc)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes mounts the auth routes. Credential endpoints sit
// behind the stricter per-IP rate limiter.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/auth")
	group.Use(ctx.AuthRateLimiter.RateLimit())

	group.POST("/login", m.handler.Login)
	group.POST("/forgot-password", m.handler.ForgotPassword)
	group.POST("/reset-password", m.handler.ResetPassword)

	protected := group.Group("")
	protected.Use(ctx.AuthMiddleware)
	protected.GET("/verify", m.handler.Verify)
	protected.POST("/change-password", m.handler.ChangePassword)
}

var _ apphttp.Module = (*Module)(nil)
