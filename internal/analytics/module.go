// Package analytics provides the analytics bounded context module:
// booking statistics for the admin dashboard.
package analytics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"booking_admin_backend/internal/analytics/handler"
	"booking_admin_backend/internal/analytics/repository"
	"booking_admin_backend/internal/analytics/service"
	apphttp "booking_admin_backend/internal/http"
	"booking_admin_backend/platform/logger"
)

// Module is the analytics bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and wires the analytics module. The Redis client
// may be nil; analytics then run uncached.
func NewModule(pool *pgxpool.Pool, cache *redis.Client, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cache, log)

	return &Module{handler: handler.New(svc)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "analytics"
}

// RegisterRoutes mounts the analytics admin routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Admin.Group("/analytics")
	group.GET("", m.handler.Overview)
	group.GET("/services", m.handler.ByService)
	group.GET("/monthly", m.handler.ByMonth)
}

var _ apphttp.Module = (*Module)(nil)
