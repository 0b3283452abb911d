// Package knowledge provides the knowledge bounded context module:
// multilingual knowledge base articles managed by admins.
package knowledge

import (
	"github.com/jackc/pgx/v5/pgxpool"

	apphttp "booking_admin_backend/internal/http"
	"booking_admin_backend/internal/knowledge/handler"
	"booking_admin_backend/internal/knowledge/repository"
	"booking_admin_backend/internal/knowledge/service"
	"booking_admin_backend/platform/logger"
)

// Module is the knowledge bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and wires the knowledge module.
func NewModule(pool *pgxpool.Pool, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)

	return &Module{handler: handler.New(svc)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "knowledge"
}

// RegisterRoutes mounts the knowledge admin routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Admin.Group("/knowledge")
	group.GET("", m.handler.List)
	group.POST("", m.handler.Create)
	group.GET("/:id", m.handler.GetByID)
	group.PUT("/:id", m.handler.Update)
	group.DELETE("/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
