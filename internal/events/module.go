// Package events provides the events bounded context module: CRUD for
// bookable events, including the picker-selected location.
package events

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"booking_admin_backend/internal/events/handler"
	"booking_admin_backend/internal/events/repository"
	"booking_admin_backend/internal/events/service"
	apphttp "booking_admin_backend/internal/http"
	"booking_admin_backend/platform/logger"
	"booking_admin_backend/platform/validator"
)

// Module is the events bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and wires the events module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, val, log)

	return &Module{
		handler: handler.New(svc),
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "events"
}

// Repository exposes the repository for the backfill command.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts the events admin routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Admin.Group("/events")
	group.GET("", m.handler.List)
	group.POST("", m.handler.Create)
	group.GET("/:id", m.handler.GetByID)
	group.PUT("/:id", m.handler.Update)
	group.DELETE("/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
