// Package bookings provides the bookings bounded context module:
// admin review of customer booking requests.
package bookings

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"booking_admin_backend/internal/bookings/handler"
	"booking_admin_backend/internal/bookings/repository"
	"booking_admin_backend/internal/bookings/service"
	apphttp "booking_admin_backend/internal/http"
	"booking_admin_backend/platform/events"
	"booking_admin_backend/platform/logger"
)

// Module is the bookings bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and wires the bookings module. The reminder
// scheduler may be nil when no Redis is configured.
func NewModule(pool *pgxpool.Pool, bus events.Bus, reminders service.ReminderScheduler, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, bus, reminders, log)

	return &Module{
		handler: handler.New(svc),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "bookings"
}

// Service returns the service layer for other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the bookings admin routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Admin.Group("/bookings")
	group.GET("", m.handler.List)
	group.GET("/search", m.handler.Search)
	group.GET("/:id", m.handler.GetByID)
	group.PATCH("/:id/status", m.handler.UpdateStatus)
	group.DELETE("/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
