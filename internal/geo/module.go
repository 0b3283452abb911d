// Package geo wires the multi-source location search engine and its
// HTTP routes.
package geo

import (
	"booking_admin_backend/internal/geo/handler"
	"booking_admin_backend/internal/geo/providers"
	"booking_admin_backend/internal/geo/service"
	apphttp "booking_admin_backend/internal/http"
	"booking_admin_backend/platform/config"
	"booking_admin_backend/platform/logger"
)

// Module wires the location search routes.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

func NewModule(cfg config.GeoConfig, log *logger.Logger) *Module {
	nominatim := providers.NewNominatim()

	svc := service.New(service.Providers{
		Photon:      providers.NewPhoton(),
		Pelias:      providers.NewPelias(),
		OpenTripMap: providers.NewOpenTripMap(cfg.GetOpenTripMapAPIKey()),
		Overpass:    providers.NewOverpass(),
		Nominatim:   nominatim,
		GeoNames:    providers.NewGeoNames(cfg.GetGeoNamesUsername()),
		OpenMeteo:   providers.NewOpenMeteo(),
	}, nominatim, log)

	return &Module{
		handler: handler.NewHandler(svc, handler.NewSessionStore()),
		service: svc,
	}
}

func (m *Module) Name() string {
	return "geo"
}

// Service exposes the search engine for out-of-band callers such as
// the coordinate backfill tool.
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/geo")
	group.Use(ctx.AuthMiddleware)

	group.GET("/search", m.handler.Search)
	group.GET("/search/best", m.handler.SearchBest)
	group.GET("/reverse", m.handler.Reverse)
	group.POST("/session/reset", m.handler.ResetSession)
}

var _ apphttp.Module = (*Module)(nil)
