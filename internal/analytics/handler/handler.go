// Package handler exposes the analytics dashboard endpoints.
package handler

import (
	"github.com/gin-gonic/gin"

	"booking_admin_backend/internal/analytics/service"
	"booking_admin_backend/platform/httpkit"
)

// Handler serves the analytics API.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Overview handles GET /api/v1/admin/analytics.
func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.svc.Overview(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, overview)
}

// ByService handles GET /api/v1/admin/analytics/services.
func (h *Handler) ByService(c *gin.Context) {
	counts, err := h.svc.ByService(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, counts)
}

// ByMonth handles GET /api/v1/admin/analytics/monthly.
func (h *Handler) ByMonth(c *gin.Context) {
	counts, err := h.svc.ByMonth(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, counts)
}
