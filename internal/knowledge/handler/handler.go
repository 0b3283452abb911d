// Package handler exposes the knowledge base admin endpoints.
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booking_admin_backend/internal/knowledge/service"
	"booking_admin_backend/internal/knowledge/transport"
	"booking_admin_backend/platform/apperr"
	"booking_admin_backend/platform/httpkit"
)

// Handler serves the knowledge API.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/admin/knowledge.
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.Validation("invalid article payload"))
		return
	}

	article, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, article)
}

// List handles GET /api/v1/admin/knowledge.
func (h *Handler) List(c *gin.Context) {
	var req transport.ListArticlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.HandleError(c, apperr.Validation("invalid list parameters"))
		return
	}

	articles, err := h.svc.List(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, articles)
}

// GetByID handles GET /api/v1/admin/knowledge/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.HandleError(c, apperr.Validation("invalid article id"))
		return
	}

	article, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, article)
}

// Update handles PUT /api/v1/admin/knowledge/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.HandleError(c, apperr.Validation("invalid article id"))
		return
	}

	var req transport.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.Validation("invalid article payload"))
		return
	}

	article, err := h.svc.Update(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, article)
}

// Delete handles DELETE /api/v1/admin/knowledge/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.HandleError(c, apperr.Validation("invalid article id"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); httpkit.HandleError(c, err) {
		return
	}
	httpkit.NoContent(c)
}
