// Package handler exposes the location search endpoints used by the
// event location picker.
package handler

import (
	"net/http"

	"booking_admin_backend/internal/geo/service"
	"booking_admin_backend/internal/geo/transport"
	"booking_admin_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler serves the location search API.
type Handler struct {
	svc      *service.Service
	sessions *SessionStore
}

func NewHandler(svc *service.Service, sessions *SessionStore) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

// Search handles GET /api/v1/geo/search?q=...&session_id=...
// and returns the ranked suggestion list.
func (h *Handler) Search(c *gin.Context) {
	var req transport.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'q' and 'session_id' are required", nil)
		return
	}

	sess := h.sessions.Get(req.SessionID)
	results := h.svc.Search(c.Request.Context(), sess, req.Query)

	httpkit.OK(c, transport.SearchResponse{Results: transport.FromResults(results)})
}

// SearchBest handles GET /api/v1/geo/search/best and returns only the
// top-ranked match, or a null result when every source came back empty.
func (h *Handler) SearchBest(c *gin.Context) {
	var req transport.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'q' and 'session_id' are required", nil)
		return
	}

	sess := h.sessions.Get(req.SessionID)
	best := h.svc.SearchBest(c.Request.Context(), sess, req.Query)

	var result *transport.LocationResult
	if best != nil {
		converted := transport.FromResult(*best)
		result = &converted
	}

	httpkit.OK(c, transport.BestResponse{Result: result})
}

// Reverse handles GET /api/v1/geo/reverse?lat=...&lng=... for map
// clicks.
func (h *Handler) Reverse(c *gin.Context) {
	var req transport.ReverseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "valid 'lat' and 'lng' are required", nil)
		return
	}

	label, err := h.svc.ReverseGeocode(c.Request.Context(), service.LatLng{Lat: *req.Lat, Lng: *req.Lng})
	if err != nil {
		httpkit.Error(c, http.StatusBadGateway, "reverse geocoding unavailable", nil)
		return
	}

	httpkit.OK(c, transport.ReverseResponse{Label: label})
}

// ResetSession handles POST /api/v1/geo/session/reset, discarding the
// picker session when the dialog closes.
func (h *Handler) ResetSession(c *gin.Context) {
	var req transport.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "'session_id' is required", nil)
		return
	}

	h.sessions.Drop(req.SessionID)
	httpkit.NoContent(c)
}
