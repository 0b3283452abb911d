// Package service contains the events business logic.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"booking_admin_backend/internal/events/repository"
	"booking_admin_backend/internal/events/transport"
	"booking_admin_backend/platform/apperr"
	"booking_admin_backend/platform/logger"
	"booking_admin_backend/platform/validator"
)

// Service provides business logic for events.
type Service struct {
	repo repository.Repository
	val  *validator.Validator
	log  *logger.Logger
}

// New creates a new events service.
func New(repo repository.Repository, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{repo: repo, val: val, log: log}
}

// GetByID retrieves one event.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.EventResponse, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.EventResponse{}, err
	}
	return toResponse(event), nil
}

// Search retrieves events matching the filters.
func (s *Service) Search(ctx context.Context, req transport.SearchEventsRequest) (transport.EventListResponse, error) {
	params := repository.SearchParams{
		Search:   req.Search,
		IsActive: req.IsActive,
		Limit:    req.Limit,
		Skip:     req.Skip,
	}
	if params.Limit < 1 {
		params.Limit = 50
	}
	if req.Status != "" {
		status := req.Status
		params.Status = &status
	}

	var err error
	if params.DateFrom, err = parseDate(req.DateFrom); err != nil {
		return transport.EventListResponse{}, apperr.Validation("invalid date_from")
	}
	if params.DateTo, err = parseDate(req.DateTo); err != nil {
		return transport.EventListResponse{}, apperr.Validation("invalid date_to")
	}

	events, total, err := s.repo.Search(ctx, params)
	if err != nil {
		return transport.EventListResponse{}, err
	}

	items := make([]transport.EventResponse, 0, len(events))
	for _, event := range events {
		items = append(items, toResponse(event))
	}
	return transport.EventListResponse{Events: items, Total: total, Limit: params.Limit, Skip: params.Skip}, nil
}

// Create validates and inserts a new event.
func (s *Service) Create(ctx context.Context, req transport.CreateEventRequest, createdBy string) (transport.EventResponse, error) {
	dateFrom, dateTo, err := parseDateRange(req.DateFrom, req.DateTo)
	if err != nil {
		return transport.EventResponse{}, err
	}
	if err := s.validateCoordinates(req.LocationCoords); err != nil {
		return transport.EventResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = repository.StatusDraft
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	event, err := s.repo.Create(ctx, repository.CreateParams{
		Title:         req.Title,
		Bio:           req.Bio,
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		TimeFrom:      req.TimeFrom,
		TimeTo:        req.TimeTo,
		Location:      req.Location,
		LocationLat:   req.LocationCoords.Lat,
		LocationLng:   req.LocationCoords.Lng,
		TotalSeats:    req.TotalSeats,
		PriceDetails:  toPriceCategories(req.PriceDetails),
		MainPosterURL: req.MainPosterURL,
		GalleryImages: emptyIfNil(req.GalleryImages),
		IsActive:      isActive,
		Status:        status,
		CreatedBy:     createdBy,
	})
	if err != nil {
		return transport.EventResponse{}, err
	}

	s.log.Info("event created", "eventId", event.ID.String(), "title", event.Title, "status", event.Status)
	return toResponse(event), nil
}

// Update applies a partial update to an event.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateEventRequest, updatedBy string) (transport.EventResponse, error) {
	params := repository.UpdateParams{
		ID:            id,
		Title:         req.Title,
		Bio:           req.Bio,
		TimeFrom:      req.TimeFrom,
		TimeTo:        req.TimeTo,
		Location:      req.Location,
		TotalSeats:    req.TotalSeats,
		MainPosterURL: req.MainPosterURL,
		GalleryImages: req.GalleryImages,
		IsActive:      req.IsActive,
		Status:        req.Status,
		UpdatedBy:     updatedBy,
	}

	var err error
	if params.DateFrom, err = parseDatePtr(req.DateFrom); err != nil {
		return transport.EventResponse{}, apperr.Validation("invalid date_from")
	}
	if params.DateTo, err = parseDatePtr(req.DateTo); err != nil {
		return transport.EventResponse{}, apperr.Validation("invalid date_to")
	}
	if params.DateFrom != nil && params.DateTo != nil && params.DateTo.Before(*params.DateFrom) {
		return transport.EventResponse{}, apperr.Validation("date_to must not precede date_from")
	}

	if req.LocationCoords != nil {
		if err := s.validateCoordinates(*req.LocationCoords); err != nil {
			return transport.EventResponse{}, err
		}
		params.LocationLat = &req.LocationCoords.Lat
		params.LocationLng = &req.LocationCoords.Lng
	}
	if req.PriceDetails != nil {
		params.PriceDetails = toPriceCategories(req.PriceDetails)
	}

	event, err := s.repo.Update(ctx, params)
	if err != nil {
		return transport.EventResponse{}, err
	}
	return toResponse(event), nil
}

// Delete removes an event.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// validateCoordinates rejects out-of-range coordinates. The zero pair
// is allowed; it marks events whose location is not geocoded yet.
func (s *Service) validateCoordinates(coords transport.Coordinates) error {
	if coords.Lat == 0 && coords.Lng == 0 {
		return nil
	}
	if err := s.val.Var(coords.Lat, "latitude"); err != nil {
		return apperr.Validation("latitude out of range")
	}
	if err := s.val.Var(coords.Lng, "longitude"); err != nil {
		return apperr.Validation("longitude out of range")
	}
	return nil
}

func parseDateRange(from, to string) (time.Time, time.Time, error) {
	dateFrom, err := time.Parse("2006-01-02", from)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("invalid date_from")
	}
	dateTo, err := time.Parse("2006-01-02", to)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("invalid date_to")
	}
	if dateTo.Before(dateFrom) {
		return time.Time{}, time.Time{}, apperr.Validation("date_to must not precede date_from")
	}
	return dateFrom, dateTo, nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	return parseDate(*value)
}

func toPriceCategories(dtos []transport.PriceCategoryDTO) []repository.PriceCategory {
	categories := make([]repository.PriceCategory, 0, len(dtos))
	for _, dto := range dtos {
		categories = append(categories, repository.PriceCategory{
			Name:           dto.Name,
			Price:          dto.Price,
			Description:    dto.Description,
			AvailableSeats: dto.AvailableSeats,
		})
	}
	return categories
}

func toPriceCategoryDTOs(categories []repository.PriceCategory) []transport.PriceCategoryDTO {
	dtos := make([]transport.PriceCategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, transport.PriceCategoryDTO{
			Name:           category.Name,
			Price:          category.Price,
			Description:    category.Description,
			AvailableSeats: category.AvailableSeats,
		})
	}
	return dtos
}

func toResponse(e repository.Event) transport.EventResponse {
	resp := transport.EventResponse{
		ID:             e.ID.String(),
		Title:          e.Title,
		Bio:            e.Bio,
		DateFrom:       e.DateFrom.Format("2006-01-02"),
		DateTo:         e.DateTo.Format("2006-01-02"),
		TimeFrom:       e.TimeFrom,
		TimeTo:         e.TimeTo,
		Location:       e.Location,
		LocationCoords: transport.Coordinates{Lat: e.LocationLat, Lng: e.LocationLng},
		TotalSeats:     e.TotalSeats,
		PriceDetails:   toPriceCategoryDTOs(e.PriceDetails),
		MainPosterURL:  e.MainPosterURL,
		GalleryImages:  emptyIfNil(e.GalleryImages),
		IsActive:       e.IsActive,
		Status:         e.Status,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		CreatedBy:      e.CreatedBy,
		UpdatedBy:      e.UpdatedBy,
	}
	if e.UpdatedAt != nil {
		updated := e.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updated
	}
	return resp
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
