// Package transport defines the wire types for the events API.
package transport

// Coordinates is the picker-selected event location.
type Coordinates struct {
	Lat float64 `json:"lat" binding:"min=-90,max=90"`
	Lng float64 `json:"lng" binding:"min=-180,max=180"`
}

// PriceCategoryDTO is one ticket tier on the wire.
type PriceCategoryDTO struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Price          float64 `json:"price" binding:"min=0"`
	Description    *string `json:"description,omitempty" binding:"omitempty,max=500"`
	AvailableSeats *int    `json:"available_seats,omitempty" binding:"omitempty,min=0"`
}

// CreateEventRequest carries the fields for a new event.
type CreateEventRequest struct {
	Title          string             `json:"title" binding:"required,max=200"`
	Bio            string             `json:"bio" binding:"required,max=5000"`
	DateFrom       string             `json:"date_from" binding:"required,datetime=2006-01-02"`
	DateTo         string             `json:"date_to" binding:"required,datetime=2006-01-02"`
	TimeFrom       string             `json:"time_from" binding:"required,datetime=15:04"`
	TimeTo         string             `json:"time_to" binding:"required,datetime=15:04"`
	Location       string             `json:"location" binding:"required,max=300"`
	LocationCoords Coordinates        `json:"location_coords" binding:"required"`
	TotalSeats     int                `json:"total_seats" binding:"required,min=1"`
	PriceDetails   []PriceCategoryDTO `json:"price_details" binding:"required,min=1,dive"`
	MainPosterURL  string             `json:"main_poster_url" binding:"omitempty,url"`
	GalleryImages  []string           `json:"gallery_images" binding:"omitempty,dive,url"`
	IsActive       *bool              `json:"is_active"`
	Status         string             `json:"status" binding:"omitempty,oneof=draft published cancelled completed"`
}

// UpdateEventRequest carries the optional fields for an event update.
type UpdateEventRequest struct {
	Title          *string            `json:"title" binding:"omitempty,max=200"`
	Bio            *string            `json:"bio" binding:"omitempty,max=5000"`
	DateFrom       *string            `json:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo         *string            `json:"date_to" binding:"omitempty,datetime=2006-01-02"`
	TimeFrom       *string            `json:"time_from" binding:"omitempty,datetime=15:04"`
	TimeTo         *string            `json:"time_to" binding:"omitempty,datetime=15:04"`
	Location       *string            `json:"location" binding:"omitempty,max=300"`
	LocationCoords *Coordinates       `json:"location_coords"`
	TotalSeats     *int               `json:"total_seats" binding:"omitempty,min=1"`
	PriceDetails   []PriceCategoryDTO `json:"price_details" binding:"omitempty,min=1,dive"`
	MainPosterURL  *string            `json:"main_poster_url" binding:"omitempty,url"`
	GalleryImages  []string           `json:"gallery_images" binding:"omitempty,dive,url"`
	IsActive       *bool              `json:"is_active"`
	Status         *string            `json:"status" binding:"omitempty,oneof=draft published cancelled completed"`
}

// SearchEventsRequest binds the event list query parameters.
type SearchEventsRequest struct {
	Search   string `form:"search" binding:"omitempty,max=200"`
	Status   string `form:"status" binding:"omitempty,oneof=draft published cancelled completed"`
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	IsActive *bool  `form:"is_active"`
	Limit    int    `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	Skip     int    `form:"skip" binding:"omitempty,min=0"`
}

// EventResponse is the wire form of one event.
type EventResponse struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Bio            string             `json:"bio"`
	DateFrom       string             `json:"date_from"`
	DateTo         string             `json:"date_to"`
	TimeFrom       string             `json:"time_from"`
	TimeTo         string             `json:"time_to"`
	Location       string             `json:"location"`
	LocationCoords Coordinates        `json:"location_coords"`
	TotalSeats     int                `json:"total_seats"`
	PriceDetails   []PriceCategoryDTO `json:"price_details"`
	MainPosterURL  string             `json:"main_poster_url,omitempty"`
	GalleryImages  []string           `json:"gallery_images"`
	IsActive       bool               `json:"is_active"`
	Status         string             `json:"status"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      *string            `json:"updated_at,omitempty"`
	CreatedBy      string             `json:"created_by"`
	UpdatedBy      *string            `json:"updated_by,omitempty"`
}

// EventListResponse wraps an event page with its total count.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Skip   int             `json:"skip"`
}
