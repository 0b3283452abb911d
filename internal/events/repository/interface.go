package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the known event statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// PriceCategory is one ticket tier. Stored as JSONB inside the event
// row; tiers are always read and written as a whole.
type PriceCategory struct {
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Description    *string `json:"description,omitempty"`
	AvailableSeats *int    `json:"available_seats,omitempty"`
}

// Event is a bookable event as stored.
type Event struct {
	ID            uuid.UUID
	Title         string
	Bio           string
	DateFrom      time.Time
	DateTo        time.Time
	TimeFrom      string
	TimeTo        string
	Location      string
	LocationLat   float64
	LocationLng   float64
	TotalSeats    int
	PriceDetails  []PriceCategory
	MainPosterURL string
	GalleryImages []string
	IsActive      bool
	Status        string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	CreatedBy     string
	UpdatedBy     *string
}

// CreateParams contains the fields for creating an event.
type CreateParams struct {
	Title         string
	Bio           string
	DateFrom      time.Time
	DateTo        time.Time
	TimeFrom      string
	TimeTo        string
	Location      string
	LocationLat   float64
	LocationLng   float64
	TotalSeats    int
	PriceDetails  []PriceCategory
	MainPosterURL string
	GalleryImages []string
	IsActive      bool
	Status        string
	CreatedBy     string
}

// UpdateParams contains the optional fields for updating an event.
// Nil fields keep their stored value.
type UpdateParams struct {
	ID            uuid.UUID
	Title         *string
	Bio           *string
	DateFrom      *time.Time
	DateTo        *time.Time
	TimeFrom      *string
	TimeTo        *string
	Location      *string
	LocationLat   *float64
	LocationLng   *float64
	TotalSeats    *int
	PriceDetails  []PriceCategory
	MainPosterURL *string
	GalleryImages []string
	IsActive      *bool
	Status        *string
	UpdatedBy     string
}

// SearchParams filters the event list.
type SearchParams struct {
	Search   string
	Status   *string
	DateFrom *time.Time
	DateTo   *time.Time
	IsActive *bool
	Limit    int
	Skip     int
}

// MissingCoordinates identifies an event without picker coordinates,
// used by the backfill command.
type MissingCoordinates struct {
	ID       uuid.UUID
	Location string
}

// EventReader provides read operations for events.
type EventReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (Event, error)
	Search(ctx context.Context, params SearchParams) ([]Event, int, error)
	ListMissingCoordinates(ctx context.Context, limit int) ([]MissingCoordinates, error)
}

// EventWriter provides write operations for events.
type EventWriter interface {
	Create(ctx context.Context, params CreateParams) (Event, error)
	Update(ctx context.Context, params UpdateParams) (Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetCoordinates(ctx context.Context, id uuid.UUID, lat, lng float64) error
}

// Repository combines all event repository operations.
type Repository interface {
	EventReader
	EventWriter
}
