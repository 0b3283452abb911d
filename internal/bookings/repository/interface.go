package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Booking statuses. Bookings arrive as pending and move through the
// admin review flow from there.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking is a customer booking request as stored.
type Booking struct {
	ID             uuid.UUID
	Service        string
	Package        string
	Name           string
	Email          string
	Phone          string
	PhoneCountry   string
	ServiceCountry string
	Address        string
	Pincode        string
	Date           time.Time
	Message        *string
	OTPVerified    bool
	Status         string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// ListParams filters the plain booking list.
type ListParams struct {
	Status *string
	Limit  int
	Skip   int
}

// SearchParams filters the booking search. Search matches name, email,
// phone, and service case-insensitively.
type SearchParams struct {
	Search   string
	Status   *string
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Skip     int
}

// BookingReader provides read operations for bookings.
type BookingReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (Booking, error)
	List(ctx context.Context, params ListParams) ([]Booking, int, error)
	Search(ctx context.Context, params SearchParams) ([]Booking, int, error)
}

// BookingWriter provides write operations for bookings.
type BookingWriter interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repository combines all booking repository operations.
type Repository interface {
	BookingReader
	BookingWriter
}
