// Package transport defines the wire types for the bookings API.
package transport

// ListRequest binds the booking list query parameters.
type ListRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved completed cancelled"`
	Limit  int    `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	Skip   int    `form:"skip" binding:"omitempty,min=0"`
}

// SearchRequest binds the booking search query parameters. Dates are
// ISO dates (YYYY-MM-DD) against the booking date.
type SearchRequest struct {
	Search   string `form:"search" binding:"omitempty,max=200"`
	Status   string `form:"status" binding:"omitempty,oneof=pending approved completed cancelled"`
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Limit    int    `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	Skip     int    `form:"skip" binding:"omitempty,min=0"`
}

// UpdateStatusRequest carries the target status for a booking.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved completed cancelled"`
}

// BookingResponse is the wire form of one booking.
type BookingResponse struct {
	ID             string  `json:"id"`
	Service        string  `json:"service"`
	Package        string  `json:"package"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	PhoneCountry   string  `json:"phone_country"`
	ServiceCountry string  `json:"service_country"`
	Address        string  `json:"address"`
	Pincode        string  `json:"pincode"`
	Date           string  `json:"date"`
	Message        *string `json:"message,omitempty"`
	OTPVerified    bool    `json:"otp_verified"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      *string `json:"updated_at,omitempty"`
}

// BookingListResponse wraps a booking page with its total count.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Skip     int               `json:"skip"`
}
