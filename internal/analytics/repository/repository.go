// Package repository aggregates booking statistics with SQL.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Overview holds the dashboard counters.
type Overview struct {
	TotalBookings     int `json:"total_bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ApprovedBookings  int `json:"approved_bookings"`
	CompletedBookings int `json:"completed_bookings"`
	CancelledBookings int `json:"cancelled_bookings"`
	OTPPending        int `json:"otp_pending"`
	RecentBookings7d  int `json:"recent_bookings_7_days"`
	TodayBookings     int `json:"today_bookings"`
}

// ServiceCount is the booking count for one service.
type ServiceCount struct {
	Service string `json:"service"`
	Count   int    `json:"count"`
}

// MonthlyCount is the booking count for one calendar month.
type MonthlyCount struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

// Repository provides the analytics queries.
type Repository interface {
	Overview(ctx context.Context) (Overview, error)
	ByService(ctx context.Context) ([]ServiceCount, error)
	ByMonth(ctx context.Context) ([]MonthlyCount, error)
}

// Repo implements Repository with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

// Overview computes all dashboard counters in a single scan.
func (r *Repo) Overview(ctx context.Context) (Overview, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'cancelled'),
			COUNT(*) FILTER (WHERE NOT otp_verified),
			COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '7 days'),
			COUNT(*) FILTER (WHERE created_at::date = CURRENT_DATE)
		FROM bookings`

	var o Overview
	err := r.pool.QueryRow(ctx, query).Scan(
		&o.TotalBookings, &o.PendingBookings, &o.ApprovedBookings, &o.CompletedBookings,
		&o.CancelledBookings, &o.OTPPending, &o.RecentBookings7d, &o.TodayBookings,
	)
	if err != nil {
		return Overview{}, fmt.Errorf("analytics overview: %w", err)
	}
	return o, nil
}

// ByService counts bookings per service, busiest first.
func (r *Repo) ByService(ctx context.Context) ([]ServiceCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT service, COUNT(*)
		FROM bookings
		GROUP BY service
		ORDER BY COUNT(*) DESC, service`)
	if err != nil {
		return nil, fmt.Errorf("analytics by service: %w", err)
	}
	defer rows.Close()

	counts := []ServiceCount{}
	for rows.Next() {
		var sc ServiceCount
		if err := rows.Scan(&sc.Service, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan service count: %w", err)
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

// ByMonth counts bookings per calendar month of the booking date.
func (r *Repo) ByMonth(ctx context.Context) ([]MonthlyCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT EXTRACT(YEAR FROM date)::int, EXTRACT(MONTH FROM date)::int, COUNT(*)
		FROM bookings
		GROUP BY 1, 2
		ORDER BY 1, 2`)
	if err != nil {
		return nil, fmt.Errorf("analytics by month: %w", err)
	}
	defer rows.Close()

	counts := []MonthlyCount{}
	for rows.Next() {
		var mc MonthlyCount
		if err := rows.Scan(&mc.Year, &mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("scan monthly count: %w", err)
		}
		counts = append(counts, mc)
	}
	return counts, rows.Err()
}
