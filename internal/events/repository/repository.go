package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"booking_admin_backend/platform/apperr"
)

const eventNotFoundMessage = "event not found"

const eventColumns = `id, title, bio, date_from, date_to, time_from, time_to, location,
	location_lat, location_lng, total_seats, price_details, main_poster_url,
	gallery_images, is_active, status, created_at, updated_at, created_by, updated_by`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new events repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

// GetByID retrieves an event by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Event{}, apperr.NotFound(eventNotFoundMessage)
		}
		return Event{}, fmt.Errorf("get event by id: %w", err)
	}
	return event, nil
}

// Search retrieves events matching the filters, newest event date first.
func (r *Repo) Search(ctx context.Context, params SearchParams) ([]Event, int, error) {
	conditions := []string{}
	args := []any{}

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR bio ILIKE $%d OR location ILIKE $%d)", n, n, n))
	}
	if params.Status != nil {
		args = append(args, *params.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if params.DateFrom != nil {
		args = append(args, *params.DateFrom)
		conditions = append(conditions, fmt.Sprintf("date_from >= $%d", len(args)))
	}
	if params.DateTo != nil {
		args = append(args, *params.DateTo)
		conditions = append(conditions, fmt.Sprintf("date_to <= $%d", len(args)))
	}
	if params.IsActive != nil {
		args = append(args, *params.IsActive)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM events %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM events %s ORDER BY date_from DESC LIMIT $%d OFFSET $%d`,
		eventColumns, where, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Skip)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate events: %w", err)
	}
	return events, total, nil
}

// ListMissingCoordinates returns events whose picker coordinates were
// never set, for the backfill command.
func (r *Repo) ListMissingCoordinates(ctx context.Context, limit int) ([]MissingCoordinates, error) {
	query := `
		SELECT id, location
		FROM events
		WHERE location <> '' AND location_lat = 0 AND location_lng = 0
		ORDER BY created_at
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list events missing coordinates: %w", err)
	}
	defer rows.Close()

	var missing []MissingCoordinates
	for rows.Next() {
		var m MissingCoordinates
		if err := rows.Scan(&m.ID, &m.Location); err != nil {
			return nil, fmt.Errorf("scan missing coordinates: %w", err)
		}
		missing = append(missing, m)
	}
	return missing, rows.Err()
}

// Create inserts a new event.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Event, error) {
	priceDetails, err := json.Marshal(params.PriceDetails)
	if err != nil {
		return Event{}, fmt.Errorf("marshal price details: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO events (
			title, bio, date_from, date_to, time_from, time_to, location,
			location_lat, location_lng, total_seats, price_details,
			main_poster_url, gallery_images, is_active, status, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING %s`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query,
		params.Title, params.Bio, params.DateFrom, params.DateTo, params.TimeFrom,
		params.TimeTo, params.Location, params.LocationLat, params.LocationLng,
		params.TotalSeats, priceDetails, params.MainPosterURL, params.GalleryImages,
		params.IsActive, params.Status, params.CreatedBy,
	))
	if err != nil {
		return Event{}, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Update applies the non-nil fields and returns the updated row.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (Event, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{params.ID}

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Title != nil {
		set("title", *params.Title)
	}
	if params.Bio != nil {
		set("bio", *params.Bio)
	}
	if params.DateFrom != nil {
		set("date_from", *params.DateFrom)
	}
	if params.DateTo != nil {
		set("date_to", *params.DateTo)
	}
	if params.TimeFrom != nil {
		set("time_from", *params.TimeFrom)
	}
	if params.TimeTo != nil {
		set("time_to", *params.TimeTo)
	}
	if params.Location != nil {
		set("location", *params.Location)
	}
	if params.LocationLat != nil {
		set("location_lat", *params.LocationLat)
	}
	if params.LocationLng != nil {
		set("location_lng", *params.LocationLng)
	}
	if params.TotalSeats != nil {
		set("total_seats", *params.TotalSeats)
	}
	if params.PriceDetails != nil {
		priceDetails, err := json.Marshal(params.PriceDetails)
		if err != nil {
			return Event{}, fmt.Errorf("marshal price details: %w", err)
		}
		set("price_details", priceDetails)
	}
	if params.MainPosterURL != nil {
		set("main_poster_url", *params.MainPosterURL)
	}
	if params.GalleryImages != nil {
		set("gallery_images", params.GalleryImages)
	}
	if params.IsActive != nil {
		set("is_active", *params.IsActive)
	}
	if params.Status != nil {
		set("status", *params.Status)
	}
	set("updated_by", params.UpdatedBy)

	query := fmt.Sprintf(`UPDATE events SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Event{}, apperr.NotFound(eventNotFoundMessage)
		}
		return Event{}, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// Delete removes an event.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(eventNotFoundMessage)
	}
	return nil
}

// SetCoordinates writes backfilled picker coordinates.
func (r *Repo) SetCoordinates(ctx context.Context, id uuid.UUID, lat, lng float64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE events SET location_lat = $2, location_lng = $3, updated_at = NOW() WHERE id = $1`,
		id, lat, lng)
	if err != nil {
		return fmt.Errorf("set event coordinates: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(eventNotFoundMessage)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (Event, error) {
	var e Event
	var priceDetails []byte

	err := row.Scan(
		&e.ID, &e.Title, &e.Bio, &e.DateFrom, &e.DateTo, &e.TimeFrom, &e.TimeTo,
		&e.Location, &e.LocationLat, &e.LocationLng, &e.TotalSeats, &priceDetails,
		&e.MainPosterURL, &e.GalleryImages, &e.IsActive, &e.Status,
		&e.CreatedAt, &e.UpdatedAt, &e.CreatedBy, &e.UpdatedBy,
	)
	if err != nil {
		return Event{}, err
	}

	if len(priceDetails) > 0 {
		if err := json.Unmarshal(priceDetails, &e.PriceDetails); err != nil {
			return Event{}, fmt.Errorf("unmarshal price details: %w", err)
		}
	}
	return e, nil
}
