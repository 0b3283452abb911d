// Package transport defines the wire types for the location search API.
package transport

import "booking_admin_backend/internal/geo/service"

// SearchRequest binds the common query parameters of the search
// endpoints. SessionID scopes the reference point and result cache to
// one open picker dialog; the client generates it when the dialog opens
// and resets it when the dialog closes.
type SearchRequest struct {
	Query     string `form:"q" binding:"required,min=1,max=200"`
	SessionID string `form:"session_id" binding:"required,min=1,max=64"`
}

// ReverseRequest binds a map-click coordinate. Pointers so that a
// legitimate zero coordinate is not rejected by the required rule.
type ReverseRequest struct {
	Lat *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lng *float64 `form:"lng" binding:"required,min=-180,max=180"`
}

// ResetRequest identifies the picker session to discard.
type ResetRequest struct {
	SessionID string `json:"session_id" binding:"required,min=1,max=64"`
}

// LocationResult is the wire form of one ranked search result.
type LocationResult struct {
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	Label          string   `json:"label"`
	PlaceType      string   `json:"place_type,omitempty"`
	Source         string   `json:"source"`
	Category       string   `json:"category,omitempty"`
	Importance     *float64 `json:"importance,omitempty"`
	DistanceMeters *float64 `json:"distance_m,omitempty"`
	Score          float64  `json:"score"`
}

// SearchResponse is the ranked suggestion list.
type SearchResponse struct {
	Results []LocationResult `json:"results"`
}

// BestResponse carries the single best match, or null when nothing was
// found.
type BestResponse struct {
	Result *LocationResult `json:"result"`
}

// ReverseResponse carries the resolved address label.
type ReverseResponse struct {
	Label string `json:"label"`
}

// FromResult converts one engine result to its wire form.
func FromResult(r service.Result) LocationResult {
	return LocationResult{
		Lat:            r.Coordinates.Lat,
		Lng:            r.Coordinates.Lng,
		Label:          r.Label,
		PlaceType:      r.PlaceType,
		Source:         r.Source.String(),
		Category:       string(r.Category),
		Importance:     r.Importance,
		DistanceMeters: r.DistanceMeters,
		Score:          r.Score,
	}
}

// FromResults converts a ranked result slice; never nil, so the JSON
// encodes as [] rather than null.
func FromResults(results []service.Result) []LocationResult {
	out := make([]LocationResult, 0, len(results))
	for _, r := range results {
		out = append(out, FromResult(r))
	}
	return out
}
