package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"booking_admin_backend/internal/geo/service"
)

const nominatimURL = "https://nominatim.openstreetmap.org"

// Nominatim is the administrative fallback geocoder and the reverse
// geocoder behind map clicks.
type Nominatim struct {
	client *http.Client
}

func NewNominatim() *Nominatim {
	return &Nominatim{client: &http.Client{Timeout: 5 * time.Second}}
}

func (n *Nominatim) Source() service.Source { return service.SourceNominatim }

func (n *Nominatim) Search(ctx context.Context, query string, _ *service.LatLng) ([]service.Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "8")
	params.Set("addressdetails", "1")

	var payload []nominatimPlace
	if err := getJSON(ctx, n.client, fmt.Sprintf("%s/search?%s", nominatimURL, params.Encode()), &payload); err != nil {
		return nil, err
	}

	results := make([]service.Result, 0, len(payload))
	for _, place := range payload {
		lat, errLat := strconv.ParseFloat(place.Lat, 64)
		lng, errLng := strconv.ParseFloat(place.Lon, 64)
		if errLat != nil || errLng != nil {
			continue
		}

		result := service.Result{
			Coordinates: service.LatLng{Lat: lat, Lng: lng},
			Label:       place.DisplayName,
			PlaceType:   place.Type,
			Source:      service.SourceNominatim,
			Category:    nominatimCategory(place.Class),
		}
		if place.Importance != nil {
			importance := *place.Importance
			result.Importance = &importance
		}
		results = append(results, result)
	}
	return results, nil
}

// Reverse resolves a coordinate to its display address.
func (n *Nominatim) Reverse(ctx context.Context, point service.LatLng) (string, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(point.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(point.Lng, 'f', -1, 64))

	var payload struct {
		DisplayName string `json:"display_name"`
	}
	if err := getJSON(ctx, n.client, fmt.Sprintf("%s/reverse?%s", nominatimURL, params.Encode()), &payload); err != nil {
		return "", err
	}

	if payload.DisplayName == "" {
		return fmt.Sprintf("%.6f, %.6f", point.Lat, point.Lng), nil
	}
	return payload.DisplayName, nil
}

// nominatimCategory maps the OSM class to the coarse category bucket.
func nominatimCategory(class string) service.Category {
	switch class {
	case "place", "boundary":
		return service.CategoryCity
	case "highway", "building":
		return service.CategoryAddress
	case "tourism", "amenity", "leisure", "shop", "office", "historic":
		return service.CategoryPOI
	default:
		return ""
	}
}

type nominatimPlace struct {
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	DisplayName string   `json:"display_name"`
	Type        string   `json:"type"`
	Class       string   `json:"class"`
	Importance  *float64 `json:"importance"`
}
