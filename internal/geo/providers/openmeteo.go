package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"booking_admin_backend/internal/geo/service"
)

const openMeteoURL = "https://geocoding-api.open-meteo.com/v1/search"

// OpenMeteo is the city-level safety net: it only knows populated
// places, but it answers for almost any settlement name on earth.
type OpenMeteo struct {
	client *http.Client
}

func NewOpenMeteo() *OpenMeteo {
	return &OpenMeteo{client: &http.Client{Timeout: 5 * time.Second}}
}

func (o *OpenMeteo) Source() service.Source { return service.SourceOpenMeteo }

func (o *OpenMeteo) Search(ctx context.Context, query string, _ *service.LatLng) ([]service.Result, error) {
	params := url.Values{}
	params.Set("name", query)
	params.Set("count", "5")
	params.Set("language", "en")
	params.Set("format", "json")

	var payload openMeteoResponse
	if err := getJSON(ctx, o.client, fmt.Sprintf("%s?%s", openMeteoURL, params.Encode()), &payload); err != nil {
		return nil, err
	}

	results := make([]service.Result, 0, len(payload.Results))
	for _, item := range payload.Results {
		label := item.Name
		if item.Admin1 != "" {
			label += ", " + item.Admin1
		}
		if item.Country != "" {
			label += ", " + item.Country
		}

		results = append(results, service.Result{
			Coordinates: service.LatLng{Lat: item.Latitude, Lng: item.Longitude},
			Label:       label,
			PlaceType:   item.FeatureCode,
			Source:      service.SourceOpenMeteo,
			Category:    service.CategoryCity,
		})
	}
	return results, nil
}

type openMeteoResponse struct {
	Results []struct {
		Name        string  `json:"name"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Admin1      string  `json:"admin1"`
		Country     string  `json:"country"`
		FeatureCode string  `json:"feature_code"`
	} `json:"results"`
}
