package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"booking_admin_backend/internal/geo/service"
)

const openTripMapURL = "https://api.opentripmap.com/0.1/en/places"

// OpenTripMap enriches POI searches with tourism-focused places around
// a center coordinate. Requires an API key; without one the adapter
// contributes nothing rather than failing the pass.
type OpenTripMap struct {
	client *http.Client
	apiKey string
}

func NewOpenTripMap(apiKey string) *OpenTripMap {
	return &OpenTripMap{
		client: &http.Client{Timeout: 10 * time.Second},
		apiKey: apiKey,
	}
}

func (o *OpenTripMap) Source() service.Source { return service.SourceOpenTripMap }

func (o *OpenTripMap) Search(ctx context.Context, _ string, center *service.LatLng) ([]service.Result, error) {
	if o.apiKey == "" || center == nil {
		return nil, nil
	}

	params := url.Values{}
	params.Set("radius", "10000")
	params.Set("lon", fmt.Sprintf("%g", center.Lng))
	params.Set("lat", fmt.Sprintf("%g", center.Lat))
	params.Set("kinds", "accomodations,interesting_places,tourist_facilities")
	params.Set("limit", "10")
	params.Set("apikey", o.apiKey)

	var payload openTripMapRadiusResponse
	if err := getJSON(ctx, o.client, fmt.Sprintf("%s/radius?%s", openTripMapURL, params.Encode()), &payload); err != nil {
		return nil, err
	}

	features := payload.Features
	if len(features) > 5 {
		features = features[:5]
	}

	results := make([]service.Result, 0, len(features))
	for _, poi := range features {
		if len(poi.Geometry.Coordinates) < 2 {
			continue
		}

		// The radius endpoint only returns stubs; the xid detail call
		// fills in the name and kinds. A failed detail lookup skips the
		// POI instead of failing the batch.
		details, err := o.fetchDetails(ctx, poi.Properties.XID)
		if err != nil {
			continue
		}

		name := poi.Properties.Name
		if name == "" {
			name = details.Name
		}
		if name == "" {
			name = "Unnamed Place"
		}

		placeType := details.Kinds
		if placeType == "" {
			placeType = poi.Properties.Kinds
		}

		results = append(results, service.Result{
			Coordinates: service.LatLng{
				Lat: poi.Geometry.Coordinates[1],
				Lng: poi.Geometry.Coordinates[0],
			},
			Label:     name,
			PlaceType: placeType,
			Source:    service.SourceOpenTripMap,
			Category:  service.CategoryPOI,
		})
	}
	return results, nil
}

func (o *OpenTripMap) fetchDetails(ctx context.Context, xid string) (openTripMapDetails, error) {
	var details openTripMapDetails
	reqURL := fmt.Sprintf("%s/xid/%s?apikey=%s", openTripMapURL, url.PathEscape(xid), url.QueryEscape(o.apiKey))
	err := getJSON(ctx, o.client, reqURL, &details)
	return details, err
}

type openTripMapRadiusResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			XID   string `json:"xid"`
			Name  string `json:"name"`
			Kinds string `json:"kinds"`
		} `json:"properties"`
	} `json:"features"`
}

type openTripMapDetails struct {
	Name  string `json:"name"`
	Kinds string `json:"kinds"`
}
