package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"booking_admin_backend/internal/geo/service"
)

// Pelias is the secondary geocoder. The public Pelias instances were
// retired, so this adapter queries the komoot endpoint with a tighter
// limit; it stays a distinct source because it carries its own trust
// weight and dedup position.
type Pelias struct {
	client *http.Client
}

func NewPelias() *Pelias {
	return &Pelias{client: &http.Client{Timeout: 5 * time.Second}}
}

func (p *Pelias) Source() service.Source { return service.SourcePelias }

func (p *Pelias) Search(ctx context.Context, query string, _ *service.LatLng) ([]service.Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", "5")
	params.Set("lang", "en")

	var payload photonResponse
	if err := getJSON(ctx, p.client, fmt.Sprintf("%s?%s", photonURL, params.Encode()), &payload); err != nil {
		return nil, err
	}

	results := make([]service.Result, 0, len(payload.Features))
	for _, feature := range payload.Features {
		if len(feature.Geometry.Coordinates) < 2 {
			continue
		}

		label := feature.Properties.Name
		if label == "" {
			label = "Unknown"
		}

		results = append(results, service.Result{
			Coordinates: service.LatLng{
				Lat: feature.Geometry.Coordinates[1],
				Lng: feature.Geometry.Coordinates[0],
			},
			Label:     label,
			PlaceType: feature.Properties.OSMValue,
			Source:    service.SourcePelias,
			Category:  osmKeyCategory(feature.Properties.OSMKey),
		})
	}
	return results, nil
}
