package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"booking_admin_backend/internal/geo/service"
)

const photonURL = "https://photon.komoot.io/api/"

// Photon is the primary fuzzy geocoder. Tolerant of typos and partial
// names, which is why it leads every search pass.
type Photon struct {
	client *http.Client
}

func NewPhoton() *Photon {
	return &Photon{client: &http.Client{Timeout: 5 * time.Second}}
}

func (p *Photon) Source() service.Source { return service.SourcePhoton }

func (p *Photon) Search(ctx context.Context, query string, _ *service.LatLng) ([]service.Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", "10")
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

		placeType := feature.Properties.Type
		if placeType == "" {
			placeType = feature.Properties.OSMValue
		}

		results = append(results, service.Result{
			Coordinates: service.LatLng{
				Lat: feature.Geometry.Coordinates[1],
				Lng: feature.Geometry.Coordinates[0],
			},
			Label:     photonLabel(feature.Properties),
			PlaceType: placeType,
			Source:    service.SourcePhoton,
			Category:  osmKeyCategory(feature.Properties.OSMKey),
		})
	}
	return results, nil
}

// photonLabel builds the display string: name plus city and country
// context when the feature carries them, falling back to the city or
// state for unnamed features.
func photonLabel(props photonProperties) string {
	if props.Name == "" {
		if props.City != "" {
			return props.City
		}
		if props.State != "" {
			return props.State
		}
		return "Unknown"
	}

	label := props.Name
	if props.City != "" {
		label += ", " + props.City
	}
	if props.Country != "" {
		label += ", " + props.Country
	}
	return label
}

// osmKeyCategory maps an OSM top-level key to the coarse category
// bucket. Keys outside the known groups leave the category unset so the
// scorer falls back to partial credit.
func osmKeyCategory(osmKey string) service.Category {
	switch osmKey {
	case "tourism", "amenity", "leisure", "shop", "sport", "office", "historic":
		return service.CategoryPOI
	case "place", "boundary":
		return service.CategoryCity
	case "highway", "building":
		return service.CategoryAddress
	default:
		return ""
	}
}

type photonProperties struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Type     string `json:"type"`
	OSMKey   string `json:"osm_key"`
	OSMValue string `json:"osm_value"`
}

type photonResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties photonProperties `json:"properties"`
	} `json:"features"`
}
