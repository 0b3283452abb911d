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

const geoNamesURL = "https://secure.geonames.org/searchJSON"

// GeoNames covers global cities and administrative places. It joins the
// city-intent pass alongside the primary geocoder.
type GeoNames struct {
	client   *http.Client
	username string
}

// NewGeoNames creates the adapter. An empty username degrades the
// adapter to an empty contribution, since GeoNames rejects anonymous
// requests.
func NewGeoNames(username string) *GeoNames {
	return &GeoNames{
		client:   &http.Client{Timeout: 5 * time.Second},
		username: username,
	}
}

func (g *GeoNames) Source() service.Source { return service.SourceGeoNames }

func (g *GeoNames) Search(ctx context.Context, query string, _ *service.LatLng) ([]service.Result, error) {
	if g.username == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxRows", "5")
	params.Set("username", g.username)
	params.Set("style", "MEDIUM")

	var payload geoNamesResponse
	if err := getJSON(ctx, g.client, fmt.Sprintf("%s?%s", geoNamesURL, params.Encode()), &payload); err != nil {
		return nil, err
	}

	results := make([]service.Result, 0, len(payload.GeoNames))
	for _, item := range payload.GeoNames {
		lat, errLat := strconv.ParseFloat(item.Lat, 64)
		lng, errLng := strconv.ParseFloat(item.Lng, 64)
		if errLat != nil || errLng != nil {
			continue
		}

		label := item.Name
		if item.AdminName1 != "" {
			label += ", " + item.AdminName1
		}
		if item.CountryName != "" {
			label += ", " + item.CountryName
		}

		var category service.Category
		// Feature class P covers populated places.
		if item.FeatureClass == "P" {
			category = service.CategoryCity
		}

		results = append(results, service.Result{
			Coordinates: service.LatLng{Lat: lat, Lng: lng},
			Label:       label,
			PlaceType:   item.FeatureCode,
			Source:      service.SourceGeoNames,
			Category:    category,
		})
	}
	return results, nil
}

type geoNamesResponse struct {
	GeoNames []struct {
		Name         string `json:"name"`
		Lat          string `json:"lat"`
		Lng          string `json:"lng"`
		AdminName1   string `json:"adminName1"`
		CountryName  string `json:"countryName"`
		FeatureClass string `json:"fcl"`
		FeatureCode  string `json:"fcode"`
	} `json:"geonames"`
}
