package providers

import (
	"strings"
	"testing"

	"booking_admin_backend/internal/geo/service"
)

func TestPhotonLabelComposition(t *testing.T) {
	cases := []struct {
		props photonProperties
		want  string
	}{
		{photonProperties{Name: "Hotel Annapurna", City: "Kathmandu", Country: "Nepal"}, "Hotel Annapurna, Kathmandu, Nepal"},
		{photonProperties{Name: "Hotel Annapurna"}, "Hotel Annapurna"},
		{photonProperties{City: "Kathmandu"}, "Kathmandu"},
		{photonProperties{State: "Bagmati"}, "Bagmati"},
		{photonProperties{}, "Unknown"},
	}
	for _, tc := range cases {
		if got := photonLabel(tc.props); got != tc.want {
			t.Errorf("photonLabel(%+v) = %q, want %q", tc.props, got, tc.want)
		}
	}
}

func TestOSMKeyCategoryBuckets(t *testing.T) {
	cases := []struct {
		key  string
		want service.Category
	}{
		{"tourism", service.CategoryPOI},
		{"amenity", service.CategoryPOI},
		{"place", service.CategoryCity},
		{"highway", service.CategoryAddress},
		{"natural", ""},
	}
	for _, tc := range cases {
		if got := osmKeyCategory(tc.key); got != tc.want {
			t.Errorf("osmKeyCategory(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestNominatimCategoryBuckets(t *testing.T) {
	if got := nominatimCategory("place"); got != service.CategoryCity {
		t.Fatalf("expected place class to map to city, got %q", got)
	}
	if got := nominatimCategory("tourism"); got != service.CategoryPOI {
		t.Fatalf("expected tourism class to map to poi, got %q", got)
	}
	if got := nominatimCategory("waterway"); got != "" {
		t.Fatalf("expected unknown class to stay unset, got %q", got)
	}
}

func TestBuildOverpassQueryPOIShape(t *testing.T) {
	center := service.LatLng{Lat: 27.7172, Lng: 85.324}
	query := buildOverpassQuery("hotel annapurna", center)

	if !strings.HasPrefix(query, "[out:json][timeout:8];(") {
		t.Fatalf("unexpected query prelude: %q", query)
	}
	if !strings.HasSuffix(query, ");out center 20;") {
		t.Fatalf("unexpected query epilogue: %q", query)
	}
	if !strings.Contains(query, `node["tourism"~"hotel|resort`) {
		t.Fatal("expected the lodging tag clause for poi intent")
	}
	if !strings.Contains(query, `node["amenity"~"restaurant`) {
		t.Fatal("expected the food tag clause for poi intent")
	}
	if !strings.Contains(query, `node["name"~"hotel",i](around:10000`) {
		t.Fatal("expected the name clause at the tighter radius")
	}
	if strings.Contains(query, "around:15000") {
		t.Fatal("poi intent must not use the wide general radius")
	}
}

func TestBuildOverpassQueryGeneralShape(t *testing.T) {
	center := service.LatLng{Lat: 27.7172, Lng: 85.324}
	query := buildOverpassQuery("thamel chowk marg", center)

	if strings.Contains(query, `node["tourism"`) {
		t.Fatal("non-poi intent must not query the category tag union")
	}
	if !strings.Contains(query, `node["name"~"thamel",i](around:15000`) {
		t.Fatal("expected the name clause at the wide radius")
	}
	if !strings.Contains(query, `node["place"~"city|town|village`) {
		t.Fatal("expected the administrative place clause")
	}
}

func TestMainSearchTermSkipsShortWordsAndEscapes(t *testing.T) {
	if got := mainSearchTerm("of the grand hotel"); got != "the" {
		// First token longer than two characters wins.
		t.Fatalf("expected first significant term, got %q", got)
	}
	if got := mainSearchTerm(`ho"te)l.annapurna`); strings.ContainsAny(got, `"().`) {
		t.Fatalf("expected regex metacharacters stripped, got %q", got)
	}
	if got := mainSearchTerm("a of"); got != "" {
		t.Fatalf("expected empty term for short-only queries, got %q", got)
	}
}

func TestOverpassElementAccessors(t *testing.T) {
	node := overpassElement{Lat: 27.7, Lon: 85.3, Tags: map[string]string{
		"name": "Garden of Dreams", "addr:city": "Kathmandu", "leisure": "garden",
	}}
	if lat, lng := node.coordinates(); lat != 27.7 || lng != 85.3 {
		t.Fatalf("unexpected node coordinates: %v, %v", lat, lng)
	}
	if got := node.displayName(); got != "Garden of Dreams, Kathmandu" {
		t.Fatalf("unexpected display name: %q", got)
	}
	if got := node.placeType(); got != "garden" {
		t.Fatalf("unexpected place type: %q", got)
	}

	way := overpassElement{Center: &struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}{Lat: 27.8, Lon: 85.4}, Tags: map[string]string{"brand": "Bhatbhateni"}}
	if lat, lng := way.coordinates(); lat != 27.8 || lng != 85.4 {
		t.Fatalf("expected way centroid, got %v, %v", lat, lng)
	}
	if got := way.displayName(); got != "Bhatbhateni" {
		t.Fatalf("expected brand fallback, got %q", got)
	}
	if got := way.placeType(); got != "place" {
		t.Fatalf("expected place fallback, got %q", got)
	}
}
