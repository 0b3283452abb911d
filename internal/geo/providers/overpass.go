package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"booking_admin_backend/internal/geo/service"
)

const overpassURL = "https://overpass-api.de/api/interpreter"

// Radii for the intent-asymmetric query shape. POI searches trade reach
// for category coverage; non-POI searches trade coverage for a wider
// name match.
const (
	overpassPOIRadius     = 8000
	overpassNameRadius    = 10000
	overpassGeneralRadius = 15000
)

// poiTagClauses is the category tag union queried for POI intent. One
// entry per OSM key regex pair; each expands to a node clause around
// the center.
var poiTagClauses = [][2]string{
	{"tourism", "hotel|resort|guest_house|motel|hostel|apartment|chalet|camp_site"},
	{"amenity", "restaurant|cafe|fast_food|bar|pub|food_court|ice_cream|biergarten"},
	{"amenity", "hospital|clinic|pharmacy|doctors|dentist|veterinary"},
	{"amenity", "school|college|university|library|kindergarten"},
	{"amenity", "bank|atm|post_office|police|fire_station|courthouse"},
	{"amenity", "fuel|parking|car_wash|bicycle_parking|charging_station"},
	{"amenity", "place_of_worship|community_centre|social_facility"},
	{"amenity", "cinema|theatre|nightclub|casino|arts_centre"},
	{"shop", "mall|supermarket|convenience|department_store|clothes|electronics"},
	{"shop", "beauty|hairdresser|jewelry|bakery|books|furniture"},
	{"leisure", "park|garden|playground|sports_centre|stadium|swimming_pool|fitness_centre"},
	{"leisure", "water_park|golf_course|marina|beach_resort|amusement_arcade"},
	{"sport", "swimming|tennis|soccer|basketball|cricket|badminton|gym"},
	{"building", "hotel|commercial|retail|hospital|school|university|government"},
	{"office", "government|company|insurance|estate_agent|lawyer|accountant"},
}

// Overpass runs deep OpenStreetMap feature searches around a center
// coordinate. It is the heaviest provider and only joins the POI
// enrichment pass.
type Overpass struct {
	client *http.Client
}

func NewOverpass() *Overpass {
	return &Overpass{client: &http.Client{Timeout: 10 * time.Second}}
}

func (o *Overpass) Source() service.Source { return service.SourceOverpass }

func (o *Overpass) Search(ctx context.Context, query string, center *service.LatLng) ([]service.Result, error) {
	if center == nil {
		return nil, nil
	}

	body := buildOverpassQuery(query, *center)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, overpassURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var payload overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	results := make([]service.Result, 0, len(payload.Elements))
	for _, element := range payload.Elements {
		lat, lng := element.coordinates()
		if lat == 0 && lng == 0 {
			continue
		}

		results = append(results, service.Result{
			Coordinates: service.LatLng{Lat: lat, Lng: lng},
			Label:       element.displayName(),
			PlaceType:   element.placeType(),
			Source:      service.SourceOverpass,
			Category:    service.CategoryPOI,
		})
	}
	return results, nil
}

// buildOverpassQuery assembles the Overpass QL body. POI intent queries
// the full category tag union plus an optional name clause; any other
// intent restricts to a name clause and administrative place tags over
// a wider radius.
func buildOverpassQuery(query string, center service.LatLng) string {
	intent := service.DetectIntent(query)
	mainTerm := mainSearchTerm(query)

	var b strings.Builder
	b.WriteString("[out:json][timeout:8];(")

	if intent.IsPOI {
		for _, clause := range poiTagClauses {
			fmt.Fprintf(&b, `node["%s"~"%s"](around:%d,%g,%g);`,
				clause[0], clause[1], overpassPOIRadius, center.Lat, center.Lng)
		}
		fmt.Fprintf(&b, `way["tourism"~"hotel|resort|guest_house|motel|hostel"](around:%d,%g,%g);`,
			overpassPOIRadius, center.Lat, center.Lng)
		fmt.Fprintf(&b, `way["amenity"](around:%d,%g,%g);`, overpassPOIRadius, center.Lat, center.Lng)
		fmt.Fprintf(&b, `way["shop"](around:%d,%g,%g);`, overpassPOIRadius, center.Lat, center.Lng)
		fmt.Fprintf(&b, `way["leisure"](around:%d,%g,%g);`, overpassPOIRadius, center.Lat, center.Lng)

		if mainTerm != "" {
			fmt.Fprintf(&b, `node["name"~"%s",i](around:%d,%g,%g);`,
				mainTerm, overpassNameRadius, center.Lat, center.Lng)
			fmt.Fprintf(&b, `way["name"~"%s",i](around:%d,%g,%g);`,
				mainTerm, overpassNameRadius, center.Lat, center.Lng)
		}
	} else if mainTerm != "" {
		fmt.Fprintf(&b, `node["name"~"%s",i](around:%d,%g,%g);`,
			mainTerm, overpassGeneralRadius, center.Lat, center.Lng)
		fmt.Fprintf(&b, `way["name"~"%s",i](around:%d,%g,%g);`,
			mainTerm, overpassGeneralRadius, center.Lat, center.Lng)
		fmt.Fprintf(&b, `node["place"~"city|town|village|hamlet|suburb|neighbourhood"](around:%d,%g,%g);`,
			overpassGeneralRadius, center.Lat, center.Lng)
	}

	b.WriteString(");out center 20;")
	return b.String()
}

// mainSearchTerm picks the first query word longer than two characters,
// sanitized for embedding into an Overpass regex literal.
func mainSearchTerm(query string) string {
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if len(term) > 2 {
			return overpassEscaper.Replace(term)
		}
	}
	return ""
}

var overpassEscaper = strings.NewReplacer(
	`\`, ``, `"`, ``, `(`, ``, `)`, ``, `[`, ``, `]`, ``,
	`{`, ``, `}`, ``, `|`, ``, `^`, ``, `$`, ``, `*`, ``,
	`+`, ``, `?`, ``, `.`, ``,
)

type overpassElement struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// coordinates returns the node position, or the way centroid for way
// elements.
func (e overpassElement) coordinates() (float64, float64) {
	if e.Lat != 0 || e.Lon != 0 {
		return e.Lat, e.Lon
	}
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon
	}
	return 0, 0
}

func (e overpassElement) displayName() string {
	name := e.Tags["name"]
	if name == "" {
		name = e.Tags["brand"]
	}
	if name == "" {
		name = "Unknown"
	}

	if city := e.Tags["addr:city"]; city != "" {
		return name + ", " + city
	}
	if state := e.Tags["addr:state"]; state != "" {
		return name + ", " + state
	}
	return name
}

func (e overpassElement) placeType() string {
	for _, key := range []string{"tourism", "amenity", "shop", "leisure", "sport", "office", "building"} {
		if v := e.Tags[key]; v != "" {
			return v
		}
	}
	return "place"
}
