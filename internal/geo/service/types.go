// Package service implements the multi-source location search engine used
// by the event location picker: intent classification, parallel provider
// fan-out, deduplication, distance annotation, and confidence ranking.
package service

// Source identifies the upstream provider that produced a result.
// The declaration order doubles as the tie-break priority when two
// results score within scoreTieEpsilon of each other.
type Source int

const (
	SourcePhoton Source = iota
	SourcePelias
	SourceOpenTripMap
	SourceOverpass
	SourceNominatim
	SourceGeoNames
	SourceOpenMeteo
)

// sourceNames maps sources to their wire/logging names.
var sourceNames = map[Source]string{
	SourcePhoton:      "photon",
	SourcePelias:      "pelias",
	SourceOpenTripMap: "opentripmap",
	SourceOverpass:    "overpass",
	SourceNominatim:   "nominatim",
	SourceGeoNames:    "geonames",
	SourceOpenMeteo:   "openmeteo",
}

// sourceWeights holds the static per-provider trust constants used by the
// scorer. Calibrated against observed result quality; do not tune casually.
var sourceWeights = map[Source]float64{
	SourcePhoton:      0.95,
	SourcePelias:      0.90,
	SourceOpenTripMap: 0.88,
	SourceOverpass:    0.85,
	SourceNominatim:   0.75,
	SourceGeoNames:    0.70,
	SourceOpenMeteo:   0.65,
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return "unknown"
}

// BaseConfidence returns the provider's static reliability weight.
func (s Source) BaseConfidence() float64 {
	if w, ok := sourceWeights[s]; ok {
		return w
	}
	return 0.5
}

// Category is the coarse result bucket matched against query intent.
// Providers use heterogeneous place-type vocabularies; Category is the
// only normalized classification.
type Category string

const (
	CategoryPOI     Category = "poi"
	CategoryAddress Category = "address"
	CategoryCity    Category = "city"
)

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Result is the canonical normalized record emitted by every provider.
// A Result is immutable after the provider emits it; only the distance
// annotation and the scorer attach derived fields, and they never touch
// Coordinates, Label, or Source.
type Result struct {
	Coordinates LatLng
	// Label is the human-readable display string (name plus locality
	// and country context where the provider supplies them).
	Label string
	// PlaceType is the provider's own free-text category tag
	// (e.g. "hotel", "city"); not normalized across providers.
	PlaceType string
	Source    Source
	Category  Category
	// Importance is an optional provider-supplied popularity score in [0,1].
	Importance *float64
	// DistanceMeters is the great-circle distance from the session
	// reference point; nil until the distance stage runs, and left nil
	// when no reference point exists.
	DistanceMeters *float64
	// Score is the final confidence in [0,1], set by the scorer.
	Score float64
}
