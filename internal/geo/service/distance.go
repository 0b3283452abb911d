package service

import "math"

const (
	// dedupToleranceDegrees treats coordinates within ~11 m of each other
	// as the same place.
	dedupToleranceDegrees = 0.0001

	earthRadiusMeters = 6371000.0

	// maxDistanceBiasMeters is the cutoff beyond which a result earns no
	// distance credit from the scorer.
	maxDistanceBiasMeters = 50000.0
)

// Haversine returns the great-circle distance in meters between two points.
func Haversine(a, b LatLng) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// dedupe collapses results whose coordinates agree within
// dedupToleranceDegrees on both axes. The first occurrence wins, so
// provider execution order decides which duplicate survives.
func dedupe(results []Result) []Result {
	unique := make([]Result, 0, len(results))
	for _, candidate := range results {
		duplicate := false
		for _, kept := range unique {
			if math.Abs(kept.Coordinates.Lat-candidate.Coordinates.Lat) < dedupToleranceDegrees &&
				math.Abs(kept.Coordinates.Lng-candidate.Coordinates.Lng) < dedupToleranceDegrees {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, candidate)
		}
	}
	return unique
}

// annotateDistances attaches the great-circle distance from the reference
// point to every result. With no reference point the field stays nil and
// the scorer treats it neutrally rather than as zero.
func annotateDistances(results []Result, reference *LatLng) {
	if reference == nil {
		return
	}
	for i := range results {
		d := Haversine(*reference, results[i].Coordinates)
		results[i].DistanceMeters = &d
	}
}
