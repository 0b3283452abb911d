package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"booking_admin_backend/platform/logger"
)

// fakeProvider records every call and returns canned results.
type fakeProvider struct {
	source  Source
	results []Result
	err     error

	mu      sync.Mutex
	calls   int
	centers []*LatLng
}

func (f *fakeProvider) Source() Source { return f.source }

func (f *fakeProvider) Search(_ context.Context, _ string, center *LatLng) ([]Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if center != nil {
		copied := *center
		f.centers = append(f.centers, &copied)
	} else {
		f.centers = append(f.centers, nil)
	}
	if f.err != nil {
		return nil, f.err
	}
	return append([]Result(nil), f.results...), nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func fakeResult(source Source, label string, lat, lng float64, category Category) Result {
	return Result{
		Coordinates: LatLng{Lat: lat, Lng: lng},
		Label:       label,
		Source:      source,
		Category:    category,
	}
}

func newTestService(p Providers) *Service {
	return New(p, nil, logger.New("test"))
}

func TestSearchEmptyQueryShortCircuits(t *testing.T) {
	photon := &fakeProvider{source: SourcePhoton}
	svc := newTestService(Providers{Photon: photon})

	results := svc.Search(context.Background(), NewSession(), "   ")
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
	if photon.callCount() != 0 {
		t.Fatal("expected no provider calls for a blank query")
	}
}

func TestSearchPOIFlowSetsReferenceAndEnriches(t *testing.T) {
	photon := &fakeProvider{source: SourcePhoton, results: []Result{
		fakeResult(SourcePhoton, "Hotel Annapurna, Kathmandu, Nepal", 27.7172, 85.3240, CategoryPOI),
	}}
	nominatim := &fakeProvider{source: SourceNominatim, results: []Result{
		fakeResult(SourceNominatim, "Annapurna Hotel, Durbar Marg", 27.7120, 85.3180, CategoryPOI),
		fakeResult(SourceNominatim, "Annapurna Guest House", 27.7000, 85.3100, CategoryPOI),
	}}
	otm := &fakeProvider{source: SourceOpenTripMap, results: []Result{
		fakeResult(SourceOpenTripMap, "Garden of Dreams", 27.7140, 85.3150, CategoryPOI),
	}}
	overpass := &fakeProvider{source: SourceOverpass}

	svc := newTestService(Providers{
		Photon: photon, Nominatim: nominatim, OpenTripMap: otm, Overpass: overpass,
	})
	sess := NewSession()

	results := svc.Search(context.Background(), sess, "Hotel Annapurna Kathmandu")

	ref := sess.ReferencePoint()
	if ref == nil {
		t.Fatal("expected reference point set from the top fuzzy hit")
	}
	if ref.Lat != 27.7172 || ref.Lng != 85.3240 {
		t.Fatalf("expected reference at the photon top hit, got %v", ref)
	}

	if otm.callCount() != 1 || overpass.callCount() != 1 {
		t.Fatal("expected the enrichment providers to be queried once")
	}
	if otm.centers[0] == nil || *otm.centers[0] != *ref {
		t.Fatalf("expected enrichment centered on the reference point, got %v", otm.centers[0])
	}

	if len(results) != 4 {
		t.Fatalf("expected 4 merged results, got %d", len(results))
	}
	if results[0].Label != "Hotel Annapurna, Kathmandu, Nepal" {
		t.Fatalf("expected the exact-name photon hit ranked first, got %q", results[0].Label)
	}
	for _, r := range results {
		if r.DistanceMeters == nil {
			t.Fatalf("expected distances annotated once the reference exists, missing on %q", r.Label)
		}
	}
}

func TestSearchPOIWithoutFuzzyHitSkipsEnrichment(t *testing.T) {
	photon := &fakeProvider{source: SourcePhoton}
	nominatim := &fakeProvider{source: SourceNominatim, results: []Result{
		fakeResult(SourceNominatim, "Some Hotel", 27.7, 85.3, CategoryPOI),
		fakeResult(SourceNominatim, "Other Hotel", 27.8, 85.4, CategoryPOI),
		fakeResult(SourceNominatim, "Third Hotel", 27.9, 85.5, CategoryPOI),
	}}
	otm := &fakeProvider{source: SourceOpenTripMap}
	overpass := &fakeProvider{source: SourceOverpass}

	svc := newTestService(Providers{Photon: photon, Nominatim: nominatim, OpenTripMap: otm, Overpass: overpass})
	sess := NewSession()

	svc.Search(context.Background(), sess, "hotel somewhere")

	if otm.callCount() != 0 || overpass.callCount() != 0 {
		t.Fatal("expected no enrichment without a fuzzy anchor")
	}
	if sess.ReferencePoint() != nil {
		t.Fatal("expected no reference point without a fuzzy anchor")
	}
}

func TestSearchCityFlowUsesCityProviders(t *testing.T) {
	photon := &fakeProvider{source: SourcePhoton, results: []Result{
		fakeResult(SourcePhoton, "Kathmandu, Nepal", 27.7172, 85.3240, CategoryCity),
	}}
	openMeteo := &fakeProvider{source: SourceOpenMeteo, results: []Result{
		fakeResult(SourceOpenMeteo, "Kathmandu, Bagmati, Nepal", 27.7017, 85.3206, CategoryCity),
	}}
	geoNames := &fakeProvider{source: SourceGeoNames, results: []Result{
		fakeResult(SourceGeoNames, "Kathmandu, Central Region, Nepal", 27.7047, 85.3070, CategoryCity),
	}}
	nominatim := &fakeProvider{source: SourceNominatim}

	svc := newTestService(Providers{
		Photon: photon, OpenMeteo: openMeteo, GeoNames: geoNames, Nominatim: nominatim,
	})

	results := svc.Search(context.Background(), NewSession(), "Kathmandu")

	if photon.callCount() != 1 || openMeteo.callCount() != 1 || geoNames.callCount() != 1 {
		t.Fatal("expected the three city providers queried once each")
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
}

func TestSearchWeakResultsTriggerFallbackPass(t *testing.T) {
	photon := &fakeProvider{source: SourcePhoton, results: []Result{
		fakeResult(SourcePhoton, "Kathmandu", 27.7172, 85.3240, CategoryCity),
	}}
	openMeteo := &fakeProvider{source: SourceOpenMeteo}
	geoNames := &fakeProvider{source: SourceGeoNames}
	nominatim := &fakeProvider{source: SourceNominatim, results: []Result{
		fakeResult(SourceNominatim, "Kathmandu District", 27.70, 85.32, CategoryCity),
	}}

	svc := newTestService(Providers{
		Photon: photon, OpenMeteo: openMeteo, GeoNames: geoNames, Nominatim: nominatim,
	})

	results := svc.Search(context.Background(), NewSession(), "Kathmandu")

	if nominatim.callCount() != 1 {
		t.Fatalf("expected fallback pass to query nominatim, calls=%d", nominatim.callCount())
	}
	if len(results) != 2 {
		t.Fatalf("expected merged primary+fallback results, got %d", len(results))
	}
}

func TestSearchEmptyEverywhereFallsBackToCitySafetyNet(t *testing.T) {
	photon := &fakeProvider{source: SourcePhoton}
	nominatim := &fakeProvider{source: SourceNominatim}
	openMeteo := &fakeProvider{source: SourceOpenMeteo}
	geoNames := &fakeProvider{source: SourceGeoNames}

	svc := newTestService(Providers{
		Photon: photon, Nominatim: nominatim, OpenMeteo: openMeteo, GeoNames: geoNames,
	})

	// A long non-POI query lands in the default branch, so empty
	// providers force passes 2 and 3.
	results := svc.Search(context.Background(), NewSession(), "somewhere that does not exist at all")
	if len(results) != 0 {
		t.Fatalf("expected no results when every source is empty, got %d", len(results))
	}
	if nominatim.callCount() != 2 {
		t.Fatalf("expected primary plus fallback nominatim calls, got %d", nominatim.callCount())
	}
	if openMeteo.callCount() != 2 {
		t.Fatalf("expected primary, then safety-net open-meteo call, got %d", openMeteo.callCount())
	}
}

func TestSearchProviderFailureIsSilent(t *testing.T) {
	photon := &fakeProvider{source: SourcePhoton, err: errors.New("boom")}
	nominatim := &fakeProvider{source: SourceNominatim, results: []Result{
		fakeResult(SourceNominatim, "Kathmandu", 27.7172, 85.3240, CategoryCity),
		fakeResult(SourceNominatim, "Kathmandu District", 27.70, 85.30, CategoryCity),
		fakeResult(SourceNominatim, "Kathmandu Valley", 27.65, 85.35, CategoryCity),
	}}
	openMeteo := &fakeProvider{source: SourceOpenMeteo}

	svc := newTestService(Providers{Photon: photon, Nominatim: nominatim, OpenMeteo: openMeteo})

	results := svc.Search(context.Background(), NewSession(), "kathmandu valley sightseeing spots")
	if len(results) != 3 {
		t.Fatalf("expected surviving provider results despite failure, got %d", len(results))
	}
}

func TestSearchCachesPerSession(t *testing.T) {
	photon := &fakeProvider{source: SourcePhoton, results: []Result{
		fakeResult(SourcePhoton, "Kathmandu", 27.7172, 85.3240, CategoryCity),
		fakeResult(SourcePhoton, "Kathmandu Valley", 27.65, 85.35, CategoryCity),
		fakeResult(SourcePhoton, "Kathmandu District", 27.70, 85.30, CategoryCity),
	}}
	openMeteo := &fakeProvider{source: SourceOpenMeteo}
	geoNames := &fakeProvider{source: SourceGeoNames}

	svc := newTestService(Providers{Photon: photon, OpenMeteo: openMeteo, GeoNames: geoNames})
	sess := NewSession()

	first := svc.Search(context.Background(), sess, "Kathmandu")
	calls := photon.callCount()

	second := svc.Search(context.Background(), sess, "  kathmandu ")
	if photon.callCount() != calls {
		t.Fatal("expected the normalized repeat query to be served from cache")
	}
	if len(first) != len(second) {
		t.Fatalf("expected identical cached results, got %d and %d", len(first), len(second))
	}

	// A different session has its own cache.
	svc.Search(context.Background(), NewSession(), "Kathmandu")
	if photon.callCount() == calls {
		t.Fatal("expected a fresh session to query the providers again")
	}
}

func TestSearchDeduplicatesAcrossProviders(t *testing.T) {
	photon := &fakeProvider{source: SourcePhoton, results: []Result{
		fakeResult(SourcePhoton, "Kathmandu, Nepal", 27.7172, 85.3240, CategoryCity),
		fakeResult(SourcePhoton, "Patan", 27.6644, 85.3188, CategoryCity),
		fakeResult(SourcePhoton, "Bhaktapur", 27.6710, 85.4298, CategoryCity),
	}}
	openMeteo := &fakeProvider{source: SourceOpenMeteo, results: []Result{
		// Same place within the coordinate tolerance.
		fakeResult(SourceOpenMeteo, "Kathmandu, Bagmati, Nepal", 27.71725, 85.32395, CategoryCity),
	}}
	geoNames := &fakeProvider{source: SourceGeoNames}

	svc := newTestService(Providers{Photon: photon, OpenMeteo: openMeteo, GeoNames: geoNames})

	results := svc.Search(context.Background(), NewSession(), "Kathmandu")
	if len(results) != 3 {
		t.Fatalf("expected duplicate collapsed, got %d results", len(results))
	}
	for _, r := range results {
		if r.Label == "Kathmandu, Bagmati, Nepal" {
			t.Fatal("expected the earlier provider's duplicate to survive")
		}
	}
}

func TestSearchCapsSuggestions(t *testing.T) {
	var many []Result
	for i := 0; i < 25; i++ {
		many = append(many, fakeResult(SourcePhoton, "Place", 27.0+float64(i)*0.01, 85.0, CategoryCity))
	}
	photon := &fakeProvider{source: SourcePhoton, results: many}

	svc := newTestService(Providers{Photon: photon})

	results := svc.Search(context.Background(), NewSession(), "Place")
	if len(results) != 15 {
		t.Fatalf("expected suggestion list capped at 15, got %d", len(results))
	}
}

func TestSearchBestReturnsTopResultOrNil(t *testing.T) {
	photon := &fakeProvider{source: SourcePhoton, results: []Result{
		fakeResult(SourcePhoton, "Kathmandu, Nepal", 27.7172, 85.3240, CategoryCity),
		fakeResult(SourcePhoton, "Kathmandu Valley", 27.65, 85.35, CategoryCity),
		fakeResult(SourcePhoton, "Kathmandu District", 27.70, 85.30, CategoryCity),
	}}
	svc := newTestService(Providers{Photon: photon})

	best := svc.SearchBest(context.Background(), NewSession(), "Kathmandu")
	if best == nil || best.Label != "Kathmandu, Nepal" {
		t.Fatalf("expected the top-ranked result, got %v", best)
	}

	empty := newTestService(Providers{})
	if got := empty.SearchBest(context.Background(), NewSession(), "nowhere"); got != nil {
		t.Fatalf("expected nil when every source is empty, got %v", got)
	}
}

func TestTypeaheadOnlyLatestQueryEmits(t *testing.T) {
	photon := &fakeProvider{source: SourcePhoton, results: []Result{
		fakeResult(SourcePhoton, "Kathmandu, Nepal", 27.7172, 85.3240, CategoryCity),
		fakeResult(SourcePhoton, "Kathmandu Valley", 27.65, 85.35, CategoryCity),
		fakeResult(SourcePhoton, "Kathmandu District", 27.70, 85.30, CategoryCity),
	}}
	svc := newTestService(Providers{Photon: photon})
	sess := NewSession()

	var mu sync.Mutex
	var emitted [][]Result

	emit := func(results []Result) {
		mu.Lock()
		defer mu.Unlock()
		emitted = append(emitted, results)
	}

	svc.Typeahead(context.Background(), sess, "Kath", emit)
	svc.Typeahead(context.Background(), sess, "Kathmandu", emit)

	time.Sleep(TypingDebounceInterval + 200*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(emitted) != 1 {
		t.Fatalf("expected exactly one emission for rapid re-typing, got %d", len(emitted))
	}
	if len(emitted[0]) != 3 {
		t.Fatalf("expected the final query's results, got %d", len(emitted[0]))
	}
}
