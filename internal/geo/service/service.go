package service

import (
	"context"
	"strings"

	"booking_admin_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

const (
	// suggestionLimit caps the ranked list returned for live typeahead.
	suggestionLimit = 15
	// weakResultThreshold triggers the fallback pass when the primary
	// pass produced fewer merged results.
	weakResultThreshold = 3
)

// Provider is the capability contract every upstream geocoding/POI
// source implements. Radius-scoped providers receive the optional center;
// text-only providers ignore it. A provider reports transport and
// decoding problems through its error return — the orchestrator
// downgrades every failure to an empty contribution.
type Provider interface {
	// Source identifies the provider for weighting and logging.
	Source() Source
	// Search returns zero or more normalized results for the query.
	Search(ctx context.Context, query string, center *LatLng) ([]Result, error)
}

// Providers names the full set of upstream sources the orchestrator
// dispatches to. Any entry may be nil; a nil provider contributes
// nothing.
type Providers struct {
	Photon      Provider
	Pelias      Provider
	OpenTripMap Provider
	Overpass    Provider
	Nominatim   Provider
	GeoNames    Provider
	OpenMeteo   Provider
}

// ReverseGeocoder resolves a coordinate to a display address
// (map click → label).
type ReverseGeocoder interface {
	Reverse(ctx context.Context, point LatLng) (string, error)
}

// Service orchestrates the multi-pass location search: intent detection,
// provider selection, parallel fan-out, fallback ladder, deduplication,
// distance annotation, and ranking.
type Service struct {
	providers Providers
	reverse   ReverseGeocoder
	log       *logger.Logger
}

// New creates the search service.
func New(providers Providers, reverse ReverseGeocoder, log *logger.Logger) *Service {
	return &Service{
		providers: providers,
		reverse:   reverse,
		log:       log,
	}
}

// Search runs the full aggregation for the query and returns the ranked
// suggestion list, capped at suggestionLimit. Empty or whitespace-only
// queries return an empty list without any network activity.
func (s *Service) Search(ctx context.Context, sess *Session, query string) []Result {
	results := s.aggregate(ctx, sess, query)
	if len(results) > suggestionLimit {
		results = results[:suggestionLimit]
	}
	return results
}

// SearchBest runs the full aggregation and returns only the top-ranked
// result, or nil when every pass came back empty. This is the explicit
// "search" action that commits a selection directly.
func (s *Service) SearchBest(ctx context.Context, sess *Session, query string) *Result {
	results := s.aggregate(ctx, sess, query)
	if len(results) == 0 {
		return nil
	}
	best := results[0]
	return &best
}

// Typeahead schedules a debounced suggestion search. Each call replaces
// any pending dispatch (last-write-wins); a dispatch that has been
// superseded by the time it resolves never emits, so stale results
// cannot overwrite a newer query's suggestions.
func (s *Service) Typeahead(ctx context.Context, sess *Session, query string, emit func([]Result)) {
	generation := sess.nextGeneration()
	sess.debounce.Schedule(func() {
		results := s.Search(ctx, sess, query)
		if sess.currentGeneration() != generation {
			return
		}
		emit(results)
	})
}

// ReverseGeocode resolves a map-click coordinate to an address label.
func (s *Service) ReverseGeocode(ctx context.Context, point LatLng) (string, error) {
	return s.reverse.Reverse(ctx, point)
}

// aggregate is the three-pass fallback ladder. All calls within one pass
// run concurrently and the pass waits for the slowest survivor; a failed
// provider contributes an empty slice, never an error.
func (s *Service) aggregate(ctx context.Context, sess *Session, query string) []Result {
	if strings.TrimSpace(query) == "" {
		return []Result{}
	}

	key := cacheKey(query)
	if cached, ok := sess.cachedResults(key); ok {
		return cached
	}

	intent := DetectIntent(query)
	s.log.Debug("query intent detected",
		"query", query,
		"kind", intent.Kind.String(),
		"isPOI", intent.IsPOI,
		"isAddress", intent.IsAddress,
		"isCity", intent.IsCity,
	)

	// Pass 1: primary provider selection keyed off intent.
	var results []Result
	switch {
	case intent.IsPOI:
		results = s.poiPass(ctx, sess, query, intent)
	case intent.IsCity:
		results = s.fanOut(ctx, query, nil,
			s.providers.Photon, s.providers.OpenMeteo, s.providers.GeoNames)
	default:
		results = s.fanOut(ctx, query, nil,
			s.providers.Photon, s.providers.Nominatim, s.providers.OpenMeteo)
	}

	// Pass 2: administrative fallback on weak results.
	if len(results) < weakResultThreshold {
		results = append(results, s.collect(ctx, s.providers.Nominatim, query, nil)...)
	}

	// Pass 3: city-level safety net.
	if len(results) == 0 {
		results = s.collect(ctx, s.providers.OpenMeteo, query, nil)
	}

	results = dedupe(results)
	annotateDistances(results, sess.ReferencePoint())
	results = rank(results, query, intent)

	sess.storeResults(key, results)
	return results
}

// poiPass queries the fuzzy geocoder and the administrative fallback in
// parallel; when the fuzzy geocoder hits, its top result becomes the
// session anchor and the POI-enrichment providers are queried around it.
func (s *Service) poiPass(ctx context.Context, sess *Session, query string, intent Intent) []Result {
	var photonResults, nominatimResults []Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		photonResults = s.collect(gctx, s.providers.Photon, query, nil)
		return nil
	})
	g.Go(func() error {
		nominatimResults = s.collect(gctx, s.providers.Nominatim, query, nil)
		return nil
	})
	_ = g.Wait()

	results := append(photonResults, nominatimResults...)

	if len(photonResults) > 0 {
		center := photonResults[0].Coordinates
		sess.setReference(center)

		results = append(results, s.fanOut(ctx, query, &center,
			s.providers.OpenTripMap, s.providers.Overpass)...)
	}

	return results
}

// fanOut queries the given providers concurrently and merges their
// contributions in the order the providers were listed, so dedup
// survivor selection stays deterministic.
func (s *Service) fanOut(ctx context.Context, query string, center *LatLng, providers ...Provider) []Result {
	buckets := make([][]Result, len(providers))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range providers {
		g.Go(func() error {
			buckets[i] = s.collect(gctx, p, query, center)
			return nil
		})
	}
	_ = g.Wait()

	var merged []Result
	for _, bucket := range buckets {
		merged = append(merged, bucket...)
	}
	return merged
}

// collect invokes one provider and downgrades any failure to an empty
// contribution. No provider error ever crosses this boundary.
func (s *Service) collect(ctx context.Context, p Provider, query string, center *LatLng) []Result {
	if p == nil {
		return nil
	}

	results, err := p.Search(ctx, query, center)
	if err != nil {
		s.log.GeoProviderError(p.Source().String(), query, err)
		return nil
	}
	return results
}
