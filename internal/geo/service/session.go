package service

import (
	"strings"
	"sync"
)

// Session holds the mutable state of one open picker dialog: the anchor
// coordinate used to bias distance scoring, and the per-query result
// cache. Both live exactly as long as the dialog; Reset clears them when
// the dialog closes.
//
// The original interactive flow resolves one query at a time, but the
// HTTP host dispatches from multiple goroutines, so access is
// mutex-guarded here.
type Session struct {
	mu         sync.Mutex
	reference  *LatLng
	cache      map[string][]Result
	debounce   *Debouncer
	generation uint64
}

// NewSession creates an empty search session.
func NewSession() *Session {
	return &Session{
		cache:    make(map[string][]Result),
		debounce: NewDebouncer(TypingDebounceInterval),
	}
}

// Reset clears the reference point, the result cache, and any pending
// debounced dispatch. Invoked when the picker dialog closes.
func (s *Session) Reset() {
	s.debounce.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reference = nil
	s.cache = make(map[string][]Result)
	s.generation++
}

// ReferencePoint returns a copy of the session's anchor coordinate, or
// nil if no city-level anchor has been resolved yet.
func (s *Session) ReferencePoint() *LatLng {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reference == nil {
		return nil
	}
	point := *s.reference
	return &point
}

// setReference overwrites the session anchor with the given coordinate.
func (s *Session) setReference(point LatLng) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reference = &point
}

// cacheKey normalizes a query for cache lookup so that corrected
// keystrokes resolving to the same text skip the network entirely.
func cacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (s *Session) cachedResults(key string) ([]Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results, ok := s.cache[key]
	if !ok {
		return nil, false
	}
	return append([]Result(nil), results...), true
}

func (s *Session) storeResults(key string, results []Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = append([]Result(nil), results...)
}

// nextGeneration marks the start of a new typeahead dispatch and returns
// its generation number. A dispatch whose generation is stale by the time
// it resolves has been superseded and must not emit.
func (s *Session) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

func (s *Session) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}
