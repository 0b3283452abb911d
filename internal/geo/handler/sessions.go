package handler

import (
	"sync"
	"time"

	"booking_admin_backend/internal/geo/service"
)

// sessionIdleTimeout is how long a picker session may stay untouched
// before it is eligible for pruning.
const sessionIdleTimeout = 30 * time.Minute

// SessionStore keeps one search session per open picker dialog, keyed
// by the client-supplied session ID. Idle sessions are pruned
// opportunistically on access.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	session  *service.Session
	lastSeen time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*sessionEntry)}
}

// Get returns the session for the given ID, creating it on first use.
func (s *SessionStore) Get(id string) *service.Session {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)

	entry, ok := s.sessions[id]
	if !ok {
		entry = &sessionEntry{session: service.NewSession()}
		s.sessions[id] = entry
	}
	entry.lastSeen = now
	return entry.session
}

// Drop resets and removes the session for the given ID, if present.
func (s *SessionStore) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.sessions[id]; ok {
		entry.session.Reset()
		delete(s.sessions, id)
	}
}

func (s *SessionStore) pruneLocked(now time.Time) {
	for id, entry := range s.sessions {
		if now.Sub(entry.lastSeen) > sessionIdleTimeout {
			entry.session.Reset()
			delete(s.sessions, id)
		}
	}
}
