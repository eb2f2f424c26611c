package session

import (
	"sync"
	"time"

	"vigovia/models"
	"vigovia/utils"
)

// Store keeps one in-memory Itinerary per browsing session. Nothing is
// persisted; idle sessions are evicted after the TTL and the itinerary is
// gone with them.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
}

type entry struct {
	it       models.Itinerary
	lastSeen time.Time
	busy     bool
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
	}
	go s.janitor()
	return s
}

// Create starts a fresh session with the default itinerary.
func (s *Store) Create() string {
	id := utils.GenerateID()
	s.mu.Lock()
	s.sessions[id] = &entry{it: models.NewItinerary(), lastSeen: time.Now()}
	s.mu.Unlock()
	return id
}

// Get returns a copy of the session's itinerary.
func (s *Store) Get(id string) (models.Itinerary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return models.Itinerary{}, false
	}
	e.lastSeen = time.Now()
	return e.it.Clone(), true
}

// Update applies fn to the session's itinerary under the store lock. The
// editor endpoints replace whole collections through this; there is no
// partial in-place mutation contract.
func (s *Store) Update(id string, fn func(*models.Itinerary)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return false
	}
	e.lastSeen = time.Now()
	fn(&e.it)
	return true
}

// Snapshot freezes the itinerary into the immutable copy the export
// pipeline consumes.
func (s *Store) Snapshot(id string) (models.Itinerary, bool) {
	return s.Get(id)
}

// BeginExport marks the session busy. It returns false if the session is
// unknown or an export is already in flight; at most one export runs per
// session at a time.
func (s *Store) BeginExport(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok || e.busy {
		return false
	}
	e.busy = true
	e.lastSeen = time.Now()
	return true
}

// EndExport clears the busy flag regardless of how the export finished.
func (s *Store) EndExport(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[id]; ok {
		e.busy = false
		e.lastSeen = time.Now()
	}
}

func (s *Store) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-s.ttl)
		s.mu.Lock()
		for id, e := range s.sessions {
			if !e.busy && e.lastSeen.Before(cutoff) {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}
