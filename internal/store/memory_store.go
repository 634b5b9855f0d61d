package store

import (
	"sync"
	"time"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
)

// MemoryStore keeps a thread-safe snapshot of the aggregated match collection
// and the roster derived from it. Snapshots are replaced whole, never patched.
type MemoryStore struct {
	mu        sync.RWMutex
	matches   []matches.Match
	byID      map[string]matches.Match
	roster    []teams.Team
	token     uint64
	loaded    bool
	updatedAt time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]matches.Match),
	}
}

// Snapshot is one consistent view of the store.
type Snapshot struct {
	Matches   []matches.Match
	Roster    []teams.Team
	Loaded    bool
	Token     uint64
	UpdatedAt time.Time
}

// Count returns the number of records in the snapshot, duplicates included.
func (s Snapshot) Count() int {
	return len(s.Matches)
}

// Replace installs a new snapshot produced under token. It is a no-op
// returning false when the same or a newer token has already been applied.
func (s *MemoryStore) Replace(token uint64, items []matches.Match, roster []teams.Team, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != 0 && token <= s.token {
		return false
	}
	s.matches = append([]matches.Match(nil), items...)
	s.byID = make(map[string]matches.Match, len(items))
	for _, m := range items {
		if _, ok := s.byID[m.ID]; !ok {
			s.byID[m.ID] = m
		}
	}
	s.roster = append([]teams.Team(nil), roster...)
	s.token = token
	s.loaded = true
	s.updatedAt = at
	return true
}

// Clear drops the collection under token and marks the store unloaded.
// Older tokens stay rejected afterwards.
func (s *MemoryStore) Clear(token uint64, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != 0 && token <= s.token {
		return false
	}
	s.matches = nil
	s.byID = make(map[string]matches.Match)
	s.roster = nil
	s.token = token
	s.loaded = false
	s.updatedAt = at
	return true
}

// Snapshot returns the collection, roster and metadata read under one lock.
func (s *MemoryStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Matches:   append([]matches.Match(nil), s.matches...),
		Roster:    append([]teams.Team(nil), s.roster...),
		Loaded:    s.loaded,
		Token:     s.token,
		UpdatedAt: s.updatedAt,
	}
}

// ListMatches returns a copy of the collection in aggregation order.
func (s *MemoryStore) ListMatches() []matches.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]matches.Match(nil), s.matches...)
}

// GetMatch retrieves a match by ID. The first record with that id wins.
func (s *MemoryStore) GetMatch(id string) (matches.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.byID[id]
	return m, ok
}

// Roster returns a copy of the derived team roster.
func (s *MemoryStore) Roster() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]teams.Team(nil), s.roster...)
}

// Count returns the number of records in the collection, duplicates included.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.matches)
}

// Token returns the token of the installed snapshot.
func (s *MemoryStore) Token() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Loaded reports whether a complete collection is installed.
func (s *MemoryStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}

// UpdatedAt returns when the installed snapshot was produced.
func (s *MemoryStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.updatedAt
}
