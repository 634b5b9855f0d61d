package versus

import (
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/headtohead"
	"github.com/preston-bernstein/worldcup-versus-service/internal/store"
)

// Source is the session state a comparison is computed from.
type Source interface {
	Loaded() bool
	Count() int
	Snapshot() store.Snapshot
	Match(id string) (matches.Match, bool)
	LastError() error
	Selection() headtohead.Pair
}

// Service builds comparisons from the current session snapshot.
type Service struct {
	source Source
}

// NewService constructs a Service over source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Compare resolves both codes against the roster and builds the comparison.
// Unknown or duplicate codes are returned as errors; an empty code yields
// StateIncomplete. The roster and the records come from one snapshot.
func (s *Service) Compare(codeA, codeB string) (Comparison, error) {
	snap := s.source.Snapshot()
	if !snap.Loaded {
		return s.unavailable(), nil
	}
	pair, err := headtohead.ResolvePair(snap.Roster, codeA, codeB)
	if err != nil {
		return Comparison{}, err
	}
	return s.build(snap, pair), nil
}

// Current builds the comparison for the session's own selection.
func (s *Service) Current() Comparison {
	snap := s.source.Snapshot()
	if !snap.Loaded {
		return s.unavailable()
	}
	return s.build(snap, s.source.Selection())
}

// Match returns a single record by id. ok is false when no collection is
// loaded or the id is unknown.
func (s *Service) Match(id string) (matches.Match, bool) {
	if !s.source.Loaded() {
		return matches.Match{}, false
	}
	return s.source.Match(id)
}

// Loaded reports whether a complete collection has been applied.
func (s *Service) Loaded() bool {
	return s.source.Loaded()
}

// DatabaseSize returns how many records the collection holds.
func (s *Service) DatabaseSize() int {
	return s.source.Count()
}

func (s *Service) build(snap store.Snapshot, pair headtohead.Pair) Comparison {
	c := Build(snap.Matches, pair, snap.Count())
	if err := s.source.LastError(); err != nil {
		c.Error = err.Error()
	}
	return c
}

func (s *Service) unavailable() Comparison {
	c := Build(nil, headtohead.Pair{}, 0)
	c.State = StateUnavailable
	if err := s.source.LastError(); err != nil {
		c.Error = err.Error()
	}
	return c
}
