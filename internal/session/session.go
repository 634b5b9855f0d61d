package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/worldcup-versus-service/internal/aggregator"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
	"github.com/preston-bernstein/worldcup-versus-service/internal/headtohead"
	"github.com/preston-bernstein/worldcup-versus-service/internal/logging"
	"github.com/preston-bernstein/worldcup-versus-service/internal/metrics"
	"github.com/preston-bernstein/worldcup-versus-service/internal/store"
)

// Fetcher assembles a complete match collection.
type Fetcher interface {
	FetchAll(ctx context.Context) (aggregator.Result, error)
}

// State is where the session stands in its load lifecycle.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Slot names one side of the selected pair.
type Slot int

const (
	SlotA Slot = iota
	SlotB
)

func (s Slot) String() string {
	if s == SlotB {
		return "B"
	}
	return "A"
}

// RefreshResult describes how one refresh ended.
type RefreshResult struct {
	Token   uint64
	Outcome string
	Matches int
	Pages   int
}

// Status is a point-in-time view of the session.
type Status struct {
	State        State     `json:"state"`
	IssuedToken  uint64    `json:"issuedToken"`
	AppliedToken uint64    `json:"appliedToken"`
	Matches      int       `json:"matches"`
	LastError    string    `json:"lastError,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session owns the aggregated collection, the derived roster, the current
// selection and the request-token counter. Refresh results are applied only
// when their token is still the latest one issued.
type Session struct {
	fetcher  Fetcher
	store    *store.MemoryStore
	registry *headtohead.Registry
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	tokens atomic.Uint64

	mu        sync.RWMutex
	state     State
	lastErr   error
	selection headtohead.Pair
}

// New builds a Session. A nil store or registry gets a fresh default.
func New(fetcher Fetcher, st *store.MemoryStore, registry *headtohead.Registry, logger *slog.Logger, recorder *metrics.Recorder) *Session {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if registry == nil {
		registry = headtohead.NewRegistry(headtohead.DefaultLocale)
	}
	return &Session{
		fetcher:  fetcher,
		store:    st,
		registry: registry,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
		state:    StateIdle,
	}
}

// Refresh runs one aggregation under a new token. A failed fetch empties the
// collection and is returned. A result overtaken by a newer refresh is
// discarded without error.
func (s *Session) Refresh(ctx context.Context) (RefreshResult, error) {
	token := s.tokens.Add(1)
	start := s.now()
	logger := logging.FromContext(ctx, s.logger)

	s.mu.Lock()
	if token == s.tokens.Load() {
		s.state = StateLoading
	}
	s.mu.Unlock()

	res, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.tokens.Load() {
		s.metrics.RecordRefresh(metrics.OutcomeDiscarded, s.now().Sub(start), res.Pages, len(res.Matches))
		logging.Info(logger, "discarded stale refresh result",
			slog.Uint64(logging.FieldToken, token),
			slog.Uint64("latest_token", s.tokens.Load()),
		)
		return RefreshResult{Token: token, Outcome: metrics.OutcomeDiscarded}, nil
	}

	if err != nil {
		s.store.Clear(token, s.now())
		s.state = StateFailed
		s.lastErr = err
		s.metrics.RecordRefresh(metrics.OutcomeFailed, s.now().Sub(start), 0, 0)
		logging.Error(logger, "refresh failed", err, slog.Uint64(logging.FieldToken, token))
		return RefreshResult{Token: token, Outcome: metrics.OutcomeFailed}, err
	}

	roster := s.registry.Build(res.Matches)
	s.store.Replace(token, res.Matches, roster, s.now())
	s.state = StateReady
	s.lastErr = nil
	s.metrics.RecordRefresh(metrics.OutcomeApplied, s.now().Sub(start), res.Pages, len(res.Matches))
	logging.Info(logger, "refresh applied",
		slog.Uint64(logging.FieldToken, token),
		slog.Int(logging.FieldPages, res.Pages),
		slog.Int(logging.FieldCount, len(res.Matches)),
	)
	return RefreshResult{Token: token, Outcome: metrics.OutcomeApplied, Matches: len(res.Matches), Pages: res.Pages}, nil
}

func (s *Session) fetch(ctx context.Context) (aggregator.Result, error) {
	if s.fetcher == nil {
		return aggregator.Result{}, fmt.Errorf("session has no fetcher")
	}
	return s.fetcher.FetchAll(ctx)
}

// Loaded reports whether a complete collection is currently applied.
func (s *Session) Loaded() bool {
	return s.store.Loaded()
}

// Matches returns the current record collection.
func (s *Session) Matches() []matches.Match {
	return s.store.ListMatches()
}

// Count returns the size of the record collection.
func (s *Session) Count() int {
	return s.store.Count()
}

// Roster returns the derived team roster.
func (s *Session) Roster() []teams.Team {
	return s.store.Roster()
}

// Snapshot returns the collection and roster as one consistent view.
func (s *Session) Snapshot() store.Snapshot {
	return s.store.Snapshot()
}

// Match looks a record up by id.
func (s *Session) Match(id string) (matches.Match, bool) {
	return s.store.GetMatch(id)
}

// LastError returns the error from the latest refresh, if it failed.
func (s *Session) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Status returns the current lifecycle snapshot.
func (s *Session) Status() Status {
	s.mu.RLock()
	st := Status{
		State:        s.state,
		IssuedToken:  s.tokens.Load(),
		AppliedToken: s.store.Token(),
		Matches:      s.store.Count(),
		UpdatedAt:    s.store.UpdatedAt(),
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	s.mu.RUnlock()
	return st
}

// ResolvePair looks both codes up in the roster without touching the
// session's selection. An empty code leaves its slot empty.
func (s *Session) ResolvePair(codeA, codeB string) (headtohead.Pair, error) {
	return headtohead.ResolvePair(s.store.Roster(), codeA, codeB)
}

// Select puts the team with code into slot. An empty code clears the slot.
// A team already held by the other slot is rejected with ErrSameTeam.
func (s *Session) Select(slot Slot, code string) error {
	t, err := headtohead.ResolveTeam(s.store.Roster(), code)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	other := s.selection.B
	if slot == SlotB {
		other = s.selection.A
	}
	if t.Key() != "" && t.Key() == other.Key() {
		return ErrSameTeam
	}
	if slot == SlotB {
		s.selection.B = t
	} else {
		s.selection.A = t
	}
	return nil
}

// Selection returns the current pair.
func (s *Session) Selection() headtohead.Pair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}
