package teststubs

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
)

// StubProvider is a test double for providers.DataProvider.
// When Pages is nil, Matches is sliced into pages of the requested size.
type StubProvider struct {
	Matches   []matches.Match
	Pages     map[int]matches.Page
	FailPages map[int]error
	Err       error
	Teams     []teams.Team
	TeamsErr  error
	// Gate, when set, blocks every page fetch until it is closed or the context ends.
	Gate   chan struct{}
	Notify chan struct{}

	Calls     atomic.Int32
	mu        sync.Mutex
	requested []int
}

// FetchMatchPage returns the configured page or error while tracking calls.
func (s *StubProvider) FetchMatchPage(ctx context.Context, page, pageSize int) (matches.Page, error) {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.mu.Lock()
	s.requested = append(s.requested, page)
	s.mu.Unlock()

	if s.Gate != nil {
		select {
		case <-ctx.Done():
			return matches.Page{}, ctx.Err()
		case <-s.Gate:
		}
	}
	if s.Err != nil {
		return matches.Page{}, s.Err
	}
	if err, ok := s.FailPages[page]; ok {
		return matches.Page{}, err
	}
	if s.Pages != nil {
		p := s.Pages[page]
		p.Number = page
		return p, nil
	}
	return slicePage(s.Matches, page, pageSize), nil
}

// FetchTeams returns the configured teams listing.
func (s *StubProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	return s.Teams, s.TeamsErr
}

// RequestedPages returns the pages fetched so far in ascending order.
func (s *StubProvider) RequestedPages() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]int(nil), s.requested...)
	sort.Ints(out)
	return out
}

func slicePage(all []matches.Match, page, pageSize int) matches.Page {
	if pageSize <= 0 {
		pageSize = 100
	}
	totalPages := (len(all) + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start < 0 || start >= len(all) {
		return matches.Page{Number: page, TotalPages: totalPages}
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return matches.Page{
		Number:     page,
		Matches:    append([]matches.Match(nil), all[start:end]...),
		TotalPages: totalPages,
	}
}
