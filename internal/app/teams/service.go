package teams

import (
	"context"
	"strings"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
	"github.com/preston-bernstein/worldcup-versus-service/internal/headtohead"
	"github.com/preston-bernstein/worldcup-versus-service/internal/providers"
)

// Roster exposes the team roster derived from the match collection.
type Roster interface {
	Roster() []teams.Team
}

// Service answers roster and team search queries.
type Service struct {
	roster Roster
	lister providers.TeamProvider
}

// NewService constructs a Service. When lister is nil, Search runs over the roster.
func NewService(roster Roster, lister providers.TeamProvider) *Service {
	return &Service{roster: roster, lister: lister}
}

// Teams returns the roster sorted by name.
func (s *Service) Teams() []teams.Team {
	if s.roster == nil {
		return []teams.Team{}
	}
	return s.roster.Roster()
}

// TeamByCode returns a single roster entry, ignoring case.
func (s *Service) TeamByCode(code string) (teams.Team, bool) {
	return headtohead.Lookup(s.Teams(), code)
}

// Candidates returns the roster minus the team already chosen for the other slot.
func (s *Service) Candidates(exclude string) []teams.Team {
	return headtohead.Exclude(s.Teams(), exclude)
}

// Search filters the upstream teams listing by a case-insensitive substring
// of name or code, capped at headtohead.MaxSearchResults. A blank query
// returns nothing without calling upstream.
func (s *Service) Search(ctx context.Context, query string) ([]teams.Team, error) {
	if strings.TrimSpace(query) == "" {
		return []teams.Team{}, nil
	}
	if s.lister == nil {
		return headtohead.Search(s.Teams(), query), nil
	}
	items, err := s.lister.FetchTeams(ctx)
	if err != nil {
		return nil, err
	}
	return headtohead.Search(items, query), nil
}
