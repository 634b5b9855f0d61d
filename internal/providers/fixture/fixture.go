package fixture

import (
	"context"
	"sort"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
)

const defaultPageSize = 20

// Provider serves a static slice of World Cup history, paginated like the
// real listing API. Useful for local runs and bootstrapping.
type Provider struct {
	matches []matches.Match
}

// New creates a fixture provider over the built-in match set.
func New() *Provider {
	return &Provider{matches: builtinMatches()}
}

// NewWithMatches creates a fixture provider over the given records.
func NewWithMatches(items []matches.Match) *Provider {
	return &Provider{matches: append([]matches.Match(nil), items...)}
}

// FetchMatchPage returns one page of the fixture set.
func (p *Provider) FetchMatchPage(ctx context.Context, page, pageSize int) (matches.Page, error) {
	if err := ctx.Err(); err != nil {
		return matches.Page{}, err
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		page = 1
	}

	totalPages := (len(p.matches) + pageSize - 1) / pageSize
	out := matches.Page{Number: page, TotalPages: totalPages, Matches: []matches.Match{}}
	start := (page - 1) * pageSize
	if start >= len(p.matches) {
		return out, nil
	}
	end := start + pageSize
	if end > len(p.matches) {
		end = len(p.matches)
	}
	out.Matches = append(out.Matches, p.matches[start:end]...)
	return out, nil
}

// FetchTeams lists every team referenced by the fixture set, sorted by code.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	out := make([]teams.Team, 0)
	for _, m := range p.matches {
		for _, side := range []matches.Side{m.SideOne, m.SideTwo} {
			key := teams.CodeKey(side.Code)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, side.Team())
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}
