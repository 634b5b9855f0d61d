package providers

import (
	"context"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
)

// MatchProvider fetches one page of historical match records.
// Pages are 1-based. A page with TotalPages == 0 means the upstream sent no
// pagination metadata, and callers treat the result as a single page.
type MatchProvider interface {
	FetchMatchPage(ctx context.Context, page, pageSize int) (matches.Page, error)
}

// TeamProvider fetches the upstream teams listing.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	MatchProvider
	TeamProvider
}
