package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
)

const defaultMaxInFlight = 4

// limitedProvider caps how many upstream page requests may be in flight at once.
type limitedProvider struct {
	next  MatchProvider
	slots chan struct{}
	name  string

	logger *slog.Logger
}

// NewLimitedProvider wraps next so at most maxInFlight page fetches run concurrently.
// Callers block until a slot frees up or their context is done.
func NewLimitedProvider(next MatchProvider, maxInFlight int, name string, logger *slog.Logger) DataProvider {
	if maxInFlight <= 0 {
		maxInFlight = defaultMaxInFlight
	}
	return &limitedProvider{
		next:   next,
		slots:  make(chan struct{}, maxInFlight),
		name:   name,
		logger: logger,
	}
}

func (p *limitedProvider) FetchMatchPage(ctx context.Context, page, pageSize int) (matches.Page, error) {
	if p == nil || p.next == nil {
		return matches.Page{}, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "limited fetch canceled", slog.Int("page", page))
		return matches.Page{}, ctx.Err()
	case p.slots <- struct{}{}:
	}
	defer func() { <-p.slots }()

	return p.next.FetchMatchPage(ctx, page, pageSize)
}

func (p *limitedProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if p == nil {
		return nil, ErrProviderUnavailable
	}
	return fetchTeams(ctx, p.next)
}

// fetchTeams forwards to inner when it can list teams.
func fetchTeams(ctx context.Context, inner MatchProvider) ([]teams.Team, error) {
	tp, ok := inner.(TeamProvider)
	if !ok || tp == nil {
		return nil, ErrProviderUnavailable
	}
	return tp.FetchTeams(ctx)
}
