package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
	"github.com/preston-bernstein/worldcup-versus-service/internal/logging"
	"github.com/preston-bernstein/worldcup-versus-service/internal/metrics"
)

// instrumentedProvider records metrics and logs for every upstream attempt.
// It never retries: a failed page is terminal for the aggregation that asked for it.
type instrumentedProvider struct {
	inner        MatchProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner with per-attempt metrics and failure logging.
func NewInstrumentedProvider(inner MatchProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) DataProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchMatchPage(ctx context.Context, page, pageSize int) (matches.Page, error) {
	if p.inner == nil {
		return matches.Page{}, ErrProviderUnavailable
	}
	start := p.now()
	result, err := p.inner.FetchMatchPage(ctx, page, pageSize)
	p.record(start, err)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider page fetch failed",
			slog.Int(logging.FieldPage, page),
			slog.Any("err", err),
		)
		return matches.Page{}, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.providerName, "provider page fetched",
		slog.Int(logging.FieldPage, page),
		slog.Int(logging.FieldCount, len(result.Matches)),
	)
	return result, nil
}

func (p *instrumentedProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	start := p.now()
	items, err := fetchTeams(ctx, p.inner)
	p.record(start, err)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider teams fetch failed", slog.Any("err", err))
	}
	return items, err
}

func (p *instrumentedProvider) record(start time.Time, err error) {
	if p.metrics == nil {
		return
	}
	p.metrics.RecordProviderAttempt(p.providerName, p.now().Sub(start), err)
	if rlErr, ok := AsRateLimitError(err); ok {
		p.metrics.RecordRateLimit(p.providerName, rlErr.RetryAfter)
	}
}
