package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/logging"
	"github.com/preston-bernstein/worldcup-versus-service/internal/providers"
)

const (
	defaultPageSize    = 100
	defaultMaxInFlight = 4
	defaultMaxPages    = 1000
)

// Limits bound the fan-out of one aggregation. Zero values use the defaults.
type Limits struct {
	// MaxInFlight caps concurrent page fetches after page 1.
	MaxInFlight int
	// MaxPages is the largest totalPages accepted from upstream.
	MaxPages int
}

func (l Limits) withDefaults() Limits {
	if l.MaxInFlight <= 0 {
		l.MaxInFlight = defaultMaxInFlight
	}
	if l.MaxPages <= 0 {
		l.MaxPages = defaultMaxPages
	}
	return l
}

// Result is a complete record collection assembled from every page.
type Result struct {
	Matches []matches.Match
	Pages   int
}

// FetchError reports the page that made an aggregation fail.
type FetchError struct {
	Page int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Aggregator assembles the full match collection from a paginated provider.
type Aggregator struct {
	provider providers.MatchProvider
	pageSize int
	limits   Limits
	logger   *slog.Logger
	now      func() time.Time
}

// New builds an Aggregator with default Limits. A non-positive pageSize uses
// the upstream maximum.
func New(provider providers.MatchProvider, pageSize int, logger *slog.Logger) *Aggregator {
	return NewWithLimits(provider, pageSize, Limits{}, logger)
}

// NewWithLimits builds an Aggregator that fans out within limits.
func NewWithLimits(provider providers.MatchProvider, pageSize int, limits Limits, logger *slog.Logger) *Aggregator {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Aggregator{
		provider: provider,
		pageSize: pageSize,
		limits:   limits.withDefaults(),
		logger:   logger,
		now:      time.Now,
	}
}

// FetchAll reads page 1 to learn the page count, then fetches the rest
// concurrently and concatenates everything in page order.
// Any failed page fails the whole call; no partial result is returned.
func (a *Aggregator) FetchAll(ctx context.Context) (Result, error) {
	if a == nil || a.provider == nil {
		return Result{}, &FetchError{Page: 1, Err: providers.ErrProviderUnavailable}
	}
	start := a.now()
	logger := logging.FromContext(ctx, a.logger)

	first, err := a.provider.FetchMatchPage(ctx, 1, a.pageSize)
	if err != nil {
		return Result{}, a.fail(logger, 1, err)
	}

	totalPages := first.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	if totalPages > a.limits.MaxPages {
		return Result{}, a.fail(logger, 1, fmt.Errorf("%w: totalPages %d exceeds limit %d",
			providers.ErrMalformedPayload, totalPages, a.limits.MaxPages))
	}

	rest := make([][]matches.Match, totalPages-1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.limits.MaxInFlight)
	for page := 2; page <= totalPages; page++ {
		page := page
		if err := gctx.Err(); err != nil {
			// Keep the first failure; a canceled parent still fails the call.
			g.Go(func() error { return &FetchError{Page: page, Err: err} })
			break
		}
		g.Go(func() error {
			p, err := a.provider.FetchMatchPage(gctx, page, a.pageSize)
			if err != nil {
				return &FetchError{Page: page, Err: err}
			}
			rest[page-2] = p.Matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var fe *FetchError
		if !errors.As(err, &fe) {
			fe = &FetchError{Err: err}
		}
		return Result{}, a.fail(logger, fe.Page, fe.Err)
	}

	size := len(first.Matches)
	for _, chunk := range rest {
		size += len(chunk)
	}
	all := make([]matches.Match, 0, size)
	all = append(all, first.Matches...)
	for _, chunk := range rest {
		all = append(all, chunk...)
	}

	logging.Info(logger, "aggregation complete",
		slog.Int(logging.FieldPages, totalPages),
		slog.Int(logging.FieldCount, len(all)),
		slog.Int64(logging.FieldDurationMS, a.now().Sub(start).Milliseconds()),
	)
	return Result{Matches: all, Pages: totalPages}, nil
}

func (a *Aggregator) fail(logger *slog.Logger, page int, err error) error {
	logging.Warn(logger, "aggregation failed",
		slog.Int(logging.FieldPage, page),
		slog.Any("err", err),
	)
	return &FetchError{Page: page, Err: err}
}
