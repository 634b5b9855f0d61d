package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/worldcup-versus-service/internal/logging"
	"github.com/preston-bernstein/worldcup-versus-service/internal/metrics"
	"github.com/preston-bernstein/worldcup-versus-service/internal/session"
)

const defaultInterval = 15 * time.Minute

// Refresher runs one token-guarded aggregation.
type Refresher interface {
	Refresh(ctx context.Context) (session.RefreshResult, error)
}

// Poller refreshes the session on an interval. Each tick is a fresh
// aggregation; a failed tick is never retried before the next one.
type Poller struct {
	refresher Refresher
	logger    *slog.Logger
	interval  time.Duration
	now       func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(refresher Refresher, logger *slog.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		refresher: refresher,
		logger:    logger,
		interval:  interval,
		now:       time.Now,
		done:      make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial load so the roster is available right after boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)
	if p.refresher == nil {
		return
	}
	res, err := p.refresher.Refresh(ctx)
	if err != nil {
		logging.Error(p.logger, "poller refresh failed", err, slog.Int64(logging.FieldDurationMS, p.now().Sub(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}
	if res.Outcome == metrics.OutcomeDiscarded {
		return
	}
	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed matches",
		logging.FieldCount, res.Matches,
		logging.FieldPages, res.Pages,
		logging.FieldDurationMS, p.now().Sub(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
