package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type refreshStats struct {
	applied     int
	failed      int
	discarded   int
	lastMatches int
	lastPages   int
}

// Recorder captures in-memory counters for provider calls and refresh cycles,
// and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*providerStats
	refresh refreshStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordRefresh tracks one aggregation run and how it ended.
// pages and matchCount describe the collection that was assembled, when any.
func (r *Recorder) RecordRefresh(outcome string, duration time.Duration, pages, matchCount int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	switch outcome {
	case OutcomeApplied:
		r.refresh.applied++
		r.refresh.lastPages = pages
		r.refresh.lastMatches = matchCount
	case OutcomeFailed:
		r.refresh.failed++
	case OutcomeDiscarded:
		r.refresh.discarded++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefresh(outcome, duration, pages)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RefreshSnapshot is a copy of the refresh counters.
type RefreshSnapshot struct {
	Applied     int
	Failed      int
	Discarded   int
	LastMatches int
	LastPages   int
}

// Refreshes returns the refresh counters.
func (r *Recorder) Refreshes() RefreshSnapshot {
	if r == nil {
		return RefreshSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return RefreshSnapshot{
		Applied:     r.refresh.applied,
		Failed:      r.refresh.failed,
		Discarded:   r.refresh.discarded,
		LastMatches: r.refresh.lastMatches,
		LastPages:   r.refresh.lastPages,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
