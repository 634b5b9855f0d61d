package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("worldcup", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("worldcup", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("worldcup"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("worldcup"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("worldcup"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("worldcup")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("worldcup", 5*time.Second)
	rec.RecordRateLimit("worldcup", 0)

	if got := rec.RateLimitHits("worldcup"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("worldcup"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksRefreshOutcomes(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRefresh(OutcomeApplied, time.Millisecond, 3, 250)
	rec.RecordRefresh(OutcomeFailed, time.Millisecond, 0, 0)
	rec.RecordRefresh(OutcomeDiscarded, time.Millisecond, 2, 120)

	got := rec.Refreshes()
	if got.Applied != 1 || got.Failed != 1 || got.Discarded != 1 {
		t.Fatalf("unexpected refresh counters %+v", got)
	}
	if got.LastPages != 3 || got.LastMatches != 250 {
		t.Fatalf("expected last applied refresh to be kept, got %+v", got)
	}
}

func TestRecorderIsSafeForConcurrentUse(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordProviderAttempt("worldcup", time.Millisecond, nil)
		}()
	}
	wg.Wait()
	if got := rec.ProviderCalls("worldcup"); got != 20 {
		t.Fatalf("expected 20 calls, got %d", got)
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("p", time.Millisecond, nil)
	rec.RecordRateLimit("p", time.Second)
	rec.RecordRefresh(OutcomeApplied, time.Millisecond, 1, 1)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	if rec.ProviderCalls("p") != 0 || rec.Refreshes().Applied != 0 {
		t.Fatal("expected zero values from nil recorder")
	}
}
