package providers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
	"github.com/preston-bernstein/worldcup-versus-service/internal/teststubs"
)

func TestLimitedProviderCapsInFlightFetches(t *testing.T) {
	gate := make(chan struct{})
	inner := &teststubs.StubProvider{Gate: gate}
	lp := NewLimitedProvider(inner, 2, "stub", nil).(*limitedProvider)

	var wg sync.WaitGroup
	for page := 1; page <= 4; page++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			_, _ = lp.FetchMatchPage(context.Background(), p, 10)
		}(page)
	}

	deadline := time.Now().Add(time.Second)
	for inner.Calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(10 * time.Millisecond)
	if got := inner.Calls.Load(); got != 2 {
		t.Fatalf("expected 2 fetches in flight, got %d", got)
	}
	if got := len(lp.slots); got != 2 {
		t.Fatalf("expected 2 occupied slots, got %d", got)
	}

	close(gate)
	wg.Wait()
	if got := inner.Calls.Load(); got != 4 {
		t.Fatalf("expected all 4 pages fetched after release, got %d", got)
	}
	if got := len(lp.slots); got != 0 {
		t.Fatalf("expected slots released, got %d", got)
	}
}

func TestLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubProvider{Gate: make(chan struct{})}
	lp := NewLimitedProvider(inner, 1, "stub", nil)

	go func() { _, _ = lp.FetchMatchPage(context.Background(), 1, 10) }()
	deadline := time.Now().Add(time.Second)
	for inner.Calls.Load() < 1 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := lp.FetchMatchPage(ctx, 2, 10); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected waiting fetch not to reach inner provider")
	}
	close(inner.Gate)
}

func TestLimitedProviderHandlesNilInner(t *testing.T) {
	lp := NewLimitedProvider(nil, 1, "stub", nil)

	if _, err := lp.FetchMatchPage(context.Background(), 1, 10); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if _, err := lp.FetchTeams(context.Background()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable for teams, got %v", err)
	}
}

func TestLimitedProviderDefaultsSlots(t *testing.T) {
	lp := NewLimitedProvider(&teststubs.StubProvider{}, 0, "stub", nil).(*limitedProvider)
	if cap(lp.slots) != defaultMaxInFlight {
		t.Fatalf("expected default %d slots, got %d", defaultMaxInFlight, cap(lp.slots))
	}
}

func TestLimitedProviderForwardsTeams(t *testing.T) {
	inner := &teststubs.StubProvider{Teams: []teams.Team{{Code: "BRA", Name: "Brazil"}}}
	lp := NewLimitedProvider(inner, 1, "stub", nil)

	items, err := lp.FetchTeams(context.Background())
	if err != nil || len(items) != 1 || items[0].Code != "BRA" {
		t.Fatalf("unexpected teams %+v err=%v", items, err)
	}
}
