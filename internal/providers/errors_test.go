package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("page 3: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestRateLimitErrorIsUpstreamStatus(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &RateLimitError{StatusCode: 429})
	if !errors.Is(err, ErrUpstreamStatus) {
		t.Fatalf("expected rate limit error to match ErrUpstreamStatus")
	}
}

func TestAsRateLimitErrorRejectsOtherErrors(t *testing.T) {
	if _, ok := AsRateLimitError(errors.New("boom")); ok {
		t.Fatal("expected plain error not to unwrap")
	}
}
