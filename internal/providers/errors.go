package providers

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrProviderUnavailable signals the upstream could not be reached.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrUpstreamStatus signals a non-success HTTP status.
	ErrUpstreamStatus = errors.New("unexpected upstream status")
	// ErrMalformedPayload signals a body that could not be decoded.
	ErrMalformedPayload = errors.New("malformed upstream payload")
)

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// Unwrap lets errors.Is(err, ErrUpstreamStatus) match rate limit responses.
func (e *RateLimitError) Unwrap() error {
	return ErrUpstreamStatus
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
