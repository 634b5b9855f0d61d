package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// NewBufferLogger returns a slog logger backed by a buffer and the buffer for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// AssertLogContains fails the test when the buffer does not contain want.
func AssertLogContains(t *testing.T, buf *bytes.Buffer, want string) {
	t.Helper()
	if !strings.Contains(buf.String(), want) {
		t.Fatalf("expected log to contain %q, got %s", want, buf.String())
	}
}
