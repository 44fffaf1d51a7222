package providers

import (
	"fmt"
	"strings"
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

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
	if _, ok := AsRateLimitError(ErrProviderUnavailable); ok {
		t.Fatalf("did not expect rate limit error")
	}
}

func TestStatusError(t *testing.T) {
	err := &StatusError{Provider: "nbastats", StatusCode: 503, Body: "busy"}
	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "busy") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !err.Temporary() {
		t.Fatalf("expected 503 to be temporary")
	}
	if (&StatusError{StatusCode: 404}).Temporary() {
		t.Fatalf("expected 404 to be permanent")
	}
}
