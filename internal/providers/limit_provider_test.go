package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-recap-service/internal/testutil"
)

func TestRateLimitedProviderBlocksUntilTick(t *testing.T) {
	inner := &testutil.StubProvider{}
	rl := NewRateLimitedProvider(inner, 5*time.Millisecond, nil).(*rateLimitedProvider)
	defer rl.Close()

	start := time.Now()
	if _, err := rl.ListGames(context.Background(), "2024-25"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Fatalf("expected call to wait for ticker, elapsed %s", elapsed)
	}
	if inner.ListCalls() != 1 {
		t.Fatalf("expected inner provider called once, got %d", inner.ListCalls())
	}
}

func TestRateLimitedProviderThrottlesStatsFetches(t *testing.T) {
	inner := &testutil.StubProvider{FailGames: map[string]error{"a": nil, "b": nil}}
	rl := NewRateLimitedProvider(inner, 5*time.Millisecond, nil).(*rateLimitedProvider)
	defer rl.Close()

	start := time.Now()
	_, _ = rl.FetchGameStats(context.Background(), "a")
	_, _ = rl.FetchGameStats(context.Background(), "b")
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Fatalf("expected two ticks between calls, elapsed %s", elapsed)
	}
	if got := inner.FetchedGames(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected fetch order %v", got)
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &testutil.StubProvider{}
	rl := NewRateLimitedProvider(inner, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchGameStats(ctx, "g"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if len(inner.FetchedGames()) != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	rl := NewRateLimitedProvider(nil, time.Millisecond, nil)

	if _, err := rl.ListGames(context.Background(), "2024-25"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDefaultsInterval(t *testing.T) {
	rl := NewRateLimitedProvider(&testutil.StubProvider{}, 0, nil).(*rateLimitedProvider)
	defer rl.Close()
	if rl.interval != defaultMinInterval {
		t.Fatalf("expected default interval %s, got %s", defaultMinInterval, rl.interval)
	}
}
