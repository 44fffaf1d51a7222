package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/nba-recap-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-recap-service/internal/domain/games"
	"github.com/preston-bernstein/nba-recap-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 500 * time.Millisecond
	maxBackoffInterval   = 10 * time.Second
)

// retryingProvider wraps a StatsProvider with exponential backoff retries.
type retryingProvider struct {
	inner        StatsProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
	sleep        func(ctx context.Context, d time.Duration) error
}

// NewRetryingProvider retries failed calls up to maxAttempts times in total.
// Rate limit responses wait at least their Retry-After. Values <= 0 use defaults.
func NewRetryingProvider(inner StatsProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, base time.Duration) StatsProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if base <= 0 {
		base = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		newBackOff:   exponentialBackOff(base, maxAttempts-1),
		sleep:        sleepContext,
	}
}

func (r *retryingProvider) ListGames(ctx context.Context, season string) ([]games.GameRow, error) {
	return retry(ctx, r, "list_games", func(ctx context.Context) ([]games.GameRow, error) {
		return r.inner.ListGames(ctx, season)
	})
}

func (r *retryingProvider) FetchGameStats(ctx context.Context, gameID string) (boxscores.RawGameStats, error) {
	return retry(ctx, r, "fetch_game_stats", func(ctx context.Context) (boxscores.RawGameStats, error) {
		return r.inner.FetchGameStats(ctx, gameID)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, op string, call func(context.Context) (T, error)) (T, error) {
	var zero T
	if r.inner == nil {
		return zero, ErrProviderUnavailable
	}

	b := r.newBackOff()
	for attempt := 1; ; attempt++ {
		start := time.Now()
		val, err := call(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return val, nil
		}

		rlErr, limited := AsRateLimitError(err)
		if limited {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
		}
		if !retryable(ctx, err) {
			return zero, err
		}

		delay := b.NextBackOff()
		if delay == backoff.Stop {
			logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider call failed",
				slog.String("op", op), slog.Int("attempts", attempt), slog.Any("error", err))
			return zero, err
		}
		if limited && rlErr.RetryAfter > delay {
			delay = rlErr.RetryAfter
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider call retry",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)
		if err := r.sleep(ctx, delay); err != nil {
			return zero, err
		}
	}
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrProviderUnavailable) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	return true
}

func exponentialBackOff(base time.Duration, retries int) func() backoff.BackOff {
	return func() backoff.BackOff {
		if retries <= 0 {
			return &backoff.StopBackOff{}
		}
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = base
		exp.MaxInterval = maxBackoffInterval
		exp.MaxElapsedTime = 0
		exp.Reset()
		return backoff.WithMaxRetries(exp, uint64(retries))
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
