package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-recap-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-recap-service/internal/domain/games"
	"github.com/preston-bernstein/nba-recap-service/internal/logging"
)

const defaultMinInterval = 600 * time.Millisecond

// rateLimitedProvider enforces a minimum interval between upstream calls.
type rateLimitedProvider struct {
	next     StatsProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a StatsProvider whose calls block until the
// interval elapses. stats.nba.com throttles aggressive clients.
func NewRateLimitedProvider(next StatsProvider, interval time.Duration, logger *slog.Logger) StatsProvider {
	if interval <= 0 {
		interval = defaultMinInterval
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) ListGames(ctx context.Context, season string) ([]games.GameRow, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited list games", slog.String(logging.FieldSeason, season))
	return p.next.ListGames(ctx, season)
}

func (p *rateLimitedProvider) FetchGameStats(ctx context.Context, gameID string) (boxscores.RawGameStats, error) {
	if err := p.wait(ctx); err != nil {
		return boxscores.RawGameStats{}, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited fetch game stats", slog.String(logging.FieldGameID, gameID))
	return p.next.FetchGameStats(ctx, gameID)
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited call canceled")
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Close stops the underlying ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
