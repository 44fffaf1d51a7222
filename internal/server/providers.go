package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-recap-service/internal/config"
	"github.com/preston-bernstein/nba-recap-service/internal/metrics"
	"github.com/preston-bernstein/nba-recap-service/internal/providers"
	"github.com/preston-bernstein/nba-recap-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-recap-service/internal/providers/nbastats"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// builtProvider is the wrapped provider plus the cleanup for its rate limiter ticker.
type builtProvider struct {
	provider providers.StatsProvider
	close    func()
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) builtProvider {
	switch cfg.Provider {
	case config.ProviderNBAStats:
		client := nbastats.NewClient(nbastats.Config{
			BaseURL:    cfg.NBAStats.BaseURL,
			Timeout:    cfg.NBAStats.Timeout,
			SeasonType: cfg.NBAStats.SeasonType,
		})
		limited := providers.NewRateLimitedProvider(client, cfg.NBAStats.MinInterval, f.logger)
		built := builtProvider{
			provider: providers.NewRetryingProvider(limited, f.logger, f.metrics, cfg.Provider, cfg.NBAStats.RetryAttempts, cfg.NBAStats.RetryBackoff),
			close:    func() {},
		}
		if c, ok := limited.(interface{ Close() }); ok {
			built.close = c.Close
		}
		return built
	default:
		// Fixture data is local, so it skips the rate limiter and retries once.
		base := fixture.New(cfg.Location())
		return builtProvider{
			provider: providers.NewRetryingProvider(base, f.logger, f.metrics, config.ProviderFixture, 1, 0),
			close:    func() {},
		}
	}
}

// NewProvider builds the configured provider with its rate limit and retry
// wrappers. The returned func releases the rate limiter.
func NewProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.StatsProvider, func()) {
	built := newProviderFactory(logger, recorder).build(cfg)
	return built.provider, built.close
}
