package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderFixture  = "fixture"
	ProviderNBAStats = "nbastats"
)

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port     string `envconfig:"PORT" default:"4000"`
	Provider string `envconfig:"PROVIDER" default:"fixture"`
	Timezone string `envconfig:"TIMEZONE" default:"America/New_York"`
	Log      LogConfig
	NBAStats NBAStatsConfig
	Metrics  MetricsConfig
	CORS     CORSConfig
	Digest   DigestConfig
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// NBAStatsConfig controls how we talk to stats.nba.com.
type NBAStatsConfig struct {
	BaseURL       string        `envconfig:"NBA_STATS_BASE_URL" default:"https://stats.nba.com/stats"`
	Timeout       time.Duration `envconfig:"NBA_STATS_TIMEOUT" default:"30s"`
	MinInterval   time.Duration `envconfig:"NBA_STATS_MIN_INTERVAL" default:"600ms"`
	RetryAttempts int           `envconfig:"NBA_STATS_RETRY_ATTEMPTS" default:"3"`
	RetryBackoff  time.Duration `envconfig:"NBA_STATS_RETRY_BACKOFF" default:"500ms"`
	SeasonType    string        `envconfig:"NBA_STATS_SEASON_TYPE"`
}

// CORSConfig lists the dashboard origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	switch c.Provider {
	case ProviderFixture, ProviderNBAStats:
	default:
		errs = append(errs, fmt.Errorf("config: unknown provider %q", c.Provider))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("config: port must not be empty"))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("config: invalid timezone %q: %w", c.Timezone, err))
	}
	if c.NBAStats.Timeout <= 0 {
		errs = append(errs, errors.New("config: NBA_STATS_TIMEOUT must be positive"))
	}
	if c.Digest.Hour < 0 || c.Digest.Hour > 23 {
		errs = append(errs, fmt.Errorf("config: DIGEST_HOUR must be 0-23, got %d", c.Digest.Hour))
	}
	return errors.Join(errs...)
}

// Location resolves the configured timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	if loc, err := time.LoadLocation(c.Timezone); err == nil {
		return loc
	}
	return time.UTC
}
