package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected defaults to load, got %v", err)
	}

	if cfg.Port != "4000" {
		t.Fatalf("expected default port 4000, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderFixture {
		t.Fatalf("expected default provider fixture, got %s", cfg.Provider)
	}
	if cfg.Timezone != "America/New_York" {
		t.Fatalf("expected default timezone, got %s", cfg.Timezone)
	}
	if cfg.NBAStats.BaseURL != "https://stats.nba.com/stats" {
		t.Fatalf("unexpected default base url %s", cfg.NBAStats.BaseURL)
	}
	if cfg.NBAStats.Timeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %s", cfg.NBAStats.Timeout)
	}
	if cfg.NBAStats.RetryAttempts != 3 {
		t.Fatalf("expected 3 retry attempts, got %d", cfg.NBAStats.RetryAttempts)
	}
	if cfg.NBAStats.SeasonType != "" {
		t.Fatalf("expected no default season type, got %q", cfg.NBAStats.SeasonType)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Digest.Enabled || cfg.Digest.Hour != 9 {
		t.Fatalf("unexpected digest defaults %+v", cfg.Digest)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected cors defaults %+v", cfg.CORS)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("PROVIDER", "NBAStats")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("NBA_STATS_BASE_URL", "http://example.com/stats")
	t.Setenv("NBA_STATS_MIN_INTERVAL", "2s")
	t.Setenv("NBA_STATS_SEASON_TYPE", "Playoffs")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("DIGEST_ENABLED", "true")
	t.Setenv("DIGEST_HOUR", "7")
	t.Setenv("TELEGRAM_CHAT_ID", "12345")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected overrides to load, got %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderNBAStats {
		t.Fatalf("expected provider to be normalized, got %s", cfg.Provider)
	}
	if cfg.NBAStats.BaseURL != "http://example.com/stats" {
		t.Fatalf("expected base url override, got %s", cfg.NBAStats.BaseURL)
	}
	if cfg.NBAStats.SeasonType != "Playoffs" {
		t.Fatalf("expected season type override, got %q", cfg.NBAStats.SeasonType)
	}
	if cfg.NBAStats.MinInterval != 2*time.Second {
		t.Fatalf("expected min interval 2s, got %s", cfg.NBAStats.MinInterval)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected two origins, got %+v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Digest.Enabled || cfg.Digest.Hour != 7 || cfg.Digest.TelegramChatID != 12345 {
		t.Fatalf("unexpected digest overrides %+v", cfg.Digest)
	}
	if cfg.Location().String() != "UTC" {
		t.Fatalf("expected UTC location, got %s", cfg.Location())
	}
}

func TestLoadInvalidDurationFails(t *testing.T) {
	t.Setenv("NBA_STATS_TIMEOUT", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("PROVIDER", "espn")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "unknown provider") {
		t.Fatalf("expected unknown provider error, got %v", err)
	}
}

func TestLoadRejectsOutOfRangeDigestHour(t *testing.T) {
	t.Setenv("DIGEST_HOUR", "24")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for digest hour 24")
	}
}

func TestLocationFallsBackToUTC(t *testing.T) {
	cfg := Config{Timezone: "Not/AZone"}
	if cfg.Location() != time.UTC {
		t.Fatalf("expected UTC fallback")
	}
}
