package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-recap-service/internal/config"
	"github.com/preston-bernstein/nba-recap-service/internal/digest"
	"github.com/preston-bernstein/nba-recap-service/internal/logging"
)

// Scheduler defines the background job behavior needed by the server.
type Scheduler interface {
	Start() error
	Stop() error
}

var newTelegramNotifier = func(token string, chatID int64) (digest.Notifier, error) {
	return digest.NewTelegramNotifier(token, chatID)
}

// buildDigest returns nil when the digest is disabled.
func buildDigest(cfg config.Config, svc digest.ReportService, logger *slog.Logger) (Scheduler, error) {
	if !cfg.Digest.Enabled {
		return nil, nil
	}

	var notifier digest.Notifier = digest.LogNotifier{Logger: logger}
	if cfg.Digest.TelegramToken != "" {
		tg, err := newTelegramNotifier(cfg.Digest.TelegramToken, cfg.Digest.TelegramChatID)
		if err != nil {
			logging.Warn(logger, "telegram unavailable, digest falls back to the log", slog.Any("error", err))
		} else {
			notifier = tg
		}
	}

	d := digest.New(svc, notifier, cfg.Location(), logger)
	sched, err := digest.NewScheduler(d, cfg.Digest.Hour)
	if err != nil {
		return nil, err
	}
	return sched, nil
}
