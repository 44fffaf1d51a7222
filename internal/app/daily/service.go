package daily

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-recap-service/internal/app/extractor"
	"github.com/preston-bernstein/nba-recap-service/internal/app/report"
	"github.com/preston-bernstein/nba-recap-service/internal/domain/games"
	"github.com/preston-bernstein/nba-recap-service/internal/domain/summaries"
	"github.com/preston-bernstein/nba-recap-service/internal/logging"
	"github.com/preston-bernstein/nba-recap-service/internal/matchup"
	"github.com/preston-bernstein/nba-recap-service/internal/metrics"
	"github.com/preston-bernstein/nba-recap-service/internal/providers"
	"github.com/preston-bernstein/nba-recap-service/internal/timeutil"
)

// Season is the league year every listing request is scoped to.
const Season = games.Season

// ErrInvalidDate is returned when the requested date is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// Service builds the summaries for one calendar date.
type Service struct {
	lister  providers.GameLister
	fetcher providers.StatsFetcher
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewService constructs a Service. logger and recorder may be nil.
func NewService(lister providers.GameLister, fetcher providers.StatsFetcher, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		lister:  lister,
		fetcher: fetcher,
		logger:  logger,
		metrics: recorder,
	}
}

// SummariesForDate lists the season, keeps the games played on date and
// summarizes each one in listing order. A game whose stats cannot be fetched
// or extracted is logged and skipped; only a listing failure is returned.
func (s *Service) SummariesForDate(ctx context.Context, date string) ([]summaries.GameSummary, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	start := time.Now()
	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldDate, date))
	}

	if s.lister == nil || s.fetcher == nil {
		s.metrics.RecordDailyBuild(time.Since(start), providers.ErrProviderUnavailable)
		return nil, providers.ErrProviderUnavailable
	}

	rows, err := s.lister.ListGames(ctx, Season)
	if err != nil {
		s.metrics.RecordDailyBuild(time.Since(start), err)
		logging.Error(logger, "game listing failed", err, slog.String(logging.FieldSeason, Season))
		return nil, fmt.Errorf("list games for %s: %w", Season, err)
	}

	played := games.OnDate(games.Dedupe(rows), date)
	if len(played) == 0 {
		s.metrics.RecordDailyBuild(time.Since(start), nil)
		logging.Info(logger, "no games found")
		return []summaries.GameSummary{}, nil
	}

	out := make([]summaries.GameSummary, 0, len(played))
	skipped := 0
	for _, row := range played {
		summary, reason, err := s.summarize(ctx, row)
		if err != nil {
			skipped++
			s.metrics.RecordGameSkipped(reason)
			logging.Warn(logger, "game skipped",
				slog.String(logging.FieldGameID, row.GameID),
				slog.String(logging.FieldMatchup, row.Matchup),
				slog.String(logging.FieldReason, reason),
				slog.Any(logging.FieldError, err),
			)
			continue
		}
		s.metrics.RecordGameSummarized()
		logging.Debug(logger, "game summarized",
			slog.String(logging.FieldGameID, row.GameID),
			slog.String("winner", summary.Winner),
		)
		out = append(out, summary)
	}

	elapsed := time.Since(start)
	s.metrics.RecordDailyBuild(elapsed, nil)
	logging.Info(logger, "daily summaries built",
		slog.Int(logging.FieldCount, len(out)),
		slog.Int(logging.FieldSkipped, skipped),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return out, nil
}

func (s *Service) summarize(ctx context.Context, row games.GameRow) (summaries.GameSummary, string, error) {
	home, away := matchup.Parse(row.Matchup)

	raw, err := s.fetcher.FetchGameStats(ctx, row.GameID)
	if err != nil {
		return summaries.GameSummary{}, metrics.ReasonFetch, err
	}

	summary, err := extractor.Extract(raw, home, away)
	if err != nil {
		return summaries.GameSummary{}, metrics.ReasonExtract, err
	}
	summary.GameID = row.GameID
	return summary, "", nil
}

// Report builds the full daily report: summaries, player of the day and a
// notice when no games were played.
func (s *Service) Report(ctx context.Context, date string) (summaries.DailyReport, error) {
	list, err := s.SummariesForDate(ctx, date)
	if err != nil {
		return summaries.DailyReport{}, err
	}
	rep := summaries.DailyReport{
		Date:           date,
		Games:          list,
		PlayerOfTheDay: report.PlayerOfTheDay(list),
	}
	if len(list) == 0 {
		rep.Notice = NoGamesNotice(date)
	}
	return rep, nil
}

// NoGamesNotice is the informational message shown for an empty slate.
func NoGamesNotice(date string) string {
	return "no games found for " + date
}
