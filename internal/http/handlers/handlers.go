package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-recap-service/internal/app/daily"
	"github.com/preston-bernstein/nba-recap-service/internal/app/leaderboard"
	"github.com/preston-bernstein/nba-recap-service/internal/app/report"
	"github.com/preston-bernstein/nba-recap-service/internal/domain/summaries"
	"github.com/preston-bernstein/nba-recap-service/internal/logging"
	"github.com/preston-bernstein/nba-recap-service/internal/timeutil"
)

const (
	defaultTop      = 10
	markdownContent = "text/markdown; charset=utf-8"
)

// ReportService builds the daily report for a date.
type ReportService interface {
	Report(ctx context.Context, date string) (summaries.DailyReport, error)
}

type nowFunc func() time.Time

// LeaderboardResponse is the ranked chart payload.
type LeaderboardResponse struct {
	Date    string              `json:"date"`
	Stat    summaries.Stat      `json:"stat"`
	Title   string              `json:"title"`
	Entries []leaderboard.Entry `json:"entries"`
}

// Handler wires HTTP routes to the daily report service.
type Handler struct {
	svc    ReportService
	loc    *time.Location
	logger *slog.Logger
	now    nowFunc
}

// NewHandler constructs a Handler. A nil loc means UTC.
func NewHandler(svc ReportService, loc *time.Location, logger *slog.Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		svc:    svc,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Summaries returns the daily report, optionally narrowed to one team.
func (h *Handler) Summaries(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.report(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rep, h.logger)
}

// SummariesText returns the markdown recap.
func (h *Handler) SummariesText(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.report(w, r)
	if !ok {
		return
	}
	writeText(w, http.StatusOK, markdownContent, report.Render(rep), h.logger)
}

// Leaderboard returns the top players for one stat.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	stat := summaries.StatPoints
	if raw := q.Get("stat"); raw != "" {
		parsed, err := summaries.ParseStat(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid stat (expected PTS, REB or AST)", h.logger)
			return
		}
		stat = parsed
	}

	top := defaultTop
	if raw := q.Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, r, http.StatusBadRequest, "invalid top (expected a non-negative integer)", h.logger)
			return
		}
		top = n
	}

	rep, ok := h.report(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, LeaderboardResponse{
		Date:    rep.Date,
		Stat:    stat,
		Title:   leaderboard.Title(stat),
		Entries: leaderboard.TopPlayersByStat(rep.Games, stat, top),
	}, h.logger)
}

// report resolves the date and team parameters and builds the report. It
// writes the error response itself and returns false on failure.
func (h *Handler) report(w http.ResponseWriter, r *http.Request) (summaries.DailyReport, bool) {
	logger := loggerFromContext(r, h.logger)
	q := r.URL.Query()

	date := q.Get("date")
	if date == "" {
		date = timeutil.Today(h.now(), h.loc)
	} else if _, err := timeutil.ParseDate(date); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
		return summaries.DailyReport{}, false
	}

	if h.svc == nil {
		writeError(w, r, http.StatusServiceUnavailable, "report service unavailable", h.logger)
		return summaries.DailyReport{}, false
	}

	rep, err := h.svc.Report(r.Context(), date)
	if err != nil {
		if errors.Is(err, daily.ErrInvalidDate) {
			writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return summaries.DailyReport{}, false
		}
		logging.Error(logger, "daily report failed", err, slog.String(logging.FieldDate, date))
		writeError(w, r, http.StatusBadGateway, "game data unavailable", h.logger)
		return summaries.DailyReport{}, false
	}

	if team := strings.TrimSpace(q.Get("team")); team != "" {
		rep.Games = report.FilterByTeam(rep.Games, team)
		rep.PlayerOfTheDay = report.PlayerOfTheDay(rep.Games)
	}

	logging.Info(logger, "served daily report",
		slog.String(logging.FieldDate, rep.Date),
		slog.Int(logging.FieldCount, len(rep.Games)),
	)
	return rep, true
}
