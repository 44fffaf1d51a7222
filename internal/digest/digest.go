// Package digest posts the previous day's recap on a daily schedule.
package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/preston-bernstein/nba-recap-service/internal/app/report"
	"github.com/preston-bernstein/nba-recap-service/internal/domain/summaries"
	"github.com/preston-bernstein/nba-recap-service/internal/logging"
	"github.com/preston-bernstein/nba-recap-service/internal/timeutil"
)

// DefaultRunTimeout bounds one scheduled digest run.
const DefaultRunTimeout = 5 * time.Minute

// ErrInvalidHour is returned for a schedule hour outside 0-23.
var ErrInvalidHour = errors.New("digest hour must be between 0 and 23")

// ReportService builds the daily report for a date.
type ReportService interface {
	Report(ctx context.Context, date string) (summaries.DailyReport, error)
}

// Digest renders yesterday's report and hands it to a notifier.
type Digest struct {
	svc      ReportService
	notifier Notifier
	loc      *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// New constructs a Digest. A nil loc means UTC.
func New(svc ReportService, notifier Notifier, loc *time.Location, logger *slog.Logger) *Digest {
	if loc == nil {
		loc = time.UTC
	}
	return &Digest{
		svc:      svc,
		notifier: notifier,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// RunOnce posts the recap for the day before today in the digest location.
func (d *Digest) RunOnce(ctx context.Context) error {
	date, err := timeutil.DayBefore(timeutil.Today(d.now(), d.loc))
	if err != nil {
		return err
	}
	return d.RunForDate(ctx, date)
}

// RunForDate posts the recap for date.
func (d *Digest) RunForDate(ctx context.Context, date string) error {
	rep, err := d.svc.Report(ctx, date)
	if err != nil {
		return fmt.Errorf("build report for %s: %w", date, err)
	}
	if err := d.notifier.Notify(ctx, report.Render(rep)); err != nil {
		return fmt.Errorf("deliver digest for %s: %w", date, err)
	}
	logging.Info(d.logger, "daily digest delivered",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(rep.Games)),
	)
	return nil
}

// Scheduler runs the digest once a day at a fixed hour.
type Scheduler struct {
	s       gocron.Scheduler
	digest  *Digest
	hour    int
	timeout time.Duration
}

// NewScheduler creates a scheduler in the digest's location.
func NewScheduler(d *Digest, hour int) (*Scheduler, error) {
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHour, hour)
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(d.loc))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{s: s, digest: d, hour: hour, timeout: DefaultRunTimeout}, nil
}

// Start registers the daily job and starts the scheduler.
func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(s.hour), 0, 0))),
		gocron.NewTask(s.run),
	)
	if err != nil {
		return fmt.Errorf("failed to create digest job: %w", err)
	}
	s.s.Start()
	logging.Info(s.digest.logger, "digest scheduled", slog.Int("hour", s.hour))
	return nil
}

// Stop shuts the scheduler down and waits for a running job.
func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.digest.RunOnce(ctx); err != nil {
		logging.Error(s.digest.logger, "daily digest failed", err)
	}
}
