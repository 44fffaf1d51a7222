// Command recap prints the daily recap and leaderboard for one date.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/nba-recap-service/internal/app/daily"
	"github.com/preston-bernstein/nba-recap-service/internal/app/leaderboard"
	"github.com/preston-bernstein/nba-recap-service/internal/app/report"
	"github.com/preston-bernstein/nba-recap-service/internal/config"
	"github.com/preston-bernstein/nba-recap-service/internal/domain/summaries"
	"github.com/preston-bernstein/nba-recap-service/internal/logging"
	"github.com/preston-bernstein/nba-recap-service/internal/server"
	"github.com/preston-bernstein/nba-recap-service/internal/timeutil"
)

const appName = "nba-recap"

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		date = fs.String("date", "", "Date to recap (YYYY-MM-DD), defaults to today in TIMEZONE")
		stat = fs.String("stat", string(summaries.StatPoints), "Leaderboard stat (PTS, REB or AST)")
		top  = fs.Int("top", 10, "Number of leaderboard entries")
		team = fs.String("team", "", "Only show games for teams matching this code")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	day := *date
	if day == "" {
		day = timeutil.Today(time.Now(), cfg.Location())
	}
	chosen, err := summaries.ParseStat(*stat)
	if err != nil {
		return err
	}
	if *top < 0 {
		return fmt.Errorf("invalid -top %d", *top)
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Output:  stderr,
	})
	provider, closeProvider := server.NewProvider(cfg, logger, nil)
	defer closeProvider()

	rep, err := daily.NewService(provider, provider, logger, nil).Report(ctx, day)
	if err != nil {
		return err
	}
	if *team != "" {
		rep.Games = report.FilterByTeam(rep.Games, *team)
		rep.PlayerOfTheDay = report.PlayerOfTheDay(rep.Games)
	}

	return printReport(stdout, rep, chosen, *top)
}

func printReport(w io.Writer, rep summaries.DailyReport, stat summaries.Stat, top int) error {
	if _, err := io.WriteString(w, report.Render(rep)); err != nil {
		return err
	}
	entries := leaderboard.TopPlayersByStat(rep.Games, stat, top)
	if len(entries) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\n## %s\n", leaderboard.Title(stat)); err != nil {
		return err
	}
	for i, e := range entries {
		if _, err := fmt.Fprintf(w, "%d. %s (%s) %s\n", i+1, e.Player, e.Team, report.FormatValue(&e.Value)); err != nil {
			return err
		}
	}
	return nil
}
