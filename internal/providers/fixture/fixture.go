package fixture

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-recap-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-recap-service/internal/domain/games"
	"github.com/preston-bernstein/nba-recap-service/internal/timeutil"
)

const (
	idPrefix    = "fixture-"
	defaultDays = 7
)

type team struct {
	id     int
	abbr   string
	name   string
	roster [3]string
}

var teams = []team{
	{1610612738, "BOS", "Boston Celtics", [3]string{"Jayson Tatum", "Jaylen Brown", "Derrick White"}},
	{1610612747, "LAL", "Los Angeles Lakers", [3]string{"LeBron James", "Anthony Davis", "Austin Reaves"}},
	{1610612744, "GSW", "Golden State Warriors", [3]string{"Stephen Curry", "Draymond Green", "Andrew Wiggins"}},
	{1610612748, "MIA", "Miami Heat", [3]string{"Jimmy Butler", "Bam Adebayo", "Tyler Herro"}},
	{1610612743, "DEN", "Denver Nuggets", [3]string{"Nikola Jokic", "Jamal Murray", "Michael Porter Jr."}},
	{1610612752, "NYK", "New York Knicks", [3]string{"Jalen Brunson", "Karl-Anthony Towns", "OG Anunoby"}},
}

// Provider serves a deterministic slate of three games per day for the last
// week, useful for local development without hitting stats.nba.com.
type Provider struct {
	now  func() time.Time
	loc  *time.Location
	days int
}

// New creates a fixture provider whose calendar is anchored in loc.
func New(loc *time.Location) *Provider {
	if loc == nil {
		loc = time.UTC
	}
	return &Provider{now: time.Now, loc: loc, days: defaultDays}
}

// ListGames returns two rows per game, one per team, the way leaguegamefinder does.
func (p *Provider) ListGames(ctx context.Context, _ string) ([]games.GameRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	today := p.now().In(p.loc)
	rows := make([]games.GameRow, 0, p.days*6)
	for d := 0; d < p.days; d++ {
		date := timeutil.FormatDate(today.AddDate(0, 0, -d))
		for i := 0; i < 3; i++ {
			home, away := pairing(date, i)
			id := gameID(date, i)
			homeRow := games.GameRow{GameID: id, GameDate: date, Matchup: home.abbr + " vs. " + away.abbr, TeamAbbreviation: home.abbr}
			awayRow := games.GameRow{GameID: id, GameDate: date, Matchup: away.abbr + " @ " + home.abbr, TeamAbbreviation: away.abbr}
			if i%2 == 0 {
				rows = append(rows, homeRow, awayRow)
			} else {
				rows = append(rows, awayRow, homeRow)
			}
		}
	}
	return rows, nil
}

// FetchGameStats builds a box score for a fixture game id.
func (p *Provider) FetchGameStats(ctx context.Context, id string) (boxscores.RawGameStats, error) {
	if err := ctx.Err(); err != nil {
		return boxscores.RawGameStats{}, err
	}
	date, idx, err := parseGameID(id)
	if err != nil {
		return boxscores.RawGameStats{}, err
	}

	home, away := pairing(date, idx)
	seed := daySeed(date) + idx*13

	playerRows := make([][]any, 0, 6)
	teamRows := make([][]any, 0, 2)
	for side, t := range []team{home, away} {
		total := 0
		for slot, name := range t.roster {
			k := seed + side*5 + slot*3
			pts := 12 + (k*7)%24
			reb := 2 + (k*5)%11
			ast := 1 + (k*3)%10
			total += pts
			playerRows = append(playerRows, []any{id, float64(t.id), t.abbr, name, float64(pts), float64(reb), float64(ast)})
		}
		bench := 30 + (seed+side*11)%25
		playerRows = append(playerRows, []any{id, float64(t.id), t.abbr, t.abbr + " Bench", float64(bench), nil, nil})
		teamRows = append(teamRows, []any{id, float64(t.id), t.name, t.abbr, float64(total + bench)})
	}

	return boxscores.RawGameStats{ResultSets: []boxscores.ResultSet{
		{
			Name:    boxscores.PlayerStats,
			Headers: []string{"GAME_ID", "TEAM_ID", "TEAM_ABBREVIATION", "PLAYER_NAME", "PTS", "REB", "AST"},
			RowSet:  playerRows,
		},
		{
			Name:    boxscores.TeamStats,
			Headers: []string{"GAME_ID", "TEAM_ID", "TEAM_NAME", "TEAM_ABBREVIATION", "PTS"},
			RowSet:  teamRows,
		},
	}}, nil
}

func pairing(date string, idx int) (home, away team) {
	shift := daySeed(date) % len(teams)
	home = teams[(shift+idx*2)%len(teams)]
	away = teams[(shift+idx*2+1)%len(teams)]
	return home, away
}

func daySeed(date string) int {
	parsed, err := timeutil.ParseDate(date)
	if err != nil {
		return 0
	}
	return int(parsed.Unix() / 86400)
}

func gameID(date string, idx int) string {
	return idPrefix + strings.ReplaceAll(date, "-", "") + "-" + strconv.Itoa(idx)
}

func parseGameID(id string) (string, int, error) {
	rest, ok := strings.CutPrefix(id, idPrefix)
	if !ok {
		return "", 0, fmt.Errorf("fixture: unknown game %q", id)
	}
	day, num, ok := strings.Cut(rest, "-")
	if !ok || len(day) != 8 {
		return "", 0, fmt.Errorf("fixture: malformed game id %q", id)
	}
	idx, err := strconv.Atoi(num)
	if err != nil || idx < 0 || idx > 2 {
		return "", 0, fmt.Errorf("fixture: malformed game id %q", id)
	}
	date := day[:4] + "-" + day[4:6] + "-" + day[6:]
	if _, err := timeutil.ParseDate(date); err != nil {
		return "", 0, fmt.Errorf("fixture: malformed game id %q", id)
	}
	return date, idx, nil
}
