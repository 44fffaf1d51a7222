// Package summaries holds the per-game and per-day report models.
package summaries

import (
	"fmt"
	"strings"
)

// Stat identifies one of the three tracked box score categories.
type Stat string

const (
	StatPoints   Stat = "PTS"
	StatRebounds Stat = "REB"
	StatAssists  Stat = "AST"
)

// Stats lists the tracked categories in display order.
var Stats = []Stat{StatPoints, StatRebounds, StatAssists}

// ParseStat resolves a case-insensitive stat code.
func ParseStat(value string) (Stat, error) {
	switch Stat(strings.ToUpper(strings.TrimSpace(value))) {
	case StatPoints:
		return StatPoints, nil
	case StatRebounds:
		return StatRebounds, nil
	case StatAssists:
		return StatAssists, nil
	default:
		return "", fmt.Errorf("unknown stat %q (want PTS, REB or AST)", value)
	}
}

// StatLeader is the top player for one stat. A nil Value means the box score
// had no value for that player.
type StatLeader struct {
	Player string   `json:"player"`
	Value  *float64 `json:"value"`
}

// Present reports whether the leader carries a value.
func (l StatLeader) Present() bool {
	return l.Value != nil
}

// TeamLeaders holds one team's leader for each tracked stat.
type TeamLeaders struct {
	Team     string     `json:"team"`
	Points   StatLeader `json:"points"`
	Rebounds StatLeader `json:"rebounds"`
	Assists  StatLeader `json:"assists"`
}

// Leader returns the slot for stat.
func (t TeamLeaders) Leader(stat Stat) StatLeader {
	switch stat {
	case StatRebounds:
		return t.Rebounds
	case StatAssists:
		return t.Assists
	default:
		return t.Points
	}
}

// GameSummary is the distilled result of one game.
type GameSummary struct {
	GameID   string        `json:"gameId"`
	HomeTeam string        `json:"homeTeam"`
	AwayTeam string        `json:"awayTeam"`
	Winner   string        `json:"winner"`
	Leaders  []TeamLeaders `json:"leaders"`
}

// Loser returns whichever of home or away did not win.
func (g GameSummary) Loser() string {
	if g.Winner == g.HomeTeam {
		return g.AwayTeam
	}
	return g.HomeTeam
}

// TeamLeaders returns the leaders recorded for a team display name.
func (g GameSummary) TeamLeaders(team string) (TeamLeaders, bool) {
	for _, l := range g.Leaders {
		if l.Team == team {
			return l, true
		}
	}
	return TeamLeaders{}, false
}

// PlayerOfTheDay is the highest single points leader across a day.
type PlayerOfTheDay struct {
	Player string  `json:"player"`
	Points float64 `json:"points"`
}

// DailyReport bundles everything built for a single date.
type DailyReport struct {
	Date           string         `json:"date"`
	Games          []GameSummary  `json:"games"`
	PlayerOfTheDay PlayerOfTheDay `json:"playerOfTheDay"`
	Notice         string         `json:"notice,omitempty"`
}

// Float returns a pointer to v for building leaders.
func Float(v float64) *float64 {
	return &v
}
