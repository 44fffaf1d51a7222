// Package report renders daily summaries as markdown narrative.
package report

import (
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/preston-bernstein/nba-recap-service/internal/domain/summaries"
)

const (
	heading     = "## NBA Daily Recap"
	absentValue = "-"
)

// GenerateDailySummary renders one block per game: the result line followed
// by each team's points leader with the team's rebound and assist leader values.
func GenerateDailySummary(list []summaries.GameSummary) string {
	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")

	for _, game := range list {
		b.WriteString("\n- ")
		b.WriteString(game.Winner)
		b.WriteString(" dominated ")
		b.WriteString(game.Loser())
		b.WriteString(" on the court.\n")

		for _, team := range game.Leaders {
			b.WriteString("   - ")
			b.WriteString(team.Team)
			b.WriteString(": **")
			b.WriteString(team.Points.Player)
			b.WriteString("** delivered ")
			b.WriteString(FormatValue(team.Points.Value))
			b.WriteString(" pts, ")
			b.WriteString(FormatValue(team.Rebounds.Value))
			b.WriteString(" rebounds and ")
			b.WriteString(FormatValue(team.Assists.Value))
			b.WriteString(" assists.\n")
		}
	}
	return b.String()
}

// Render produces the full markdown recap for a report: the narrative, the
// empty slate notice when set, then the player of the day line.
func Render(rep summaries.DailyReport) string {
	var b strings.Builder
	b.WriteString(GenerateDailySummary(rep.Games))
	if rep.Notice != "" {
		b.WriteString("\n")
		b.WriteString(rep.Notice)
		b.WriteString("\n")
	}
	if line := PlayerOfTheDayLine(rep.PlayerOfTheDay); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// PlayerOfTheDay returns the highest points leader across every game. The scan
// starts from zero and only a strictly greater value replaces the current pick,
// so the first of several equal maxima wins.
func PlayerOfTheDay(list []summaries.GameSummary) summaries.PlayerOfTheDay {
	var best summaries.PlayerOfTheDay
	for _, game := range list {
		for _, team := range game.Leaders {
			v := team.Points.Value
			if v == nil {
				continue
			}
			if *v > best.Points {
				best = summaries.PlayerOfTheDay{Player: team.Points.Player, Points: *v}
			}
		}
	}
	return best
}

// PlayerOfTheDayLine renders the player of the day heading, or an empty string
// when nobody scored.
func PlayerOfTheDayLine(p summaries.PlayerOfTheDay) string {
	if p.Player == "" {
		return ""
	}
	return "## Player of the day: " + p.Player + " with " + formatNumber(p.Points) + " points!"
}

// FilterByTeam keeps games where either team code fuzzily matches query.
func FilterByTeam(list []summaries.GameSummary, query string) []summaries.GameSummary {
	query = strings.TrimSpace(query)
	if query == "" {
		return list
	}
	out := make([]summaries.GameSummary, 0, len(list))
	for _, game := range list {
		if fuzzy.MatchFold(query, game.HomeTeam) || fuzzy.MatchFold(query, game.AwayTeam) {
			out = append(out, game)
		}
	}
	return out
}

// FormatValue renders a stat value, "-" when absent.
func FormatValue(v *float64) string {
	if v == nil {
		return absentValue
	}
	return formatNumber(*v)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
