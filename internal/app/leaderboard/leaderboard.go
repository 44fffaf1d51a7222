// Package leaderboard ranks the day's stat leaders for chart display.
package leaderboard

import (
	"sort"

	"github.com/preston-bernstein/nba-recap-service/internal/domain/summaries"
)

// Entry is one ranked bar.
type Entry struct {
	Player string  `json:"player"`
	Team   string  `json:"team"`
	Value  float64 `json:"value"`
}

var titles = map[summaries.Stat]string{
	summaries.StatPoints:   "Top scorers of the day",
	summaries.StatRebounds: "Top rebounders of the day",
	summaries.StatAssists:  "Top passers of the day",
}

// Title returns the chart title for stat.
func Title(stat summaries.Stat) string {
	if t, ok := titles[stat]; ok {
		return t
	}
	return "Top " + string(stat) + " of the day"
}

// TopPlayersByStat flattens every team's leader for stat, drops entries with
// no player or no value, and returns the topN highest values. Equal values
// keep their first-seen order.
func TopPlayersByStat(list []summaries.GameSummary, stat summaries.Stat, topN int) []Entry {
	if topN <= 0 {
		return []Entry{}
	}

	entries := make([]Entry, 0, len(list)*2)
	for _, game := range list {
		for _, team := range game.Leaders {
			leader := team.Leader(stat)
			if leader.Player == "" || leader.Value == nil {
				continue
			}
			entries = append(entries, Entry{Player: leader.Player, Team: team.Team, Value: *leader.Value})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
