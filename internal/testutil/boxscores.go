package testutil

import "github.com/preston-bernstein/nba-recap-service/internal/domain/boxscores"

// PlayerLine is a PlayerStats row. Nil stats become JSON null cells.
type PlayerLine struct {
	TeamID int
	Name   string
	PTS    *float64
	REB    *float64
	AST    *float64
}

// TeamLine is a TeamStats row.
type TeamLine struct {
	TeamID       int
	Abbreviation string
	PTS          float64
}

// F returns a pointer to v.
func F(v float64) *float64 {
	return &v
}

// BoxScore builds RawGameStats with the column layout used by boxscoretraditionalv2,
// including a few columns the extractor ignores.
func BoxScore(gameID string, teams []TeamLine, players []PlayerLine) boxscores.RawGameStats {
	playerRows := make([][]any, 0, len(players))
	for _, p := range players {
		playerRows = append(playerRows, []any{
			gameID, float64(p.TeamID), p.Name, "F", cell(p.PTS), cell(p.REB), cell(p.AST),
		})
	}
	teamRows := make([][]any, 0, len(teams))
	for _, tl := range teams {
		teamRows = append(teamRows, []any{gameID, float64(tl.TeamID), "Team " + tl.Abbreviation, tl.Abbreviation, tl.PTS})
	}

	return boxscores.RawGameStats{ResultSets: []boxscores.ResultSet{
		{
			Name:    boxscores.PlayerStats,
			Headers: []string{"GAME_ID", "TEAM_ID", "PLAYER_NAME", "START_POSITION", "PTS", "REB", "AST"},
			RowSet:  playerRows,
		},
		{
			Name:    boxscores.TeamStats,
			Headers: []string{"GAME_ID", "TEAM_ID", "TEAM_NAME", "TEAM_ABBREVIATION", "PTS"},
			RowSet:  teamRows,
		},
	}}
}

// SimpleBoxScore is a two team game with one player per team.
func SimpleBoxScore(gameID, home string, homePts float64, away string, awayPts float64) boxscores.RawGameStats {
	return BoxScore(gameID,
		[]TeamLine{{TeamID: 1, Abbreviation: home, PTS: homePts}, {TeamID: 2, Abbreviation: away, PTS: awayPts}},
		[]PlayerLine{
			{TeamID: 1, Name: home + " Star", PTS: F(homePts / 4), REB: F(10), AST: F(5)},
			{TeamID: 2, Name: away + " Star", PTS: F(awayPts / 4), REB: F(8), AST: F(7)},
		},
	)
}

func cell(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
