package games

// Season is the only season the service queries.
const Season = "2024-25"

// GameRow is one row of the league game listing. The listing carries one row
// per team per game, so a game id normally appears twice.
type GameRow struct {
	GameID           string `json:"gameId"`
	GameDate         string `json:"gameDate"`
	Matchup          string `json:"matchup"`
	TeamAbbreviation string `json:"teamAbbreviation"`
}

// Dedupe keeps the first row seen for each game id, preserving order.
func Dedupe(rows []GameRow) []GameRow {
	seen := make(map[string]struct{}, len(rows))
	out := make([]GameRow, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.GameID]; ok {
			continue
		}
		seen[row.GameID] = struct{}{}
		out = append(out, row)
	}
	return out
}

// OnDate returns the rows whose GameDate equals date.
func OnDate(rows []GameRow, date string) []GameRow {
	out := make([]GameRow, 0, len(rows))
	for _, row := range rows {
		if row.GameDate == date {
			out = append(out, row)
		}
	}
	return out
}
