package nbastats

import (
	"fmt"

	"github.com/preston-bernstein/nba-recap-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-recap-service/internal/domain/games"
	"github.com/preston-bernstein/nba-recap-service/internal/timeutil"
)

// mapGameRows converts the first leaguegamefinder result set into listing rows.
func mapGameRows(resp statsResponse) ([]games.GameRow, error) {
	if len(resp.ResultSets) == 0 {
		return nil, fmt.Errorf("%s: game finder returned no result sets", providerName)
	}
	rs := resp.ResultSets[0]

	var idx [4]int
	for i, name := range []string{colGameID, colGameDate, colMatchup, colTeamAbbreviation} {
		col, ok := rs.Column(name)
		if !ok {
			return nil, fmt.Errorf("%s: game finder missing column %s", providerName, name)
		}
		idx[i] = col
	}

	rows := make([]games.GameRow, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		if len(row) <= maxIndex(idx[:]) {
			continue
		}
		rows = append(rows, games.GameRow{
			GameID:           boxscores.Text(row[idx[0]]),
			GameDate:         timeutil.NormalizeDate(boxscores.Text(row[idx[1]])),
			Matchup:          boxscores.Text(row[idx[2]]),
			TeamAbbreviation: boxscores.Text(row[idx[3]]),
		})
	}
	return rows, nil
}

func mapBoxScore(resp statsResponse) boxscores.RawGameStats {
	return boxscores.RawGameStats{ResultSets: resp.ResultSets}
}

func maxIndex(idx []int) int {
	m := 0
	for _, v := range idx {
		if v > m {
			m = v
		}
	}
	return m
}
