// Package extractor turns one game's box score result sets into a GameSummary.
package extractor

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/nba-recap-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-recap-service/internal/domain/summaries"
)

var (
	// ErrExtraction is wrapped by every error returned from Extract.
	ErrExtraction       = errors.New("summary extraction failed")
	ErrMissingResultSet = fmt.Errorf("%w: missing result set", ErrExtraction)
	ErrMissingColumn    = fmt.Errorf("%w: missing column", ErrExtraction)
	ErrTeamCount        = fmt.Errorf("%w: expected exactly two distinct teams", ErrExtraction)
	ErrAmbiguousTeams   = fmt.Errorf("%w: teams resolve to the same name", ErrExtraction)
	ErrUnknownTeam      = fmt.Errorf("%w: player row references unknown team", ErrExtraction)
	ErrInvalidValue     = fmt.Errorf("%w: invalid cell value", ErrExtraction)
)

type teamColumns struct {
	id, abbreviation, points int
}

type playerColumns struct {
	teamID, name, points, rebounds, assists int
}

type teamRow struct {
	key    string
	name   string
	points float64
}

// Extract builds a summary from raw box score stats. home and away are the
// team codes parsed from the listing matchup; a team row whose abbreviation
// equals home is labelled home and the other is labelled away. The returned
// summary has no GameID; callers set it.
func Extract(raw boxscores.RawGameStats, home, away string) (summaries.GameSummary, error) {
	players, ok := raw.ResultSet(boxscores.PlayerStats)
	if !ok {
		return summaries.GameSummary{}, fmt.Errorf("%w: %s", ErrMissingResultSet, boxscores.PlayerStats)
	}
	teams, ok := raw.ResultSet(boxscores.TeamStats)
	if !ok {
		return summaries.GameSummary{}, fmt.Errorf("%w: %s", ErrMissingResultSet, boxscores.TeamStats)
	}

	tc, err := resolveTeamColumns(teams)
	if err != nil {
		return summaries.GameSummary{}, err
	}
	pc, err := resolvePlayerColumns(players)
	if err != nil {
		return summaries.GameSummary{}, err
	}

	rows, err := readTeams(teams, tc, home, away)
	if err != nil {
		return summaries.GameSummary{}, err
	}

	winner := rows[0]
	if rows[1].points > rows[0].points {
		winner = rows[1]
	}

	names := map[string]string{rows[0].key: rows[0].name, rows[1].key: rows[1].name}
	leaders, err := readLeaders(players, pc, names)
	if err != nil {
		return summaries.GameSummary{}, err
	}

	return summaries.GameSummary{
		HomeTeam: home,
		AwayTeam: away,
		Winner:   winner.name,
		Leaders:  leaders,
	}, nil
}

func resolveTeamColumns(rs boxscores.ResultSet) (teamColumns, error) {
	idx, err := columns(rs, boxscores.ColTeamID, boxscores.ColTeamAbbreviation, boxscores.ColPoints)
	if err != nil {
		return teamColumns{}, err
	}
	return teamColumns{id: idx[0], abbreviation: idx[1], points: idx[2]}, nil
}

func resolvePlayerColumns(rs boxscores.ResultSet) (playerColumns, error) {
	idx, err := columns(rs,
		boxscores.ColTeamID,
		boxscores.ColPlayerName,
		boxscores.ColPoints,
		boxscores.ColRebounds,
		boxscores.ColAssists,
	)
	if err != nil {
		return playerColumns{}, err
	}
	return playerColumns{teamID: idx[0], name: idx[1], points: idx[2], rebounds: idx[3], assists: idx[4]}, nil
}

func columns(rs boxscores.ResultSet, names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		col, ok := rs.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrMissingColumn, rs.Name, name)
		}
		out[i] = col
	}
	return out, nil
}

func readTeams(rs boxscores.ResultSet, tc teamColumns, home, away string) ([2]teamRow, error) {
	var rows [2]teamRow
	if len(rs.RowSet) != 2 {
		return rows, fmt.Errorf("%w: got %d team rows", ErrTeamCount, len(rs.RowSet))
	}

	for i, row := range rs.RowSet {
		if err := checkWidth(row, tc.id, tc.abbreviation, tc.points); err != nil {
			return rows, fmt.Errorf("team row %d: %w", i, err)
		}
		pts, present, err := boxscores.Number(row[tc.points])
		if err != nil {
			return rows, fmt.Errorf("%w: team row %d points: %v", ErrInvalidValue, i, err)
		}
		if !present {
			return rows, fmt.Errorf("%w: team row %d has no points", ErrInvalidValue, i)
		}
		name := away
		if boxscores.Text(row[tc.abbreviation]) == home {
			name = home
		}
		rows[i] = teamRow{key: boxscores.Key(row[tc.id]), name: name, points: pts}
	}

	if rows[0].key == rows[1].key {
		return rows, fmt.Errorf("%w: both rows are team %s", ErrTeamCount, rows[0].key)
	}
	if rows[0].name == rows[1].name {
		return rows, fmt.Errorf("%w: %s", ErrAmbiguousTeams, rows[0].name)
	}
	return rows, nil
}

func readLeaders(rs boxscores.ResultSet, pc playerColumns, names map[string]string) ([]summaries.TeamLeaders, error) {
	var order []string
	byTeam := make(map[string]*summaries.TeamLeaders, len(names))

	for i, row := range rs.RowSet {
		if err := checkWidth(row, pc.teamID, pc.name, pc.points, pc.rebounds, pc.assists); err != nil {
			return nil, fmt.Errorf("player row %d: %w", i, err)
		}
		key := boxscores.Key(row[pc.teamID])
		name, ok := names[key]
		if !ok {
			return nil, fmt.Errorf("%w: row %d team %q", ErrUnknownTeam, i, key)
		}

		player := boxscores.Text(row[pc.name])
		pts, err := statCell(row, pc.points, i)
		if err != nil {
			return nil, err
		}
		reb, err := statCell(row, pc.rebounds, i)
		if err != nil {
			return nil, err
		}
		ast, err := statCell(row, pc.assists, i)
		if err != nil {
			return nil, err
		}

		current, seen := byTeam[key]
		if !seen {
			byTeam[key] = &summaries.TeamLeaders{
				Team:     name,
				Points:   summaries.StatLeader{Player: player, Value: pts},
				Rebounds: summaries.StatLeader{Player: player, Value: reb},
				Assists:  summaries.StatLeader{Player: player, Value: ast},
			}
			order = append(order, key)
			continue
		}
		challenge(&current.Points, player, pts)
		challenge(&current.Rebounds, player, reb)
		challenge(&current.Assists, player, ast)
	}

	out := make([]summaries.TeamLeaders, 0, len(order))
	for _, key := range order {
		out = append(out, *byTeam[key])
	}
	return out, nil
}

// challenge replaces the leader when value is present and beats the current one.
// Equal values keep the earlier player.
func challenge(leader *summaries.StatLeader, player string, value *float64) {
	if value == nil {
		return
	}
	if leader.Value == nil || *value > *leader.Value {
		leader.Player = player
		leader.Value = value
	}
}

func statCell(row []any, col, rowIdx int) (*float64, error) {
	v, present, err := boxscores.Number(row[col])
	if err != nil {
		return nil, fmt.Errorf("%w: player row %d: %v", ErrInvalidValue, rowIdx, err)
	}
	if !present {
		return nil, nil
	}
	return &v, nil
}

func checkWidth(row []any, cols ...int) error {
	for _, c := range cols {
		if c >= len(row) {
			return fmt.Errorf("%w: row has %d cells, need column %d", ErrInvalidValue, len(row), c)
		}
	}
	return nil
}
