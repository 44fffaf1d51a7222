// Package boxscores models the tabular result-set payload returned by the
// stats.nba.com box score endpoints.
package boxscores

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Result set names used by boxscoretraditionalv2.
const (
	PlayerStats = "PlayerStats"
	TeamStats   = "TeamStats"
)

// Column names read from the box score result sets.
const (
	ColTeamID           = "TEAM_ID"
	ColTeamAbbreviation = "TEAM_ABBREVIATION"
	ColPlayerName       = "PLAYER_NAME"
	ColPoints           = "PTS"
	ColRebounds         = "REB"
	ColAssists          = "AST"
)

// ErrNotNumeric is returned by Number for cells that are neither null nor numeric.
var ErrNotNumeric = errors.New("cell is not numeric")

// ResultSet is one named table: ordered headers and rows of loosely typed cells.
type ResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// RawGameStats is the statistics payload for a single game.
type RawGameStats struct {
	ResultSets []ResultSet `json:"resultSets"`
}

// ResultSet returns the first result set with the given name.
func (r RawGameStats) ResultSet(name string) (ResultSet, bool) {
	for _, rs := range r.ResultSets {
		if rs.Name == name {
			return rs, true
		}
	}
	return ResultSet{}, false
}

// Column returns the position of a header, matched case-insensitively.
func (rs ResultSet) Column(name string) (int, bool) {
	for i, h := range rs.Headers {
		if strings.EqualFold(h, name) {
			return i, true
		}
	}
	return -1, false
}

// Number reads a numeric cell. A nil cell is reported as absent.
func Number(cell any) (float64, bool, error) {
	switch v := cell.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false, fmt.Errorf("%w: %q", ErrNotNumeric, v.String())
		}
		return f, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %v (%T)", ErrNotNumeric, cell, cell)
	}
}

// Text reads a cell as a string. Non-string values are formatted, nil is empty.
func Text(cell any) string {
	if s, ok := cell.(string); ok {
		return s
	}
	return Key(cell)
}

// Key renders a cell as a stable map key. Integral numbers drop their decimals
// so 1610612747 and 1.610612747e9 produce the same key.
func Key(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	if f, ok, err := Number(cell); err == nil && ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if n, ok := cell.(json.Number); ok {
		return n.String()
	}
	return fmt.Sprint(cell)
}
