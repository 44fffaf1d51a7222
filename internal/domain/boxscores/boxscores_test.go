package boxscores

import (
	"encoding/json"
	"errors"
	"testing"
)

const payload = `{"resource":"boxscore","resultSets":[
 {"name":"PlayerStats","headers":["GAME_ID","TEAM_ID","PLAYER_NAME","PTS","REB","AST"],
  "rowSet":[["0022400001",1610612747,"LeBron James",28,8,null]]},
 {"name":"TeamStats","headers":["GAME_ID","TEAM_ID","TEAM_ABBREVIATION","PTS"],
  "rowSet":[["0022400001",1610612747,"LAL",110]]}
]}`

func TestDecodeAndLookup(t *testing.T) {
	var raw RawGameStats
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}

	players, ok := raw.ResultSet(PlayerStats)
	if !ok {
		t.Fatalf("expected PlayerStats result set")
	}
	if _, ok := raw.ResultSet("Missing"); ok {
		t.Fatalf("expected missing result set to be reported")
	}

	col, ok := players.Column("pts")
	if !ok || col != 3 {
		t.Fatalf("expected PTS at 3, got %d ok=%v", col, ok)
	}
	if _, ok := players.Column("STL"); ok {
		t.Fatalf("expected STL to be absent")
	}

	row := players.RowSet[0]
	if v, present, err := Number(row[3]); err != nil || !present || v != 28 {
		t.Fatalf("unexpected PTS cell %v %v %v", v, present, err)
	}
	if _, present, err := Number(row[5]); err != nil || present {
		t.Fatalf("expected null AST to be absent, got present=%v err=%v", present, err)
	}
	if got := Text(row[2]); got != "LeBron James" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := Key(row[1]); got != "1610612747" {
		t.Fatalf("expected integral key, got %q", got)
	}
}

func TestNumberRejectsText(t *testing.T) {
	if _, _, err := Number("DNP"); !errors.Is(err, ErrNotNumeric) {
		t.Fatalf("expected ErrNotNumeric, got %v", err)
	}
	if _, _, err := Number(json.Number("x1")); !errors.Is(err, ErrNotNumeric) {
		t.Fatalf("expected ErrNotNumeric for bad json.Number, got %v", err)
	}
}

func TestKeyNormalizesNumericForms(t *testing.T) {
	if Key(json.Number("1610612747")) != Key(float64(1610612747)) {
		t.Fatalf("expected json.Number and float64 keys to match")
	}
	if Key(7) != "7" || Key(nil) != "" || Key("abc") != "abc" {
		t.Fatalf("unexpected key rendering")
	}
	if Text(12.5) != "12.5" {
		t.Fatalf("expected formatted number text, got %q", Text(12.5))
	}
	if Text(nil) != "" {
		t.Fatalf("expected empty text for nil")
	}
}
