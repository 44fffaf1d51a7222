package leaderboard

import (
	"testing"

	"github.com/preston-bernstein/nba-recap-service/internal/domain/summaries"
)

func pointsLeader(team, player string, v *float64) summaries.TeamLeaders {
	return summaries.TeamLeaders{Team: team, Points: summaries.StatLeader{Player: player, Value: v}}
}

func fivePairs() []summaries.GameSummary {
	f := summaries.Float
	return []summaries.GameSummary{
		{Leaders: []summaries.TeamLeaders{
			pointsLeader("LAL", "A", f(20)),
			pointsLeader("BOS", "B", f(35)),
		}},
		{Leaders: []summaries.TeamLeaders{
			pointsLeader("NYK", "", f(50)),
			pointsLeader("MIA", "D", nil),
		}},
		{Leaders: []summaries.TeamLeaders{
			pointsLeader("DEN", "E", f(28)),
		}},
	}
}

func TestTopPlayersByStatReturnsTopTwoDescending(t *testing.T) {
	got := TopPlayersByStat(fivePairs(), summaries.StatPoints, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Player != "B" || got[0].Value != 35 || got[0].Team != "BOS" {
		t.Fatalf("unexpected first entry %+v", got[0])
	}
	if got[1].Player != "E" || got[1].Value != 28 {
		t.Fatalf("unexpected second entry %+v", got[1])
	}
}

func TestTopPlayersByStatExcludesEmptyAndAbsent(t *testing.T) {
	got := TopPlayersByStat(fivePairs(), summaries.StatPoints, 10)
	if len(got) != 3 {
		t.Fatalf("expected 3 valid entries, got %+v", got)
	}
	for _, e := range got {
		if e.Player == "" || e.Player == "D" {
			t.Fatalf("unexpected entry %+v", e)
		}
	}
}

func TestTopPlayersByStatKeepsFirstSeenOnTies(t *testing.T) {
	f := summaries.Float
	list := []summaries.GameSummary{{Leaders: []summaries.TeamLeaders{
		{Team: "LAL", Assists: summaries.StatLeader{Player: "First", Value: f(9)}},
		{Team: "BOS", Assists: summaries.StatLeader{Player: "Second", Value: f(9)}},
		{Team: "NYK", Assists: summaries.StatLeader{Player: "Third", Value: f(12)}},
	}}}

	got := TopPlayersByStat(list, summaries.StatAssists, 3)
	if got[0].Player != "Third" || got[1].Player != "First" || got[2].Player != "Second" {
		t.Fatalf("expected stable ordering, got %+v", got)
	}
}

func TestTopPlayersByStatNonPositiveTopN(t *testing.T) {
	for _, n := range []int{0, -1} {
		if got := TopPlayersByStat(fivePairs(), summaries.StatPoints, n); got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil slice for topN=%d, got %+v", n, got)
		}
	}
}

func TestTitle(t *testing.T) {
	cases := map[summaries.Stat]string{
		summaries.StatPoints:   "Top scorers of the day",
		summaries.StatRebounds: "Top rebounders of the day",
		summaries.StatAssists:  "Top passers of the day",
	}
	for stat, want := range cases {
		if got := Title(stat); got != want {
			t.Fatalf("Title(%s) = %q, want %q", stat, got, want)
		}
	}
}
