package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
	if _, err := ParseDate("01/02/2024"); err == nil {
		t.Fatal("expected error for non ISO date")
	}
}

func TestTodayUsesLocation(t *testing.T) {
	now := time.Date(2024, 11, 5, 3, 0, 0, 0, time.UTC)
	loc := time.FixedZone("east", -5*60*60)
	if got := Today(now, loc); got != "2024-11-04" {
		t.Fatalf("expected previous calendar day in loc, got %s", got)
	}
	if got := Today(now, nil); got != "2024-11-05" {
		t.Fatalf("expected UTC date when loc nil, got %s", got)
	}
}

func TestDayBefore(t *testing.T) {
	got, err := DayBefore("2025-03-01")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != "2025-02-28" {
		t.Fatalf("expected 2025-02-28, got %s", got)
	}
	if _, err := DayBefore("bad"); err == nil {
		t.Fatal("expected error for bad date")
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2024-10-22":          "2024-10-22",
		"2024-10-22T00:00:00": "2024-10-22",
		" 2024-10-22 ":        "2024-10-22",
		"OCT 22, 2024":        "OCT 22, 2024",
	}
	for in, want := range cases {
		if got := NormalizeDate(in); got != want {
			t.Fatalf("NormalizeDate(%q) = %q, want %q", in, got, want)
		}
	}
}
