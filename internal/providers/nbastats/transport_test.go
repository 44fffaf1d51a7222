package nbastats

import (
	"net/http"
	"testing"
	"time"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultBaseURL},
		{"https://stats.example.com/stats/", "https://stats.example.com/stats"},
		{"https://stats.example.com/stats", "https://stats.example.com/stats"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestResolveHTTPClient(t *testing.T) {
	client, ok := resolveHTTPClient(nil, 0).(*http.Client)
	if !ok || client.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default client with %s timeout, got %+v", defaultHTTPTimeout, client)
	}

	client, _ = resolveHTTPClient(nil, 5*time.Second).(*http.Client)
	if client.Timeout != 5*time.Second {
		t.Fatalf("expected configured timeout, got %s", client.Timeout)
	}

	custom := &http.Client{Timeout: time.Second}
	if resolveHTTPClient(custom, time.Minute) != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2024, 11, 5, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"7", 7 * time.Second},
		{"-3", 0},
		{"99999999999999", time.Hour},
		{now.Add(90 * time.Second).Format(http.TimeFormat), 90 * time.Second},
		{now.Add(-time.Minute).Format(http.TimeFormat), 0},
		{"soon", 0},
	}
	for _, c := range cases {
		if got := parseRetryAfter(c.in, now); got != c.want {
			t.Fatalf("parseRetryAfter(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestSetStatsHeaders(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "https://stats.nba.com/stats/x", nil)
	setStatsHeaders(req)
	for _, h := range []string{"Accept", "Referer", "User-Agent", "x-nba-stats-origin"} {
		if req.Header.Get(h) == "" {
			t.Fatalf("expected header %s to be set", h)
		}
	}
}
