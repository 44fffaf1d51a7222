package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("nbastats", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("nbastats", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("nbastats"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("nbastats"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("nbastats")
	if snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastCallLatency)
	}
	if other := rec.Snapshot("fixture"); other.Calls != 0 {
		t.Fatalf("expected empty snapshot for unknown provider, got %+v", other)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("nbastats", 5*time.Second)
	rec.RecordRateLimit("nbastats", 0)

	if got := rec.RateLimitHits("nbastats"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.Snapshot("nbastats").LastRetryAfter; got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksDailyBuilds(t *testing.T) {
	rec := NewRecorder()
	rec.RecordGameSummarized()
	rec.RecordGameSummarized()
	rec.RecordGameSkipped(ReasonFetch)
	rec.RecordGameSkipped(ReasonExtract)
	rec.RecordGameSkipped(ReasonFetch)
	rec.RecordDailyBuild(40*time.Millisecond, nil)

	b := rec.Builds()
	if b.Builds != 1 || b.Summarized != 2 {
		t.Fatalf("unexpected build snapshot %+v", b)
	}
	if b.Skipped[ReasonFetch] != 2 || b.Skipped[ReasonExtract] != 1 {
		t.Fatalf("unexpected skip counts %+v", b.Skipped)
	}
	if b.LastDuration != 40*time.Millisecond {
		t.Fatalf("expected 40ms duration, got %s", b.LastDuration)
	}

	b.Skipped[ReasonFetch] = 99
	if rec.Builds().Skipped[ReasonFetch] != 2 {
		t.Fatalf("expected snapshot map to be a copy")
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("nbastats", time.Millisecond, nil)
	rec.RecordRateLimit("nbastats", time.Second)
	rec.RecordGameSummarized()
	rec.RecordGameSkipped(ReasonFetch)
	rec.RecordDailyBuild(time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	if rec.ProviderCalls("nbastats") != 0 || rec.Builds().Builds != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}

func TestRecordHTTPRequestCountsPerRoute(t *testing.T) {
	rec := NewRecorder()
	rec.RecordHTTPRequest("GET", "/api/v1/summaries", 200, time.Millisecond)
	rec.RecordHTTPRequest("GET", "/api/v1/summaries", 200, time.Millisecond)
	rec.RecordHTTPRequest("GET", "/api/v1/summaries", 502, time.Millisecond)

	if got := rec.HTTPRequests("GET", "/api/v1/summaries", 200); got != 2 {
		t.Fatalf("expected 2 ok requests, got %d", got)
	}
	if got := rec.HTTPRequests("GET", "/api/v1/summaries", 502); got != 1 {
		t.Fatalf("expected 1 failed request, got %d", got)
	}
	var nilRec *Recorder
	if nilRec.HTTPRequests("GET", "/", 200) != 0 {
		t.Fatalf("expected zero from nil recorder")
	}
}
