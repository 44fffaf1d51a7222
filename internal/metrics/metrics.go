package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type buildStats struct {
	builds       int
	summarized   int
	skipped      map[string]int
	lastDuration time.Duration
}

// Recorder captures in-memory counters for provider calls and daily builds
// and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu     sync.Mutex
	stats  map[string]*providerStats
	builds buildStats
	http   map[httpKey]int
	otel   *otelInstruments
}

type httpKey struct {
	method string
	path   string
	status int
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:  make(map[string]*providerStats),
		builds: buildStats{skipped: make(map[string]int)},
		http:   make(map[httpKey]int),
		otel:   otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordGameSummarized counts a game that produced a summary.
func (r *Recorder) RecordGameSummarized() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.builds.summarized++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSummarized()
	}
}

// RecordGameSkipped counts a game dropped from the daily build.
func (r *Recorder) RecordGameSkipped(reason string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.builds.skipped[reason]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSkipped(reason)
	}
}

// RecordDailyBuild tracks one full SummariesForDate run.
func (r *Recorder) RecordDailyBuild(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.builds.builds++
	r.builds.lastDuration = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDailyBuild(duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.http[httpKey{method: method, path: path, status: status}]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// HTTPRequests returns how many requests were served for the route and status.
func (r *Recorder) HTTPRequests(method, path string, status int) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.http[httpKey{method: method, path: path, status: status}]
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// BuildSnapshot is a copy of the daily build counters.
type BuildSnapshot struct {
	Builds       int
	Summarized   int
	Skipped      map[string]int
	LastDuration time.Duration
}

func (r *Recorder) Builds() BuildSnapshot {
	if r == nil {
		return BuildSnapshot{Skipped: map[string]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	skipped := make(map[string]int, len(r.builds.skipped))
	for reason, n := range r.builds.skipped {
		skipped[reason] = n
	}
	return BuildSnapshot{
		Builds:       r.builds.builds,
		Summarized:   r.builds.summarized,
		Skipped:      skipped,
		LastDuration: r.builds.lastDuration,
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
