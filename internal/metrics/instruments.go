package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

type otelInstruments struct {
	http struct {
		requests metric.Int64Counter
		latency  metric.Float64Histogram
	}
	provider struct {
		attempts   metric.Int64Counter
		errors     metric.Int64Counter
		latency    metric.Float64Histogram
		rateLimits metric.Int64Counter
		retryAfter metric.Float64Histogram
	}
	build struct {
		summarized metric.Int64Counter
		skipped    metric.Int64Counter
		runs       metric.Int64Counter
		latency    metric.Float64Histogram
	}
}

// instrumentBuilder collects the first creation error so the instrument
// table reads top to bottom.
type instrumentBuilder struct {
	meter metric.Meter
	err   error
}

func (b *instrumentBuilder) counter(name, desc string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil && b.err == nil {
		b.err = err
	}
	return c
}

// millis registers a histogram of milliseconds. The unit stays in the name so
// the Prometheus exporter does not append a unit suffix.
func (b *instrumentBuilder) millis(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc))
	if err != nil && b.err == nil {
		b.err = err
	}
	return h
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	b := &instrumentBuilder{meter: provider.Meter(defaultServiceName)}
	o := &otelInstruments{}

	o.http.requests = b.counter("http_requests_total", "HTTP requests served")
	o.http.latency = b.millis("http_request_duration_ms", "HTTP request latency")

	o.provider.attempts = b.counter("provider_attempts_total", "Upstream provider calls")
	o.provider.errors = b.counter("provider_errors_total", "Failed upstream provider calls")
	o.provider.latency = b.millis("provider_duration_ms", "Upstream provider call latency")
	o.provider.rateLimits = b.counter("provider_rate_limit_hits_total", "Upstream 429 responses")
	o.provider.retryAfter = b.millis("provider_retry_after_ms", "Retry-After advertised by the upstream")

	o.build.summarized = b.counter("games_summarized_total", "Games turned into summaries")
	o.build.skipped = b.counter("games_skipped_total", "Games skipped during a daily build")
	o.build.runs = b.counter("daily_builds_total", "Daily summary builds")
	o.build.latency = b.millis("daily_build_duration_ms", "Daily summary build latency")

	if b.err != nil {
		return nil, b.err
	}
	return o, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	set := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
	ctx := context.Background()
	o.http.requests.Add(ctx, 1, set)
	o.http.latency.Record(ctx, millis(duration), set)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	set := metric.WithAttributes(attribute.String(AttrProvider, provider))
	ctx := context.Background()
	o.provider.attempts.Add(ctx, 1, set)
	o.provider.latency.Record(ctx, millis(duration), set)
	if err != nil {
		o.provider.errors.Add(ctx, 1, set)
	}
}

func (o *otelInstruments) recordRateLimit(provider string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	set := metric.WithAttributes(attribute.String(AttrProvider, provider))
	ctx := context.Background()
	o.provider.rateLimits.Add(ctx, 1, set)
	if retryAfter > 0 {
		o.provider.retryAfter.Record(ctx, millis(retryAfter), set)
	}
}

func (o *otelInstruments) recordSummarized() {
	if o == nil {
		return
	}
	o.build.summarized.Add(context.Background(), 1)
}

func (o *otelInstruments) recordSkipped(reason string) {
	if o == nil {
		return
	}
	o.build.skipped.Add(context.Background(), 1, metric.WithAttributes(attribute.String(AttrReason, reason)))
}

func (o *otelInstruments) recordDailyBuild(duration time.Duration, err error) {
	if o == nil {
		return
	}
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	set := metric.WithAttributes(attribute.String(AttrOutcome, outcome))
	ctx := context.Background()
	o.build.runs.Add(ctx, 1, set)
	o.build.latency.Record(ctx, millis(duration), set)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
