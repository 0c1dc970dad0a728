package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records outcomes of provider fetches and cache operations.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordFetch records one external provider request with its duration
	// and error status.
	RecordFetch(ctx context.Context, resource string, duration time.Duration, err error)

	// RecordCacheLookup records a cache lookup and whether it hit.
	RecordCacheLookup(ctx context.Context, key string, hit bool)

	// RecordCacheLoad records a loader invocation triggered by a cache miss.
	RecordCacheLoad(ctx context.Context, key string, err error)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	fetchCount   metric.Int64Counter
	fetchErrors  metric.Int64Counter
	fetchLatency metric.Float64Histogram
	cacheLookups metric.Int64Counter
	cacheLoads   metric.Int64Counter
}

// NewMetrics creates a Metrics instance recording to the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	fetchCount, err := meter.Int64Counter(
		"provider.fetch.total",
		metric.WithDescription("Total number of external provider requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	fetchErrors, err := meter.Int64Counter(
		"provider.fetch.errors",
		metric.WithDescription("Total number of failed provider requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	fetchLatency, err := meter.Float64Histogram(
		"provider.fetch.duration_ms",
		metric.WithDescription("Provider request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cacheLookups, err := meter.Int64Counter(
		"cache.lookups.total",
		metric.WithDescription("Total number of cache lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	cacheLoads, err := meter.Int64Counter(
		"cache.loads.total",
		metric.WithDescription("Total number of loader invocations on cache miss"),
		metric.WithUnit("{load}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		fetchCount:   fetchCount,
		fetchErrors:  fetchErrors,
		fetchLatency: fetchLatency,
		cacheLookups: cacheLookups,
		cacheLoads:   cacheLoads,
	}, nil
}

// RecordFetch records metrics for one provider request.
func (m *metricsImpl) RecordFetch(ctx context.Context, resource string, duration time.Duration, err error) {
	opt := metric.WithAttributes(attribute.String("provider.resource", resource))

	m.fetchCount.Add(ctx, 1, opt)
	if err != nil {
		m.fetchErrors.Add(ctx, 1, opt)
	}
	m.fetchLatency.Record(ctx, float64(duration.Milliseconds()), opt)
}

// RecordCacheLookup records a cache lookup outcome.
func (m *metricsImpl) RecordCacheLookup(ctx context.Context, key string, hit bool) {
	m.cacheLookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("cache.key", key),
		attribute.Bool("cache.hit", hit),
	))
}

// RecordCacheLoad records a loader invocation.
func (m *metricsImpl) RecordCacheLoad(ctx context.Context, key string, err error) {
	m.cacheLoads.Add(ctx, 1, metric.WithAttributes(
		attribute.String("cache.key", key),
		attribute.Bool("cache.load_error", err != nil),
	))
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordFetch(ctx context.Context, resource string, duration time.Duration, err error) {
}
func (m *noopMetrics) RecordCacheLookup(ctx context.Context, key string, hit bool) {}
func (m *noopMetrics) RecordCacheLoad(ctx context.Context, key string, err error)  {}

// NoopMetrics returns a Metrics implementation that drops everything.
func NoopMetrics() Metrics {
	return &noopMetrics{}
}

// Ensure implementations satisfy Metrics
var (
	_ Metrics = (*metricsImpl)(nil)
	_ Metrics = (*noopMetrics)(nil)
)
