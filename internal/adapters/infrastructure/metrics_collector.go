package infrastructure

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "weatheredge"

type cacheCounts struct {
	hits   int64
	misses int64
}

type upstreamCounts struct {
	success    int64
	failure    int64
	totalNanos int64
}

// PrometheusMetricsAdapter implements the MetricsCollector port on a private registry
// and keeps running totals for the JSON snapshot
type PrometheusMetricsAdapter struct {
	registry *prometheus.Registry

	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	cacheHitRatio   *prometheus.GaugeVec
	upstreamCalls   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec

	mu        sync.RWMutex
	caches    map[string]*cacheCounts
	upstreams map[string]*upstreamCounts
	requests  int64
	startedAt time.Time
}

// NewPrometheusMetricsAdapter creates the adapter and registers its collectors
func NewPrometheusMetricsAdapter() *PrometheusMetricsAdapter {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetricsAdapter{
		registry: registry,
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_hits_total",
			Help:      "The total number of cache hits",
		}, []string{"cache"}),
		cacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_misses_total",
			Help:      "The total number of cache misses",
		}, []string{"cache"}),
		cacheHitRatio: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "cache_hit_ratio",
			Help:      "Cache hit ratio (hits/lookups)",
		}, []string{"cache"}),
		upstreamCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "upstream_calls_total",
			Help:      "Upstream provider calls by outcome",
		}, []string{"provider", "outcome"}),
		upstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "upstream_duration_seconds",
			Help:      "Upstream provider call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		caches:    make(map[string]*cacheCounts),
		upstreams: make(map[string]*upstreamCounts),
		startedAt: time.Now(),
	}
}

// RecordCacheHit counts a fresh cache hit
func (m *PrometheusMetricsAdapter) RecordCacheHit(_ context.Context, cache string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := m.cacheCounts(cache)
	counts.hits++
	m.cacheHits.WithLabelValues(cache).Inc()
	m.updateHitRatio(cache, counts)
}

// RecordCacheMiss counts a miss, including stale entries
func (m *PrometheusMetricsAdapter) RecordCacheMiss(_ context.Context, cache string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := m.cacheCounts(cache)
	counts.misses++
	m.cacheMisses.WithLabelValues(cache).Inc()
	m.updateHitRatio(cache, counts)
}

// RecordUpstreamCall counts one upstream call and observes its latency
func (m *PrometheusMetricsAdapter) RecordUpstreamCall(_ context.Context, provider string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	m.upstreamCalls.WithLabelValues(provider, outcome).Inc()
	m.upstreamLatency.WithLabelValues(provider).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()

	counts, ok := m.upstreams[provider]
	if !ok {
		counts = &upstreamCounts{}
		m.upstreams[provider] = counts
	}
	if success {
		counts.success++
	} else {
		counts.failure++
	}
	counts.totalNanos += duration.Nanoseconds()
}

// RecordHTTPRequest counts a served request; route is the matched pattern, not the raw path
func (m *PrometheusMetricsAdapter) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())

	m.mu.Lock()
	m.requests++
	m.mu.Unlock()
}

// Handler exposes the registry in the Prometheus text format
func (m *PrometheusMetricsAdapter) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the private registry
func (m *PrometheusMetricsAdapter) Registry() *prometheus.Registry {
	return m.registry
}

// GetMetrics returns a JSON-friendly snapshot of the running totals
func (m *PrometheusMetricsAdapter) GetMetrics(_ context.Context) (map[string]interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	caches := make(map[string]interface{}, len(m.caches))
	for name, counts := range m.caches {
		total := counts.hits + counts.misses
		var ratio float64
		if total > 0 {
			ratio = float64(counts.hits) / float64(total)
		}
		caches[name] = map[string]interface{}{
			"hits":      counts.hits,
			"misses":    counts.misses,
			"total":     total,
			"hit_ratio": ratio,
		}
	}

	upstreams := make(map[string]interface{}, len(m.upstreams))
	for name, counts := range m.upstreams {
		calls := counts.success + counts.failure
		var avgMillis float64
		if calls > 0 {
			avgMillis = float64(counts.totalNanos) / float64(calls) / float64(time.Millisecond)
		}
		upstreams[name] = map[string]interface{}{
			"success":        counts.success,
			"error":          counts.failure,
			"avg_latency_ms": avgMillis,
		}
	}

	return map[string]interface{}{
		"cache":          caches,
		"upstream":       upstreams,
		"http_requests":  m.requests,
		"uptime_seconds": int64(time.Since(m.startedAt).Seconds()),
	}, nil
}

// cacheCounts must be called with mu held
func (m *PrometheusMetricsAdapter) cacheCounts(cache string) *cacheCounts {
	counts, ok := m.caches[cache]
	if !ok {
		counts = &cacheCounts{}
		m.caches[cache] = counts
	}
	return counts
}

func (m *PrometheusMetricsAdapter) updateHitRatio(cache string, counts *cacheCounts) {
	total := counts.hits + counts.misses
	if total > 0 {
		m.cacheHitRatio.WithLabelValues(cache).Set(float64(counts.hits) / float64(total))
	}
}
