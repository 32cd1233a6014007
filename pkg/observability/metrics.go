package observability

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Metrics records hook events as Prometheus series. It implements
// [PipelineHooks], [CacheHooks] and [HTTPHooks].
type Metrics struct {
	plans          *prometheus.CounterVec
	planDuration   prometheus.Histogram
	pages          prometheus.Histogram
	tags           prometheus.Counter
	renders        *prometheus.CounterVec
	renderDuration prometheus.Histogram
	cacheEvents    *prometheus.CounterVec
	cacheBytes     prometheus.Counter
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		plans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tagsheet_plans_total",
			Help: "Layout plans by paper, tag size and outcome.",
		}, []string{"paper", "size", "outcome"}),
		planDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tagsheet_plan_duration_seconds",
			Help:    "Time spent planning a layout.",
			Buckets: durationBuckets,
		}),
		pages: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tagsheet_plan_pages",
			Help:    "Pages per successful plan.",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		tags: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tagsheet_tags_planned_total",
			Help: "Tag instances submitted for planning.",
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tagsheet_renders_total",
			Help: "Render runs by format and outcome.",
		}, []string{"format", "outcome"}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tagsheet_render_duration_seconds",
			Help:    "Time spent rendering all requested formats.",
			Buckets: durationBuckets,
		}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tagsheet_cache_events_total",
			Help: "Cache hits, misses and writes by key type.",
		}, []string{"key_type", "event"}),
		cacheBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tagsheet_cache_written_bytes_total",
			Help: "Bytes written to the artifact cache.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tagsheet_http_requests_total",
			Help: "API requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tagsheet_http_request_duration_seconds",
			Help:    "API request latency by route.",
			Buckets: durationBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		m.plans, m.planDuration, m.pages, m.tags,
		m.renders, m.renderDuration,
		m.cacheEvents, m.cacheBytes,
		m.requests, m.requestLatency,
	)
	return m
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) OnPlanStart(_ context.Context, _ string, _ int, tagCount int) {
	m.tags.Add(float64(tagCount))
}

func (m *Metrics) OnPlanComplete(_ context.Context, paper string, sizeID, pages int, d time.Duration, err error) {
	m.plans.WithLabelValues(strings.ToLower(paper), strconv.Itoa(sizeID), outcome(err)).Inc()
	m.planDuration.Observe(d.Seconds())
	if err == nil {
		m.pages.Observe(float64(pages))
	}
}

func (m *Metrics) OnRenderStart(context.Context, []string) {}

func (m *Metrics) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	for _, f := range formats {
		m.renders.WithLabelValues(f, outcome(err)).Inc()
	}
	m.renderDuration.Observe(d.Seconds())
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheEvents.WithLabelValues(keyType, "set").Inc()
	m.cacheBytes.Add(float64(size))
}

func (m *Metrics) OnRequest(context.Context, string, string) {}

func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ PipelineHooks = (*Metrics)(nil)
	_ CacheHooks    = (*Metrics)(nil)
	_ HTTPHooks     = (*Metrics)(nil)
)
