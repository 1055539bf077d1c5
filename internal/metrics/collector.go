// Package metrics exposes Prometheus instruments for the turn pipeline and HTTP shell.
//
// Every method is safe on a nil *Collector, which records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const DefaultNamespace = "response_engine"

// Collector owns its registry so several collectors can coexist in one process.
type Collector struct {
	registry *prometheus.Registry

	turnsTotal     *prometheus.CounterVec
	turnDuration   prometheus.Histogram
	dedupRetries   prometheus.Counter
	repeatedTotal  prometheus.Counter
	fallbacksTotal *prometheus.CounterVec
	threadUpdates  prometheus.Counter
	activeSessions prometheus.Gauge

	llmRequestsTotal   *prometheus.CounterVec
	llmRequestDuration *prometheus.HistogramVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewCollector creates a collector with Go and process collectors registered.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	c := &Collector{registry: reg}

	// Turn pipeline
	c.turnsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Agent turns emitted, by speaker and strategy",
		},
		[]string{"agent", "strategy"},
	)

	c.turnDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "turn_duration_seconds",
			Help:      "Time to process one primary utterance end to end",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)

	c.dedupRetries = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dedup_retries_total",
			Help:      "Regenerations caused by near-duplicate output",
		},
	)

	c.repeatedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repeated_responses_total",
			Help:      "Turns that accepted a near-duplicate after exhausting retries",
		},
	)

	c.fallbacksTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallbacks_total",
			Help:      "Canned questions used in place of generated text",
		},
		[]string{"reason"},
	)

	c.threadUpdates = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "thread_updates_total",
			Help:      "Topic thread recomputations",
		},
	)

	c.activeSessions = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions currently held in memory",
		},
	)

	// LLM
	c.llmRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_requests_total",
			Help:      "LLM provider calls, by provider and status",
		},
		[]string{"provider", "status"},
	)

	c.llmRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_request_duration_seconds",
			Help:      "LLM provider call duration including retries",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	// HTTP
	c.httpRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	c.httpRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	return c
}

// RecordTurn counts one emitted agent turn.
func (c *Collector) RecordTurn(agent, strategy string, d time.Duration) {
	if c == nil {
		return
	}
	c.turnsTotal.WithLabelValues(agent, strategy).Inc()
	c.turnDuration.Observe(d.Seconds())
}

func (c *Collector) RecordDedupRetry() {
	if c == nil {
		return
	}
	c.dedupRetries.Inc()
}

func (c *Collector) RecordRepeated() {
	if c == nil {
		return
	}
	c.repeatedTotal.Inc()
}

func (c *Collector) RecordFallback(reason string) {
	if c == nil {
		return
	}
	c.fallbacksTotal.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordThreadUpdate() {
	if c == nil {
		return
	}
	c.threadUpdates.Inc()
}

func (c *Collector) SetActiveSessions(n int) {
	if c == nil {
		return
	}
	c.activeSessions.Set(float64(n))
}

// ObserveLLMRequest satisfies llmprovider.Observer.
func (c *Collector) ObserveLLMRequest(provider, status string, d time.Duration) {
	if c == nil {
		return
	}
	c.llmRequestsTotal.WithLabelValues(provider, status).Inc()
	c.llmRequestDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// RecordHTTPRequest counts one served request. path should be the route pattern.
func (c *Collector) RecordHTTPRequest(method, path string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
