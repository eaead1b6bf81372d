package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jira_mcp"

// Tool call outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the collectors of the server.
type Metrics struct {
	registry *prometheus.Registry

	toolCalls       *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
}

// New creates a Metrics backed by its own registry, including Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		toolCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "Tool invocations by tool and outcome.",
		}, []string{"tool", "outcome"}),
		upstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Jira API round trip duration. status is 0 when no response was received.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served in HTTP transport mode.",
		}, []string{"method", "path", "status"}),
	}
}

// Registry returns the registry for exposition.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveToolCall counts one tool invocation.
func (m *Metrics) ObserveToolCall(tool, outcome string) {
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
}

// ObserveRequest records one upstream Jira request.
func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	m.upstreamLatency.WithLabelValues(method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// ObserveHTTP counts one request served by the HTTP transport.
func (m *Metrics) ObserveHTTP(method, path string, status int) {
	if path == "" {
		path = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}
