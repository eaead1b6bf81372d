package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveToolCall(t *testing.T) {
	m := New()
	m.ObserveToolCall("get_project", OutcomeSuccess)
	m.ObserveToolCall("get_project", OutcomeSuccess)
	m.ObserveToolCall("get_project", OutcomeFailure)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("get_project", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("get_project", OutcomeFailure)))
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", 200, 10*time.Millisecond)
	m.ObserveRequest("GET", 0, time.Second)

	assert.Equal(t, 2, testutil.CollectAndCount(m.upstreamLatency))
}

func TestObserveHTTP(t *testing.T) {
	m := New()
	m.ObserveHTTP("POST", "/mcp", 200)
	m.ObserveHTTP("GET", "", 404)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/mcp", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestRegistryGathers(t *testing.T) {
	m := New()
	m.ObserveToolCall("search_issues", OutcomeSuccess)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["jira_mcp_tool_calls_total"])
	assert.True(t, names["go_goroutines"])
}
