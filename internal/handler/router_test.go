package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"jira_mcp/internal/metrics"
	mcpserver "jira_mcp/internal/service/mcp-server"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJira struct{}

func (stubJira) Do(_ context.Context, _, path string, _ url.Values, _ any) (any, error) {
	if strings.HasSuffix(path, "/versions") {
		return []any{map[string]any{"id": "1", "name": "1.0.0"}}, nil
	}
	return map[string]any{"key": "QAQ", "name": "Demo"}, nil
}

func newTestRouter(t *testing.T, m *metrics.Metrics) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	d := mcpserver.NewDispatcher(stubJira{})
	s := mcpserver.NewServer("jira-test", "0.0.1", d)
	return NewRouter(s, Options{Metrics: m, Authenticated: true})
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := serve(newTestRouter(t, nil), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","auth":"configured"}`, w.Body.String())
}

func TestHandleMCP_ToolsCall(t *testing.T) {
	w := serve(newTestRouter(t, nil), http.MethodPost, "/mcp",
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"get_project_versions","arguments":{"project_key":"QAQ"}}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID     float64 `json:"id"`
		Result struct {
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp.ID)
	require.Len(t, resp.Result.Content, 1)
	assert.Contains(t, resp.Result.Content[0].Text, "📦 Project versions (1)")
}

func TestHandleMCP_ToolsList(t *testing.T) {
	w := serve(newTestRouter(t, nil), http.MethodPost, "/mcp", `{"jsonrpc":"2.0","id":"a","method":"tools/list"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"search_qa_issues"`)
}

func TestHandleMCP_Notification(t *testing.T) {
	w := serve(newTestRouter(t, nil), http.MethodPost, "/mcp", `{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandleMCP_EmptyBody(t *testing.T) {
	w := serve(newTestRouter(t, nil), http.MethodPost, "/mcp", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "empty request body")
}

func TestMetricsRoute(t *testing.T) {
	m := metrics.New()
	r := newTestRouter(t, m)

	serve(r, http.MethodGet, "/healthz", "")
	w := serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jira_mcp_http_requests_total")

	// one series each for /healthz and /metrics
	assert.Equal(t, 2, testutil.CollectAndCount(m.Registry(), "jira_mcp_http_requests_total"))
}
