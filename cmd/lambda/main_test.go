package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jira_mcp/internal/auth"
	"jira_mcp/internal/config"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_handleRequest(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/latest/project/QAQ/versions", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"1","name":"1.0.0","released":true}]`))
	}))
	defer upstream.Close()

	cfg := config.Default()
	cfg.BaseURL = upstream.URL
	cfg.Credentials = auth.Credentials{Username: "alice", APIToken: "secret"}

	handle, err := newHandler(context.Background(), cfg)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params": map[string]any{
			"name":      "get_project_versions",
			"arguments": map[string]any{"project_key": "QAQ"},
		},
	})
	require.NoError(t, err)

	resp, err := handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/mcp",
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Body, "Project versions (1)")
}

func Test_handleRequest_Health(t *testing.T) {
	handle, err := newHandler(context.Background(), config.Default())
	require.NoError(t, err)

	resp, err := handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/healthz",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","auth":"not configured"}`, resp.Body)
}
