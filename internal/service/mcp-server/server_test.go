package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, d *Dispatcher, message string) map[string]any {
	t.Helper()
	s := NewServer("jira-test", "0.0.1", d)

	resp := s.HandleMessage(context.Background(), json.RawMessage(message))
	require.NotNil(t, resp)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestServer_ListTools(t *testing.T) {
	out := handle(t, NewDispatcher(&fakeJira{}), `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

	result, ok := out["result"].(map[string]any)
	require.True(t, ok, "response: %v", out)
	tools := result["tools"].([]any)
	require.Len(t, tools, 5)

	byName := map[string]map[string]any{}
	for _, tl := range tools {
		m := tl.(map[string]any)
		byName[m["name"].(string)] = m
	}

	qa := byName["search_qa_issues"]
	require.NotNil(t, qa)
	schema := qa["inputSchema"].(map[string]any)
	assert.Equal(t, []any{"search_type"}, schema["required"])
	props := schema["properties"].(map[string]any)
	searchType := props["search_type"].(map[string]any)
	assert.Equal(t, []any{"in_progress_epics", "qa_target", "deploy_waiting", "epic_issues"}, searchType["enum"])

	search := byName["search_issues"]["inputSchema"].(map[string]any)["properties"].(map[string]any)
	assert.Equal(t, float64(50), search["max_results"].(map[string]any)["default"])
	assert.Equal(t, defaultSearchFields, search["fields"].(map[string]any)["default"])
}

func TestServer_CallTool(t *testing.T) {
	f := &fakeJira{responses: map[string]string{
		"/rest/api/2/project/QAQ": `{"key":"QAQ","name":"Demo"}`,
	}}
	out := handle(t, NewDispatcher(f),
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"get_project","arguments":{"project_key":"QAQ"}}}`)

	result, ok := out["result"].(map[string]any)
	require.True(t, ok, "response: %v", out)
	assert.NotEqual(t, true, result["isError"])
	content := result["content"].([]any)
	require.Len(t, content, 1)
	assert.Contains(t, content[0].(map[string]any)["text"], `"name": "Demo"`)
}

func TestServer_CallToolFailureIsResult(t *testing.T) {
	out := handle(t, NewDispatcher(&fakeJira{}),
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"search_qa_issues","arguments":{"search_type":"bogus"}}}`)

	result, ok := out["result"].(map[string]any)
	require.True(t, ok, "response: %v", out)
	assert.Equal(t, true, result["isError"])
}
