package mcpserver

import (
	"context"
	"net/url"

	"jira_mcp/internal/logger"
	"jira_mcp/internal/metrics"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// Requester performs one Jira API request and returns the decoded JSON body.
type Requester interface {
	Do(ctx context.Context, method, path string, query url.Values, body any) (any, error)
}

// CallObserver receives the outcome of every tool invocation.
type CallObserver interface {
	ObserveToolCall(tool, outcome string)
}

type handlerFunc func(ctx context.Context, args Arguments) (string, error)

type tool struct {
	def ToolDefinition
	// failure labels the error text of this tool
	failure string
	handle  handlerFunc
}

// Dispatcher owns the tool catalog and routes invocations to handlers.
// It holds no mutable state after construction.
type Dispatcher struct {
	jira     Requester
	observer CallObserver
	tools    []*tool
	byName   map[string]*tool
}

// DispatcherOption configures a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithCallObserver registers a CallObserver.
func WithCallObserver(o CallObserver) DispatcherOption {
	return func(d *Dispatcher) {
		d.observer = o
	}
}

// NewDispatcher builds the catalog over a Jira requester.
func NewDispatcher(jira Requester, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{jira: jira}
	for _, opt := range opts {
		opt(d)
	}

	d.tools = []*tool{
		{def: getProjectDefinition, failure: "Project lookup failed", handle: d.getProject},
		{def: searchIssuesDefinition, failure: "Issue search failed", handle: d.searchIssues},
		{def: getIssueDefinition, failure: "Issue lookup failed", handle: d.getIssue},
		{def: getProjectVersionsDefinition, failure: "Version lookup failed", handle: d.getProjectVersions},
		{def: searchQAIssuesDefinition, failure: "QA issue search failed", handle: d.searchQAIssues},
	}
	d.byName = make(map[string]*tool, len(d.tools))
	for _, t := range d.tools {
		d.byName[t.def.Name] = t
	}
	return d
}

// ListTools returns the tool definitions in catalog order.
func (d *Dispatcher) ListTools() []ToolDefinition {
	defs := make([]ToolDefinition, 0, len(d.tools))
	for _, t := range d.tools {
		defs = append(defs, t.def)
	}
	return defs
}

// CallTool invokes the named tool. Failures are returned as an error result, never as a Go error.
func (d *Dispatcher) CallTool(ctx context.Context, name string, arguments map[string]any) *mcp.CallToolResult {
	t, ok := d.byName[name]
	if !ok {
		return d.fail(name, "Tool call failed", &UnknownToolError{Name: name})
	}

	args, err := bindArguments(t.def, arguments)
	if err != nil {
		return d.fail(name, t.failure, err)
	}

	text, err := t.handle(ctx, args)
	if err != nil {
		return d.fail(name, t.failure, err)
	}

	d.observe(name, metrics.OutcomeSuccess)
	return mcp.NewToolResultText(text)
}

func (d *Dispatcher) fail(name, label string, err error) *mcp.CallToolResult {
	logger.GetLogger().Error("tool execution error", zap.String("tool", name), zap.Error(err))
	if _, known := d.byName[name]; !known {
		name = "unknown"
	}
	d.observe(name, metrics.OutcomeFailure)
	return mcp.NewToolResultError(failureText(label, err))
}

func (d *Dispatcher) observe(name, outcome string) {
	if d.observer != nil {
		d.observer.ObserveToolCall(name, outcome)
	}
}
