package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates a new MCP server instance exposing the dispatcher's tools
func NewServer(name, version string, d *Dispatcher) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	d.Register(s)

	return s
}

// Register adds every catalog tool to s.
func (d *Dispatcher) Register(s *server.MCPServer) {
	for _, t := range d.tools {
		name := t.def.Name
		s.AddTool(t.def.MCPTool(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return d.CallTool(ctx, name, request.GetArguments()), nil
		})
	}
}

// Serve starts the MCP server over stdio
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// NewSSEServer wraps s in the SSE transport. baseURL may be empty.
func NewSSEServer(s *server.MCPServer, baseURL string) *server.SSEServer {
	var opts []server.SSEOption
	if baseURL != "" {
		opts = append(opts, server.WithBaseURL(baseURL))
	}
	return server.NewSSEServer(s, opts...)
}
