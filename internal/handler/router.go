package handler

import (
	"net/http"

	"jira_mcp/internal/logger"
	"jira_mcp/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Options selects the optional routes of the router
type Options struct {
	Metrics       *metrics.Metrics  // Optional: serves /metrics and counts requests
	SSE           *server.SSEServer // Optional: mounts /sse and /message
	Authenticated bool              // reported by /healthz
}

// Handler serves MCP messages over HTTP
type Handler struct {
	server        *server.MCPServer
	authenticated bool
}

// NewRouter builds the gin engine for the HTTP and Lambda entry points.
func NewRouter(s *server.MCPServer, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(logger.GinLogMiddleware(), gin.Recovery())

	if opts.Metrics != nil {
		r.Use(CountRequests(opts.Metrics))
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	h := &Handler{server: s, authenticated: opts.Authenticated}
	r.GET("/healthz", h.HandleHealth)
	r.POST("/mcp", h.HandleMCP)

	if opts.SSE != nil {
		r.GET("/sse", gin.WrapH(opts.SSE.SSEHandler()))
		r.POST("/message", gin.WrapH(opts.SSE.MessageHandler()))
	}
	return r
}

// HandleHealth reports liveness and whether Jira credentials are configured
func (h *Handler) HandleHealth(c *gin.Context) {
	authState := "configured"
	if !h.authenticated {
		authState = "not configured"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "auth": authState})
}

// HandleMCP handles one JSON-RPC message per request. Notifications get 202 with no body.
func (h *Handler) HandleMCP(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		logger.GetLogger().Error("empty request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"jsonrpc": mcp.JSONRPC_VERSION,
			"id":      nil,
			"error":   gin.H{"code": mcp.PARSE_ERROR, "message": "empty request body"},
		})
		return
	}

	response := h.server.HandleMessage(c.Request.Context(), body)
	if response == nil {
		c.Status(http.StatusAccepted)
		return
	}
	c.JSON(http.StatusOK, response)
}
