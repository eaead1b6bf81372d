package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jira_mcp/internal/app"
	"jira_mcp/internal/config"
	"jira_mcp/internal/logger"
	mcpserver "jira_mcp/internal/service/mcp-server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)

	switch cfg.Transport {
	case config.TransportSSE:
		err = serveHTTP(ctx, a)
	default:
		logger.GetLogger().Info("starting MCP server on stdio", zap.String("name", cfg.ServerName))
		err = mcpserver.Serve(a.Server)
	}
	if err != nil {
		logger.GetLogger().Fatal("server error", zap.Error(err))
	}
}

func serveHTTP(ctx context.Context, a *app.App) error {
	gin.SetMode(gin.ReleaseMode)
	sse := mcpserver.NewSSEServer(a.Server, a.Config.PublicURL)
	srv := &http.Server{
		Addr:    a.Config.Addr,
		Handler: a.Router(sse),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.GetLogger().Info("starting MCP server on http", zap.String("addr", a.Config.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.GetLogger().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := sse.Shutdown(shutdownCtx); err != nil {
		logger.GetLogger().Warn("sse shutdown", zap.Error(err))
	}
	return srv.Shutdown(shutdownCtx)
}
