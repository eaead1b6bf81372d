package app

import (
	"context"
	"fmt"

	"jira_mcp/internal/auth"
	"jira_mcp/internal/config"
	"jira_mcp/internal/handler"
	"jira_mcp/internal/jira"
	"jira_mcp/internal/logger"
	"jira_mcp/internal/metrics"
	mcpserver "jira_mcp/internal/service/mcp-server"
	"jira_mcp/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// App is the wired MCP server: Jira client, dispatcher and protocol server
type App struct {
	Config     *config.Config
	Metrics    *metrics.Metrics
	Jira       *jira.Client
	Dispatcher *mcpserver.Dispatcher
	Server     *server.MCPServer
}

// New wires the application from cfg. Credentials are read once, here.
func New(cfg *config.Config) *App {
	m := metrics.New()
	client := jira.NewClient(
		cfg.BaseURL,
		cfg.Headers(),
		jira.WithHTTPClient(jira.NewHTTPClient(cfg.Timeout, cfg.InsecureSkipVerify)),
		jira.WithObserver(m),
	)
	d := mcpserver.NewDispatcher(client, mcpserver.WithCallObserver(m))

	logAuthState(cfg)

	return &App{
		Config:     cfg,
		Metrics:    m,
		Jira:       client,
		Dispatcher: d,
		Server:     mcpserver.NewServer(cfg.ServerName, cfg.ServerVersion, d),
	}
}

// Router returns the gin engine serving the app. sse may be nil.
func (a *App) Router(sse *server.SSEServer) *gin.Engine {
	return handler.NewRouter(a.Server, handler.Options{
		Metrics:       a.Metrics,
		SSE:           sse,
		Authenticated: a.Jira.Authenticated(),
	})
}

func logAuthState(cfg *config.Config) {
	log := logger.GetLogger()
	if cfg.Credentials.Complete() {
		log.Info("jira authentication configured",
			zap.String("base_url", cfg.BaseURL),
			zap.String("username", cfg.Credentials.Username))
		return
	}
	log.Warn("jira authentication not configured, every tool call will fail",
		zap.String("base_url", cfg.BaseURL),
		zap.String("hint", "set --username/--api_token or "+auth.EnvName(auth.UsernameKey)+"/"+auth.EnvName(auth.APITokenKey)))
}

// FillCredentials returns creds with empty fields taken from store. Values
// already resolved from flags or environment are kept.
func FillCredentials(ctx context.Context, creds auth.Credentials, store storage.CredentialStore) (auth.Credentials, error) {
	if creds.Complete() {
		return creds, nil
	}
	stored, err := store.GetCredentials(ctx)
	if err != nil {
		return creds, fmt.Errorf("failed to load stored credentials: %w", err)
	}
	if creds.Username == "" {
		creds.Username = stored.Username
	}
	if creds.APIToken == "" {
		creds.APIToken = stored.APIToken
	}
	return creds, nil
}

// OpenCredentialStore opens the S3 credential object named by cfg.
func OpenCredentialStore(ctx context.Context, cfg *config.Config) (storage.CredentialStore, error) {
	cs := cfg.CredentialStore
	if !cs.Enabled() {
		return nil, fmt.Errorf("credential store not configured: set JIRA_CREDENTIALS_BUCKET and JIRA_CREDENTIALS_OBJECT")
	}
	return storage.NewS3CredentialStoreFromDefaults(ctx, cs.Bucket, cs.Object, cs.KeyHex)
}
