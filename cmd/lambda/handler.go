package main

import (
	"context"

	"jira_mcp/internal/app"
	"jira_mcp/internal/config"
	"jira_mcp/internal/logger"

	"github.com/aws/aws-lambda-go/events"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newHandler loads credentials from S3 when flags and environment leave them
// incomplete, then returns the API Gateway handler for the app's router.
// cfg itself is left untouched.
func newHandler(ctx context.Context, cfg *config.Config) (func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error), error) {
	if !cfg.Credentials.Complete() && cfg.CredentialStore.Enabled() {
		store, err := app.OpenCredentialStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		creds, err := app.FillCredentials(ctx, cfg.Credentials, store)
		if err != nil {
			return nil, err
		}
		logger.GetLogger().Info("credentials loaded from S3", zap.String("bucket", cfg.CredentialStore.Bucket))

		filled := *cfg
		filled.Credentials = creds
		cfg = &filled
	}

	gin.SetMode(gin.ReleaseMode)
	a := app.New(cfg)
	adapter := ginadapter.New(a.Router(nil))
	return adapter.ProxyWithContext, nil
}
