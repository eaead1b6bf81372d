package main

import (
	"context"
	"log"
	"os"

	"jira_mcp/internal/config"
	"jira_mcp/internal/logger"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	handler, err := newHandler(context.Background(), cfg)
	if err != nil {
		logger.GetLogger().Fatal("failed to initialize handler", zap.Error(err))
	}
	lambda.Start(handler)
}
