package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"otter-agent/assistant"
	"otter-agent/config"
	"otter-agent/sources"
	"otter-agent/web"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	// Initialize logger with default level to load config
	tempLogger, err := config.InitLogger("info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load config (which includes log level setting)
	cfg := config.Load(tempLogger)

	// Re-initialize logger with configured level
	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to re-initialize logger with configured level: %v\n", err)
		os.Exit(1)
	}
	defer config.Cleanup()

	knowledgeSources := []sources.Source{
		sources.NewDuckDuckGo(cfg, logger),
		sources.NewWikipedia(cfg, logger),
	}

	otterAssistant, err := assistant.New(cfg, assistant.DefaultRuleTable(), knowledgeSources, logger)
	if err != nil {
		logger.Fatal("Failed to initialize assistant", zap.Error(err))
	}

	// Initialize web server
	webServer := web.NewServer(otterAssistant, logger, cfg)

	// Create context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start web server
	port := fmt.Sprintf(":%d", cfg.WebPort)
	logger.Info("Starting otter assistant webhook", zap.String("port", port))
	if err := webServer.Start(ctx, port); err != nil {
		logger.Error("Web server error", zap.Error(err))
		os.Exit(1)
	}
}
