package web

import (
	"context"
	"net/http"

	"otter-agent/assistant"
	"otter-agent/config"
	"otter-agent/web/handlers"
	"otter-agent/web/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router    *gin.Engine
	assistant *assistant.Assistant
	logger    *zap.Logger
	config    *config.Config
}

func NewServer(assistant *assistant.Assistant, logger *zap.Logger, config *config.Config) *Server {
	// Set Gin mode based on environment
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(logger))
	router.Use(cors.New(corsConfig(config)))

	server := &Server{
		router:    router,
		assistant: assistant,
		logger:    logger,
		config:    config,
	}

	server.setupRoutes()
	return server
}

func corsConfig(config *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	if len(config.CORSAllowOrigins) == 1 && config.CORSAllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = config.CORSAllowOrigins
	}
	return corsCfg
}

func (s *Server) setupRoutes() {
	// Serve the chat page
	s.router.Static("/static", s.config.StaticDir)

	limiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerMinute: s.config.RateLimitPerMin,
		BurstSize:         s.config.RateLimitBurst,
	}, s.logger)

	// Webhook handlers
	webhookHandler := handlers.NewWebhookHandler(s.assistant, s.logger)

	s.router.GET("/", webhookHandler.Health)
	s.router.GET("/webhook", webhookHandler.Ready)
	s.router.POST("/webhook", middleware.RateLimitMiddleware(limiter), webhookHandler.Answer)
}

func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server failed to start", zap.Error(err))
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	s.logger.Info("Shutting down web server")
	return srv.Shutdown(context.Background())
}
