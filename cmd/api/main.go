package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-chat-service/config"
	redisInfra "ai-chat-service/config/redis"
	_ "ai-chat-service/docs" // Swagger docs
	chatDelivery "ai-chat-service/internal/chat/delivery/http"
	"ai-chat-service/internal/chat/repository"
	memoryRepo "ai-chat-service/internal/chat/repository/memory"
	redisRepo "ai-chat-service/internal/chat/repository/redis"
	"ai-chat-service/internal/chat/usecase"
	"ai-chat-service/internal/httpserver"
	"ai-chat-service/pkg/gemini"
	"ai-chat-service/pkg/log"
)

// @title       AI Chat Service API
// @description Stateless conversational AI API: per-session chat history, Gemini-backed replies, Redis persistence.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Chat Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model client
	llm, err := gemini.New(gemini.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
		APIURL: cfg.Gemini.APIURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	logger.Infof(ctx, "Gemini client initialized with model %s", llm.Model())

	// 4. Session store: Redis when configured, bounded in-memory otherwise
	var sessionRepo repository.SessionRepository
	if cfg.Redis.Addr != "" {
		redisClient, rErr := redisInfra.Connect(ctx, cfg.Redis)
		if rErr != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", rErr)
			return
		}
		defer redisClient.Close()

		sessionRepo = redisRepo.New(redisClient, cfg.Session.TTL)
		logger.Infof(ctx, "Session store: redis at %s", cfg.Redis.Addr)
	} else {
		sessionRepo = memoryRepo.New(cfg.Session.MaxInMemory, cfg.Session.TTL)
		logger.Warn(ctx, "Session store: in-memory (sessions are lost on restart; set redis.addr for persistence)")
	}

	// 5. Chat domain
	chatUC := usecase.New(logger, llm, sessionRepo)
	chatHandler := chatDelivery.New(logger, chatUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
