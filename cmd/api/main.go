package main

import (
	"context"
	"fmt"

	"smart-reply-srv/config"
	configRedis "smart-reply-srv/config/redis"
	_ "smart-reply-srv/docs" // Import swagger docs
	"smart-reply-srv/internal/httpserver"
	"smart-reply-srv/pkg/discord"
	"smart-reply-srv/pkg/gemini"
	pkgJWT "smart-reply-srv/pkg/jwt"
	"smart-reply-srv/pkg/log"
	pkgRedis "smart-reply-srv/pkg/redis"
)

// @title       Smart Reply Service API
// @description Smart reply suggestions and passthrough chat backed by Google Gemini.
// @version     1
// @host        localhost:8080
// @schemes     http https
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token issued by the auth service. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// 3. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 4. Initialize Redis (optional, token revocation list)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled() {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer func() {
			if err := configRedis.Disconnect(); err != nil {
				logger.Errorf(ctx, "Failed to disconnect Redis: %v", err)
			}
		}()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	} else {
		logger.Warnf(ctx, "Redis not configured (optional): revoked tokens are not checked")
	}

	// 5. Initialize Gemini client
	geminiClient, err := gemini.NewGemini(gemini.GeminiConfig{
		APIKey:    cfg.Gemini.APIKey,
		Model:     cfg.Gemini.Model,
		BaseURL:   cfg.Gemini.BaseURL,
		Timeout:   cfg.Gemini.Timeout,
		Retries:   cfg.Gemini.Retries,
		RetryWait: cfg.Gemini.RetryWait,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	logger.Infof(ctx, "Gemini client initialized with model: %s", cfg.Gemini.Model)

	// 6. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		Leeway:    cfg.JWT.Leeway,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		CORSOrigins: cfg.CORS.AllowedOrigins,

		// Completion Configuration
		GeminiClient: geminiClient,

		// Authentication & Security Configuration
		JWTManager:         jwtManager,
		RedisClient:        redisClient,
		BlacklistKeyPrefix: cfg.Blacklist.KeyPrefix,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// Run blocks until SIGINT/SIGTERM and shuts down gracefully
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
