package httpserver

import (
	"errors"

	"smart-reply-srv/pkg/discord"
	"smart-reply-srv/pkg/gemini"
	"smart-reply-srv/pkg/log"
	pkgRedis "smart-reply-srv/pkg/redis"
	"smart-reply-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	corsOrigins []string

	// Completion Configuration
	geminiClient gemini.IGemini

	// Authentication & Security Configuration
	jwtManager         scope.Manager
	redisClient        pkgRedis.IRedis
	blacklistKeyPrefix string

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string
	CORSOrigins []string

	// Completion Configuration
	GeminiClient gemini.IGemini

	// Authentication & Security Configuration
	JWTManager         scope.Manager
	RedisClient        pkgRedis.IRedis // optional
	BlacklistKeyPrefix string

	// Monitoring & Notification Configuration
	Discord discord.IDiscord // optional
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		corsOrigins: cfg.CORSOrigins,

		// Completion Configuration
		geminiClient: cfg.GeminiClient,

		// Authentication & Security Configuration
		jwtManager:         cfg.JWTManager,
		redisClient:        cfg.RedisClient,
		blacklistKeyPrefix: cfg.BlacklistKeyPrefix,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.geminiClient == nil {
		return errors.New("geminiClient is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	// redisClient and discord are optional
	return nil
}
