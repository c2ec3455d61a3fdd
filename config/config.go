package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Gemini - LLM
	Gemini GeminiConfig

	// Redis - Token revocation list (optional)
	Redis     RedisConfig
	Blacklist BlacklistConfig

	// JWT - Authentication
	JWT JWTConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CORSConfig lists the browser origins allowed in production.
type CORSConfig struct {
	AllowedOrigins []string
}

// GeminiConfig is the configuration for Google Gemini (LLM). Same shape as pkg/gemini.GeminiConfig.
type GeminiConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

// RedisConfig is the configuration for Redis. An empty host disables Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Enabled reports whether a Redis host is configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// BlacklistConfig configures the revoked token lookup.
type BlacklistConfig struct {
	KeyPrefix string
}

// JWTConfig is used to verify tokens (same secret/issuer as the auth service).
type JWTConfig struct {
	Issuer    string
	Audience  []string
	SecretKey string
	Leeway    time.Duration
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("smart-reply-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/smart-reply/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = v.GetStringSlice("cors.allowed_origins")

	// Gemini - LLM
	cfg.Gemini.APIKey = v.GetString("gemini.api_key")
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = v.GetString("google.api_key") // GOOGLE_API_KEY
	}
	cfg.Gemini.Model = v.GetString("gemini.model")
	cfg.Gemini.BaseURL = v.GetString("gemini.base_url")
	cfg.Gemini.Timeout = v.GetDuration("gemini.timeout")
	cfg.Gemini.Retries = v.GetInt("gemini.retries")
	cfg.Gemini.RetryWait = v.GetDuration("gemini.retry_wait")

	// Redis
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Blacklist.KeyPrefix = v.GetString("blacklist.key_prefix")

	// JWT
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	cfg.JWT.Audience = v.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = v.GetString("jwt.secret_key")
	cfg.JWT.Leeway = v.GetDuration("jwt.leeway")

	// Discord
	cfg.Discord.WebhookID = v.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = v.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP Server
	v.SetDefault("http_server.host", "")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)

	// CORS
	v.SetDefault("cors.allowed_origins", []string{})

	// Gemini
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta/models")
	v.SetDefault("gemini.timeout", "30s")
	v.SetDefault("gemini.retries", 0)
	v.SetDefault("gemini.retry_wait", "1s")

	// Redis (empty host disables it)
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Blacklist
	v.SetDefault("blacklist.key_prefix", "blacklist:")

	// JWT
	v.SetDefault("jwt.issuer", "")
	v.SetDefault("jwt.audience", []string{})
	v.SetDefault("jwt.leeway", "30s")
}

func validate(cfg *Config) error {
	// Validate Gemini
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required (GEMINI_API_KEY or GOOGLE_API_KEY)")
	}
	if cfg.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be greater than 0")
	}
	if cfg.Gemini.Retries < 0 {
		return fmt.Errorf("gemini.retries must not be negative")
	}

	// Validate JWT fields
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Leeway < 0 {
		return fmt.Errorf("jwt.leeway must not be negative")
	}

	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port is required")
	}

	if cfg.Redis.Enabled() && cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required when redis.host is set")
	}

	return nil
}
