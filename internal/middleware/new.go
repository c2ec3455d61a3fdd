package middleware

import (
	"smart-reply-srv/pkg/log"
	pkgRedis "smart-reply-srv/pkg/redis"
	"smart-reply-srv/pkg/scope"
)

// DefaultBlacklistKeyPrefix prefixes revoked token ids in Redis.
const DefaultBlacklistKeyPrefix = "blacklist:"

type Middleware struct {
	l                  log.Logger
	jwtManager         scope.Manager
	redisClient        pkgRedis.IRedis
	blacklistKeyPrefix string
}

// Config holds the middleware dependencies. RedisClient is optional; without it revoked
// tokens are not checked.
type Config struct {
	JWTManager         scope.Manager
	RedisClient        pkgRedis.IRedis
	BlacklistKeyPrefix string
}

func New(l log.Logger, cfg Config) Middleware {
	prefix := cfg.BlacklistKeyPrefix
	if prefix == "" {
		prefix = DefaultBlacklistKeyPrefix
	}
	return Middleware{
		l:                  l,
		jwtManager:         cfg.JWTManager,
		redisClient:        cfg.RedisClient,
		blacklistKeyPrefix: prefix,
	}
}
