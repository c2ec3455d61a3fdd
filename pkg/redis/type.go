package redis

import (
	"net"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisConfig describes the Redis server used for the revoked token list.
// ConnectTimeout bounds the ping made by NewRedis and defaults to DefaultConnectTimeout.
type RedisConfig struct {
	Host           string
	Port           int
	Password       string
	DB             int
	ConnectTimeout time.Duration
}

// Addr returns host:port for go-redis.
func (c RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c RedisConfig) validate() error {
	if c.Host == "" {
		return ErrHostRequired
	}
	if c.Port <= 0 || c.Port > 65535 {
		return ErrInvalidPort
	}
	return nil
}

type redisImpl struct {
	client *goredis.Client
}
