package redis

import (
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultConnectTimeout bounds the initial connection check.
const DefaultConnectTimeout = 5 * time.Second

// Nil is returned by Get when the key does not exist.
var Nil = goredis.Nil

var (
	ErrHostRequired = errors.New("redis host is required")
	ErrInvalidPort  = errors.New("redis port must be between 1 and 65535")
)

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client *goredis.Client
}
