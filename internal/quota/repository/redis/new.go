package redis

import (
	"mediasearch-srv/internal/quota/repository"
	"mediasearch-srv/pkg/log"
	pkgRedis "mediasearch-srv/pkg/redis"
)

type implCounterRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CounterRepository {
	return &implCounterRepository{
		redis: redis,
		l:     l,
	}
}
