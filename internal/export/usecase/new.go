package usecase

import (
	"time"

	"mediasearch-srv/internal/export"
	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/quota"
	"mediasearch-srv/pkg/email"
	"mediasearch-srv/pkg/log"
	"mediasearch-srv/pkg/providers"
)

// ProviderResolver resolves a query to its configured provider adapter.
type ProviderResolver interface {
	Resolve(q model.QueryDescriptor) (providers.ContentProvider, error)
}

// Config - size bounds for asynchronous exports
type Config struct {
	// MinEmailStories is the volume below which a direct download is
	// expected instead of an email job.
	MinEmailStories int64
	// MaxEmailStories caps the volume an email job may fetch into memory.
	MaxEmailStories int64
}

// DefaultConfig - bounds for the in-memory email pipeline
func DefaultConfig() Config {
	return Config{
		MinEmailStories: 25000,
		MaxEmailStories: 200000,
	}
}

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	resolver ProviderResolver
	quotaUC  quota.UseCase
	producer export.Producer
	sender   email.ISender
	l        log.Logger
	cfg      Config
	now      func() time.Time
}

// New - Factory function
func New(
	resolver ProviderResolver,
	quotaUC quota.UseCase,
	producer export.Producer,
	sender email.ISender,
	l log.Logger,
	cfg Config,
) export.UseCase {
	if cfg.MinEmailStories <= 0 {
		cfg.MinEmailStories = DefaultConfig().MinEmailStories
	}
	if cfg.MaxEmailStories <= 0 {
		cfg.MaxEmailStories = DefaultConfig().MaxEmailStories
	}
	return &implUseCase{
		resolver: resolver,
		quotaUC:  quotaUC,
		producer: producer,
		sender:   sender,
		l:        l,
		cfg:      cfg,
		now:      time.Now,
	}
}
