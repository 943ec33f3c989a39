package usecase

import (
	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/quota"
	"mediasearch-srv/internal/search"
	"mediasearch-srv/pkg/log"
	"mediasearch-srv/pkg/providers"
)

// ProviderResolver resolves a query to its configured provider adapter.
type ProviderResolver interface {
	Resolve(q model.QueryDescriptor) (providers.ContentProvider, error)
}

// Config - result sizes for single-shot operations
type Config struct {
	SampleSize int
	TermsLimit int
}

// DefaultConfig - Returns default config
func DefaultConfig() Config {
	return Config{
		SampleSize: 25,
		TermsLimit: 100,
	}
}

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	resolver ProviderResolver
	quotaUC  quota.UseCase
	l        log.Logger
	cfg      Config
}

// New - Factory function
func New(resolver ProviderResolver, quotaUC quota.UseCase, l log.Logger, cfg Config) search.UseCase {
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = DefaultConfig().SampleSize
	}
	if cfg.TermsLimit <= 0 {
		cfg.TermsLimit = DefaultConfig().TermsLimit
	}
	return &implUseCase{
		resolver: resolver,
		quotaUC:  quotaUC,
		l:        l,
		cfg:      cfg,
	}
}
