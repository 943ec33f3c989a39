package usecase

import (
	"time"

	"mediasearch-srv/internal/savedsearch"
	"mediasearch-srv/internal/savedsearch/repository"
	"mediasearch-srv/pkg/log"
)

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

// New - Factory function
func New(repo repository.Repository, l log.Logger) savedsearch.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
