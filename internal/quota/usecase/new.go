package usecase

import (
	"time"

	"mediasearch-srv/internal/quota"
	"mediasearch-srv/internal/quota/repository"
	"mediasearch-srv/pkg/log"
)

// Config - admission policy for metered provider usage
type Config struct {
	// Window is the length of one admission window.
	Window time.Duration
	// DefaultLimit is the weight allowance per user per provider per window.
	DefaultLimit int64
	// StaffExempt waives admission checks for staff (usage still recorded).
	StaffExempt bool
	// StaffMultiplier scales the limit for staff when they are not exempt.
	StaffMultiplier int64
}

// DefaultConfig - weekly allowance, staff exempt
func DefaultConfig() Config {
	return Config{
		Window:          7 * 24 * time.Hour,
		DefaultLimit:    4000,
		StaffExempt:     true,
		StaffMultiplier: 1,
	}
}

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	counterRepo repository.CounterRepository
	historyRepo repository.HistoryRepository
	producer    quota.Producer
	l           log.Logger
	cfg         Config
	now         func() time.Time
}

// New - Factory function
func New(
	counterRepo repository.CounterRepository,
	historyRepo repository.HistoryRepository,
	producer quota.Producer,
	l log.Logger,
	cfg Config,
) quota.UseCase {
	if cfg.Window <= 0 {
		cfg.Window = DefaultConfig().Window
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = DefaultConfig().DefaultLimit
	}
	if cfg.StaffMultiplier < 1 {
		cfg.StaffMultiplier = 1
	}
	return &implUseCase{
		counterRepo: counterRepo,
		historyRepo: historyRepo,
		producer:    producer,
		l:           l,
		cfg:         cfg,
		now:         time.Now,
	}
}
