package postgre

import (
	"database/sql"

	"mediasearch-srv/internal/quota/repository"
	"mediasearch-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.HistoryRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
