package postgre

import (
	"database/sql"

	"mediasearch-srv/internal/savedsearch/repository"
	"mediasearch-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.Repository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
