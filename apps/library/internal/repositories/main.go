package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Books *BookRepository
}

func New(db postgres.DB) *Repositories {
	books := &BookRepository{db: db}

	return &Repositories{
		Books: books,
	}
}
