package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Notes *NoteRepository
}

func New(db postgres.DB) *Repositories {
	notes := &NoteRepository{db: db}

	return &Repositories{
		Notes: notes,
	}
}
