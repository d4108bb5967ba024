package repositories

import (
	"context"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"readinglog.xdoubleu.com/apps/community/internal/models"
)

type NoteRepository struct {
	db postgres.DB
}

func (repo *NoteRepository) ListShared(ctx context.Context) ([]models.SharedNote, error) {
	query := `
		SELECT n.id::text, n.book_id::text, n.content, n.type, n.created_at,
		n.shared_at, b.title, b.author
		FROM book_notes n
		JOIN books b ON n.book_id = b.id
		WHERE n.shared_at IS NOT NULL
		ORDER BY n.shared_at DESC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	notes := []models.SharedNote{}
	for rows.Next() {
		var note models.SharedNote

		err = rows.Scan(
			&note.ID,
			&note.BookID,
			&note.Content,
			&note.Type,
			&note.CreatedAt,
			&note.SharedAt,
			&note.BookTitle,
			&note.BookAuthor,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return notes, nil
}

// Unshare takes the note off the feed. The row itself is kept. A note that
// does not exist yields database.ErrResourceNotFound.
func (repo *NoteRepository) Unshare(ctx context.Context, id string) error {
	query := `
		UPDATE book_notes
		SET shared_at = NULL
		WHERE id = $1::uuid
	`

	result, err := repo.db.Exec(ctx, query, id)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	return nil
}
