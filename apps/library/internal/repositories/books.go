package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"readinglog.xdoubleu.com/apps/library/internal/models"
)

type BookRepository struct {
	db postgres.DB
}

func (repo *BookRepository) ListByStatus(
	ctx context.Context,
	status models.Status,
) ([]models.Book, error) {
	query := `
		SELECT id::text, title, author, cover_url, type, status, source,
		rating, ideas_count, created_at, updated_at
		FROM books
		WHERE status = $1
		ORDER BY updated_at DESC
	`

	rows, err := repo.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var book models.Book

		err = rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.CoverURL,
			&book.Type,
			&book.Status,
			&book.Source,
			&book.Rating,
			&book.IdeasCount,
			&book.CreatedAt,
			&book.UpdatedAt,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return books, nil
}

// UpsertBooks inserts books by id. Existing rows keep their rating and idea
// count; updated_at only moves when the status changes.
func (repo *BookRepository) UpsertBooks(
	ctx context.Context,
	books []models.Book,
) error {
	query := `
		INSERT INTO books
		(id, title, author, cover_url, type, status, source, rating)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id)
		DO UPDATE SET title = $2, author = $3, cover_url = $4, status = $6,
		updated_at = CASE
			WHEN books.status <> EXCLUDED.status THEN now()
			ELSE books.updated_at
		END
	`

	//nolint:exhaustruct //fields are optional
	b := &pgx.Batch{}
	for _, book := range books {
		b.Queue(
			query,
			book.ID,
			book.Title,
			book.Author,
			book.CoverURL,
			book.Type,
			string(book.Status),
			book.Source,
			book.Rating,
		)
	}

	err := repo.db.SendBatch(ctx, b).Close()
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}
