package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"readinglog.xdoubleu.com/apps/library/internal/services"
	"readinglog.xdoubleu.com/internal/screen"
)

const GoodreadsJobID = "goodreads"

type GoodreadsJob struct {
	goodreadsService *services.GoodreadsService
	libraryService   *services.LibraryService
}

func NewGoodreadsJob(
	goodreadsService *services.GoodreadsService,
	libraryService *services.LibraryService,
) GoodreadsJob {
	return GoodreadsJob{
		goodreadsService: goodreadsService,
		libraryService:   libraryService,
	}
}

func (j GoodreadsJob) ID() string {
	return GoodreadsJobID
}

func (j GoodreadsJob) RunEvery() time.Duration {
	//nolint:mnd //no magic number
	return 24 * time.Hour
}

func (j GoodreadsJob) Run(ctx context.Context, logger *slog.Logger) error {
	if !j.goodreadsService.Enabled() {
		logger.Debug("no goodreads profile configured, skipping import")
		return nil
	}

	logger.Debug("importing books")
	books, err := j.goodreadsService.ImportAllBooks(ctx)
	if err != nil {
		return err
	}
	logger.Debug(fmt.Sprintf("imported %d books", len(books)))

	err = j.libraryService.Refresh(ctx)
	if err != nil && !errors.Is(err, screen.ErrStale) {
		return err
	}

	return nil
}
