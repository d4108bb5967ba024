package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"readinglog.xdoubleu.com/apps/library/internal/models"
	"readinglog.xdoubleu.com/apps/library/pkg/goodreads"
)

var ErrNoGoodreadsProfile = errors.New("no goodreads profile configured")

//nolint:gochecknoglobals //namespace for ids derived from goodreads ids
var goodreadsNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://www.goodreads.com/book/show"))

type GoodreadsService struct {
	logger     *slog.Logger
	books      BookStore
	client     goodreads.Client
	profileURL string
}

func NewGoodreadsService(
	logger *slog.Logger,
	books BookStore,
	client goodreads.Client,
	profileURL string,
) *GoodreadsService {
	return &GoodreadsService{
		logger:     logger,
		books:      books,
		client:     client,
		profileURL: profileURL,
	}
}

func (service *GoodreadsService) Enabled() bool {
	return service.profileURL != ""
}

// ImportAllBooks copies the books on the profile's status shelves into the
// library.
func (service *GoodreadsService) ImportAllBooks(ctx context.Context) ([]models.Book, error) {
	if !service.Enabled() {
		return nil, ErrNoGoodreadsProfile
	}

	goodreadsUserID, err := service.client.GetUserID(service.profileURL)
	if err != nil {
		return nil, err
	}

	fetched, err := service.client.GetBooks(*goodreadsUserID)
	if err != nil {
		return nil, err
	}

	books := make([]models.Book, 0, len(fetched))
	for _, book := range fetched {
		status, ok := StatusForShelf(book.Shelf)
		if !ok {
			continue
		}

		books = append(books, BookFromGoodreads(book, status))
	}

	service.logger.Debug(fmt.Sprintf("saving %d books", len(books)))
	err = service.books.UpsertBooks(ctx, books)
	if err != nil {
		return nil, err
	}

	return books, nil
}

func StatusForShelf(shelf string) (models.Status, bool) {
	switch shelf {
	case goodreads.ShelfCurrentlyReading:
		return models.StatusInProgress, true
	case goodreads.ShelfToRead:
		return models.StatusToRead, true
	case goodreads.ShelfRead:
		return models.StatusCompleted, true
	default:
		return "", false
	}
}

// BookFromGoodreads maps a scraped book onto a library row. The id is derived
// from the goodreads id so repeated imports update the same row.
func BookFromGoodreads(book goodreads.Book, status models.Status) models.Book {
	var coverURL *string
	if book.CoverURL != "" {
		coverURL = &book.CoverURL
	}

	//nolint:exhaustruct //timestamps are set by the database
	return models.Book{
		ID: uuid.NewSHA1(
			goodreadsNamespace,
			[]byte(strconv.FormatInt(book.ID, 10)),
		).String(),
		Title:      book.Title,
		Author:     book.Author,
		CoverURL:   coverURL,
		Type:       models.TypeBook,
		Status:     status,
		Source:     models.SourceGoodreads,
		Rating:     min(max(book.Rating, 0), models.MaxRating),
		IdeasCount: 0,
	}
}
