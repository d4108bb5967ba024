package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"readinglog.xdoubleu.com/apps/library/internal/models"
	"readinglog.xdoubleu.com/internal/screen"
)

const FailedToLoadBooks = "Failed to load books"

type BookStore interface {
	ListByStatus(ctx context.Context, status models.Status) ([]models.Book, error)
	UpsertBooks(ctx context.Context, books []models.Book) error
}

// LibraryService backs the library screen: the selected filter and the
// books listed for it.
type LibraryService struct {
	books   BookStore
	fetcher *screen.Fetcher[models.Book]

	mu     sync.RWMutex
	filter models.Filter
}

func NewLibraryService(
	logger *slog.Logger,
	books BookStore,
	timeout time.Duration,
	retries uint64,
) *LibraryService {
	//nolint:exhaustruct //other fields are optional
	return &LibraryService{
		books: books,
		fetcher: screen.NewFetcher(
			logger,
			screen.NewStore[models.Book](),
			FailedToLoadBooks,
			timeout,
			retries,
		),
		filter: models.DefaultFilter(),
	}
}

func (service *LibraryService) Filter() models.Filter {
	service.mu.RLock()
	defer service.mu.RUnlock()

	return service.filter
}

// SelectFilter makes filter current and lists its books. When another
// filter is selected before this one resolves, ErrStale is returned and the
// newer selection's result stays.
func (service *LibraryService) SelectFilter(
	ctx context.Context,
	filter models.Filter,
) error {
	return service.fetcher.FetchWith(
		ctx,
		func() string {
			service.mu.Lock()
			service.filter = filter
			service.mu.Unlock()
			return string(filter)
		},
		service.read(filter),
	)
}

// Refresh lists the books of whatever filter is current when it starts.
func (service *LibraryService) Refresh(ctx context.Context) error {
	var filter models.Filter

	return service.fetcher.FetchWith(
		ctx,
		func() string {
			filter = service.Filter()
			return string(filter)
		},
		func(ctx context.Context) ([]models.Book, error) {
			return service.books.ListByStatus(ctx, filter.Status())
		},
	)
}

func (service *LibraryService) State() screen.State[models.Book] {
	return service.fetcher.Store().State()
}

func (service *LibraryService) Subscribe(fn func(screen.State[models.Book])) func() {
	return service.fetcher.Store().Subscribe(fn)
}

func (service *LibraryService) read(filter models.Filter) screen.ReadFunc[models.Book] {
	return func(ctx context.Context) ([]models.Book, error) {
		return service.books.ListByStatus(ctx, filter.Status())
	}
}
