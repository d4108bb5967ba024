package mocks

import (
	"context"
	"slices"
	"sync"

	"readinglog.xdoubleu.com/apps/library/internal/models"
)

// MockBookStore keeps books in memory and records every status it was
// asked for.
type MockBookStore struct {
	mu       sync.Mutex
	books    map[string]models.Book
	err      error
	Requests []models.Status
}

func NewMockBookStore(books ...models.Book) *MockBookStore {
	store := &MockBookStore{
		mu:       sync.Mutex{},
		books:    map[string]models.Book{},
		err:      nil,
		Requests: []models.Status{},
	}

	for _, book := range books {
		store.books[book.ID] = book
	}

	return store
}

// SetError makes every following call fail with err.
func (m *MockBookStore) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}

func (m *MockBookStore) RequestedStatuses() []models.Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.Requests)
}

func (m *MockBookStore) ListByStatus(
	_ context.Context,
	status models.Status,
) ([]models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, status)
	if m.err != nil {
		return nil, m.err
	}

	books := []models.Book{}
	for _, book := range m.books {
		if book.Status == status {
			books = append(books, book)
		}
	}

	slices.SortFunc(books, func(a, b models.Book) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	return books, nil
}

func (m *MockBookStore) UpsertBooks(_ context.Context, books []models.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	for _, book := range books {
		m.books[book.ID] = book
	}

	return nil
}
