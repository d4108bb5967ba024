package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"readinglog.xdoubleu.com/apps/library/internal/mocks"
	"readinglog.xdoubleu.com/apps/library/internal/models"
	"readinglog.xdoubleu.com/apps/library/internal/services"
	"readinglog.xdoubleu.com/apps/library/pkg/goodreads"
	"readinglog.xdoubleu.com/internal/config"
	sharedmocks "readinglog.xdoubleu.com/internal/mocks"
)

func newServices(store services.BookStore, goodreadsURL string) *services.Services {
	cfg := config.New(logging.NewNopLogger())
	cfg.GoodreadsURL = goodreadsURL

	return services.New(
		logging.NewNopLogger(),
		cfg,
		threading.NewJobQueue(logging.NewNopLogger(), 1, 10),
		store,
		mocks.NewMockGoodreadsClient(),
		sharedmocks.NewMockedAuthService(sharedmocks.MockedUserID),
	)
}

func TestImportAllBooks(t *testing.T) {
	store := mocks.NewMockBookStore()
	srv := newServices(store, "https://www.goodreads.com/user/show/1")

	books, err := srv.Goodreads.ImportAllBooks(context.Background())
	require.Nil(t, err)
	require.Len(t, books, 2)

	require.Nil(t, srv.Library.SelectFilter(context.Background(), models.FilterReading))
	reading := srv.Library.State().Items
	require.Len(t, reading, 1)
	assert.Equal(t, "Title", reading[0].Title)
	assert.Equal(t, models.SourceGoodreads, reading[0].Source)
	require.NotNil(t, reading[0].CoverURL)

	require.Nil(t, srv.Library.SelectFilter(context.Background(), models.FilterCompleted))
	completed := srv.Library.State().Items
	require.Len(t, completed, 1)
	assert.Equal(t, 4, completed[0].Rating)
	assert.Nil(t, completed[0].CoverURL)
}

func TestImportIsIdempotent(t *testing.T) {
	store := mocks.NewMockBookStore()
	srv := newServices(store, "https://www.goodreads.com/user/show/1")

	first, err := srv.Goodreads.ImportAllBooks(context.Background())
	require.Nil(t, err)
	second, err := srv.Goodreads.ImportAllBooks(context.Background())
	require.Nil(t, err)

	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestImportWithoutProfile(t *testing.T) {
	srv := newServices(mocks.NewMockBookStore(), "")

	assert.False(t, srv.Goodreads.Enabled())
	_, err := srv.Goodreads.ImportAllBooks(context.Background())
	assert.ErrorIs(t, err, services.ErrNoGoodreadsProfile)
}

func TestStatusForShelf(t *testing.T) {
	status, ok := services.StatusForShelf(goodreads.ShelfCurrentlyReading)
	assert.True(t, ok)
	assert.Equal(t, models.StatusInProgress, status)

	status, ok = services.StatusForShelf(goodreads.ShelfToRead)
	assert.True(t, ok)
	assert.Equal(t, models.StatusToRead, status)

	status, ok = services.StatusForShelf(goodreads.ShelfRead)
	assert.True(t, ok)
	assert.Equal(t, models.StatusCompleted, status)

	_, ok = services.StatusForShelf("favorites")
	assert.False(t, ok)
}

func TestBookFromGoodreads(t *testing.T) {
	//nolint:exhaustruct //other fields are optional
	book := services.BookFromGoodreads(
		goodreads.Book{ID: 42, Title: "Dune", Rating: 7},
		models.StatusToRead,
	)

	assert.Len(t, book.ID, 36)
	assert.Equal(t, models.TypeBook, book.Type)
	assert.Equal(t, models.MaxRating, book.Rating)
	assert.Equal(t, 0, book.IdeasCount)
}
