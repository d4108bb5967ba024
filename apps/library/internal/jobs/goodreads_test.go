package jobs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"readinglog.xdoubleu.com/apps/library/internal/jobs"
	"readinglog.xdoubleu.com/apps/library/internal/mocks"
	"readinglog.xdoubleu.com/apps/library/internal/models"
	"readinglog.xdoubleu.com/apps/library/internal/services"
)

func TestGoodreadsJobImportsAndRefreshes(t *testing.T) {
	store := mocks.NewMockBookStore()
	library := services.NewLibraryService(logging.NewNopLogger(), store, time.Second, 0)
	goodreads := services.NewGoodreadsService(
		logging.NewNopLogger(),
		store,
		mocks.NewMockGoodreadsClient(),
		"https://www.goodreads.com/user/show/1",
	)

	job := jobs.NewGoodreadsJob(goodreads, library)
	assert.Equal(t, jobs.GoodreadsJobID, job.ID())
	assert.Equal(t, 24*time.Hour, job.RunEvery())

	err := job.Run(context.Background(), logging.NewNopLogger())
	require.Nil(t, err)

	state := library.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, models.StatusInProgress, state.Items[0].Status)
}

func TestGoodreadsJobSkipsWithoutProfile(t *testing.T) {
	store := mocks.NewMockBookStore()
	library := services.NewLibraryService(logging.NewNopLogger(), store, time.Second, 0)
	goodreads := services.NewGoodreadsService(
		logging.NewNopLogger(),
		store,
		mocks.NewMockGoodreadsClient(),
		"",
	)

	err := jobs.NewGoodreadsJob(goodreads, library).Run(
		context.Background(),
		logging.NewNopLogger(),
	)
	require.Nil(t, err)
	assert.Empty(t, store.RequestedStatuses())
}
