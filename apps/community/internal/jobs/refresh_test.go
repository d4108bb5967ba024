package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"readinglog.xdoubleu.com/apps/community/internal/jobs"
	"readinglog.xdoubleu.com/apps/community/internal/mocks"
	"readinglog.xdoubleu.com/apps/community/internal/models"
	"readinglog.xdoubleu.com/apps/community/internal/services"
	"readinglog.xdoubleu.com/internal/screen"
)

func TestRefreshJob(t *testing.T) {
	shared := time.Now()
	//nolint:exhaustruct //other fields are optional
	store := mocks.NewMockNoteStore(models.SharedNote{
		Note: models.Note{ID: "n1", SharedAt: &shared},
	})
	feed := services.NewFeedService(logging.NewNopLogger(), store, time.Second, 0)

	job := jobs.NewRefreshJob(feed, 5*time.Minute)
	assert.Equal(t, jobs.RefreshJobID, job.ID())
	assert.Equal(t, 5*time.Minute, job.RunEvery())

	require.Nil(t, job.Run(context.Background(), logging.NewNopLogger()))
	assert.Equal(t, screen.Loaded, feed.State().Phase)
	assert.Len(t, feed.State().Items, 1)
}

func TestRefreshJobFailure(t *testing.T) {
	store := mocks.NewMockNoteStore()
	store.SetListError(errors.New("connection reset"))
	feed := services.NewFeedService(logging.NewNopLogger(), store, time.Second, 0)

	err := jobs.NewRefreshJob(feed, time.Minute).Run(
		context.Background(),
		logging.NewNopLogger(),
	)
	assert.NotNil(t, err)
	assert.Equal(t, services.FailedToLoadSharedNotes, feed.State().Error)
}
