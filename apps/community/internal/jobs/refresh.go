package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"readinglog.xdoubleu.com/apps/community/internal/services"
	"readinglog.xdoubleu.com/internal/screen"
)

const RefreshJobID = "refresh-feed"

type RefreshJob struct {
	feedService *services.FeedService
	every       time.Duration
}

func NewRefreshJob(feedService *services.FeedService, every time.Duration) RefreshJob {
	return RefreshJob{
		feedService: feedService,
		every:       every,
	}
}

func (j RefreshJob) ID() string {
	return RefreshJobID
}

func (j RefreshJob) RunEvery() time.Duration {
	return j.every
}

func (j RefreshJob) Run(ctx context.Context, logger *slog.Logger) error {
	logger.Debug("refreshing feed")

	err := j.feedService.Load(ctx)
	if errors.Is(err, screen.ErrStale) {
		return nil
	}
	return err
}
