package services

import (
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"readinglog.xdoubleu.com/internal/auth"
	"readinglog.xdoubleu.com/internal/config"
)

type Services struct {
	Auth      auth.Service
	Feed      *FeedService
	WebSocket *WebSocketService
}

func New(
	logger *slog.Logger,
	config config.Config,
	jobQueue *threading.JobQueue,
	notes NoteStore,
	authService auth.Service,
) *Services {
	feed := NewFeedService(
		logger,
		notes,
		config.FetchTimeoutDuration(),
		config.FetchRetryCount(),
	)

	return &Services{
		Auth: authService,
		Feed: feed,
		WebSocket: NewWebSocketService(
			logger,
			[]string{config.WebURL},
			jobQueue,
			feed,
		),
	}
}
