package services

import (
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"readinglog.xdoubleu.com/apps/library/pkg/goodreads"
	"readinglog.xdoubleu.com/internal/auth"
	"readinglog.xdoubleu.com/internal/config"
)

type Services struct {
	Auth      auth.Service
	Library   *LibraryService
	Goodreads *GoodreadsService
	WebSocket *WebSocketService
}

func New(
	logger *slog.Logger,
	config config.Config,
	jobQueue *threading.JobQueue,
	books BookStore,
	goodreadsClient goodreads.Client,
	authService auth.Service,
) *Services {
	library := NewLibraryService(
		logger,
		books,
		config.FetchTimeoutDuration(),
		config.FetchRetryCount(),
	)
	goodreads := NewGoodreadsService(
		logger,
		books,
		goodreadsClient,
		config.GoodreadsURL,
	)

	return &Services{
		Auth:      authService,
		Library:   library,
		Goodreads: goodreads,
		WebSocket: NewWebSocketService(
			logger,
			[]string{config.WebURL},
			jobQueue,
			library,
		),
	}
}
