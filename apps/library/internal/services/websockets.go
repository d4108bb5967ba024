package services

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/communication/wstools"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"readinglog.xdoubleu.com/apps/library/internal/dtos"
	"readinglog.xdoubleu.com/apps/library/internal/models"
	"readinglog.xdoubleu.com/internal/screen"
)

const LibraryTopic = "library"

type WebSocketService struct {
	allowedOrigins []string
	handler        *wstools.WebSocketHandler[dtos.SubscribeMessageDto]
	jobQueue       *threading.JobQueue
	library        *LibraryService

	// jobs report their state from the queue's goroutines
	mu     sync.RWMutex
	topics map[string]*wstools.Topic
}

func NewWebSocketService(
	logger *slog.Logger,
	allowedOrigins []string,
	jobQueue *threading.JobQueue,
	library *LibraryService,
) *WebSocketService {
	service := WebSocketService{
		allowedOrigins: allowedOrigins,
		handler:        nil,
		jobQueue:       jobQueue,
		library:        library,
		mu:             sync.RWMutex{},
		topics:         make(map[string]*wstools.Topic),
	}

	handler := wstools.CreateWebSocketHandler[dtos.SubscribeMessageDto](
		logger,
		1,
		100, //nolint:mnd //no magic number
	)

	service.handler = &handler

	return &service
}

func (service *WebSocketService) Handler() http.HandlerFunc {
	return service.handler.Handler()
}

// UpdateState reports the run state of a job to its topic.
func (service *WebSocketService) UpdateState(
	id string,
	isRunning bool,
	lastRunTime *time.Time,
) {
	service.mu.RLock()
	topic, ok := service.topics[id]
	service.mu.RUnlock()
	if !ok {
		return
	}

	topic.EnqueueEvent(dtos.StateMessageDto{
		IsRefreshing: isRunning,
		LastRefresh:  lastRunTime,
	})
}

// RegisterTopics adds a topic per job and one for the library screen, which
// receives every committed screen state.
func (service *WebSocketService) RegisterTopics(jobIDs []string) {
	for _, id := range jobIDs {
		service.addTopic(id, func(_ context.Context, tp *wstools.Topic) (any, error) {
			return service.fetchJobState(tp), nil
		})
	}

	topic := service.addTopic(
		LibraryTopic,
		func(_ context.Context, _ *wstools.Topic) (any, error) {
			return service.libraryState(service.library.State()), nil
		},
	)

	service.library.Subscribe(func(state screen.State[models.Book]) {
		topic.EnqueueEvent(service.libraryState(state))
	})
}

func (service *WebSocketService) addTopic(
	name string,
	onSubscribe func(context.Context, *wstools.Topic) (any, error),
) *wstools.Topic {
	registeredTopic, err := service.handler.AddTopic(
		name,
		service.allowedOrigins,
		onSubscribe,
	)
	if err != nil {
		panic(err)
	}

	service.mu.Lock()
	service.topics[name] = registeredTopic
	service.mu.Unlock()

	return registeredTopic
}

func (service *WebSocketService) fetchJobState(topic *wstools.Topic) dtos.StateMessageDto {
	isRefreshing, lastRefresh := service.jobQueue.FetchState(topic.Name)

	return dtos.StateMessageDto{
		IsRefreshing: isRefreshing,
		LastRefresh:  lastRefresh,
	}
}

func (service *WebSocketService) libraryState(
	state screen.State[models.Book],
) dtos.LibraryStateDto {
	return dtos.LibraryStateFrom(time.Now(), state)
}
