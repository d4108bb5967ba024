package services

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/communication/wstools"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"readinglog.xdoubleu.com/apps/community/internal/dtos"
	"readinglog.xdoubleu.com/apps/community/internal/models"
	"readinglog.xdoubleu.com/internal/screen"
)

const FeedTopic = "feed"

type WebSocketService struct {
	allowedOrigins []string
	handler        *wstools.WebSocketHandler[dtos.SubscribeMessageDto]
	jobQueue       *threading.JobQueue
	feed           *FeedService

	// jobs report their state from the queue's goroutines
	mu     sync.RWMutex
	topics map[string]*wstools.Topic
}

func NewWebSocketService(
	logger *slog.Logger,
	allowedOrigins []string,
	jobQueue *threading.JobQueue,
	feed *FeedService,
) *WebSocketService {
	service := WebSocketService{
		allowedOrigins: allowedOrigins,
		handler:        nil,
		jobQueue:       jobQueue,
		feed:           feed,
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

// RegisterTopics adds a topic per job and the feed topic, which receives
// every committed feed state.
func (service *WebSocketService) RegisterTopics(jobIDs []string) {
	for _, id := range jobIDs {
		service.addTopic(id, func(_ context.Context, tp *wstools.Topic) (any, error) {
			isRefreshing, lastRefresh := service.jobQueue.FetchState(tp.Name)
			return dtos.StateMessageDto{
				IsRefreshing: isRefreshing,
				LastRefresh:  lastRefresh,
			}, nil
		})
	}

	topic := service.addTopic(
		FeedTopic,
		func(_ context.Context, _ *wstools.Topic) (any, error) {
			return dtos.FeedStateFrom(time.Now(), service.feed.State()), nil
		},
	)

	service.feed.Subscribe(func(state screen.State[models.SharedNote]) {
		topic.EnqueueEvent(dtos.FeedStateFrom(time.Now(), state))
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
