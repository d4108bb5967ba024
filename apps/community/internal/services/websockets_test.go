package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"readinglog.xdoubleu.com/apps/community/internal/jobs"
	"readinglog.xdoubleu.com/apps/community/internal/mocks"
	"readinglog.xdoubleu.com/apps/community/internal/services"
)

func TestUpdateStateWhileRegisteringTopics(t *testing.T) {
	webSocket := services.NewWebSocketService(
		logging.NewNopLogger(),
		[]string{"http://localhost"},
		threading.NewJobQueue(logging.NewNopLogger(), 1, 10),
		services.NewFeedService(
			logging.NewNopLogger(),
			mocks.NewMockNoteStore(),
			time.Second,
			0,
		),
	)

	lastRun := time.Now()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 20 {
			webSocket.UpdateState(jobs.RefreshJobID, true, &lastRun)
		}
	}()

	webSocket.RegisterTopics([]string{jobs.RefreshJobID})
	wg.Wait()

	assert.NotPanics(t, func() {
		webSocket.UpdateState(jobs.RefreshJobID, false, &lastRun)
		webSocket.UpdateState("unknown", false, nil)
	})
}
