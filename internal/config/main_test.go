package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"readinglog.xdoubleu.com/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.New(logging.NewNopLogger())

	assert.Equal(t, 10*time.Second, cfg.FetchTimeoutDuration())
	assert.Equal(t, 5*time.Minute, cfg.FeedRefreshDuration())
	assert.Equal(t, uint64(0), cfg.FetchRetryCount())
}

func TestDurations(t *testing.T) {
	cfg := config.New(logging.NewNopLogger())

	cfg.FetchTimeout = "1m30s"
	cfg.FeedRefreshEvery = "1d"
	cfg.FetchRetries = 2

	assert.Equal(t, 90*time.Second, cfg.FetchTimeoutDuration())
	assert.Equal(t, 24*time.Hour, cfg.FeedRefreshDuration())
	assert.Equal(t, uint64(2), cfg.FetchRetryCount())
}

func TestInvalidValuesFallBack(t *testing.T) {
	cfg := config.New(logging.NewNopLogger())

	cfg.FetchTimeout = "soon"
	cfg.FeedRefreshEvery = "0s"
	cfg.FetchRetries = -1

	assert.Equal(t, 10*time.Second, cfg.FetchTimeoutDuration())
	assert.Equal(t, 5*time.Minute, cfg.FeedRefreshDuration())
	assert.Equal(t, uint64(0), cfg.FetchRetryCount())
}
