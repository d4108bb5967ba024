//nolint:mnd //no magic number
package config

import (
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/config"
	"github.com/xhit/go-str2duration/v2"
)

type Config struct {
	Env              string
	Port             int
	Throttle         bool
	WebURL           string
	SentryDsn        string
	SampleRate       float64
	AccessExpiry     string
	RefreshExpiry    string
	DBDsn            string
	Release          string
	SupabaseUserID   string
	SupabaseProjRef  string
	SupabaseAPIKey   string
	GoodreadsURL     string
	FetchTimeout     string
	FetchRetries     int
	FeedRefreshEvery string
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.Throttle = parser.EnvBool("THROTTLE", true)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:8000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.AccessExpiry = parser.EnvStr("ACCESS_EXPIRY", "1h")
	cfg.RefreshExpiry = parser.EnvStr("REFRESH_EXPIRY", "7d")
	cfg.DBDsn = parser.EnvStr("DB_DSN", "postgres://postgres@localhost/postgres")
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	cfg.SupabaseUserID = parser.EnvStr("SUPABASE_USER_ID", "")
	cfg.SupabaseProjRef = parser.EnvStr("SUPABASE_PROJ_REF", "")
	cfg.SupabaseAPIKey = parser.EnvStr("SUPABASE_API_KEY", "")

	cfg.GoodreadsURL = parser.EnvStr("GOODREADS_URL", "")

	cfg.FetchTimeout = parser.EnvStr("FETCH_TIMEOUT", "10s")
	cfg.FetchRetries = parser.EnvInt("FETCH_RETRIES", 0)
	cfg.FeedRefreshEvery = parser.EnvStr("FEED_REFRESH_EVERY", "5m")

	return cfg
}

// FetchTimeoutDuration bounds a single read or write against the database.
func (cfg Config) FetchTimeoutDuration() time.Duration {
	return parseDuration(cfg.FetchTimeout, 10*time.Second)
}

func (cfg Config) FeedRefreshDuration() time.Duration {
	return parseDuration(cfg.FeedRefreshEvery, 5*time.Minute)
}

// FetchRetryCount never goes below zero.
func (cfg Config) FetchRetryCount() uint64 {
	if cfg.FetchRetries < 0 {
		return 0
	}
	return uint64(cfg.FetchRetries)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := str2duration.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}
