package screen

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

// ErrStale is returned when a newer fetch was issued before this one finished.
var ErrStale = errors.New("response superseded by a newer request")

const retryDelay = 250 * time.Millisecond

type ReadFunc[T Keyed] func(ctx context.Context) ([]T, error)

// Fetcher runs reads for a Store. Every read gets a token and cancels the
// read it supersedes; only the latest read commits.
type Fetcher[T Keyed] struct {
	logger      *slog.Logger
	store       *Store[T]
	failMessage string
	timeout     time.Duration
	retries     uint64

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewFetcher creates a Fetcher committing into store. Each attempt is bounded
// by timeout (none when zero); attempts that time out are retried up to
// retries times. Any other failure commits failMessage.
func NewFetcher[T Keyed](
	logger *slog.Logger,
	store *Store[T],
	failMessage string,
	timeout time.Duration,
	retries uint64,
) *Fetcher[T] {
	//nolint:exhaustruct //other fields are optional
	return &Fetcher[T]{
		logger:      logger,
		store:       store,
		failMessage: failMessage,
		timeout:     timeout,
		retries:     retries,
	}
}

func (fetcher *Fetcher[T]) Store() *Store[T] {
	return fetcher.store
}

func (fetcher *Fetcher[T]) Fetch(ctx context.Context, read ReadFunc[T]) error {
	return fetcher.FetchWith(ctx, nil, read)
}

// FetchWith runs prepare, when set, in the same critical section that issues
// the token, so whatever prepare records belongs to the latest fetch. The
// scope prepare returns is committed with the fetch's outcome.
func (fetcher *Fetcher[T]) FetchWith(
	ctx context.Context,
	prepare func() string,
	read ReadFunc[T],
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	token := fetcher.begin(cancel, prepare)

	items, err := fetcher.read(ctx, read)
	if err != nil {
		if !fetcher.store.Fail(token, fetcher.failMessage) {
			return ErrStale
		}

		fetcher.logger.Error(fetcher.failMessage, logging.ErrAttr(err))
		return err
	}

	if !fetcher.store.Resolve(token, items) {
		return ErrStale
	}

	return nil
}

func (fetcher *Fetcher[T]) begin(cancel context.CancelFunc, prepare func() string) Token {
	fetcher.mu.Lock()
	defer fetcher.mu.Unlock()

	if fetcher.cancel != nil {
		fetcher.cancel()
	}
	fetcher.cancel = cancel

	scope := ""
	if prepare != nil {
		scope = prepare()
	}

	return fetcher.store.BeginScope(scope)
}

func (fetcher *Fetcher[T]) read(ctx context.Context, read ReadFunc[T]) ([]T, error) {
	var items []T

	backoff := retry.WithMaxRetries(fetcher.retries, retry.NewConstant(retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx := ctx
		if fetcher.timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, fetcher.timeout)
			defer cancel()
		}

		result, err := read(attemptCtx)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				return retry.RetryableError(err)
			}
			return err
		}

		items = result
		return nil
	})

	return items, err
}
