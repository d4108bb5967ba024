package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"readinglog.xdoubleu.com/apps/community/internal/models"
	"readinglog.xdoubleu.com/internal/screen"
)

const (
	FailedToLoadSharedNotes = "Failed to load shared notes"
	FailedToDeletePost      = "Failed to delete post"
)

var ErrUnshareInFlight = errors.New("note is already being unshared")

type NoteStore interface {
	ListShared(ctx context.Context) ([]models.SharedNote, error)
	Unshare(ctx context.Context, id string) error
}

// Prompt is a destructive action waiting for the reader's approval.
type Prompt struct {
	Title   string
	Message string
	Cancel  string
	Confirm string
}

//nolint:gochecknoglobals //fixed dialog copy
var DeletePrompt = Prompt{
	Title:   "Delete Post",
	Message: "This post will be removed from the community feed. This cannot be undone.",
	Cancel:  "Cancel",
	Confirm: "Delete",
}

// ConfirmFunc asks the reader about prompt and reports whether they chose
// the destructive action.
type ConfirmFunc func(ctx context.Context, prompt Prompt) bool

type FeedService struct {
	logger  *slog.Logger
	notes   NoteStore
	fetcher *screen.Fetcher[models.SharedNote]
	timeout time.Duration

	// guards the check and set of a note's busy marker
	mu sync.Mutex
}

func NewFeedService(
	logger *slog.Logger,
	notes NoteStore,
	timeout time.Duration,
	retries uint64,
) *FeedService {
	//nolint:exhaustruct //other fields are optional
	return &FeedService{
		logger: logger,
		notes:  notes,
		fetcher: screen.NewFetcher(
			logger,
			screen.NewStore[models.SharedNote](),
			FailedToLoadSharedNotes,
			timeout,
			retries,
		),
		timeout: timeout,
	}
}

// Load lists every shared note, newest share first.
func (service *FeedService) Load(ctx context.Context) error {
	return service.fetcher.Fetch(ctx, service.notes.ListShared)
}

// Unshare takes note id off the feed once confirm approves DeletePrompt.
// A declined prompt is not an error and changes nothing.
func (service *FeedService) Unshare(
	ctx context.Context,
	id string,
	confirm ConfirmFunc,
) error {
	if !confirm(ctx, DeletePrompt) {
		return nil
	}

	err := service.claim(id)
	if err != nil {
		return err
	}

	store := service.fetcher.Store()

	unshareCtx := ctx
	if service.timeout > 0 {
		var cancel context.CancelFunc
		unshareCtx, cancel = context.WithTimeout(ctx, service.timeout)
		defer cancel()
	}

	err = service.notes.Unshare(unshareCtx, id)
	if err != nil && !errors.Is(err, database.ErrResourceNotFound) {
		store.SetBusy(id, false)
		store.SetNotice(FailedToDeletePost)
		service.logger.Error(FailedToDeletePost, slog.String("id", id), logging.ErrAttr(err))
		return err
	}

	// a note that is already gone leaves the feed too; a load still in
	// flight will not bring it back
	store.Remove(id)
	store.SetNotice("")
	return nil
}

func (service *FeedService) claim(id string) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	store := service.fetcher.Store()
	if store.State().IsBusy(id) {
		return ErrUnshareInFlight
	}

	store.SetBusy(id, true)
	return nil
}

func (service *FeedService) State() screen.State[models.SharedNote] {
	return service.fetcher.Store().State()
}

func (service *FeedService) Subscribe(fn func(screen.State[models.SharedNote])) func() {
	return service.fetcher.Store().Subscribe(fn)
}
