package dtos

import (
	"time"

	"readinglog.xdoubleu.com/apps/community/internal/models"
	"readinglog.xdoubleu.com/internal/screen"
	"readinglog.xdoubleu.com/internal/timeago"
)

type SubscribeMessageDto struct {
	Subject string `json:"subject"`
}

func (dto SubscribeMessageDto) Topic() string {
	return dto.Subject
}

func (dto SubscribeMessageDto) Validate() (bool, map[string]string) {
	return true, make(map[string]string)
}

type StateMessageDto struct {
	LastRefresh  *time.Time `json:"lastRefresh"`
	IsRefreshing bool       `json:"isRefreshing"`
}

type NoteDto struct {
	models.SharedNote
	Age      string `json:"age"`
	Deleting bool   `json:"deleting"`
}

type FeedStateDto struct {
	Phase  string    `json:"phase"`
	Error  string    `json:"error,omitempty"`
	Notice string    `json:"notice,omitempty"`
	Notes  []NoteDto `json:"notes"`
}

func FeedStateFrom(now time.Time, state screen.State[models.SharedNote]) FeedStateDto {
	notes := make([]NoteDto, 0, len(state.Items))
	for _, note := range state.Items {
		notes = append(notes, NoteDto{
			SharedNote: note,
			Age:        timeago.Format(now, note.SharedSince()),
			Deleting:   state.IsBusy(note.ID),
		})
	}

	return FeedStateDto{
		Phase:  state.Phase.String(),
		Error:  state.Error,
		Notice: state.Notice,
		Notes:  notes,
	}
}
