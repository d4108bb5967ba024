package dtos

import (
	"time"

	"readinglog.xdoubleu.com/apps/library/internal/models"
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

type BookDto struct {
	models.Book
	Age string `json:"age"`
}

type LibraryStateDto struct {
	// Filter is the filter Books were listed for.
	Filter string    `json:"filter"`
	Phase  string    `json:"phase"`
	Error  string    `json:"error,omitempty"`
	Books  []BookDto `json:"books"`
}

func LibraryStateFrom(
	now time.Time,
	state screen.State[models.Book],
) LibraryStateDto {
	books := make([]BookDto, 0, len(state.Items))
	for _, book := range state.Items {
		books = append(books, BookDto{
			Book: book,
			Age:  timeago.Format(now, book.UpdatedAt),
		})
	}

	return LibraryStateDto{
		Filter: state.Scope,
		Phase:  state.Phase.String(),
		Error:  state.Error,
		Books:  books,
	}
}
