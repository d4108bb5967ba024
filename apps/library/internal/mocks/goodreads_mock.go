package mocks

import (
	"readinglog.xdoubleu.com/apps/library/pkg/goodreads"
)

type MockGoodreadsClient struct {
}

func NewMockGoodreadsClient() goodreads.Client {
	return MockGoodreadsClient{}
}

func (m MockGoodreadsClient) GetBooks(_ string) ([]goodreads.Book, error) {
	return []goodreads.Book{
		{
			ID:       1,
			Shelf:    goodreads.ShelfCurrentlyReading,
			Title:    "Title",
			Author:   "Author",
			CoverURL: "https://images.example.com/1.jpg",
			Rating:   0,
		},
		{
			ID:       2,
			Shelf:    goodreads.ShelfRead,
			Title:    "Title2",
			Author:   "Author",
			CoverURL: "",
			Rating:   4,
		},
		{
			ID:       3,
			Shelf:    "favorites",
			Title:    "Title3",
			Author:   "Author",
			CoverURL: "",
			Rating:   5,
		},
	}, nil
}

func (m MockGoodreadsClient) GetUserID(_ string) (*string, error) {
	value := "userId"
	return &value, nil
}
