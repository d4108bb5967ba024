package models

import (
	"strings"
	"time"
)

type Status string

const (
	StatusInProgress Status = "In Progress"
	StatusToRead     Status = "To Read"
	StatusCompleted  Status = "Completed"
)

const (
	SourceGoodreads = "Goodreads"
	TypeBook        = "Book"
	MaxRating       = 5
)

type Book struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	CoverURL   *string   `json:"coverUrl"`
	Type       string    `json:"type"`
	Status     Status    `json:"status"`
	Source     string    `json:"source"`
	Rating     int       `json:"rating"`
	IdeasCount int       `json:"ideasCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (book Book) Key() string {
	return book.ID
}

// Stars renders the rating as five filled or empty stars.
func (book Book) Stars() string {
	rating := min(max(book.Rating, 0), MaxRating)
	return strings.Repeat("★", rating) + strings.Repeat("☆", MaxRating-rating)
}
