package models

import "time"

type Note struct {
	ID        string     `json:"id"`
	BookID    string     `json:"bookId"`
	Content   string     `json:"content"`
	Type      string     `json:"type"`
	CreatedAt time.Time  `json:"createdAt"`
	SharedAt  *time.Time `json:"sharedAt"`
}

func (note Note) Key() string {
	return note.ID
}

func (note Note) IsShared() bool {
	return note.SharedAt != nil
}

// SharedNote is a note on the community feed together with the book it
// belongs to.
type SharedNote struct {
	Note
	BookTitle  string `json:"bookTitle"`
	BookAuthor string `json:"bookAuthor"`
}

// SharedSince is the moment the note was published to the feed.
func (note SharedNote) SharedSince() time.Time {
	if note.SharedAt == nil {
		return note.CreatedAt
	}
	return *note.SharedAt
}
