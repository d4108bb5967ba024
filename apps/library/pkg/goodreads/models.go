package goodreads

const (
	ShelfCurrentlyReading = "currently-reading"
	ShelfToRead           = "to-read"
	ShelfRead             = "read"
)

//nolint:gochecknoglobals //fixed set of shelves
var StatusShelves = []string{ShelfCurrentlyReading, ShelfToRead, ShelfRead}

type Book struct {
	ID       int64
	Shelf    string
	Title    string
	Author   string
	CoverURL string
	Rating   int
}

//nolint:gochecknoglobals //goodreads star titles
var ratingTitles = map[string]int{
	"did not like it": 1,
	"it was ok":       2,
	"liked it":        3,
	"really liked it": 4,
	"it was amazing":  5,
}

// RatingFromTitle converts the title of a star widget to a 0-5 rating.
func RatingFromTitle(title string) int {
	return ratingTitles[title]
}
