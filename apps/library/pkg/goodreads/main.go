package goodreads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/sethvargo/go-retry"
	"golang.org/x/net/html"
)

const (
	baseURL       = "https://www.goodreads.com"
	pageRetries   = 3
	pageRetryWait = time.Second
)

type client struct {
	logger  *slog.Logger
	baseURL string
}

func New(logger *slog.Logger) Client {
	return client{
		logger:  logger,
		baseURL: baseURL,
	}
}

func (client client) GetUserID(profileURL string) (*string, error) {
	c := colly.NewCollector()

	var userID string
	c.OnHTML(".profilePictureIcon", func(h *colly.HTMLElement) {
		imgURL := h.Attr("src")
		splittedSlash := strings.Split(imgURL, "/")
		userID = strings.Split(splittedSlash[len(splittedSlash)-1], ".jpg")[0]
	})

	err := c.Visit(profileURL)
	if err != nil {
		return nil, err
	}

	if userID == "" {
		return nil, fmt.Errorf("no goodreads user found at %s", profileURL)
	}

	return &userID, nil
}

// GetBooks returns every book on the shelves that map to a reading status.
// A book on several of them keeps the last shelf visited.
func (client client) GetBooks(userID string) ([]Book, error) {
	books := map[int64]Book{}

	for _, shelf := range StatusShelves {
		client.logger.Debug(fmt.Sprintf("fetching books on shelf %s", shelf))

		booksOnShelf, err := client.getBooksOnShelf(userID, shelf)
		if err != nil {
			return nil, err
		}

		for _, book := range booksOnShelf {
			books[book.ID] = book
		}
	}

	booksSlice := make([]Book, 0, len(books))
	for _, book := range books {
		booksSlice = append(booksSlice, book)
	}

	return booksSlice, nil
}

func (client client) getBooksOnShelf(userID string, shelf string) ([]Book, error) {
	books := []Book{}

	page := 0
	for {
		page++

		booksOnPage, err := client.getBooksFromPageWithRetry(userID, shelf, page)
		if err != nil {
			return nil, err
		}

		if len(booksOnPage) == 0 {
			break
		}

		books = append(books, booksOnPage...)
	}

	return books, nil
}

func (client client) getBooksFromPageWithRetry(
	userID string,
	shelf string,
	page int,
) ([]Book, error) {
	var books []Book

	backoff := retry.WithMaxRetries(pageRetries, retry.NewExponential(pageRetryWait))
	err := retry.Do(context.Background(), backoff, func(_ context.Context) error {
		var err error
		books, err = client.getBooksFromPage(userID, shelf, page)
		var visitErr *visitError
		if errors.As(err, &visitErr) {
			client.logger.Debug(
				fmt.Sprintf("retrying page %d of shelf %s", page, shelf),
				slog.String("error", err.Error()),
			)
			return retry.RetryableError(err)
		}
		return err
	})

	return books, err
}

type visitError struct {
	err error
}

func (e *visitError) Error() string {
	return e.err.Error()
}

func (e *visitError) Unwrap() error {
	return e.err
}

func (client client) getBooksFromPage(
	userID string,
	shelf string,
	page int,
) ([]Book, error) {
	c := colly.NewCollector()

	books := []Book{}
	var parseErr error

	c.OnHTML(".bookalike.review", func(h *colly.HTMLElement) {
		book, err := parseBook(h, shelf)
		if err != nil {
			if parseErr == nil {
				parseErr = err
			}
			return
		}

		books = append(books, *book)
	})

	err := c.Visit(
		fmt.Sprintf(
			"%s/review/list/%s?page=%d&shelf=%s",
			client.baseURL,
			userID,
			page,
			shelf,
		),
	)
	if err != nil {
		return nil, &visitError{err: err}
	}

	if parseErr != nil {
		return nil, parseErr
	}

	return books, nil
}

func parseBook(h *colly.HTMLElement, shelf string) (*Book, error) {
	titleElement := h.DOM.Find(".title .value a")
	url, ok := titleElement.Attr("href")
	if !ok {
		return nil, errors.New("no href attribute on book title")
	}

	id, err := bookIDFromURL(url)
	if err != nil {
		return nil, err
	}

	title := titleElement.Text()
	if len(titleElement.Nodes) > 0 {
		title = ownText(titleElement.Nodes[0])
	}

	return &Book{
		ID:       id,
		Shelf:    shelf,
		Title:    title,
		Author:   strings.TrimSpace(h.ChildText(".author .value a")),
		CoverURL: h.ChildAttr(".cover img", "src"),
		Rating:   RatingFromTitle(h.ChildAttr(".rating .staticStars", "title")),
	}, nil
}

// bookIDFromURL parses "/book/show/12345.Some_Title" or "/book/show/12345-some-title".
func bookIDFromURL(url string) (int64, error) {
	parts := strings.Split(url, "/")
	if len(parts) < 4 { //nolint:mnd //no magic number
		return 0, fmt.Errorf("unexpected book url %q", url)
	}

	idStr := parts[3]
	idStr = strings.Split(idStr, ".")[0]
	idStr = strings.Split(idStr, "-")[0]

	return strconv.ParseInt(idStr, 10, 64)
}

// ownText joins the text directly under node, skipping nested elements such
// as the series suffix goodreads puts inside the title link.
func ownText(node *html.Node) string {
	var sb strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			sb.WriteString(child.Data)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
