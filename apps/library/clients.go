package library

import (
	"readinglog.xdoubleu.com/apps/library/pkg/goodreads"
)

type Clients struct {
	Goodreads goodreads.Client
}
