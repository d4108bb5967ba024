package models

import (
	"errors"
	"strings"
)

var ErrInvalidFilter = errors.New("invalid filter")

// Filter is the status label a reader picks on the library screen.
type Filter string

const (
	FilterReading   Filter = "Reading"
	FilterToRead    Filter = "To Read"
	FilterCompleted Filter = "Completed"
)

//nolint:gochecknoglobals //fixed set of tabs
var Filters = []Filter{FilterReading, FilterToRead, FilterCompleted}

func DefaultFilter() Filter {
	return FilterReading
}

// ParseFilter accepts a label ("To Read") or its slug ("to-read").
func ParseFilter(value string) (Filter, error) {
	for _, filter := range Filters {
		if strings.EqualFold(value, string(filter)) ||
			strings.EqualFold(value, filter.Slug()) {
			return filter, nil
		}
	}

	return "", ErrInvalidFilter
}

func FilterSlugs() []string {
	slugs := make([]string, 0, len(Filters))
	for _, filter := range Filters {
		slugs = append(slugs, filter.Slug())
	}
	return slugs
}

func (filter Filter) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(filter)), " ", "-")
}

// Status is the value stored in books.status for this filter.
func (filter Filter) Status() Status {
	if filter == FilterReading {
		return StatusInProgress
	}
	return Status(filter)
}
