// Package timeago renders the coarse age labels shown next to books and posts.
package timeago

import (
	"strconv"
	"time"
)

//nolint:mnd //calendar units
const (
	minutesPerHour = 60
	hoursPerDay    = 24
	daysPerWeek    = 7
	daysPerMonth   = 30
	daysPerYear    = 365
	weeksPerMonth  = 4
	monthsPerYear  = 12
)

// Format returns the age of past relative to now, e.g. "5m", "3d" or "2mo".
// Every unit is floored from the absolute difference, so timestamps in the
// future are labelled by their distance as well.
func Format(now time.Time, past time.Time) string {
	minutes := int64(now.Sub(past).Abs() / time.Minute)
	hours := minutes / minutesPerHour
	days := hours / hoursPerDay
	weeks := days / daysPerWeek
	months := days / daysPerMonth
	years := days / daysPerYear

	switch {
	case minutes < minutesPerHour:
		return label(minutes, "m")
	case hours < hoursPerDay:
		return label(hours, "h")
	case days < daysPerWeek:
		return label(days, "d")
	case weeks < weeksPerMonth:
		return label(weeks, "w")
	case months < monthsPerYear:
		return label(months, "mo")
	default:
		return label(years, "y")
	}
}

// Since is Format with the current time.
func Since(past time.Time) string {
	return Format(time.Now(), past)
}

func label(value int64, unit string) string {
	return strconv.FormatInt(value, 10) + unit
}
