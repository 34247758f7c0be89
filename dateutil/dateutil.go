// Package dateutil provides date parsing and day arithmetic helpers.
package dateutil

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/jinzhu/now"
)

// Parse parses a date string in a variety of formats.
func Parse(value string) (time.Time, error) {
	return dateparse.ParseStrict(value)
}

// MustParse is like Parse but panics on error.
func MustParse(value string) time.Time {
	t, err := dateparse.ParseStrict(value)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseISO8601 parses a free-form date string and renders it as RFC 3339,
// e.g. "2013-06-13T12:13:14.123Z" becomes "2013-06-13T12:13:14Z".
func ParseISO8601(value string) (string, error) {
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return "", err
	}
	return t.Format(time.RFC3339), nil
}

// DaysBack returns how many whole days lie between the beginning of the day
// of t and the current time, at least 1. Used to turn a start date into the
// day window of a modification date filter.
func DaysBack(t time.Time) int {
	start := now.With(t).BeginningOfDay()
	days := int(time.Since(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}
