package booking

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidDatetime = errors.New("datetime must be ISO-8601 (RFC 3339)")
	ErrEmptyWindow     = errors.New("start must be before end")
)

// ParseDate validates the availability query date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// NewDateTimeRange validates both ends as RFC 3339 and start < end. The
// original strings are kept as given so they round-trip to the backend.
func NewDateTimeRange(start, end string) (DateTimeRange, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return DateTimeRange{}, ErrInvalidDatetime
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return DateTimeRange{}, ErrInvalidDatetime
	}
	if !s.Before(e) {
		return DateTimeRange{}, ErrEmptyWindow
	}
	return DateTimeRange{Start: start, End: end}, nil
}

func (r DateTimeRange) Duration() time.Duration {
	s, err1 := time.Parse(time.RFC3339, r.Start)
	e, err2 := time.Parse(time.RFC3339, r.End)
	if err1 != nil || err2 != nil {
		return 0
	}
	return e.Sub(s)
}
