package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// ParseDate parses a "YYYY-MM-DD" value from a request payload.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrBadRequest, s)
	}
	return t, nil
}

// ParseDatePtr parses an optional date field; nil in, nil out.
func ParseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseDateTimePtr parses an optional datetime field, accepting either
// RFC 3339 or "YYYY-MM-DD HH:MM:SS".
func ParseDateTimePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(DateTimeLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid datetime %q", ErrBadRequest, *s)
	}
	return &t, nil
}

// ValidateTimePtr checks an optional "HH:MM" time-of-day string.
func ValidateTimePtr(s *string) (*string, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if _, err := time.Parse(TimeLayout, *s); err != nil {
		return nil, fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrBadRequest, *s)
	}
	return s, nil
}
