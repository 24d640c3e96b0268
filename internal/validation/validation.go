package validation

import (
	"strings"
	"time"

	"house-rental/internal/domain"
)

// DateFormat is the only accepted calendar date layout (no timezone, no
// time of day).
const DateFormat = "2006-01-02"

func IsValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return t, nil
}

// ValidateRange checks both dates are well-formed and start <= end.
func ValidateRange(start, end string) error {
	if _, err := ParseDate(start); err != nil {
		return err
	}
	if _, err := ParseDate(end); err != nil {
		return err
	}
	if end < start {
		return domain.ErrInvalidDateRange
	}
	return nil
}

// RequireNonEmpty trims s and rejects an empty result.
func RequireNonEmpty(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.ErrEmptyField
	}
	return s, nil
}

// DaysInclusive counts whole days in [start, end], both endpoints included.
func DaysInclusive(start, end string) (int, error) {
	s, err := ParseDate(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return 0, err
	}
	if e.Before(s) {
		return 0, domain.ErrInvalidDateRange
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}
