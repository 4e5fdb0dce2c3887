// Package deadline parses signing deadlines and enforces the horizon rule.
package deadline

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/signly/internal/common"
)

// DefaultHorizonMonths is how far past creation a deadline may lie.
const DefaultHorizonMonths = 6

// zoneless layouts are read as UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// Parse reads an ISO-8601 date-time. The MySQL-style "YYYY-MM-DD HH:mm:ss"
// is accepted too: the space becomes "T" and ".000Z" is appended first.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, " ") {
		s = strings.Replace(s, " ", "T", 1) + ".000Z"
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse %q", common.ErrInvalidDeadline, s)
}

// HorizonEnd is the latest deadline allowed for a document created at
// createdAt. The day of month is clamped to the length of the target month,
// so Aug 31 plus six months is Feb 28 (or 29), never early March.
func HorizonEnd(createdAt time.Time, months int) time.Time {
	y, m, d := createdAt.Date()
	hh, mm, ss := createdAt.Clock()
	loc := createdAt.Location()

	first := time.Date(y, m+time.Month(months), 1, hh, mm, ss, createdAt.Nanosecond(), loc)
	if last := daysIn(first.Year(), first.Month(), loc); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, createdAt.Nanosecond(), loc)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// Validate checks a deadline for a document being created at now: it must be
// strictly after now and must not exceed now plus the horizon.
func Validate(deadline, now time.Time, months int) error {
	if !deadline.After(now) {
		return fmt.Errorf("%w: deadline must be in the future", common.ErrInvalidDeadline)
	}
	// The horizon end itself is still a valid deadline.
	if end := HorizonEnd(now, months); deadline.After(end) {
		return fmt.Errorf("%w: deadline must not be more than %d months away", common.ErrInvalidDeadline, months)
	}
	return nil
}
