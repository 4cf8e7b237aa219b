// Package validate checks date and time input the way a form field would:
// the value is normalized to a display template, tested for validity and,
// for dates, tested against a range such as "past" or "future".
package validate

import (
	"time"

	"github.com/jdlien/validator/internal/dateparse"
)

// Ranges understood by IsDateInRange
const (
	RangePast   = "past"
	RangeFuture = "future"
)

// IsDate reports whether value, a string or time.Time, resolves to a date
func IsDate(value any, now time.Time) bool {
	_, err := dateparse.ParseValue(value, now)
	return err == nil
}

// IsTime reports whether value reads as a time of day
func IsTime(value string, now time.Time) bool {
	_, ok := dateparse.ParseTime(value, now)
	return ok
}

// IsDateInRange reports whether t satisfies rng. A past date may not be after
// now; a future date may not be before the start of now's day, so today
// counts as the future. Unknown ranges always pass.
func IsDateInRange(t time.Time, rng string, now time.Time) bool {
	switch rng {
	case RangePast:
		return !t.After(now)
	case RangeFuture:
		y, m, d := now.Date()
		return !t.Before(time.Date(y, m, d, 0, 0, 0, 0, now.Location()))
	}
	return true
}
