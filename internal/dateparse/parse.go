// Package dateparse reads loosely written dates and times such as "5 Jan 99",
// "jan/5/30", "3 30 05", "tues. 02-03 4:15pm" or "132pm" and works out which
// numbers are the year, month, day, hour, minute and second.
//
// Every function takes the reference time explicitly; nothing reads the
// system clock, and all functions are safe for concurrent use.
package dateparse

import (
	"fmt"
	"time"
)

// ParseDate resolves input to a date and time in now's location. Failures
// match ErrInvalidDate with errors.Is.
func ParseDate(input string, now time.Time) (time.Time, error) {
	n := normalize(input, now)
	if n.date != nil {
		return assemble(*n.date, n.clock, now.Location()), nil
	}

	d, err := newDisambiguator(n.residual, now)
	if err != nil {
		return time.Time{}, err
	}
	parts, err := d.resolve()
	if err != nil {
		return time.Time{}, err
	}
	return assemble(parts, n.clock, now.Location()), nil
}

// ParseValue accepts either a string or an already built time.Time, which is
// returned unchanged unless it is the zero time.
func ParseValue(v any, now time.Time) (time.Time, error) {
	switch v := v.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, fmt.Errorf("%w: zero time", ErrInvalidDate)
		}
		return v, nil
	case string:
		return ParseDate(v, now)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported value type %T", ErrInvalidDate, v)
	}
}

// assemble builds the final value. Day overflow rolls into the next month the
// way time.Date normalizes it ("1999-02-29" is March 1st).
func assemble(p dateParts, clock TimeParts, loc *time.Location) time.Time {
	return time.Date(p.year, time.Month(p.month), p.day,
		clock.Hour, clock.Minute, clock.Second, 0, loc)
}
