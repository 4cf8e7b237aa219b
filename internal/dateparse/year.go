package dateparse

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jdlien/validator/internal/constants"
)

// ExpandYear turns a one or two digit year into a four digit one. Years up to
// constants.YearPivotOffset years past now land in this century, the rest in
// the previous one. Values above 99 are returned unchanged.
func ExpandYear(year int, now time.Time) int {
	if year > 99 {
		return year
	}
	if year < (now.Year()+constants.YearPivotOffset)%100 {
		return year + 2000
	}
	return year + 1900
}

// YearToFull is ExpandYear for tokens such as "'99" or "2,024"; every
// non-digit is ignored. Years after constants.MaxYear are rejected.
func YearToFull(token string, now time.Time) (int, error) {
	digits := digitsOnly(token)
	if digits == "" {
		return 0, fmt.Errorf("%w: no digits in year %q", ErrInvalidDate, token)
	}
	year, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: year %q: %v", ErrInvalidDate, token, err)
	}
	return checkYear(ExpandYear(year, now))
}

func checkYear(year int) (int, error) {
	if year > constants.MaxYear {
		return 0, fmt.Errorf("%w: year %d is after %d", ErrInvalidDate, year, constants.MaxYear)
	}
	return year, nil
}
