package dateparse

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jdlien/validator/internal/constants"
)

// part is a role a date token can play
type part int

const (
	partMonth part = iota
	partDay
	partYear
)

// dateParts is a date being resolved. Zero means unset; month is one-based.
type dateParts struct {
	year  int
	month int
	day   int
}

func (d dateParts) resolved() bool {
	return d.year != 0 && d.month != 0 && d.day != 0
}

func (d dateParts) isSet(p part) bool {
	switch p {
	case partMonth:
		return d.month != 0
	case partDay:
		return d.day != 0
	default:
		return d.year != 0
	}
}

// disambiguator assigns year, month and day roles to the tokens of a date
type disambiguator struct {
	tokens []string
	now    time.Time
	parts  dateParts
	visits int
}

func newDisambiguator(text string, now time.Time) (*disambiguator, error) {
	tokens := tokenize(text)
	if len(tokens) < constants.MinDateTokens {
		// A four digit number leaves too little to tell month from day
		if hasDigitRun(text, 4) {
			return nil, fmt.Errorf("%w: too few parts in %q", ErrInvalidDate, text)
		}
		tokens = append([]string{strconv.Itoa(now.Year())}, tokens...)
	}
	return &disambiguator{tokens: tokens, now: now}, nil
}

// resolve scans the tokens until every part is assigned. The visit count is
// checked after each full pass; more than constants.MaxTokenVisits fails.
func (d *disambiguator) resolve() (dateParts, error) {
	for !d.parts.resolved() {
		for _, token := range d.tokens {
			d.visits++
			if err := d.visit(token); err != nil {
				return dateParts{}, err
			}
		}
		if d.visits > constants.MaxTokenVisits {
			return dateParts{}, fmt.Errorf("%w: could not resolve %v after %d token visits",
				ErrInvalidDate, d.tokens, d.visits)
		}
	}
	return d.parts, nil
}

func (d *disambiguator) visit(token string) error {
	if isAlpha(token) {
		if d.parts.month == 0 {
			m, err := MonthToNumber(token)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidDate, err)
			}
			d.parts.month = m + 1
		}
		return nil
	}

	if isYearToken(token) {
		if d.parts.year == 0 {
			year, _ := strconv.Atoi(digitsOnly(token))
			return d.assign(partYear, year)
		}
		return nil
	}

	num, ok := leadingInt(token)
	if !ok {
		return fmt.Errorf("%w: %q is not a number", ErrInvalidDate, token)
	}

	meanings := d.meanings(num)
	if len(meanings) == 1 {
		return d.assign(meanings[0], num)
	}

	// Still ambiguous late in the scan: take the first open role, month first
	if d.visits > constants.ForceAssignAfter && len(meanings) > 0 {
		return d.assign(meanings[0], num)
	}
	return nil
}

// meanings lists the unassigned roles num could play, in month, day, year order
func (d *disambiguator) meanings(num int) []part {
	var candidates []part
	switch {
	case num == 0 || num > 31:
		candidates = []part{partYear}
	case num > 12:
		candidates = []part{partDay, partYear}
	case num >= 1:
		candidates = []part{partMonth, partDay, partYear}
	}

	open := candidates[:0]
	for _, p := range candidates {
		if !d.parts.isSet(p) {
			open = append(open, p)
		}
	}
	return open
}

func (d *disambiguator) assign(p part, num int) error {
	switch p {
	case partMonth:
		d.parts.month = num
	case partDay:
		d.parts.day = num
	default:
		year, err := checkYear(ExpandYear(num, d.now))
		if err != nil {
			return err
		}
		d.parts.year = year
	}
	return nil
}
