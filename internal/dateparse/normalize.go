package dateparse

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// weekdayPrefixes are stripped from dates: English, then French, then Spanish
// "dom". French mardi needs four letters so "mar" stays a month.
var weekdayPrefixes = []string{
	"sun", "mon", "tue", "wed", "thu", "fri", "sat",
	"dim", "lun", "mard", "mer", "jeu", "ven", "sam",
	"dom",
}

// normalized is the Normalizer's output. When date is set the input was
// resolved without disambiguation (time only, now, today, tomorrow).
type normalized struct {
	residual string
	clock    TimeParts
	date     *dateParts
}

// normalize pulls the clock out of input and resolves the inputs that need no
// disambiguation. A clock that is out of range is dropped and leaves midnight.
func normalize(input string, now time.Time) normalized {
	var n normalized
	s := foldCase(input)

	if start, end, ok := findClock(s); ok {
		if tp, ok := ParseTime(s[start:end], now); ok {
			n.clock = tp
		}
		s = strings.TrimSpace(s[:start] + s[end:])

		if utf8.RuneCountInString(s) <= 2 {
			n.date = dayOf(now)
			return n
		}
	}

	s = stripWeekdays(s)

	for _, token := range tokenize(s) {
		switch token {
		case "now", "today":
			n.date = dayOf(now)
			return n
		case "tomorrow":
			n.date = dayOf(now.AddDate(0, 0, 1))
			return n
		}
	}

	// Undelimited YYYYMMDD and YYMMDD
	switch {
	case len(s) == 8 && isDigits(s):
		s = s[:4] + "-" + s[4:6] + "-" + s[6:]
	case len(s) == 6 && isDigits(s):
		yy, _ := strconv.Atoi(s[:2])
		s = strconv.Itoa(ExpandYear(yy, now)) + "-" + s[2:4] + "-" + s[4:]
	}

	n.residual = s
	return n
}

func dayOf(t time.Time) *dateParts {
	return &dateParts{year: t.Year(), month: int(t.Month()), day: t.Day()}
}

// stripWeekdays removes words starting with a weekday prefix, along with one
// trailing period
func stripWeekdays(s string) string {
	var b strings.Builder
	afterWord := false

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) || afterWord {
			b.WriteString(s[i : i+size])
			afterWord = unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
			i += size
			continue
		}

		end := i
		for end < len(s) {
			r, size := utf8.DecodeRuneInString(s[end:])
			if !unicode.IsLetter(r) {
				break
			}
			end += size
		}

		word := s[i:end]
		if isWeekday(word) {
			if end < len(s) && s[end] == '.' {
				end++
			}
			afterWord = false
		} else {
			b.WriteString(word)
			afterWord = true
		}
		i = end
	}
	return strings.TrimSpace(b.String())
}

func isWeekday(word string) bool {
	word = foldAccents(word)
	for _, prefix := range weekdayPrefixes {
		if strings.HasPrefix(word, prefix) {
			return true
		}
	}
	return false
}
