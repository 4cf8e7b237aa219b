// Package dateutil renders dates with moment-style templates such as
// "YYYY-MM-DD", "ddd, MMM D" or "h:mm A", and translates those templates to
// the flatpickr token set.
//
// Month and weekday names are always English.
package dateutil

import (
	"strconv"
	"strings"
	"time"

	"github.com/jdlien/validator/internal/constants"
)

// tokenRuns lists how many repeats of each template letter form a token.
// A letter not listed here is copied through.
var tokenRuns = map[byte]int{
	'Y': 4,
	'M': 4,
	'D': 2,
	'd': 4,
	'H': 2,
	'h': 2,
	'a': 1,
	'A': 1,
	'm': 2,
	's': 2,
	'Z': 2,
}

// FormatDateTime renders t with template. Recognized tokens:
//
//	YYYY YY          year, last two digits of the year
//	MMMM MMM MM M    month name, short name, padded, plain
//	DD D             day of month, padded and plain
//	dddd ddd dd d    weekday name, 3 and 2 letter names, number (Sunday is 0)
//	HH H hh h        24 and 12 hour clock, padded and plain
//	A a              AM/PM, am/pm
//	mm m ss s        minutes and seconds, padded and plain
//	SSS              milliseconds
//
// Text inside square brackets is emitted without the brackets. Runs that are
// not a token ("Y", "YYY", "Z") are copied unchanged. An empty template means
// constants.DefaultFormat; the zero time renders as "".
func FormatDateTime(t time.Time, template string) string {
	if t.IsZero() {
		return ""
	}
	if template == "" {
		template = constants.DefaultFormat
	}

	var b strings.Builder
	for i := 0; i < len(template); {
		c := template[i]

		if c == '[' {
			if end := strings.IndexByte(template[i+1:], ']'); end > 0 {
				b.WriteString(template[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}

		if c == 'S' && strings.HasPrefix(template[i:], "SSS") {
			b.WriteString(pad(t.Nanosecond()/int(time.Millisecond), 3))
			i += 3
			continue
		}

		limit, ok := tokenRuns[c]
		if !ok {
			b.WriteByte(c)
			i++
			continue
		}

		n := 1
		for n < limit && i+n < len(template) && template[i+n] == c {
			n++
		}
		token := template[i : i+n]
		if value, ok := render(t, token); ok {
			b.WriteString(value)
		} else {
			b.WriteString(token)
		}
		i += n
	}
	return b.String()
}

func render(t time.Time, token string) (string, bool) {
	switch token {
	case "YYYY":
		return strconv.Itoa(t.Year()), true
	case "YY":
		year := strconv.Itoa(t.Year())
		if len(year) > 2 {
			year = year[len(year)-2:]
		}
		return year, true
	case "MMMM":
		return t.Month().String(), true
	case "MMM":
		return t.Month().String()[:3], true
	case "MM":
		return pad(int(t.Month()), 2), true
	case "M":
		return strconv.Itoa(int(t.Month())), true
	case "DD":
		return pad(t.Day(), 2), true
	case "D":
		return strconv.Itoa(t.Day()), true
	case "dddd":
		return t.Weekday().String(), true
	case "ddd":
		return t.Weekday().String()[:3], true
	case "dd":
		return t.Weekday().String()[:2], true
	case "d":
		return strconv.Itoa(int(t.Weekday())), true
	case "HH":
		return pad(t.Hour(), 2), true
	case "H":
		return strconv.Itoa(t.Hour()), true
	case "hh":
		return pad(hour12(t.Hour()), 2), true
	case "h":
		return strconv.Itoa(hour12(t.Hour())), true
	case "A":
		return meridiem(t.Hour()), true
	case "a":
		return strings.ToLower(meridiem(t.Hour())), true
	case "mm":
		return pad(t.Minute(), 2), true
	case "m":
		return strconv.Itoa(t.Minute()), true
	case "ss":
		return pad(t.Second(), 2), true
	case "s":
		return strconv.Itoa(t.Second()), true
	}
	return "", false
}

func hour12(h int) int {
	if h%12 == 0 {
		return 12
	}
	return h % 12
}

func meridiem(h int) string {
	if h < 12 {
		return "AM"
	}
	return "PM"
}

// pad left-pads n with zeros to width digits
func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
