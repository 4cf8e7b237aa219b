package dateutil

import (
	"time"

	"github.com/jdlien/validator/internal/constants"
	"github.com/jdlien/validator/internal/dateparse"
)

// FormatString parses input relative to now and renders it with template.
// Input that does not parse renders as "".
func FormatString(input, template string, now time.Time) string {
	t, err := dateparse.ParseDate(input, now)
	if err != nil {
		return ""
	}
	return FormatDateTime(t, template)
}

// ParseDateToString normalizes a date string for display, using
// constants.DefaultDateFormat when template is empty.
func ParseDateToString(input, template string, now time.Time) string {
	if template == "" {
		template = constants.DefaultDateFormat
	}
	return FormatString(input, template, now)
}

// ParseTimeToString normalizes a time string, placing the parsed clock on
// now's date. An empty template means constants.DefaultTimeFormat.
func ParseTimeToString(input, template string, now time.Time) string {
	tp, ok := dateparse.ParseTime(input, now)
	if !ok {
		return ""
	}
	if template == "" {
		template = constants.DefaultTimeFormat
	}
	y, m, d := now.Date()
	return FormatDateTime(time.Date(y, m, d, tp.Hour, tp.Minute, tp.Second, 0, now.Location()), template)
}
