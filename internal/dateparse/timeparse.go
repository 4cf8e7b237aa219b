package dateparse

import (
	"fmt"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"
)

// TimeParts is a wall-clock time of day
type TimeParts struct {
	Hour   int `json:"hour" yaml:"hour"`
	Minute int `json:"minute" yaml:"minute"`
	Second int `json:"second" yaml:"second"`
}

func (tp TimeParts) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", tp.Hour, tp.Minute, tp.Second)
}

// clock holds the raw fields of a matched time string
type clock struct {
	hour     string
	minute   string
	second   string
	meridiem byte // 0, 'a' or 'p'
}

// ParseTime reads a time of day such as "1:32 pm", "132pm", "13:05:09",
// "9a" or "now". Meridiem-adjusted values outside 0-23h, 0-59m, 0-59s are
// rejected. ok is false when input does not look like a time.
func ParseTime(input string, now time.Time) (TimeParts, bool) {
	s := foldCase(input)
	if s == "now" {
		return TimeParts{Hour: now.Hour(), Minute: now.Minute(), Second: now.Second()}, true
	}

	c, ok := matchTime(insertClockColon(s))
	if !ok {
		return TimeParts{}, false
	}
	return c.parts()
}

// insertClockColon rewrites the first run of 3 or 4 digits as H:MM or HH:MM
func insertClockColon(s string) string {
	for i := 0; i+3 <= len(s); i++ {
		if !isDigit(s[i]) || !isDigit(s[i+1]) || !isDigit(s[i+2]) {
			continue
		}
		n := 3
		if i+3 < len(s) && isDigit(s[i+3]) {
			n = 4
		}
		split := i + n - 2
		return s[:i] + s[i:split] + ":" + s[split:i+n] + s[i+n:]
	}
	return s
}

// matchTime matches the whole of s against H[:MM[:SS]][ws][a|p[m]]
func matchTime(s string) (clock, bool) {
	var c clock
	var i int

	c.hour, i = digitRun(s, 0, 2)
	if c.hour == "" {
		return c, false
	}
	if i < len(s) && s[i] == ':' {
		if c.minute, i = digitRun(s, i+1, 2); c.minute == "" {
			return c, false
		}
		if i < len(s) && s[i] == ':' {
			if c.second, i = digitRun(s, i+1, 2); c.second == "" {
				return c, false
			}
		}
	}
	for i < len(s) && isSpaceByte(s[i]) {
		i++
	}
	c.meridiem, i = meridiemAt(s, i)
	return c, i == len(s)
}

func (c clock) parts() (TimeParts, bool) {
	var tp TimeParts
	tp.Hour, _ = strconv.Atoi(c.hour)
	if c.minute != "" {
		tp.Minute, _ = strconv.Atoi(c.minute)
	}
	if c.second != "" {
		tp.Second, _ = strconv.Atoi(c.second)
	}

	switch {
	case c.meridiem == 'p' && tp.Hour < 12:
		tp.Hour += 12
	case c.meridiem == 'a' && tp.Hour == 12:
		tp.Hour = 0
	}

	if tp.Hour > 23 || tp.Minute > 59 || tp.Second > 59 {
		return TimeParts{}, false
	}
	return tp, true
}

// findClock locates the leftmost H:MM[:SS][ ][a|p[m]] substring of s. Minutes
// and seconds take exactly two digits here, unlike the looser matchTime.
func findClock(s string) (start, end int, ok bool) {
	for i := 0; i < len(s); i++ {
		if end, ok := clockEndAt(s, i); ok {
			return i, end, true
		}
	}
	return 0, 0, false
}

func clockEndAt(s string, i int) (int, bool) {
	hour, j := digitRun(s, i, 2)
	if hour == "" || j >= len(s) || s[j] != ':' || !twoDigitsAt(s, j+1) {
		return 0, false
	}
	j += 3
	if j < len(s) && s[j] == ':' && twoDigitsAt(s, j+1) {
		j += 3
	}

	k := j
	if k < len(s) && isSpaceByte(s[k]) {
		k++
	}
	if m, end := meridiemAt(s, k); m != 0 {
		return end, true
	}
	return j, true
}

// meridiemAt reads "a", "am", "p" or "pm" at s[i:]. The designator must end
// the word, so "10:30 august" keeps its month.
func meridiemAt(s string, i int) (byte, int) {
	if i >= len(s) || (s[i] != 'a' && s[i] != 'p') {
		return 0, i
	}
	end := i + 1
	if end < len(s) && s[end] == 'm' {
		end++
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); unicode.IsLetter(r) {
			return 0, i
		}
	}
	return s[i], end
}

// digitRun returns up to max digits starting at s[i] and the index after them
func digitRun(s string, i, max int) (string, int) {
	j := i
	for j < len(s) && j-i < max && isDigit(s[j]) {
		j++
	}
	return s[i:j], j
}

func twoDigitsAt(s string, i int) bool {
	return i+1 < len(s) && isDigit(s[i]) && isDigit(s[i+1])
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
