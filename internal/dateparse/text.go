package dateparse

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldCase trims and case-folds s. Casers carry state, so one is built per call.
func foldCase(s string) string {
	return strings.TrimSpace(cases.Fold().String(s))
}

// foldAccents strips combining marks (é -> e) so French and Spanish spellings
// match the English month and weekday tables
func foldAccents(s string) string {
	folder := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	folded, _, err := transform.String(folder, s)
	if err != nil {
		return s
	}
	return folded
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isDigits reports whether s is non-empty and entirely ASCII digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isAlpha reports whether s is a non-empty run of Latin letters, accented
// letters included
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.Is(unicode.Latin, r) {
			return false
		}
	}
	return true
}

// isYearToken matches a quoted two-digit year ('99) or a 3 to 5 digit number
func isYearToken(s string) bool {
	if len(s) == 3 && s[0] == '\'' {
		return isDigits(s[1:])
	}
	return len(s) >= 3 && len(s) <= 5 && isDigits(s)
}

// leadingInt reads the integer at the start of s, ignoring anything after it,
// so "5th" reads as 5. An optional sign is accepted.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// digitsOnly drops every byte that is not an ASCII digit
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// hasDigitRun reports whether s contains at least n consecutive digits
func hasDigitRun(s string, n int) bool {
	run := 0
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}
