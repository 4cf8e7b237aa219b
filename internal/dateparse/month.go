package dateparse

import (
	"strings"
	"time"
)

type monthPrefix struct {
	prefix string
	month  int
}

// monthPrefixes is matched in order; the first prefix of the token wins, so
// "juin" and "juil" must precede any shorter "ju" entry.
var monthPrefixes = []monthPrefix{
	{"ja", 0},
	{"en", 0},
	{"fe", 1},
	{"fé", 1},
	{"ap", 3},
	{"ab", 3},
	{"av", 3},
	{"mai", 4},
	{"juin", 5},
	{"juil", 6},
	{"au", 7},
	{"ag", 7},
	{"ao", 7},
	{"se", 8},
	{"o", 9},
	{"n", 10},
	{"d", 11},
}

// MonthToNumber converts a month token to a zero-based month index. Numeric
// tokens are taken as one-based and returned minus one without range checks.
// Names resolve by their English three-letter abbreviation ("sept", "mars",
// "décembre") and then by the short English/French/Spanish prefix table.
func MonthToNumber(token string) (int, error) {
	if n, ok := leadingInt(token); ok {
		return n - 1, nil
	}

	name := foldCase(token)
	if m, ok := calendarMonth(name); ok {
		return m, nil
	}
	for _, p := range monthPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.month, nil
		}
	}
	return 0, &InvalidMonthNameError{Token: token}
}

// calendarMonth matches the first three letters of name against the English
// abbreviations, the same leniency browsers apply to "1 <name> 2000"
func calendarMonth(name string) (int, bool) {
	letters := []rune(foldAccents(name))
	if len(letters) < 3 || !isAlpha(name) {
		return 0, false
	}
	abbr := string(letters[:3])
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(abbr, m.String()[:3]) {
			return int(m) - 1, true
		}
	}
	return 0, false
}
