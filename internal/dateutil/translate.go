package dateutil

import "strings"

// fpReplacements are applied in order, each to the output of the previous one.
// Tokens whose flatpickr spelling is itself a moment token pass through a
// {n} placeholder so later steps do not rewrite them.
var fpReplacements = []struct{ from, to string }{
	{"YYYY", "Y"},
	{"YY", "y"},
	{"MMMM", "F"},
	{"MMM", "{3}"},
	{"MM", "{2}"},
	{"M", "n"},
	{"DD", "{5}"},
	{"D", "j"},
	{"dddd", "l"},
	{"ddd", "D"},
	{"dd", "D"},
	{"d", "w"},
	{"HH", "{6}"},
	{"H", "G"},
	{"hh", "h"},
	{"mm", "i"},
	{"m", "i"},
	{"ss", "S"},
	{"s", "s"},
	{"A", "K"},
	{"a", "K"},
	{"{3}", "M"},
	{"{2}", "m"},
	{"{5}", "d"},
	{"{6}", "H"},
}

// MomentToFPFormat translates a moment-style template ("YYYY-MM-DD h:mm A")
// into the equivalent flatpickr format ("Y-m-d h:i K").
func MomentToFPFormat(template string) string {
	for _, r := range fpReplacements {
		template = strings.ReplaceAll(template, r.from, r.to)
	}
	return template
}
