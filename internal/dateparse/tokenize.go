package dateparse

import (
	"strings"
	"unicode"
)

func isSeparator(r rune) bool {
	switch r {
	case '-', '/', ':', '.', ',':
		return true
	}
	return unicode.IsSpace(r)
}

// tokenize splits s on whitespace and the date separators -/:., dropping
// empty tokens
func tokenize(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}
