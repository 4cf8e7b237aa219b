package logger

import (
	"fmt"
	"runtime"
	"strings"
	"time"
	"unicode"
)

// FilenameValidationError reports a log filename template that would not
// render to a usable file name
type FilenameValidationError struct {
	Pattern      string
	InvalidChars []rune
	Literals     []string
	Platform     string
	Suggestion   string
}

func (e *FilenameValidationError) Error() string {
	var msg string
	if len(e.Literals) > 0 {
		msg = fmt.Sprintf("invalid filename pattern %q has unbracketed literal text: %s",
			e.Pattern, strings.Join(e.Literals, ", "))
	} else {
		charList := make([]string, len(e.InvalidChars))
		for i, char := range e.InvalidChars {
			charList[i] = fmt.Sprintf("'%c'", char)
		}
		msg = fmt.Sprintf("invalid filename pattern %q contains invalid characters: %s",
			e.Pattern, strings.Join(charList, ", "))
	}

	if e.Platform != "" && e.Platform != "all" {
		msg += fmt.Sprintf(" (invalid on %s)", e.Platform)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// tokenLetters are the letters the formatter reads as date tokens
const tokenLetters = "YMDdHhAamsSZ"

// Sample date for rendering patterns during validation; two-digit fields
// differ so padding shows up
var sampleTime = time.Date(2024, time.November, 23, 14, 35, 56, 0, time.UTC)

// ValidateFilenamePattern checks that a log filename template keeps its
// literal text in brackets and renders to a single file name that is valid
// on the current platform
func ValidateFilenamePattern(pattern string) error {
	if pattern == "" {
		return nil
	}

	if words := unbracketedWords(pattern); len(words) > 0 {
		suggestion := pattern
		for _, word := range words {
			suggestion = strings.Replace(suggestion, word, "["+word+"]", 1)
		}
		return &FilenameValidationError{
			Pattern:    pattern,
			Literals:   words,
			Platform:   "all",
			Suggestion: suggestion,
		}
	}

	name := generateLogFilename(pattern, sampleTime)

	var separators []rune
	for _, r := range name {
		if r == '/' || r == '\\' {
			separators = append(separators, r)
		}
	}
	if len(separators) > 0 {
		return &FilenameValidationError{
			Pattern:      pattern,
			InvalidChars: separators,
			Platform:     "all",
			Suggestion:   getSuggestion(pattern, separators),
		}
	}

	if invalid := findInvalidChars(name); len(invalid) > 0 {
		platform := "all"
		if runtime.GOOS == "windows" {
			platform = "Windows"
		}
		return &FilenameValidationError{
			Pattern:      pattern,
			InvalidChars: invalid,
			Platform:     platform,
			Suggestion:   getSuggestion(pattern, invalid),
		}
	}

	return nil
}

// unbracketedWords returns letter runs outside [...] that contain a letter the
// formatter would not treat as a token, such as "app" or "log"
func unbracketedWords(pattern string) []string {
	var words []string
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		if runes[i] == '[' {
			if end := indexRune(runes[i+1:], ']'); end > 0 {
				i += end + 2
				continue
			}
		}
		if !unicode.IsLetter(runes[i]) {
			i++
			continue
		}

		start := i
		literal := false
		for i < len(runes) && unicode.IsLetter(runes[i]) {
			if !strings.ContainsRune(tokenLetters, runes[i]) {
				literal = true
			}
			i++
		}
		if literal {
			words = append(words, string(runes[start:i]))
		}
	}
	return words
}

func indexRune(runes []rune, target rune) int {
	for i, r := range runes {
		if r == target {
			return i
		}
	}
	return -1
}

// findInvalidChars returns characters of a rendered file name that the
// platform rejects
func findInvalidChars(filename string) []rune {
	var invalid []rune
	if strings.ContainsRune(filename, '\x00') {
		invalid = append(invalid, '\x00')
	}

	if runtime.GOOS == "windows" {
		for _, char := range `<>:"|?*` {
			if strings.ContainsRune(filename, char) {
				invalid = append(invalid, char)
			}
		}
	}
	return invalid
}

// getSuggestion rewrites the offending characters of pattern with safe ones
func getSuggestion(pattern string, invalidChars []rune) string {
	replacements := map[rune]string{
		'/':  "-",
		'\\': "-",
		':':  "-",
		'|':  "-",
		'*':  "X",
		'?':  "X",
		'<':  "",
		'>':  "",
		'"':  "",
	}

	suggestion := pattern
	for _, char := range invalidChars {
		if replacement, ok := replacements[char]; ok {
			suggestion = strings.ReplaceAll(suggestion, string(char), replacement)
		}
	}
	for strings.Contains(suggestion, "--") {
		suggestion = strings.ReplaceAll(suggestion, "--", "-")
	}
	return suggestion
}

// GetSafeFilenamePatterns returns recommended templates
func GetSafeFilenamePatterns() []string {
	return []string{
		"[validator-]YYYYMMDD[.log]",
		"[validator-]YYYY-MM-DD[.log]",
		"[validator-]YYYY.MM.DD[.log]",
		"[validator_]YYYY_MM_DD[.log]",
		"[validator-]YYYYMMDD-HHmmss[.log]",
		"[validator-]YYYY-MMM[.log]",
	}
}

// GetUnsafeFilenamePatterns returns templates to avoid and why
func GetUnsafeFilenamePatterns() map[string]string {
	return map[string]string{
		"[app-]MM/DD/YYYY[.log]":   "Forward slashes create subdirectories",
		"[app-]HH:mm:ss[.log]":     "Colons invalid on Windows",
		"[app-]YYYY|MM|DD[.log]":   "Pipes invalid on Windows",
		"app-YYYYMMDD.log":         "Unbracketed text is read as date tokens",
		"[app\\]YYYY\\MM[.log]":    "Backslashes create subdirectories",
		"[app-]YYYY[<]MM[>][.log]": "Angle brackets invalid on Windows",
	}
}
