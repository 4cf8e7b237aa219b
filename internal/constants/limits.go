package constants

// Date disambiguation limits
const (
	// MaxTokenVisits is the number of token visits, across all passes, after
	// which an unresolved date is rejected
	MaxTokenVisits = 6

	// ForceAssignAfter is the visit count after which an ambiguous token is
	// assigned to its first open slot (month, then day, then year)
	ForceAssignAfter = 3

	// MinDateTokens is the token count below which the current year is implied
	MinDateTokens = 3
)

// Year expansion
const (
	// YearPivotOffset is how many years into the future a two-digit year may
	// point before it is read as 19xx
	YearPivotOffset = 20

	// MaxYear is the largest year a date may resolve to
	MaxYear = 9999
)

// Default templates
const (
	// DefaultFormat is used by FormatDateTime when no template is given
	DefaultFormat = "YYYY-MM-DD"

	// DefaultDateFormat is used when rendering a parsed date for display
	DefaultDateFormat = "YYYY-MMM-DD"

	// DefaultTimeFormat is used when rendering a parsed time for display
	DefaultTimeFormat = "h:mm A"

	// DefaultDateTimeFormat is used for the configured reference clock
	DefaultDateTimeFormat = "YYYY-MM-DD HH:mm:ss"
)

// Logging configuration
const (
	// DefaultMaxLogFiles to keep in rotation
	DefaultMaxLogFiles = 7

	// DefaultMaxLogSizeMB per log file
	DefaultMaxLogSizeMB = 10

	// DefaultLogFilenamePattern is a format template rendered with the log date
	DefaultLogFilenamePattern = "[validator-]YYYYMMDD[.log]"
)
