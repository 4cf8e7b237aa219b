package dateparse

import "errors"

var (
	// ErrInvalidDate is returned when a string cannot be resolved to a date
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidMonthName matches any *InvalidMonthNameError
	ErrInvalidMonthName = errors.New("invalid month name")
)

// InvalidMonthNameError reports a token that is neither a number nor a known
// month name or prefix
type InvalidMonthNameError struct {
	Token string
}

func (e *InvalidMonthNameError) Error() string {
	return "invalid month name: " + e.Token
}

func (e *InvalidMonthNameError) Is(target error) bool {
	return target == ErrInvalidMonthName
}
