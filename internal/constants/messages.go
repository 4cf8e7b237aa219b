package constants

// Default user-facing validation messages
const (
	MsgRequired   = "This field is required."
	MsgDate       = "This is not a valid date."
	MsgDatePast   = "The date must be in the past."
	MsgDateFuture = "The date must be in the future."
	MsgDateRange  = "The date is outside the allowed range."
	MsgTime       = "This is not a valid time."
)
