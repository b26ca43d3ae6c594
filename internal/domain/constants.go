package domain

// Time format constants
const (
	DateFormat        = "2006-01-02"          // YYYY-MM-DD
	BookingTimeFormat = "2006-01-02 15:04:05" // wire format of booking_time
)

// KeyDelimiter separates the segments of a serialized slot key.
const KeyDelimiter = "_"

// UnknownRoom is the sentinel returned when a legacy record carries
// no room identifier of its own.
const UnknownRoom = "unknown"

// WindowDays is the length of the rolling booking window: bookings are
// accepted for today plus the following six days.
const WindowDays = 7

// Business validation constants
const (
	MaxNameLength   = 100
	MaxReasonLength = 500
)
