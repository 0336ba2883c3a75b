package schedule

import "errors"

// Construction and validation failures. These are expected-path results that
// handlers map 1:1 to user-facing messages, never panics.
var (
	// ErrInvalidInterval rejects a malformed interval at construction (end <= start).
	ErrInvalidInterval = errors.New("interval end must be after start")

	// Booking request validation failures, in check order.
	ErrPastBooking    = errors.New("cannot book a room in the past")
	ErrTooFarAhead    = errors.New("booking is too far in advance")
	ErrEndBeforeStart = errors.New("end time must be after start time")
	ErrTooShort       = errors.New("booking is shorter than the minimum duration")
	ErrTooLong        = errors.New("booking exceeds the maximum duration")
)
