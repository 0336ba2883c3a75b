package booking

import (
	"errors"
	"fmt"

	"roombook/services/schedule"
)

var (
	// ErrNotFound mirrors the repository's miss for service callers.
	ErrNotFound = errors.New("booking not found")

	// ErrRoomNotFound reports an unknown room on the booking request.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomNotBookable rejects bookings for rooms declared unavailable
	// or under maintenance.
	ErrRoomNotBookable = errors.New("this room is not open for booking")

	// ErrNotOwner rejects cancelling someone else's booking.
	ErrNotOwner = errors.New("bookings can only be cancelled by their owner")
)

// ConflictError reports that the requested range overlaps existing bookings.
// Handlers translate it to HTTP 409 and surface the message verbatim; the
// client must pick a different time rather than retry.
type ConflictError struct {
	Conflicts []schedule.BookingInterval
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("this room is no longer available for that time (%d conflicting bookings)", len(e.Conflicts))
}
