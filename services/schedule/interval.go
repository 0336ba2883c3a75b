package schedule

// BookingInterval is the canonical representation of a booked time range.
// All times are epoch seconds and the range is half-open: [Start, End).
// Instances are immutable once constructed; a fresh schedule fetch replaces
// them rather than mutating in place.
type BookingInterval struct {
	ID      string `json:"booking_id"`
	Start   int64  `json:"start_time"` // epoch seconds, inclusive
	End     int64  `json:"end_time"`   // epoch seconds, exclusive
	Owner   string `json:"user_name"`  // display name of the booking user
	Purpose string `json:"purpose"`
}

// NewBookingInterval constructs a BookingInterval from raw epoch-second bounds.
// Zero or negative length intervals are rejected with ErrInvalidInterval.
func NewBookingInterval(id string, start, end int64, owner, purpose string) (BookingInterval, error) {
	if end <= start {
		return BookingInterval{}, ErrInvalidInterval
	}
	return BookingInterval{
		ID:      id,
		Start:   start,
		End:     end,
		Owner:   owner,
		Purpose: purpose,
	}, nil
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching endpoints (a.End == b.Start) do not overlap, so back-to-back
// bookings are never double-counted.
func (iv BookingInterval) Overlaps(other BookingInterval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// ContainsInstant reports whether t falls within [Start, End).
func (iv BookingInterval) ContainsInstant(t int64) bool {
	return iv.Start <= t && t < iv.End
}

// DurationMinutes returns the interval length in whole minutes.
// Second-precision remainders truncate toward zero so a duration is never
// inflated past what was actually booked.
func (iv BookingInterval) DurationMinutes() int64 {
	return (iv.End - iv.Start) / 60
}
