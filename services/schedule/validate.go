package schedule

// BookingPolicy carries the configurable business limits for new bookings.
// Historical frontends hardcoded slightly different values per form variant;
// the canonical values live in configuration and flow through here.
type BookingPolicy struct {
	MinDurationMinutes int64
	MaxDurationHours   int64
	MaxAdvanceDays     int64
	// DefaultDurationHours sizes the window booking forms prefill with.
	DefaultDurationHours int64
}

// DefaultBookingPolicy mirrors the defaults the booking forms shipped with.
var DefaultBookingPolicy = BookingPolicy{
	MinDurationMinutes:   15,
	MaxDurationHours:     8,
	MaxAdvanceDays:       10,
	DefaultDurationHours: 1,
}

// MaxDurationMinutes is the hour limit expressed in the validator's unit.
func (p BookingPolicy) MaxDurationMinutes() int64 {
	return p.MaxDurationHours * 60
}

// ValidateRequest applies the ordered business checks to a proposed booking
// window. Start and end arrive as raw epoch seconds rather than a constructed
// BookingInterval because user input may carry an inverted range that
// construction would reject; the validator reports it as its own error.
//
// The first failing check is the result (single-error-at-a-time UX); conflicts
// with existing bookings are a separate, independent query.
func ValidateRequest(start, end, now int64, policy BookingPolicy) error {
	if start < now {
		return ErrPastBooking
	}
	if start > now+policy.MaxAdvanceDays*86400 {
		return ErrTooFarAhead
	}
	if end <= start {
		return ErrEndBeforeStart
	}
	durationMinutes := (end - start) / 60
	if durationMinutes < policy.MinDurationMinutes {
		return ErrTooShort
	}
	if durationMinutes > policy.MaxDurationMinutes() {
		return ErrTooLong
	}
	return nil
}

// DefaultWindow proposes the booking range a form should prefill: the next
// full hour after now, lasting the policy's default duration.
func (p BookingPolicy) DefaultWindow(now int64) (start, end int64) {
	start = (now/3600 + 1) * 3600
	hours := p.DefaultDurationHours
	if hours <= 0 {
		hours = 1
	}
	end = start + hours*3600
	return start, end
}
