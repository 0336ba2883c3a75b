package schedule

// RoomStatus is the computed occupancy of a room at a point in time.
// It is independent of the room's declared status (maintenance, unavailable)
// which the room service may use to override it for display.
type RoomStatus string

const (
	StatusAvailable RoomStatus = "Available"
	StatusInUse     RoomStatus = "In Use"
)

// Booking lifecycle phases derived from an interval relative to "now".
// Cancelled is a persisted flag, not derivable from times, so the booking
// service layers it on top of this classification.
const (
	PhaseUpcoming  = "upcoming"
	PhaseActive    = "active"
	PhaseCompleted = "completed"
)

// CurrentStatus reports whether the room is occupied at the given instant.
// Half-open semantics resolve adjacent bookings unambiguously: a booking
// ending exactly at now does not count, one starting exactly at now does.
func CurrentStatus(intervals []BookingInterval, now int64) RoomStatus {
	for _, iv := range intervals {
		if iv.ContainsInstant(now) {
			return StatusInUse
		}
	}
	return StatusAvailable
}

// FindConflicts returns every existing interval that overlaps the proposal,
// preserving input order. An empty result means the proposal is conflict-free
// against this snapshot. This is a pure, advisory query: it reserves nothing,
// and the booking service must re-check at creation time because two callers
// can both see an empty result and race to book.
func FindConflicts(intervals []BookingInterval, proposed BookingInterval) []BookingInterval {
	var conflicts []BookingInterval
	for _, iv := range intervals {
		if iv.Overlaps(proposed) {
			conflicts = append(conflicts, iv)
		}
	}
	return conflicts
}

// Classify buckets a booking into upcoming, active or completed relative to now.
func Classify(iv BookingInterval, now int64) string {
	switch {
	case now < iv.Start:
		return PhaseUpcoming
	case iv.ContainsInstant(now):
		return PhaseActive
	default:
		return PhaseCompleted
	}
}

// FreeGap is an unbooked stretch within a search window.
type FreeGap struct {
	Start int64 `json:"start_time"`
	End   int64 `json:"end_time"`
}

// FreeGaps returns the unbooked stretches of [windowStart, windowEnd) that
// are at least minSeconds long. Overlapping and unsorted bookings are merged
// before the walk, so double-booked stretches still count as occupied once.
func FreeGaps(intervals []BookingInterval, windowStart, windowEnd, minSeconds int64) []FreeGap {
	if windowEnd <= windowStart {
		return nil
	}

	merged := mergeIntervals(intervals)

	var gaps []FreeGap
	cursor := windowStart
	for _, iv := range merged {
		if iv.End <= cursor {
			continue
		}
		if iv.Start >= windowEnd {
			break
		}
		if iv.Start-cursor >= minSeconds {
			gaps = append(gaps, FreeGap{Start: cursor, End: iv.Start})
		}
		if iv.End > cursor {
			cursor = iv.End
		}
	}
	if windowEnd-cursor >= minSeconds {
		gaps = append(gaps, FreeGap{Start: cursor, End: windowEnd})
	}
	return gaps
}

// mergeIntervals sorts by start and coalesces overlapping or touching ranges.
func mergeIntervals(intervals []BookingInterval) []BookingInterval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]BookingInterval, len(intervals))
	copy(sorted, intervals)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Start < sorted[j-1].Start; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	merged := []BookingInterval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
