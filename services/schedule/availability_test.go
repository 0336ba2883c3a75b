package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentStatus_BoundaryExclusiveEnd(t *testing.T) {
	t0 := int64(1756000800)
	intervals := []BookingInterval{interval(t, t0, t0+3600)}

	assert.Equal(t, StatusInUse, CurrentStatus(intervals, t0))
	assert.Equal(t, StatusInUse, CurrentStatus(intervals, t0+1800))
	assert.Equal(t, StatusAvailable, CurrentStatus(intervals, t0+3600))
}

func TestCurrentStatus_AdjacentBookingsNoDoubleStatus(t *testing.T) {
	t0 := int64(1756000800)
	intervals := []BookingInterval{
		interval(t, t0-3600, t0),
		interval(t, t0, t0+3600),
	}
	// Exactly at the handover instant only the starting booking contains now.
	assert.Equal(t, StatusInUse, CurrentStatus(intervals, t0))
}

func TestCurrentStatus_Empty(t *testing.T) {
	assert.Equal(t, StatusAvailable, CurrentStatus(nil, 1756000800))
}

func TestFindConflicts(t *testing.T) {
	existing := []BookingInterval{interval(t, 100, 200)}

	conflicts := FindConflicts(existing, interval(t, 150, 250))
	require.Len(t, conflicts, 1)
	assert.Equal(t, existing[0], conflicts[0])

	assert.Empty(t, FindConflicts(existing, interval(t, 200, 300)))
}

func TestFindConflicts_PreservesOrder(t *testing.T) {
	a := interval(t, 100, 200)
	b := interval(t, 300, 400)
	c := interval(t, 150, 350)

	conflicts := FindConflicts([]BookingInterval{a, b, c}, interval(t, 120, 360))
	require.Len(t, conflicts, 3)
	assert.Equal(t, []BookingInterval{a, b, c}, conflicts)
}

func TestClassify(t *testing.T) {
	iv := interval(t, 1000, 2000)
	assert.Equal(t, PhaseUpcoming, Classify(iv, 500))
	assert.Equal(t, PhaseActive, Classify(iv, 1000))
	assert.Equal(t, PhaseActive, Classify(iv, 1999))
	assert.Equal(t, PhaseCompleted, Classify(iv, 2000))
}

func TestFreeGaps(t *testing.T) {
	intervals := []BookingInterval{
		interval(t, 3600, 7200),   // 01:00-02:00
		interval(t, 10800, 14400), // 03:00-04:00
	}

	gaps := FreeGaps(intervals, 0, 18000, 1800)
	require.Len(t, gaps, 3)
	assert.Equal(t, FreeGap{Start: 0, End: 3600}, gaps[0])
	assert.Equal(t, FreeGap{Start: 7200, End: 10800}, gaps[1])
	assert.Equal(t, FreeGap{Start: 14400, End: 18000}, gaps[2])
}

func TestFreeGaps_MergesOverlappingBookings(t *testing.T) {
	intervals := []BookingInterval{
		interval(t, 3600, 9000),
		interval(t, 7200, 10800), // overlaps the first
	}

	gaps := FreeGaps(intervals, 0, 14400, 1800)
	require.Len(t, gaps, 2)
	assert.Equal(t, FreeGap{Start: 0, End: 3600}, gaps[0])
	assert.Equal(t, FreeGap{Start: 10800, End: 14400}, gaps[1])
}

func TestFreeGaps_RespectsMinimumLength(t *testing.T) {
	intervals := []BookingInterval{
		interval(t, 3600, 7200),
		interval(t, 7800, 10800), // only a 10 minute gap before this one
	}

	gaps := FreeGaps(intervals, 3600, 10800, 1800)
	assert.Empty(t, gaps)
}

func TestFreeGaps_FullyBooked(t *testing.T) {
	intervals := []BookingInterval{interval(t, 0, 86400)}
	assert.Empty(t, FreeGaps(intervals, 0, 86400, 900))
}
