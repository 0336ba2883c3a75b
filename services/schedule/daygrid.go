package schedule

import (
	"fmt"
	"math"
	"time"
)

const (
	hoursPerDay    = 24
	secondsPerHour = 3600
)

// OverlapGeometry positions one booking fragment inside a one-hour bucket,
// as percentages of the bucket's 60-minute span. Values are rounded to two
// decimal places (half away from zero) for stable rendering.
type OverlapGeometry struct {
	TopPercent    float64 `json:"top_percent"`
	HeightPercent float64 `json:"height_percent"`
}

// BucketEntry pairs a booking with its geometry local to one bucket.
// A booking spanning several hours produces one entry per bucket it
// overlaps, each with bucket-relative geometry.
type BucketEntry struct {
	Interval BookingInterval `json:"booking"`
	Geometry OverlapGeometry `json:"geometry"`
}

// DayBucket is one fixed 60-minute slot of the day-grid view.
type DayBucket struct {
	Hour     int           `json:"hour"`
	Label    string        `json:"label"`
	Bookings []BucketEntry `json:"bookings"`
}

// BuildDayGrid projects bookings onto the 24 hourly buckets of the calendar
// day beginning at dayMidnight (epoch seconds, local to the selected date).
// Bookings exactly touching a bucket boundary contribute nothing to that
// bucket: the visible sub-range must be non-empty.
func BuildDayGrid(intervals []BookingInterval, dayMidnight int64) []DayBucket {
	buckets := make([]DayBucket, 0, hoursPerDay)
	for hour := 0; hour < hoursPerDay; hour++ {
		bucketStart := dayMidnight + int64(hour)*secondsPerHour
		bucketEnd := bucketStart + secondsPerHour

		var entries []BucketEntry
		for _, iv := range intervals {
			geom, ok := bucketGeometry(iv, bucketStart, bucketEnd)
			if !ok {
				continue
			}
			entries = append(entries, BucketEntry{Interval: iv, Geometry: geom})
		}

		buckets = append(buckets, DayBucket{
			Hour:     hour,
			Label:    FormatHour(hour),
			Bookings: entries,
		})
	}
	return buckets
}

// bucketGeometry computes the visible fragment of iv within one bucket.
// The second return is false when the fragment is empty.
func bucketGeometry(iv BookingInterval, bucketStart, bucketEnd int64) (OverlapGeometry, bool) {
	overlapStart := iv.Start
	if bucketStart > overlapStart {
		overlapStart = bucketStart
	}
	overlapEnd := iv.End
	if bucketEnd < overlapEnd {
		overlapEnd = bucketEnd
	}
	if overlapStart >= overlapEnd {
		return OverlapGeometry{}, false
	}

	return OverlapGeometry{
		TopPercent:    round2(float64(overlapStart-bucketStart) / secondsPerHour * 100),
		HeightPercent: round2(float64(overlapEnd-overlapStart) / secondsPerHour * 100),
	}, true
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatHour renders an hour of day (0..23) as a 12-hour clock label:
// 0 -> "12:00 AM", 12 -> "12:00 PM", 13 -> "1:00 PM".
func FormatHour(hour int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, period)
}

// MidnightOf parses a "YYYY-MM-DD" date and returns the epoch second of its
// midnight in the given location. Conversion from the wire's calendar date to
// epoch seconds happens once here, at the edge.
func MidnightOf(date string, loc *time.Location) (int64, error) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return day.Unix(), nil
}
