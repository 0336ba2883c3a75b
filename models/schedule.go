package models

import "roombook/services/schedule"

// RoomScheduleResponse is the raw schedule for one room on one date.
// Bookings carry integer epoch seconds end to end: normalizing a record into
// an interval and back is lossless.
type RoomScheduleResponse struct {
	RoomID   string                     `json:"room_id"`
	RoomName string                     `json:"roomName"`
	Date     string                     `json:"date"`
	Bookings []schedule.BookingInterval `json:"bookings"`
}

// RoomGridResponse is the day-timeline projection of a room's schedule.
type RoomGridResponse struct {
	RoomID string               `json:"room_id"`
	Date   string               `json:"date"`
	Slots  []schedule.DayBucket `json:"slots"`
}

// RoomStatusResponse reports the computed occupancy of a room right now.
type RoomStatusResponse struct {
	RoomID string `json:"room_id"`
	Status string `json:"status"`
}

// AvailabilityCheckRequest asks whether a room is free for a time range.
type AvailabilityCheckRequest struct {
	RoomID    string `json:"roomId" binding:"required"`
	StartTime int64  `json:"startTime" binding:"required"`
	EndTime   int64  `json:"endTime" binding:"required"`
}

// SuggestedSlot is a free alternative window offered when the requested
// range conflicts.
type SuggestedSlot struct {
	StartTime       int64 `json:"startTime"`
	EndTime         int64 `json:"endTime"`
	DurationMinutes int64 `json:"duration"`
}

// AvailabilityCheckResponse carries the advisory conflict check result.
// A true Available here is a point-in-time snapshot, not a reservation:
// booking creation re-validates server-side and may still return a conflict.
type AvailabilityCheckResponse struct {
	Available        bool                       `json:"available"`
	RoomID           string                     `json:"roomId"`
	RoomName         string                     `json:"roomName"`
	RequestedStart   int64                      `json:"requestedStart"`
	RequestedEnd     int64                      `json:"requestedEnd"`
	ConflictingSlots []schedule.BookingInterval `json:"conflictingSlots"`
	SuggestedSlots   []SuggestedSlot            `json:"suggestedSlots"`
}
