package models

import (
	"time"

	"roombook/services/schedule"
)

// Persisted booking states. The empty string means "confirmed"; lifecycle
// phases (upcoming/active/completed) are computed from the interval and only
// "completed" is written back by the sweep worker.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking is a confirmed reservation of one room for one time range.
// Times are epoch seconds; the range is half-open [StartTime, EndTime).
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	RoomID    string    `bson:"room_id" json:"room_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	StartTime int64     `bson:"start_time" json:"start_time"`
	EndTime   int64     `bson:"end_time" json:"end_time"`
	Purpose   string    `bson:"purpose" json:"purpose"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Interval normalizes the stored record into the canonical interval value
// the schedule core operates on. ownerLabel is the display name of the
// booking user, denormalized at read time.
func (b Booking) Interval(ownerLabel string) (schedule.BookingInterval, error) {
	return schedule.NewBookingInterval(b.ID, b.StartTime, b.EndTime, ownerLabel, b.Purpose)
}

// CreateBookingRequest is the payload for booking a room.
type CreateBookingRequest struct {
	RoomID    string `json:"room_id" binding:"required"`
	StartTime int64  `json:"start_time" binding:"required"`
	EndTime   int64  `json:"end_time" binding:"required"`
	Purpose   string `json:"purpose" binding:"required,min=5"`
}

// DetailedBooking is the admin listing view: a booking joined with the
// owning user and room.
type DetailedBooking struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	UserName        string `json:"userName"`
	UserEmail       string `json:"userEmail"`
	RoomID          string `json:"room_id"`
	RoomName        string `json:"roomName"`
	RoomNumber      int    `json:"roomNumber"`
	StartTime       int64  `json:"start_time"`
	EndTime         int64  `json:"end_time"`
	DurationMinutes int64  `json:"duration"`
	Purpose         string `json:"purpose"`
	Status          string `json:"status"`
}
