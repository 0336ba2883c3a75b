package booking

import (
	"time"

	bookingRepo "roombook/database/repository/booking"
	roomRepo "roombook/database/repository/room"
	userRepo "roombook/database/repository/user"
	"roombook/models"
	"roombook/services/schedule"
)

// ReminderScheduler enqueues a start-of-meeting reminder for a booking.
// The task queue worker implements it; a nil scheduler disables reminders.
type ReminderScheduler interface {
	ScheduleReminder(booking models.Booking) error
}

// BookingService manages the booking lifecycle.
type BookingService interface {
	// Create validates the request against the booking policy, re-checks
	// conflicts against current data and inserts the booking. The conflict
	// check here is authoritative for this server: a losing race surfaces
	// as a ConflictError, never as a silent double booking.
	Create(userID string, req models.CreateBookingRequest) (*models.Booking, error)

	// GetByID retrieves one booking.
	GetByID(id string) (*models.Booking, error)
	// ListByUser returns a user's bookings with computed lifecycle status.
	ListByUser(userID string) ([]models.Booking, error)
	// ListAllDetailed returns every booking joined with user and room (admin).
	ListAllDetailed() ([]models.DetailedBooking, error)

	// Cancel marks a booking cancelled. Non-admins may only cancel their own.
	Cancel(bookingID, requesterID string, isAdmin bool) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	RoomRepo  roomRepo.RoomRepository
	UserRepo  userRepo.UserRepository
	Policy    schedule.BookingPolicy
	Reminders ReminderScheduler

	// Now is the clock for validation and classification; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() int64 {
	if s.Now != nil {
		return s.Now().Unix()
	}
	return time.Now().Unix()
}
