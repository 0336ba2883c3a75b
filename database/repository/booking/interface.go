package bookingRepo

import "roombook/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings.
	GetAll() ([]models.Booking, error)
	// GetByUser retrieves all bookings made by one user.
	GetByUser(userID string) ([]models.Booking, error)
	// GetForRoomInRange retrieves non-cancelled bookings for a room whose
	// half-open interval overlaps [start, end).
	GetForRoomInRange(roomID string, start, end int64) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// Cancel marks a booking cancelled without deleting the record.
	Cancel(id string) error
	// MarkCompleted flags every confirmed booking that ended at or before
	// the given instant. Returns the number of bookings updated.
	MarkCompleted(now int64) (int64, error)
	// DeleteForRoom removes all bookings of a room (room deletion cleanup).
	DeleteForRoom(roomID string) error
}
