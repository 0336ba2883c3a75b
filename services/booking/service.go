package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "roombook/database/repository/booking"
	roomRepo "roombook/database/repository/room"
	"roombook/models"
	"roombook/services/schedule"
	"roombook/utils"
)

// Create books a room for a user.
//
// Steps:
// 1. Validate the requested range against the booking policy.
// 2. Reject rooms declared unavailable or under maintenance.
// 3. Re-check overlap against the live booking set; any availability check
//    the client ran earlier was advisory only.
// 4. Insert and schedule the start-of-meeting reminder.
func (s *DefaultBookingService) Create(userID string, req models.CreateBookingRequest) (*models.Booking, error) {
	now := s.now()

	// 1. Policy validation.
	if err := schedule.ValidateRequest(req.StartTime, req.EndTime, now, s.Policy); err != nil {
		return nil, err
	}

	// 2. Declared room state.
	room, err := s.RoomRepo.GetByID(req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	if room.Status != models.RoomAvailable {
		return nil, ErrRoomNotBookable
	}

	// 3. Authoritative conflict check.
	proposed, err := schedule.NewBookingInterval("", req.StartTime, req.EndTime, "", req.Purpose)
	if err != nil {
		return nil, err
	}
	existing, err := s.intervalsForRange(req.RoomID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if conflicts := schedule.FindConflicts(existing, proposed); len(conflicts) > 0 {
		return nil, &ConflictError{Conflicts: conflicts}
	}

	// 4. Persist.
	newBooking := &models.Booking{
		ID:        uuid.New().String(),
		RoomID:    req.RoomID,
		UserID:    userID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Purpose:   req.Purpose,
		Status:    models.BookingConfirmed,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(newBooking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(*newBooking); err != nil {
			// Reminders are best-effort; the booking itself stands.
			utils.GetLogger().Warn("failed to schedule booking reminder",
				zap.String("bookingID", newBooking.ID), zap.Error(err))
		}
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", newBooking.ID),
		zap.String("roomID", req.RoomID),
		zap.String("userID", userID))
	return newBooking, nil
}

// GetByID retrieves one booking.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListByUser returns a user's bookings. Confirmed bookings get their status
// replaced by the computed lifecycle phase so clients can render
// upcoming/active/completed without clock logic of their own.
func (s *DefaultBookingService) ListByUser(userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	now := s.now()
	for i := range bookings {
		bookings[i].Status = s.effectiveStatus(bookings[i], now)
	}
	return bookings, nil
}

// ListAllDetailed joins every booking with its user and room for the admin
// overview. Missing users or rooms degrade to blank labels instead of
// failing the whole listing.
func (s *DefaultBookingService) ListAllDetailed() ([]models.DetailedBooking, error) {
	bookings, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	now := s.now()
	detailed := make([]models.DetailedBooking, 0, len(bookings))
	for _, b := range bookings {
		d := models.DetailedBooking{
			ID:              b.ID,
			UserID:          b.UserID,
			RoomID:          b.RoomID,
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			DurationMinutes: (b.EndTime - b.StartTime) / 60,
			Purpose:         b.Purpose,
			Status:          s.effectiveStatus(b, now),
		}
		if u, err := s.UserRepo.GetByID(b.UserID); err == nil {
			d.UserName = u.Name
			d.UserEmail = u.Email
		}
		if r, err := s.RoomRepo.GetByID(b.RoomID); err == nil {
			d.RoomName = r.Name
			d.RoomNumber = r.RoomNumber
		}
		detailed = append(detailed, d)
	}
	return detailed, nil
}

// Cancel marks a booking cancelled. Admins may cancel any booking; everyone
// else only their own. Cancelling twice is a no-op.
func (s *DefaultBookingService) Cancel(bookingID, requesterID string, isAdmin bool) error {
	b, err := s.GetByID(bookingID)
	if err != nil {
		return err
	}
	if !isAdmin && b.UserID != requesterID {
		return ErrNotOwner
	}
	if b.Status == models.BookingCancelled {
		return nil
	}

	if err := s.Repo.Cancel(bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingID", bookingID), zap.String("requesterID", requesterID))
	return nil
}

// effectiveStatus maps a confirmed booking onto its lifecycle phase; stored
// terminal states (cancelled, completed) pass through unchanged.
func (s *DefaultBookingService) effectiveStatus(b models.Booking, now int64) string {
	if b.Status != models.BookingConfirmed {
		return b.Status
	}
	iv, err := b.Interval("")
	if err != nil {
		return b.Status
	}
	return schedule.Classify(iv, now)
}

// intervalsForRange loads a room's stored bookings overlapping [start, end)
// as schedule intervals.
func (s *DefaultBookingService) intervalsForRange(roomID string, start, end int64) ([]schedule.BookingInterval, error) {
	bookings, err := s.Repo.GetForRoomInRange(roomID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	intervals := make([]schedule.BookingInterval, 0, len(bookings))
	for _, b := range bookings {
		iv, err := b.Interval("")
		if err != nil {
			utils.GetLogger().Warn("skipping malformed booking record",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}
