package room

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	roomRepo "roombook/database/repository/room"
	"roombook/models"
	"roombook/services/schedule"
	"roombook/utils"
)

// AddRoom registers a new room. The declared status defaults to available.
func (s *DefaultRoomService) AddRoom(req models.AddRoomRequest) (*models.Room, error) {
	existing, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	for _, r := range existing {
		if r.RoomNumber == req.RoomNumber {
			return nil, ErrDuplicateRoomNumber
		}
	}

	status := req.Status
	switch status {
	case models.RoomAvailable, models.RoomUnavailable, models.RoomMaintenance:
	default:
		status = models.RoomAvailable
	}

	newRoom := &models.Room{
		ID:          uuid.New().String(),
		Name:        req.Name,
		RoomNumber:  req.RoomNumber,
		Capacity:    req.Capacity,
		Floor:       req.Floor,
		Amenities:   req.Amenities,
		Status:      status,
		Location:    req.Location,
		Description: req.Description,
	}
	if err := s.Repo.Create(newRoom); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	utils.GetLogger().Info("room added",
		zap.String("roomID", newRoom.ID), zap.Int("roomNumber", newRoom.RoomNumber))
	return newRoom, nil
}

// UpdateRoom modifies an existing room record.
func (s *DefaultRoomService) UpdateRoom(room *models.Room) error {
	if err := s.Repo.Update(room); err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateStatus(room.ID)
	return nil
}

// DeleteRoom removes a room together with its booking history.
func (s *DefaultRoomService) DeleteRoom(roomID string) error {
	if err := s.Repo.Delete(roomID); err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.BookingRepo.DeleteForRoom(roomID); err != nil {
		utils.GetLogger().Error("failed to clean up bookings for deleted room",
			zap.String("roomID", roomID), zap.Error(err))
	}
	s.invalidateStatus(roomID)
	return nil
}

// GetRoom retrieves a room by ID.
func (s *DefaultRoomService) GetRoom(roomID string) (*models.Room, error) {
	room, err := s.Repo.GetByID(roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

// SearchRooms lists rooms matching the filters. When a time range is given,
// rooms with an overlapping booking are dropped from the result.
func (s *DefaultRoomService) SearchRooms(params models.RoomSearchParams) ([]models.Room, error) {
	rooms, err := s.Repo.Search(params)
	if err != nil {
		return nil, err
	}
	if params.StartTime == 0 || params.EndTime <= params.StartTime {
		return rooms, nil
	}

	free := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		bookings, err := s.BookingRepo.GetForRoomInRange(r.ID, params.StartTime, params.EndTime)
		if err != nil {
			return nil, fmt.Errorf("failed to check bookings for room %s: %w", r.ID, err)
		}
		if len(bookings) == 0 {
			free = append(free, r)
		}
	}
	return free, nil
}

// intervalsForRange loads a room's bookings overlapping [start, end) and
// normalizes them into schedule intervals with denormalized owner names.
func (s *DefaultRoomService) intervalsForRange(roomID string, start, end int64) ([]schedule.BookingInterval, error) {
	bookings, err := s.BookingRepo.GetForRoomInRange(roomID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	intervals := make([]schedule.BookingInterval, 0, len(bookings))
	for _, b := range bookings {
		owner := ""
		if u, err := s.UserRepo.GetByID(b.UserID); err == nil {
			owner = u.Name
		}
		iv, err := b.Interval(owner)
		if err != nil {
			// A malformed stored record is skipped, not fatal to the view.
			utils.GetLogger().Warn("skipping malformed booking record",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}
