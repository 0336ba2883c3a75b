package room

import (
	"context"
	"time"

	"go.uber.org/zap"

	"roombook/models"
	"roombook/services/schedule"
	"roombook/utils"
)

const daySeconds = 24 * 3600

// GetSchedule returns the raw bookings of a room for one calendar date.
func (s *DefaultRoomService) GetSchedule(roomID, date string) (*models.RoomScheduleResponse, error) {
	room, err := s.GetRoom(roomID)
	if err != nil {
		return nil, err
	}

	midnight, err := schedule.MidnightOf(date, s.location())
	if err != nil {
		return nil, err
	}
	intervals, err := s.intervalsForRange(roomID, midnight, midnight+daySeconds)
	if err != nil {
		return nil, err
	}

	return &models.RoomScheduleResponse{
		RoomID:   room.ID,
		RoomName: room.Name,
		Date:     date,
		Bookings: intervals,
	}, nil
}

// GetDayGrid projects a room's bookings for one date onto the 24-hour grid.
func (s *DefaultRoomService) GetDayGrid(roomID, date string) (*models.RoomGridResponse, error) {
	if _, err := s.GetRoom(roomID); err != nil {
		return nil, err
	}

	midnight, err := schedule.MidnightOf(date, s.location())
	if err != nil {
		return nil, err
	}
	intervals, err := s.intervalsForRange(roomID, midnight, midnight+daySeconds)
	if err != nil {
		return nil, err
	}

	return &models.RoomGridResponse{
		RoomID: roomID,
		Date:   date,
		Slots:  schedule.BuildDayGrid(intervals, midnight),
	}, nil
}

// CurrentStatus reports the room's occupancy right now. A declared
// maintenance or unavailable state wins over the computed occupancy; for
// available rooms the computed status is cached briefly to keep dashboard
// refreshes off the booking collection.
func (s *DefaultRoomService) CurrentStatus(roomID string) (*models.RoomStatusResponse, error) {
	room, err := s.GetRoom(roomID)
	if err != nil {
		return nil, err
	}
	if room.Status != models.RoomAvailable {
		return &models.RoomStatusResponse{RoomID: roomID, Status: room.Status}, nil
	}

	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		cached, err := s.Cache.Get(ctx, utils.RoomStatusPrefix+roomID).Result()
		cancel()
		if err == nil && cached != "" {
			return &models.RoomStatusResponse{RoomID: roomID, Status: cached}, nil
		}
	}

	now := s.now()
	intervals, err := s.intervalsForRange(roomID, now-daySeconds, now+1)
	if err != nil {
		return nil, err
	}
	status := string(schedule.CurrentStatus(intervals, now))

	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		if err := s.Cache.Set(ctx, utils.RoomStatusPrefix+roomID, status, utils.RoomStatusTTL).Err(); err != nil {
			utils.GetLogger().Debug("failed to cache room status", zap.Error(err))
		}
		cancel()
	}

	return &models.RoomStatusResponse{RoomID: roomID, Status: status}, nil
}

// invalidateStatus drops the cached computed status after a mutation.
func (s *DefaultRoomService) invalidateStatus(roomID string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Cache.Del(ctx, utils.RoomStatusPrefix+roomID)
}

// CheckAvailability answers the advisory conflict query: does the requested
// range overlap existing bookings, and if so which free windows of the same
// day could hold the meeting instead. The result reflects a snapshot;
// creation re-validates and remains the final arbiter.
func (s *DefaultRoomService) CheckAvailability(req models.AvailabilityCheckRequest) (*models.AvailabilityCheckResponse, error) {
	room, err := s.GetRoom(req.RoomID)
	if err != nil {
		return nil, err
	}
	if req.EndTime <= req.StartTime {
		return nil, schedule.ErrInvalidInterval
	}

	proposed, err := schedule.NewBookingInterval("", req.StartTime, req.EndTime, "", "")
	if err != nil {
		return nil, err
	}

	// Load the whole day around the requested start so suggestions can use
	// the free stretches before and after the conflict.
	dayStart := time.Unix(req.StartTime, 0).In(s.location())
	midnight := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), 0, 0, 0, 0, s.location()).Unix()
	intervals, err := s.intervalsForRange(req.RoomID, midnight, midnight+daySeconds)
	if err != nil {
		return nil, err
	}

	conflicts := schedule.FindConflicts(intervals, proposed)

	resp := &models.AvailabilityCheckResponse{
		Available:        len(conflicts) == 0,
		RoomID:           room.ID,
		RoomName:         room.Name,
		RequestedStart:   req.StartTime,
		RequestedEnd:     req.EndTime,
		ConflictingSlots: conflicts,
	}
	if len(conflicts) == 0 {
		return resp, nil
	}

	duration := req.EndTime - req.StartTime
	for _, gap := range schedule.FreeGaps(intervals, midnight, midnight+daySeconds, duration) {
		// Offer the earliest window of the requested length in each gap.
		resp.SuggestedSlots = append(resp.SuggestedSlots, models.SuggestedSlot{
			StartTime:       gap.Start,
			EndTime:         gap.Start + duration,
			DurationMinutes: duration / 60,
		})
	}
	return resp, nil
}
