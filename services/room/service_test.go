package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "roombook/database/repository/booking"
	roomRepo "roombook/database/repository/room"
	userRepo "roombook/database/repository/user"
	"roombook/models"
	"roombook/services/schedule"
)

type fakeRoomRepo struct {
	rooms map[string]*models.Room
}

func (f *fakeRoomRepo) GetByID(id string) (*models.Room, error) {
	if r, ok := f.rooms[id]; ok {
		return r, nil
	}
	return nil, roomRepo.ErrNotFound
}

func (f *fakeRoomRepo) GetAll() ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRoomRepo) Search(params models.RoomSearchParams) ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if params.MinCapacity > 0 && r.Capacity < params.MinCapacity {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRoomRepo) Create(r *models.Room) error {
	f.rooms[r.ID] = r
	return nil
}

func (f *fakeRoomRepo) Update(r *models.Room) error {
	if _, ok := f.rooms[r.ID]; !ok {
		return roomRepo.ErrNotFound
	}
	f.rooms[r.ID] = r
	return nil
}

func (f *fakeRoomRepo) Delete(id string) error {
	if _, ok := f.rooms[id]; !ok {
		return roomRepo.ErrNotFound
	}
	delete(f.rooms, id)
	return nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) GetByID(string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}
func (f *fakeBookingRepo) GetAll() ([]models.Booking, error)          { return f.bookings, nil }
func (f *fakeBookingRepo) GetByUser(string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) Cancel(string) error                        { return nil }
func (f *fakeBookingRepo) MarkCompleted(int64) (int64, error)         { return 0, nil }

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetForRoomInRange(roomID string, start, end int64) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.Status != models.BookingCancelled &&
			b.StartTime < end && start < b.EndTime {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) DeleteForRoom(roomID string) error {
	kept := f.bookings[:0]
	for _, b := range f.bookings {
		if b.RoomID != roomID {
			kept = append(kept, b)
		}
	}
	f.bookings = kept
	return nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) GetByID(id string) (*models.User, error) {
	if id == "user-1" {
		return &models.User{ID: "user-1", Name: "Ada"}, nil
	}
	return nil, userRepo.ErrNotFound
}
func (fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, userRepo.ErrNotFound }
func (fakeUserRepo) GetAll() ([]models.User, error)          { return nil, nil }
func (fakeUserRepo) Create(*models.User) error               { return nil }
func (fakeUserRepo) Update(*models.User) error               { return nil }
func (fakeUserRepo) Delete(string) error                     { return nil }

// midnight of 2024-03-15 UTC
var dayStart = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC).Unix()

func newTestService(existing ...models.Booking) *DefaultRoomService {
	return &DefaultRoomService{
		Repo: &fakeRoomRepo{rooms: map[string]*models.Room{
			"room-1": {ID: "room-1", Name: "Boardroom", RoomNumber: 101,
				Capacity: 12, Status: models.RoomAvailable},
		}},
		BookingRepo: &fakeBookingRepo{bookings: existing},
		UserRepo:    fakeUserRepo{},
		Location:    time.UTC,
		Now:         func() time.Time { return time.Unix(dayStart+10*3600, 0) },
	}
}

func booking(id string, start, end int64) models.Booking {
	return models.Booking{
		ID: id, RoomID: "room-1", UserID: "user-1",
		StartTime: start, EndTime: end,
		Purpose: "team sync", Status: models.BookingConfirmed,
	}
}

func TestGetScheduleDenormalizesOwner(t *testing.T) {
	svc := newTestService(booking("b-1", dayStart+9*3600, dayStart+10*3600))

	resp, err := svc.GetSchedule("room-1", "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "Boardroom", resp.RoomName)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Ada", resp.Bookings[0].Owner)
}

func TestGetScheduleUnknownRoom(t *testing.T) {
	svc := newTestService()
	_, err := svc.GetSchedule("missing", "2024-03-15")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetDayGridGeometry(t *testing.T) {
	// 09:30 to 10:30 covers the second half of hour 9 and the first half
	// of hour 10.
	svc := newTestService(booking("b-1", dayStart+9*3600+1800, dayStart+10*3600+1800))

	resp, err := svc.GetDayGrid("room-1", "2024-03-15")
	require.NoError(t, err)
	require.Len(t, resp.Slots, 24)

	nine := resp.Slots[9]
	require.Len(t, nine.Bookings, 1)
	assert.Equal(t, 50.0, nine.Bookings[0].Geometry.TopPercent)
	assert.Equal(t, 50.0, nine.Bookings[0].Geometry.HeightPercent)

	ten := resp.Slots[10]
	require.Len(t, ten.Bookings, 1)
	assert.Equal(t, 0.0, ten.Bookings[0].Geometry.TopPercent)
	assert.Equal(t, 50.0, ten.Bookings[0].Geometry.HeightPercent)

	assert.Empty(t, resp.Slots[8].Bookings)
	assert.Empty(t, resp.Slots[11].Bookings)
}

func TestCurrentStatus(t *testing.T) {
	t.Run("in use during a booking", func(t *testing.T) {
		// Clock sits at 10:00, inside [09:00, 11:00).
		svc := newTestService(booking("b-1", dayStart+9*3600, dayStart+11*3600))
		resp, err := svc.CurrentStatus("room-1")
		require.NoError(t, err)
		assert.Equal(t, string(schedule.StatusInUse), resp.Status)
	})

	t.Run("available with no active booking", func(t *testing.T) {
		svc := newTestService(booking("b-1", dayStart+14*3600, dayStart+15*3600))
		resp, err := svc.CurrentStatus("room-1")
		require.NoError(t, err)
		assert.Equal(t, string(schedule.StatusAvailable), resp.Status)
	})

	t.Run("declared state wins", func(t *testing.T) {
		svc := newTestService()
		r, err := svc.GetRoom("room-1")
		require.NoError(t, err)
		r.Status = models.RoomMaintenance
		require.NoError(t, svc.UpdateRoom(r))

		resp, err := svc.CurrentStatus("room-1")
		require.NoError(t, err)
		assert.Equal(t, models.RoomMaintenance, resp.Status)
	})
}

func TestCheckAvailability(t *testing.T) {
	existing := booking("b-1", dayStart+9*3600, dayStart+11*3600)

	t.Run("free range", func(t *testing.T) {
		svc := newTestService(existing)
		resp, err := svc.CheckAvailability(models.AvailabilityCheckRequest{
			RoomID: "room-1", StartTime: dayStart + 12*3600, EndTime: dayStart + 13*3600,
		})
		require.NoError(t, err)
		assert.True(t, resp.Available)
		assert.Empty(t, resp.ConflictingSlots)
		assert.Empty(t, resp.SuggestedSlots)
	})

	t.Run("conflict with suggestions", func(t *testing.T) {
		svc := newTestService(existing)
		resp, err := svc.CheckAvailability(models.AvailabilityCheckRequest{
			RoomID: "room-1", StartTime: dayStart + 10*3600, EndTime: dayStart + 11*3600,
		})
		require.NoError(t, err)
		assert.False(t, resp.Available)
		require.Len(t, resp.ConflictingSlots, 1)
		assert.Equal(t, "b-1", resp.ConflictingSlots[0].ID)

		// One-hour slots fit before 09:00 and after 11:00.
		require.Len(t, resp.SuggestedSlots, 2)
		assert.Equal(t, dayStart, resp.SuggestedSlots[0].StartTime)
		assert.Equal(t, dayStart+3600, resp.SuggestedSlots[0].EndTime)
		assert.Equal(t, dayStart+11*3600, resp.SuggestedSlots[1].StartTime)
		assert.Equal(t, int64(60), resp.SuggestedSlots[1].DurationMinutes)
	})

	t.Run("inverted range", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.CheckAvailability(models.AvailabilityCheckRequest{
			RoomID: "room-1", StartTime: dayStart + 11*3600, EndTime: dayStart + 10*3600,
		})
		assert.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})
}

func TestAddRoomRejectsDuplicateNumber(t *testing.T) {
	svc := newTestService()
	_, err := svc.AddRoom(models.AddRoomRequest{Name: "Copy", RoomNumber: 101, Capacity: 4})
	assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
}

func TestSearchRoomsFiltersBookedRanges(t *testing.T) {
	svc := newTestService(booking("b-1", dayStart+9*3600, dayStart+11*3600))

	free, err := svc.SearchRooms(models.RoomSearchParams{
		StartTime: dayStart + 10*3600, EndTime: dayStart + 12*3600,
	})
	require.NoError(t, err)
	assert.Empty(t, free)

	free, err = svc.SearchRooms(models.RoomSearchParams{
		StartTime: dayStart + 12*3600, EndTime: dayStart + 13*3600,
	})
	require.NoError(t, err)
	assert.Len(t, free, 1)
}
