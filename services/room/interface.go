package room

import (
	"time"

	"github.com/go-redis/redis/v8"

	bookingRepo "roombook/database/repository/booking"
	roomRepo "roombook/database/repository/room"
	userRepo "roombook/database/repository/user"
	"roombook/models"
)

// RoomService manages rooms and answers schedule queries about them.
type RoomService interface {
	// Room management (admin)
	AddRoom(req models.AddRoomRequest) (*models.Room, error)
	UpdateRoom(room *models.Room) error
	DeleteRoom(roomID string) error

	// Listing and lookup
	GetRoom(roomID string) (*models.Room, error)
	SearchRooms(params models.RoomSearchParams) ([]models.Room, error)

	// Schedule queries
	GetSchedule(roomID, date string) (*models.RoomScheduleResponse, error)
	GetDayGrid(roomID, date string) (*models.RoomGridResponse, error)
	CurrentStatus(roomID string) (*models.RoomStatusResponse, error)
	CheckAvailability(req models.AvailabilityCheckRequest) (*models.AvailabilityCheckResponse, error)
}

// DefaultRoomService is the production implementation.
type DefaultRoomService struct {
	Repo        roomRepo.RoomRepository
	BookingRepo bookingRepo.BookingRepository
	UserRepo    userRepo.UserRepository
	Cache       *redis.Client
	Location    *time.Location

	// Now is the clock used for status computations; nil means time.Now.
	// Injected so tests can pin "now".
	Now func() time.Time
}

func (s *DefaultRoomService) now() int64 {
	if s.Now != nil {
		return s.Now().Unix()
	}
	return time.Now().Unix()
}

func (s *DefaultRoomService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}
