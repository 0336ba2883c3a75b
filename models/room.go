package models

// Declared room states set by administrators. Independent of the computed
// occupancy status, which may override "available" for display when a
// booking is in progress.
const (
	RoomAvailable   = "available"
	RoomUnavailable = "unavailable"
	RoomMaintenance = "maintenance"
)

// Room is a bookable meeting room.
type Room struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	RoomNumber  int      `bson:"room_number" json:"roomNumber"`
	Capacity    int      `bson:"capacity" json:"capacity"`
	Floor       int      `bson:"floor" json:"floor"`
	Amenities   []string `bson:"amenities" json:"amenities"`
	Status      string   `bson:"status" json:"status"` // declared state, see constants above
	Location    string   `bson:"location" json:"location"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
}

// AddRoomRequest is the admin payload for registering a room.
type AddRoomRequest struct {
	Name        string   `json:"name" binding:"required"`
	RoomNumber  int      `json:"roomNumber" binding:"required"`
	Capacity    int      `json:"capacity" binding:"required,gt=0"`
	Floor       int      `json:"floor"`
	Amenities   []string `json:"amenities"`
	Status      string   `json:"status"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
}

// RoomSearchParams filters the room listing. Zero values mean "no filter".
type RoomSearchParams struct {
	MinCapacity int      `form:"minCapacity"`
	MaxCapacity int      `form:"maxCapacity"`
	Floor       int      `form:"floor"`
	Amenities   []string `form:"amenities"`
	StartTime   int64    `form:"startTime"` // with EndTime: only rooms free in this range
	EndTime     int64    `form:"endTime"`
}
