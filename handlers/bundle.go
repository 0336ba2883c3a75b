package handlers

import (
	bookingService "roombook/services/booking"
	roomService "roombook/services/room"
	"roombook/services/schedule"
	userService "roombook/services/user"
)

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	Users    *UserHandler
	Rooms    *RoomHandler
	Bookings *BookingHandler
}

// NewHandlerBundle wires the handlers to their services.
func NewHandlerBundle(users userService.UserService, rooms roomService.RoomService, bookings bookingService.BookingService, policy schedule.BookingPolicy) *HandlerBundle {
	return &HandlerBundle{
		Users:    &UserHandler{Service: users},
		Rooms:    &RoomHandler{Service: rooms},
		Bookings: &BookingHandler{Service: bookings, Policy: policy},
	}
}
