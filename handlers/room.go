package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roombook/models"
	roomService "roombook/services/room"
)

// RoomHandler exposes room management and schedule query endpoints.
type RoomHandler struct {
	Service roomService.RoomService
}

// AddRoomHandler handles POST /api/admin/rooms.
func (h *RoomHandler) AddRoomHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	room, err := h.Service.AddRoom(req)
	if err != nil {
		if errors.Is(err, roomService.ErrDuplicateRoomNumber) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to add room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add room"})
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoomHandler handles PUT /api/admin/rooms/:id.
func (h *RoomHandler) UpdateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	room.ID = c.Param("id")

	if err := h.Service.UpdateRoom(&room); err != nil {
		if errors.Is(err, roomService.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Failed to update room", zap.String("roomID", room.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoomHandler handles DELETE /api/admin/rooms/:id.
func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteRoom(id); err != nil {
		if errors.Is(err, roomService.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Failed to delete room", zap.String("roomID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}

// GetRoomHandler handles GET /api/rooms/:id.
func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	id := c.Param("id")
	room, err := h.Service.GetRoom(id)
	if err != nil {
		if errors.Is(err, roomService.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Failed to fetch room", zap.String("roomID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch room"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// SearchRoomsHandler handles GET /api/rooms. Filters arrive as query
// parameters; with none set it lists every room.
func (h *RoomHandler) SearchRoomsHandler(c *gin.Context) {
	var params models.RoomSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	rooms, err := h.Service.SearchRooms(params)
	if err != nil {
		getLogger(c).Error("Room search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Room search failed"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}
