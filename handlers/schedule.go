package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roombook/models"
	roomService "roombook/services/room"
	"roombook/services/schedule"
)

// scheduleDate resolves the date query parameter, defaulting to today.
// Dates use the YYYY-MM-DD form.
func scheduleDate(c *gin.Context) (string, bool) {
	date := c.Query("date")
	if date == "" {
		return time.Now().Format("2006-01-02"), true
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return "", false
	}
	return date, true
}

// GetScheduleHandler handles GET /api/rooms/:id/schedule.
func (h *RoomHandler) GetScheduleHandler(c *gin.Context) {
	date, ok := scheduleDate(c)
	if !ok {
		return
	}
	roomID := c.Param("id")

	resp, err := h.Service.GetSchedule(roomID, date)
	if err != nil {
		if errors.Is(err, roomService.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Failed to load schedule",
			zap.String("roomID", roomID), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedule"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetDayGridHandler handles GET /api/rooms/:id/grid. The response carries the
// 24 hourly buckets with per-booking render geometry.
func (h *RoomHandler) GetDayGridHandler(c *gin.Context) {
	date, ok := scheduleDate(c)
	if !ok {
		return
	}
	roomID := c.Param("id")

	resp, err := h.Service.GetDayGrid(roomID, date)
	if err != nil {
		if errors.Is(err, roomService.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Failed to build day grid",
			zap.String("roomID", roomID), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build day grid"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CurrentStatusHandler handles GET /api/rooms/:id/status.
func (h *RoomHandler) CurrentStatusHandler(c *gin.Context) {
	roomID := c.Param("id")
	resp, err := h.Service.CurrentStatus(roomID)
	if err != nil {
		if errors.Is(err, roomService.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Failed to compute room status", zap.String("roomID", roomID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute room status"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CheckAvailabilityHandler handles POST /api/rooms/check-availability. The
// answer is advisory; booking creation re-validates.
func (h *RoomHandler) CheckAvailabilityHandler(c *gin.Context) {
	var req models.AvailabilityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.CheckAvailability(req)
	if err != nil {
		switch {
		case errors.Is(err, roomService.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, schedule.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, gin.H{"error": "End time must be after start time"})
		default:
			getLogger(c).Error("Availability check failed", zap.String("roomID", req.RoomID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Availability check failed"})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}
