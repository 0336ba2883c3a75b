package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roombook/middleware"
	"roombook/models"
	bookingService "roombook/services/booking"
	"roombook/services/schedule"
)

// BookingHandler exposes booking lifecycle endpoints.
type BookingHandler struct {
	Service bookingService.BookingService
	Policy  schedule.BookingPolicy
}

// BookingDefaultsHandler handles GET /api/bookings/defaults. It returns the
// window a booking form should prefill together with the policy limits, so
// clients never hardcode them.
func (h *BookingHandler) BookingDefaultsHandler(c *gin.Context) {
	start, end := h.Policy.DefaultWindow(time.Now().Unix())
	c.JSON(http.StatusOK, gin.H{
		"start_time":           start,
		"end_time":             end,
		"min_duration_minutes": h.Policy.MinDurationMinutes,
		"max_duration_hours":   h.Policy.MaxDurationHours,
		"max_days_ahead":       h.Policy.MaxAdvanceDays,
	})
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString(middleware.CtxUserID)

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.Create(userID, req)
	if err != nil {
		var conflict *bookingService.ConflictError
		switch {
		case errors.As(err, &conflict):
			c.JSON(http.StatusConflict, gin.H{
				"error":             conflict.Error(),
				"conflicting_slots": conflict.Conflicts,
			})
		case isPolicyViolation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, bookingService.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, bookingService.ErrRoomNotBookable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create booking",
				zap.String("userID", userID), zap.String("roomID", req.RoomID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListMyBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	bookings, err := h.Service.ListByUser(userID)
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")
	userID := c.GetString(middleware.CtxUserID)

	err := h.Service.Cancel(bookingID, userID, middleware.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, bookingService.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			getLogger(c).Error("Failed to cancel booking",
				zap.String("bookingID", bookingID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// ListAllBookingsHandler handles GET /api/admin/bookings.
func (h *BookingHandler) ListAllBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListAllDetailed()
	if err != nil {
		getLogger(c).Error("Failed to list all bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// isPolicyViolation reports whether err is one of the booking policy
// rejections, all of which are the client's fault.
func isPolicyViolation(err error) bool {
	for _, target := range []error{
		schedule.ErrPastBooking,
		schedule.ErrTooFarAhead,
		schedule.ErrEndBeforeStart,
		schedule.ErrTooShort,
		schedule.ErrTooLong,
		schedule.ErrInvalidInterval,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
