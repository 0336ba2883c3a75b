package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/middleware"
	"roombook/models"
	bookingService "roombook/services/booking"
	"roombook/services/schedule"
)

// stubBookingService returns canned results per method.
type stubBookingService struct {
	createErr error
	created   *models.Booking
	cancelErr error
}

func (s *stubBookingService) Create(userID string, req models.CreateBookingRequest) (*models.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubBookingService) GetByID(string) (*models.Booking, error)            { return nil, nil }
func (s *stubBookingService) ListByUser(string) ([]models.Booking, error)        { return nil, nil }
func (s *stubBookingService) ListAllDetailed() ([]models.DetailedBooking, error) { return nil, nil }
func (s *stubBookingService) Cancel(string, string, bool) error                  { return s.cancelErr }

func newBookingRouter(svc bookingService.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &BookingHandler{Service: svc}
	authed := func(c *gin.Context) {
		c.Set(middleware.CtxUserID, "user-1")
		c.Next()
	}
	r.POST("/api/bookings", authed, h.CreateBookingHandler)
	r.DELETE("/api/bookings/:id", authed, h.CancelBookingHandler)
	return r
}

func postBooking(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		RoomID: "room-1", StartTime: 1000, EndTime: 4600, Purpose: "team sync",
	}
}

func TestCreateBookingHandlerCreated(t *testing.T) {
	r := newBookingRouter(&stubBookingService{
		created: &models.Booking{ID: "b-1", RoomID: "room-1", Status: models.BookingConfirmed},
	})

	w := postBooking(t, r, validRequest())
	assert.Equal(t, http.StatusCreated, w.Code)

	var got models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "b-1", got.ID)
}

func TestCreateBookingHandlerConflict(t *testing.T) {
	iv, err := schedule.NewBookingInterval("b-0", 1000, 4600, "Ada", "standup")
	require.NoError(t, err)
	r := newBookingRouter(&stubBookingService{
		createErr: &bookingService.ConflictError{Conflicts: []schedule.BookingInterval{iv}},
	})

	w := postBooking(t, r, validRequest())
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Error            string                     `json:"error"`
		ConflictingSlots []schedule.BookingInterval `json:"conflicting_slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	require.Len(t, resp.ConflictingSlots, 1)
	assert.Equal(t, "b-0", resp.ConflictingSlots[0].ID)
}

func TestCreateBookingHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"policy violation", schedule.ErrTooShort, http.StatusBadRequest},
		{"past booking", schedule.ErrPastBooking, http.StatusBadRequest},
		{"unknown room", bookingService.ErrRoomNotFound, http.StatusNotFound},
		{"room under maintenance", bookingService.ErrRoomNotBookable, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newBookingRouter(&stubBookingService{createErr: tc.err})
			w := postBooking(t, r, validRequest())
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestCreateBookingHandlerRejectsBadPayload(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	// Purpose below the minimum length fails binding before the service runs.
	w := postBooking(t, r, models.CreateBookingRequest{
		RoomID: "room-1", StartTime: 1000, EndTime: 4600, Purpose: "hi",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelBookingHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"not found", bookingService.ErrNotFound, http.StatusNotFound},
		{"not owner", bookingService.ErrNotOwner, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newBookingRouter(&stubBookingService{cancelErr: tc.err})
			req := httptest.NewRequest(http.MethodDelete, "/api/bookings/b-1", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
