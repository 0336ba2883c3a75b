package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roombook/handlers"
	"roombook/middleware"
	"roombook/utils"
)

// RegisterUserRoutes registers account and session endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Users.RegisterUserHandler)
		api.POST("/login", hb.Users.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuth())
		api.POST("/logout", hb.Users.LogoutHandler)
		api.GET("/me", hb.Users.GetProfileHandler)
		api.PUT("/password", hb.Users.UpdatePasswordHandler)
	}
}

// RegisterRoomRoutes registers room listing and schedule query endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.Use(middleware.JWTAuth())
		api.GET("", hb.Rooms.SearchRoomsHandler)
		api.GET("/:id", hb.Rooms.GetRoomHandler)
		api.GET("/:id/schedule", hb.Rooms.GetScheduleHandler)
		api.GET("/:id/grid", hb.Rooms.GetDayGridHandler)
		api.GET("/:id/status", hb.Rooms.CurrentStatusHandler)
		api.POST("/check-availability", hb.Rooms.CheckAvailabilityHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuth())
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.GET("", hb.Bookings.ListMyBookingsHandler)
		api.GET("/defaults", hb.Bookings.BookingDefaultsHandler)
		api.DELETE("/:id", hb.Bookings.CancelBookingHandler)
	}
}

// RegisterAdminRoutes registers management endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuth(), middleware.RequireAdmin())
		api.GET("/users", hb.Users.GetAllUsersHandler)
		api.DELETE("/users/:id", hb.Users.DeleteUserHandler)

		api.POST("/rooms", hb.Rooms.AddRoomHandler)
		api.PUT("/rooms/:id", hb.Rooms.UpdateRoomHandler)
		api.DELETE("/rooms/:id", hb.Rooms.DeleteRoomHandler)

		api.GET("/bookings", hb.Bookings.ListAllBookingsHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
