package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"roombook/config"
	"roombook/cron"
	"roombook/database"
	bookingRepoPkg "roombook/database/repository/booking"
	roomRepoPkg "roombook/database/repository/room"
	userRepoPkg "roombook/database/repository/user"
	"roombook/handlers"
	"roombook/routes"
	"roombook/services/booking"
	"roombook/services/room"
	"roombook/services/user"
	"roombook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Warnf("main: unknown timezone %q, using local", config.AppConfig.Timezone)
		loc = time.Local
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// background tasks.
	taskClient := cron.NewTaskClient()
	defer taskClient.Close()
	worker := cron.NewWorker(bookingRepo, roomRepo, userRepo)
	if err := worker.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start task worker: %v", err)
	}

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	roomService := &room.DefaultRoomService{
		Repo:        roomRepo,
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
		Cache:       utils.GetCacheClient(),
		Location:    loc,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		RoomRepo:  roomRepo,
		UserRepo:  userRepo,
		Policy:    config.BookingPolicy(),
		Reminders: taskClient,
	}

	handlerBundle := handlers.NewHandlerBundle(userService, roomService, bookingService, config.BookingPolicy())
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache": utils.GetCacheClient(),
		"auth":  utils.GetAuthCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
